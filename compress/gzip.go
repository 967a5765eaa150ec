package compress

import (
	"io"

	"github.com/klauspost/compress/gzip"
)

// GzipCodec implements the conventional gzip NBT container (RFC 1952).
// This is the default on-disk format for standalone NBT files.
type GzipCodec struct{}

var _ Codec = GzipCodec{}

func (GzipCodec) Reader(r io.Reader) (io.ReadCloser, error) {
	return gzip.NewReader(r)
}

func (GzipCodec) Writer(w io.Writer) (io.WriteCloser, error) {
	return gzip.NewWriter(w), nil
}
