package compress

import (
	"io"

	"github.com/klauspost/compress/zlib"
)

// ZlibCodec implements the raw zlib container (RFC 1950) used for chunk
// payloads inside region files.
type ZlibCodec struct{}

var _ Codec = ZlibCodec{}

func (ZlibCodec) Reader(r io.Reader) (io.ReadCloser, error) {
	return zlib.NewReader(r)
}

func (ZlibCodec) Writer(w io.Writer) (io.WriteCloser, error) {
	return zlib.NewWriter(w), nil
}
