package compress

import (
	"io"

	"github.com/pierrec/lz4/v4"
)

// LZ4Codec wraps documents in the LZ4 frame format. An extension format:
// fast to decompress, useful for large documents read far more often than
// written.
type LZ4Codec struct{}

var _ Codec = LZ4Codec{}

func (LZ4Codec) Reader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(lz4.NewReader(r)), nil
}

func (LZ4Codec) Writer(w io.Writer) (io.WriteCloser, error) {
	return lz4.NewWriter(w), nil
}
