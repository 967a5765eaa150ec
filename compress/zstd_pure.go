//go:build !cgo_zstd

package compress

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

func (ZstdCodec) Reader(r io.Reader) (io.ReadCloser, error) {
	d, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, err
	}

	return d.IOReadCloser(), nil
}

func (ZstdCodec) Writer(w io.Writer) (io.WriteCloser, error) {
	return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
}
