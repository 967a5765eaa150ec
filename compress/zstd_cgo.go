//go:build cgo_zstd

package compress

import (
	"io"

	"github.com/valyala/gozstd"
)

func (ZstdCodec) Reader(r io.Reader) (io.ReadCloser, error) {
	return &cgoZstdReader{gozstd.NewReader(r)}, nil
}

func (ZstdCodec) Writer(w io.Writer) (io.WriteCloser, error) {
	return &cgoZstdWriter{gozstd.NewWriter(w)}, nil
}

// cgoZstdReader adapts gozstd's Release lifecycle to io.ReadCloser.
type cgoZstdReader struct {
	*gozstd.Reader
}

func (r *cgoZstdReader) Close() error {
	r.Release()
	return nil
}

// cgoZstdWriter flushes the stream before releasing the C-side context.
type cgoZstdWriter struct {
	*gozstd.Writer
}

func (w *cgoZstdWriter) Close() error {
	err := w.Writer.Close()
	w.Release()

	return err
}
