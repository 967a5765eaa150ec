package compress

import "io"

// NoopCodec passes bytes through unchanged, for uncompressed NBT files.
type NoopCodec struct{}

var _ Codec = NoopCodec{}

func (NoopCodec) Reader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(r), nil
}

func (NoopCodec) Writer(w io.Writer) (io.WriteCloser, error) {
	return nopWriteCloser{w}, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
