package compress

import (
	"fmt"
	"io"

	"github.com/theJ8910/jnbt/errs"
	"github.com/theJ8910/jnbt/format"
)

// Codec wraps a byte stream in one compression algorithm.
//
// Implementations are stateless; the returned readers and writers carry all
// per-stream state, so one Codec may serve any number of concurrent streams.
type Codec interface {
	// Reader returns a decompressing reader over r. Closing it releases
	// decoder resources but does not close r.
	Reader(r io.Reader) (io.ReadCloser, error)

	// Writer returns a compressing writer over w. Closing it flushes and
	// terminates the compressed stream but does not close w.
	Writer(w io.Writer) (io.WriteCloser, error)
}

// New returns the codec for the given compression type.
func New(compression format.CompressionType) (Codec, error) {
	switch compression {
	case format.CompressionNone:
		return NoopCodec{}, nil
	case format.CompressionGzip:
		return GzipCodec{}, nil
	case format.CompressionZlib:
		return ZlibCodec{}, nil
	case format.CompressionLZ4:
		return LZ4Codec{}, nil
	case format.CompressionZstd:
		return ZstdCodec{}, nil
	default:
		return nil, fmt.Errorf("%w: unsupported compression type %d", errs.ErrUsage, uint8(compression))
	}
}
