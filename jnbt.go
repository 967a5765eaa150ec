// Package jnbt reads and writes NBT, the named binary tag serialization
// format used by Minecraft-family tooling.
//
// NBT documents are trees of typed, named tags. The root is always a named
// TAG_Compound; scalars, strings, byte and int arrays, homogeneous lists
// and nested compounds hang off it. On disk a document is conventionally
// gzip-compressed; raw zlib and uncompressed forms also occur, and LZ4 and
// Zstandard are supported as extensions.
//
// # Reading
//
// Read loads a whole file into a tag.Document for random access:
//
//	doc, err := jnbt.Read("level.dat")
//	if err != nil {
//	    return err
//	}
//	name := doc.Lookup("Data", "LevelName")
//
// The document remembers where it came from, so a modified tree can be
// written back with doc.Write(). For data too large to hold in memory, or
// when only a fragment matters, Parse streams Handler callbacks instead of
// building a tree:
//
//	found, err := jnbt.ParseFile("level.dat", myHandler)
//
// # Writing
//
// Documents built or modified in memory are written with Document.Write
// and Document.WriteFile. Streaming output goes through CreateWriter,
// which validates the call sequence by default:
//
//	w, err := jnbt.CreateWriter("out.nbt")
//	if err != nil {
//	    return err
//	}
//	w.Start("")
//	w.Int("score", 42)
//	w.End()
//	err = w.Close()
//
// # Package structure
//
// This package provides convenient top-level wrappers. For fine-grained
// control use the subpackages directly: tag for the document tree, parse
// for streaming input, writer for streaming output, compress for the
// compression codecs and format for tag type and compression constants.
package jnbt

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/theJ8910/jnbt/compress"
	"github.com/theJ8910/jnbt/format"
	"github.com/theJ8910/jnbt/internal/options"
	"github.com/theJ8910/jnbt/parse"
	"github.com/theJ8910/jnbt/tag"
	"github.com/theJ8910/jnbt/writer"
)

// DefaultCompression is assumed when no WithCompression option is given.
// Standalone NBT files are conventionally gzip-compressed.
const DefaultCompression = format.CompressionGzip

type config struct {
	compression format.CompressionType
	create      bool
	unchecked   bool
}

// Option configures the top-level read, parse and write entry points.
type Option = options.Option[*config]

// WithCompression selects the compression wrapping the NBT bytes. The
// algorithm is never sniffed from the data.
func WithCompression(compression format.CompressionType) Option {
	return options.New(func(c *config) error {
		if _, err := compress.New(compression); err != nil {
			return err
		}
		c.compression = compression

		return nil
	})
}

// WithCreate makes Read return a fresh empty document bound to the target
// path when the file does not exist yet, instead of failing.
func WithCreate() Option {
	return options.NoError(func(c *config) {
		c.create = true
	})
}

// WithUnchecked makes CreateWriter and NewStreamWriter skip structural
// validation of the call sequence. Only worthwhile when the calls are
// generated by code that is correct by construction.
func WithUnchecked() Option {
	return options.NoError(func(c *config) {
		c.unchecked = true
	})
}

func newConfig(opts []Option) (*config, error) {
	cfg := &config{compression: DefaultCompression}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Read loads the NBT file at path into a document.
//
// The returned document is bound to path and the effective compression, so
// Document.Write writes it back in place. With WithCreate, a missing file
// yields an empty document bound the same way rather than an error.
func Read(path string, opts ...Option) (*tag.Document, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) && cfg.create {
		d := tag.NewDocument()
		d.SetWriteArguments(path, cfg.compression)

		return d, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	d, err := tag.DecodeCompressed(f, cfg.compression)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	d.SetWriteArguments(path, cfg.compression)

	return d, nil
}

// ReadFrom decodes a document from r. Unlike Read, the result has no bound
// write target.
func ReadFrom(r io.Reader, opts ...Option) (*tag.Document, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	return tag.DecodeCompressed(r, cfg.compression)
}

// Parse streams the NBT document in r through h without building a tree.
// complete reports whether the whole document was parsed; it is false with
// a nil error when h ended the parse early with parse.Stop.
func Parse(r io.Reader, h parse.Handler, opts ...Option) (complete bool, err error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return false, err
	}

	codec, err := compress.New(cfg.compression)
	if err != nil {
		return false, err
	}

	cr, err := codec.Reader(r)
	if err != nil {
		return false, err
	}

	complete, err = parse.Parse(cr, h)
	if closeErr := cr.Close(); err == nil && complete {
		err = closeErr
	}

	return complete, err
}

// ParseFile streams the NBT file at path through h.
func ParseFile(path string, h parse.Handler, opts ...Option) (complete bool, err error) {
	f, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f, h, opts...)
}

// StreamWriter is a streaming NBT writer bound to its destination: closing
// it finalizes the compressed stream, verifies the document was completed
// when validation is on, and closes the file when the writer owns one.
type StreamWriter struct {
	writer.TagWriter

	safe *writer.SafeWriter
	cw   io.WriteCloser
	f    *os.File
}

// Close finalizes the stream. It fails if validation is enabled and the
// document was left incomplete, or if flushing the compression layer or
// closing the file fails.
func (s *StreamWriter) Close() error {
	var err error
	if s.safe != nil {
		err = s.safe.Close()
	}
	if closeErr := s.cw.Close(); err == nil {
		err = closeErr
	}
	if s.f != nil {
		if closeErr := s.f.Close(); err == nil {
			err = closeErr
		}
	}

	return err
}

// CreateWriter creates or truncates the file at path and returns a
// streaming writer over it. The writer validates its call sequence unless
// WithUnchecked is given.
func CreateWriter(path string, opts ...Option) (*StreamWriter, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}

	sw, err := newStreamWriter(f, cfg)
	if err != nil {
		f.Close()
		return nil, err
	}
	sw.f = f

	return sw, nil
}

// NewStreamWriter returns a streaming writer over w. Closing the writer
// finalizes the compressed stream but leaves w open.
func NewStreamWriter(w io.Writer, opts ...Option) (*StreamWriter, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	return newStreamWriter(w, cfg)
}

func newStreamWriter(w io.Writer, cfg *config) (*StreamWriter, error) {
	codec, err := compress.New(cfg.compression)
	if err != nil {
		return nil, err
	}

	cw, err := codec.Writer(w)
	if err != nil {
		return nil, err
	}

	sw := &StreamWriter{cw: cw}
	if cfg.unchecked {
		sw.TagWriter = writer.NewWriter(cw)
	} else {
		sw.safe = writer.NewSafeWriter(cw)
		sw.TagWriter = sw.safe
	}

	return sw, nil
}
