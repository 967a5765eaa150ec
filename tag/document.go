package tag

import (
	"fmt"
	"io"
	"os"

	"github.com/theJ8910/jnbt/compress"
	"github.com/theJ8910/jnbt/errs"
	"github.com/theJ8910/jnbt/format"
	"github.com/theJ8910/jnbt/internal/pool"
)

// Document is the root of an NBT tree: a named compound that remembers
// where it came from so it can be written back.
//
// Reading a document binds it to the source path and the compression it was
// read with; Write re-encodes it to that target. A document built in memory
// has no write target until SetWriteArguments or an explicit WriteFile call
// provides one.
type Document struct {
	Compound

	name        string
	target      string
	compression format.CompressionType
}

var _ Tag = (*Document)(nil)

// NewDocument creates an empty document with an empty root name and no
// write target.
func NewDocument() *Document { return &Document{} }

// Name returns the name of the root compound. Most documents in the wild
// use the empty string.
func (d *Document) Name() string { return d.name }

// SetName sets the name of the root compound after validating its length.
func (d *Document) SetName(name string) error {
	if _, err := NewString(name); err != nil {
		return err
	}
	d.name = name

	return nil
}

// WriteArguments returns the bound target path and compression. The target
// is empty when the document is not bound.
func (d *Document) WriteArguments() (target string, compression format.CompressionType) {
	return d.target, d.compression
}

// SetWriteArguments binds the document to a target path and compression
// for later Write calls.
func (d *Document) SetWriteArguments(target string, compression format.CompressionType) {
	d.target = target
	d.compression = compression
}

// Write encodes the document to its bound target with its bound
// compression. It fails with errs.ErrNoWriteTarget when the document was
// never bound.
func (d *Document) Write() error {
	if d.target == "" {
		return errs.ErrNoWriteTarget
	}

	return d.WriteFile(d.target, d.compression)
}

// WriteFile encodes the document to the file at path with the given
// compression, creating or truncating the file. The document's bound write
// target is left unchanged.
func (d *Document) WriteFile(path string, compression format.CompressionType) error {
	codec, err := compress.New(compression)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	err = d.encodeCompressed(f, codec)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}

// WriteTo encodes the document to w with the given compression. w is not
// closed.
func (d *Document) WriteTo(w io.Writer, compression format.CompressionType) error {
	codec, err := compress.New(compression)
	if err != nil {
		return err
	}

	return d.encodeCompressed(w, codec)
}

// Bytes returns the document's uncompressed encoding as a fresh slice.
// Encoding stages through a pooled buffer, which suits callers that
// serialize many documents, such as region-style chunk storage.
func (d *Document) Bytes() ([]byte, error) {
	bb := pool.GetDocumentBuffer()
	defer pool.PutDocumentBuffer(bb)

	if err := d.Encode(bb); err != nil {
		return nil, err
	}

	out := make([]byte, bb.Len())
	copy(out, bb.Bytes())

	return out, nil
}

func (d *Document) encodeCompressed(w io.Writer, codec compress.Codec) error {
	cw, err := codec.Writer(w)
	if err != nil {
		return err
	}

	err = d.Encode(cw)
	if closeErr := cw.Close(); err == nil {
		err = closeErr
	}

	return err
}
