// Package parse provides SAX-style streaming NBT parsing.
//
// Parse walks an uncompressed NBT stream and fires Handler callbacks as
// tags are decoded, never materializing a tree. Compared to building a
// tag.Document this keeps memory proportional to nesting depth rather than
// document size, and data is usable before the stream is fully read; the
// trade-off is that out-of-order access must be arranged by the handler.
//
// Any callback may end the walk early by returning Stop; the parser then
// abandons the stream and reports a partial parse. Byte and int array
// payloads are delivered in bounded chunks so a handler never sees an
// allocation sized by untrusted input.
package parse

import (
	"errors"
	"fmt"
	"io"

	"github.com/theJ8910/jnbt/errs"
	"github.com/theJ8910/jnbt/format"
	"github.com/theJ8910/jnbt/internal/wire"
)

// Stop is returned by a Handler callback to end parsing early without
// error. Parse absorbs it and reports an incomplete parse.
var Stop = errors.New("nbt: stop parsing")

// Handler receives parse events. Every callback may return an error to
// abort parsing, or Stop to end it early without error.
//
// Embed BaseHandler to implement only the events of interest.
type Handler interface {
	// Name is called when a named tag header is read, before the payload
	// callbacks for the tag it names. typ identifies the payload that
	// follows.
	Name(typ format.TagType, name string) error

	// Start is called once, after the root compound's name has been read
	// but before any of its contents.
	Start() error
	// End is called once, after the root compound has been fully parsed.
	// It is the final callback of a complete parse.
	End() error

	Byte(v int8) error
	Short(v int16) error
	Int(v int32) error
	Long(v int64) error
	Float(v float32) error
	Double(v float64) error
	String(s string) error

	// StartByteArray is called with the array length, followed by one
	// Bytes call per chunk of at most format.ByteChunkSize bytes, then
	// EndByteArray. The chunk slice is reused; handlers must copy what
	// they keep.
	StartByteArray(length int32) error
	Bytes(chunk []byte) error
	EndByteArray() error

	// StartIntArray is called with the array length in integers, followed
	// by one Ints call per chunk of at most format.IntChunkSize integers,
	// then EndIntArray. The chunk slice is reused; handlers must copy
	// what they keep.
	StartIntArray(length int32) error
	Ints(chunk []int32) error
	EndIntArray() error

	// StartList is called with the element type and length; the element
	// payload events follow, then EndList. List elements are unnamed, so
	// no Name calls occur between them.
	StartList(elem format.TagType, length int32) error
	EndList() error

	StartCompound() error
	EndCompound() error
}

// Parse reads an uncompressed NBT stream from r, firing h's callbacks as
// tags are decoded.
//
// The root tag must be a named TAG_Compound. complete reports whether the
// whole stream was parsed: it is false with a nil error when a callback
// returned Stop, and false with the callback's error when one failed.
func Parse(r io.Reader, h Handler) (complete bool, err error) {
	name, err := wire.ReadExpectedTagName(r, format.TagCompound)
	if err != nil {
		return false, err
	}

	err = func() error {
		if err := h.Name(format.TagCompound, name); err != nil {
			return err
		}
		if err := h.Start(); err != nil {
			return err
		}
		if err := parseCompound(r, h); err != nil {
			return err
		}

		return h.End()
	}()
	if errors.Is(err, Stop) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}

// parsePayload dispatches one payload of the given type to the handler.
func parsePayload(r io.Reader, h Handler, typ format.TagType) error {
	switch typ {
	case format.TagByte:
		v, err := wire.ReadInt8(r)
		if err != nil {
			return err
		}
		return h.Byte(v)
	case format.TagShort:
		v, err := wire.ReadInt16(r)
		if err != nil {
			return err
		}
		return h.Short(v)
	case format.TagInt:
		v, err := wire.ReadInt32(r)
		if err != nil {
			return err
		}
		return h.Int(v)
	case format.TagLong:
		v, err := wire.ReadInt64(r)
		if err != nil {
			return err
		}
		return h.Long(v)
	case format.TagFloat:
		v, err := wire.ReadFloat32(r)
		if err != nil {
			return err
		}
		return h.Float(v)
	case format.TagDouble:
		v, err := wire.ReadFloat64(r)
		if err != nil {
			return err
		}
		return h.Double(v)
	case format.TagByteArray:
		return parseByteArray(r, h)
	case format.TagString:
		s, err := wire.ReadString(r)
		if err != nil {
			return err
		}
		return h.String(s)
	case format.TagList:
		return parseList(r, h)
	case format.TagCompound:
		return parseCompound(r, h)
	case format.TagIntArray:
		return parseIntArray(r, h)
	default:
		return &errs.UnknownTagTypeError{Type: typ}
	}
}

func parseCompound(r io.Reader, h Handler) error {
	if err := h.StartCompound(); err != nil {
		return err
	}

	for {
		typ, name, err := wire.ReadTagName(r)
		if err != nil {
			return err
		}

		if typ == format.TagEnd {
			return h.EndCompound()
		}
		if !typ.IsValid() {
			return &errs.UnknownTagTypeError{Type: typ}
		}

		if err := h.Name(typ, name); err != nil {
			return err
		}
		if err := parsePayload(r, h, typ); err != nil {
			return err
		}
	}
}

func parseList(r io.Reader, h Handler) error {
	elem, length, err := wire.ReadListHeader(r)
	if err != nil {
		return err
	}

	if elem == format.TagEnd && length > 0 {
		return fmt.Errorf("%w: TAG_List of TAG_End with nonzero length %d", errs.ErrFormat, length)
	}

	if err := h.StartList(elem, int32(length)); err != nil {
		return err
	}

	for i := 0; i < length; i++ {
		if err := parsePayload(r, h, elem); err != nil {
			return err
		}
	}

	return h.EndList()
}

func parseByteArray(r io.Reader, h Handler) error {
	length, err := wire.ReadArrayHeader(r)
	if err != nil {
		return err
	}

	if err := h.StartByteArray(int32(length)); err != nil {
		return err
	}

	remaining := length
	chunk := make([]byte, min(remaining, format.ByteChunkSize))
	for remaining > 0 {
		n := min(remaining, format.ByteChunkSize)
		if err := wire.ReadExact(r, chunk[:n]); err != nil {
			return err
		}
		if err := h.Bytes(chunk[:n]); err != nil {
			return err
		}
		remaining -= n
	}

	return h.EndByteArray()
}

func parseIntArray(r io.Reader, h Handler) error {
	length, err := wire.ReadArrayHeader(r)
	if err != nil {
		return err
	}

	if err := h.StartIntArray(int32(length)); err != nil {
		return err
	}

	remaining := length
	for remaining > 0 {
		n := min(remaining, format.IntChunkSize)
		chunk, err := wire.ReadInt32s(r, n)
		if err != nil {
			return err
		}
		if err := h.Ints(chunk); err != nil {
			return err
		}
		remaining -= n
	}

	return h.EndIntArray()
}
