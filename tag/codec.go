package tag

import (
	"fmt"
	"io"

	"github.com/theJ8910/jnbt/compress"
	"github.com/theJ8910/jnbt/errs"
	"github.com/theJ8910/jnbt/format"
	"github.com/theJ8910/jnbt/internal/wire"
)

// Decode reads an uncompressed NBT document from r and builds its tree.
//
// The root tag must be a named TAG_Compound; anything else fails with a
// WrongTagError. Duplicate names inside a compound fail with a
// DuplicateNameError. Truncated input surfaces as errs.ErrUnexpectedEOF.
func Decode(r io.Reader) (*Document, error) {
	name, err := wire.ReadExpectedTagName(r, format.TagCompound)
	if err != nil {
		return nil, err
	}

	d := &Document{name: name}
	if err := readCompound(r, &d.Compound); err != nil {
		return nil, err
	}

	return d, nil
}

// DecodeCompressed reads an NBT document from r through the given
// compression codec.
func DecodeCompressed(r io.Reader, compression format.CompressionType) (*Document, error) {
	codec, err := compress.New(compression)
	if err != nil {
		return nil, err
	}

	cr, err := codec.Reader(r)
	if err != nil {
		return nil, err
	}

	d, err := Decode(cr)
	if closeErr := cr.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return nil, err
	}

	return d, nil
}

// Encode writes the document to w as uncompressed NBT bytes.
func (d *Document) Encode(w io.Writer) error {
	if err := wire.WriteTagName(w, format.TagCompound, d.name); err != nil {
		return err
	}

	return writeCompound(w, &d.Compound)
}

// DecodePayload reads the bare payload of a tag of the given type from r.
// Payloads carry no type or name header; the caller supplies the type,
// typically from a surrounding list or array header.
func DecodePayload(r io.Reader, typ format.TagType) (Tag, error) {
	switch typ {
	case format.TagByte:
		v, err := wire.ReadInt8(r)
		return Byte(v), err
	case format.TagShort:
		v, err := wire.ReadInt16(r)
		return Short(v), err
	case format.TagInt:
		v, err := wire.ReadInt32(r)
		return Int(v), err
	case format.TagLong:
		v, err := wire.ReadInt64(r)
		return Long(v), err
	case format.TagFloat:
		v, err := wire.ReadFloat32(r)
		return Float(v), err
	case format.TagDouble:
		v, err := wire.ReadFloat64(r)
		return Double(v), err
	case format.TagByteArray:
		return readByteArray(r)
	case format.TagString:
		s, err := wire.ReadString(r)
		return String(s), err
	case format.TagList:
		return readList(r)
	case format.TagCompound:
		c := NewCompound()
		if err := readCompound(r, c); err != nil {
			return nil, err
		}
		return c, nil
	case format.TagIntArray:
		return readIntArray(r)
	default:
		return nil, &errs.UnknownTagTypeError{Type: typ}
	}
}

// EncodePayload writes the bare payload of t to w, without a type or name
// header.
func EncodePayload(w io.Writer, t Tag) error {
	switch x := t.(type) {
	case Byte:
		return wire.WriteInt8(w, int8(x))
	case Short:
		return wire.WriteInt16(w, int16(x))
	case Int:
		return wire.WriteInt32(w, int32(x))
	case Long:
		return wire.WriteInt64(w, int64(x))
	case Float:
		return wire.WriteFloat32(w, float32(x))
	case Double:
		return wire.WriteFloat64(w, float64(x))
	case ByteArray:
		return writeByteArray(w, x)
	case String:
		return wire.WriteString(w, string(x))
	case *List:
		return writeList(w, x)
	case *Compound:
		return writeCompound(w, x)
	case *Document:
		return writeCompound(w, &x.Compound)
	case IntArray:
		return writeIntArray(w, x)
	default:
		panic(fmt.Sprintf("nbt: unknown tag %T", t))
	}
}

func readCompound(r io.Reader, c *Compound) error {
	for {
		typ, name, err := wire.ReadTagName(r)
		if err != nil {
			return err
		}

		if typ == format.TagEnd {
			return nil
		}
		if !typ.IsValid() {
			return &errs.UnknownTagTypeError{Type: typ}
		}
		if _, exists := c.Get(name); exists {
			return &errs.DuplicateNameError{Name: name}
		}

		t, err := DecodePayload(r, typ)
		if err != nil {
			return err
		}

		if err := c.Set(name, t); err != nil {
			return err
		}
	}
}

func writeCompound(w io.Writer, c *Compound) error {
	for _, e := range c.entries {
		if err := wire.WriteTagName(w, e.tag.Type(), e.name); err != nil {
			return err
		}
		if err := EncodePayload(w, e.tag); err != nil {
			return err
		}
	}

	return wire.WriteEnd(w)
}

func readList(r io.Reader) (*List, error) {
	elem, length, err := wire.ReadListHeader(r)
	if err != nil {
		return nil, err
	}

	if elem == format.TagEnd && length > 0 {
		return nil, fmt.Errorf("%w: TAG_List of TAG_End with nonzero length %d", errs.ErrFormat, length)
	}

	l := newDecodedList(elem, length)
	for i := 0; i < length; i++ {
		t, err := DecodePayload(r, elem)
		if err != nil {
			return nil, err
		}
		l.items = append(l.items, t)
	}

	return l, nil
}

func writeList(w io.Writer, l *List) error {
	if err := checkWireLength(len(l.items)); err != nil {
		return err
	}
	if err := wire.WriteListHeader(w, l.elem, len(l.items)); err != nil {
		return err
	}

	for _, t := range l.items {
		if err := EncodePayload(w, t); err != nil {
			return err
		}
	}

	return nil
}

func readByteArray(r io.Reader) (ByteArray, error) {
	length, err := wire.ReadArrayHeader(r)
	if err != nil {
		return nil, err
	}

	v := make([]byte, length)
	if err := wire.ReadExact(r, v); err != nil {
		return nil, err
	}

	return ByteArray(v), nil
}

func writeByteArray(w io.Writer, v ByteArray) error {
	if err := checkWireLength(len(v)); err != nil {
		return err
	}
	if err := wire.WriteArrayHeader(w, len(v)); err != nil {
		return err
	}

	_, err := w.Write(v)

	return err
}

func readIntArray(r io.Reader) (IntArray, error) {
	length, err := wire.ReadArrayHeader(r)
	if err != nil {
		return nil, err
	}

	v, err := wire.ReadInt32s(r, length)
	if err != nil {
		return nil, err
	}

	return IntArray(v), nil
}

func writeIntArray(w io.Writer, v IntArray) error {
	if err := checkWireLength(len(v)); err != nil {
		return err
	}
	if err := wire.WriteArrayHeader(w, len(v)); err != nil {
		return err
	}

	return wire.WriteInt32s(w, v)
}

// checkWireLength guards the int -> int32 narrowing of sequence lengths on
// 64-bit platforms.
func checkWireLength(n int) error {
	if int64(n) > format.MaxLength {
		return &errs.OutOfRangeError{Value: int64(n), Min: 0, Max: format.MaxLength}
	}

	return nil
}
