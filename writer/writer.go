// Package writer provides streaming NBT output.
//
// A TagWriter emits a document tag by tag, never holding a tree in memory:
// tags are encoded directly to the destination as the calls arrive, so a
// document larger than memory can be produced, and byte and int array
// payloads can be streamed in chunks.
//
// Two implementations exist. Writer trusts its caller completely and does
// no structural validation; malformed call sequences produce malformed
// output. SafeWriter tracks the open container stack and verifies every
// call: names are unique within a compound, list elements match the
// declared type and count, streamed arrays receive exactly their declared
// lengths, and the root is started and ended exactly once.
//
// Named methods (Byte, StartList, ...) write compound entries; their Elem
// counterparts (ByteElem, StartListElem, ...) write unnamed list elements.
// The root compound is opened with Start and closed with End.
package writer

import (
	"io"

	"github.com/theJ8910/jnbt/format"
	"github.com/theJ8910/jnbt/internal/wire"
	"github.com/theJ8910/jnbt/tag"
)

// TagWriter is the streaming NBT output surface shared by Writer and
// SafeWriter.
type TagWriter interface {
	// Start opens the root compound with the given name. It must be the
	// first call, and End must be the last.
	Start(name string) error
	// End closes the root compound. It is distinct from EndCompound so
	// that a misplaced close of the root is detectable.
	End() error

	Byte(name string, v int8) error
	Short(name string, v int16) error
	Int(name string, v int32) error
	Long(name string, v int64) error
	Float(name string, v float32) error
	Double(name string, v float64) error
	String(name string, s string) error

	// ByteArray writes a whole TAG_Byte_Array entry at once.
	ByteArray(name string, v []byte) error
	// IntArray writes a whole TAG_Int_Array entry at once.
	IntArray(name string, v []int32) error
	// List writes a whole TAG_List entry at once.
	List(name string, l *tag.List) error
	// Tag writes any built tag as an entry, including nested compounds.
	Tag(name string, t tag.Tag) error

	// StartByteArray opens a TAG_Byte_Array entry whose payload is
	// streamed by Bytes calls totalling exactly length bytes, terminated
	// by EndByteArray.
	StartByteArray(name string, length int32) error
	Bytes(chunk []byte) error
	EndByteArray() error

	// StartIntArray opens a TAG_Int_Array entry whose payload is streamed
	// by Ints calls totalling exactly length integers, terminated by
	// EndIntArray.
	StartIntArray(name string, length int32) error
	Ints(chunk []int32) error
	EndIntArray() error

	// StartList opens a TAG_List entry that will contain exactly length
	// elements of type elem, written by Elem calls and terminated by
	// EndList.
	StartList(name string, elem format.TagType, length int32) error
	EndList() error

	// StartCompound opens a nested TAG_Compound entry, terminated by
	// EndCompound.
	StartCompound(name string) error
	EndCompound() error

	ByteElem(v int8) error
	ShortElem(v int16) error
	IntElem(v int32) error
	LongElem(v int64) error
	FloatElem(v float32) error
	DoubleElem(v float64) error
	StringElem(s string) error
	ByteArrayElem(v []byte) error
	IntArrayElem(v []int32) error
	ListElem(l *tag.List) error
	TagElem(t tag.Tag) error

	StartByteArrayElem(length int32) error
	StartIntArrayElem(length int32) error
	StartListElem(elem format.TagType, length int32) error
	StartCompoundElem() error
}

// Writer streams NBT output without structural validation.
//
// The caller is responsible for well-formed call sequences: balanced
// containers, unique names, correct element types and exact streamed
// lengths. Nothing is buffered and nothing is tracked, making Writer the
// cheapest way to produce NBT when the call sequence is generated by code
// that is correct by construction. Use SafeWriter when it is not.
type Writer struct {
	w io.Writer
}

var _ TagWriter = (*Writer)(nil)

// NewWriter creates an unvalidated streaming writer over w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (t *Writer) Start(name string) error {
	return wire.WriteTagName(t.w, format.TagCompound, name)
}

func (t *Writer) End() error { return wire.WriteEnd(t.w) }

func (t *Writer) Byte(name string, v int8) error {
	if err := wire.WriteTagName(t.w, format.TagByte, name); err != nil {
		return err
	}

	return wire.WriteInt8(t.w, v)
}

func (t *Writer) Short(name string, v int16) error {
	if err := wire.WriteTagName(t.w, format.TagShort, name); err != nil {
		return err
	}

	return wire.WriteInt16(t.w, v)
}

func (t *Writer) Int(name string, v int32) error {
	if err := wire.WriteTagName(t.w, format.TagInt, name); err != nil {
		return err
	}

	return wire.WriteInt32(t.w, v)
}

func (t *Writer) Long(name string, v int64) error {
	if err := wire.WriteTagName(t.w, format.TagLong, name); err != nil {
		return err
	}

	return wire.WriteInt64(t.w, v)
}

func (t *Writer) Float(name string, v float32) error {
	if err := wire.WriteTagName(t.w, format.TagFloat, name); err != nil {
		return err
	}

	return wire.WriteFloat32(t.w, v)
}

func (t *Writer) Double(name string, v float64) error {
	if err := wire.WriteTagName(t.w, format.TagDouble, name); err != nil {
		return err
	}

	return wire.WriteFloat64(t.w, v)
}

func (t *Writer) String(name string, s string) error {
	if err := wire.WriteTagName(t.w, format.TagString, name); err != nil {
		return err
	}

	return wire.WriteString(t.w, s)
}

func (t *Writer) ByteArray(name string, v []byte) error {
	if err := wire.WriteTagName(t.w, format.TagByteArray, name); err != nil {
		return err
	}

	return t.ByteArrayElem(v)
}

func (t *Writer) IntArray(name string, v []int32) error {
	if err := wire.WriteTagName(t.w, format.TagIntArray, name); err != nil {
		return err
	}

	return t.IntArrayElem(v)
}

func (t *Writer) List(name string, l *tag.List) error {
	return t.Tag(name, l)
}

func (t *Writer) Tag(name string, tg tag.Tag) error {
	if err := wire.WriteTagName(t.w, tg.Type(), name); err != nil {
		return err
	}

	return tag.EncodePayload(t.w, tg)
}

func (t *Writer) StartByteArray(name string, length int32) error {
	if err := wire.WriteTagName(t.w, format.TagByteArray, name); err != nil {
		return err
	}

	return wire.WriteArrayHeader(t.w, int(length))
}

func (t *Writer) Bytes(chunk []byte) error {
	_, err := t.w.Write(chunk)
	return err
}

func (t *Writer) EndByteArray() error { return nil }

func (t *Writer) StartIntArray(name string, length int32) error {
	if err := wire.WriteTagName(t.w, format.TagIntArray, name); err != nil {
		return err
	}

	return wire.WriteArrayHeader(t.w, int(length))
}

func (t *Writer) Ints(chunk []int32) error {
	return wire.WriteInt32s(t.w, chunk)
}

func (t *Writer) EndIntArray() error { return nil }

func (t *Writer) StartList(name string, elem format.TagType, length int32) error {
	if err := wire.WriteTagName(t.w, format.TagList, name); err != nil {
		return err
	}

	return wire.WriteListHeader(t.w, elem, int(length))
}

// EndList exists so that call sequences are interchangeable with
// SafeWriter; a list's length is declared up front, so there is nothing to
// write.
func (t *Writer) EndList() error { return nil }

func (t *Writer) StartCompound(name string) error {
	return wire.WriteTagName(t.w, format.TagCompound, name)
}

func (t *Writer) EndCompound() error { return wire.WriteEnd(t.w) }

func (t *Writer) ByteElem(v int8) error      { return wire.WriteInt8(t.w, v) }
func (t *Writer) ShortElem(v int16) error    { return wire.WriteInt16(t.w, v) }
func (t *Writer) IntElem(v int32) error      { return wire.WriteInt32(t.w, v) }
func (t *Writer) LongElem(v int64) error     { return wire.WriteInt64(t.w, v) }
func (t *Writer) FloatElem(v float32) error  { return wire.WriteFloat32(t.w, v) }
func (t *Writer) DoubleElem(v float64) error { return wire.WriteFloat64(t.w, v) }
func (t *Writer) StringElem(s string) error  { return wire.WriteString(t.w, s) }

func (t *Writer) ByteArrayElem(v []byte) error {
	if err := wire.WriteArrayHeader(t.w, len(v)); err != nil {
		return err
	}

	_, err := t.w.Write(v)

	return err
}

func (t *Writer) IntArrayElem(v []int32) error {
	if err := wire.WriteArrayHeader(t.w, len(v)); err != nil {
		return err
	}

	return wire.WriteInt32s(t.w, v)
}

func (t *Writer) ListElem(l *tag.List) error { return tag.EncodePayload(t.w, l) }

func (t *Writer) TagElem(tg tag.Tag) error { return tag.EncodePayload(t.w, tg) }

func (t *Writer) StartByteArrayElem(length int32) error {
	return wire.WriteArrayHeader(t.w, int(length))
}

func (t *Writer) StartIntArrayElem(length int32) error {
	return wire.WriteArrayHeader(t.w, int(length))
}

func (t *Writer) StartListElem(elem format.TagType, length int32) error {
	return wire.WriteListHeader(t.w, elem, int(length))
}

func (t *Writer) StartCompoundElem() error { return nil }
