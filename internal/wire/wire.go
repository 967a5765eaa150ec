// Package wire implements the low-level NBT wire primitives: exact-width
// big-endian scalar transfer, length-prefixed UTF-8 strings, named-tag and
// list headers, and bulk TAG_Int_Array transfer.
//
// Every read fails with errs.ErrUnexpectedEOF when the stream ends before
// the requested field is complete; a short read is unrecoverable for the
// current stream. The only side effect of any function here is stream
// position advancement.
package wire

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/theJ8910/jnbt/endian"
	"github.com/theJ8910/jnbt/errs"
	"github.com/theJ8910/jnbt/format"
)

// engine is the wire byte order. NBT is big-endian everywhere.
var engine = endian.GetBigEndianEngine()

// ReadExact fills buf from r, failing with errs.ErrUnexpectedEOF if the
// stream ends first.
func ReadExact(r io.Reader, buf []byte) error {
	n, err := io.ReadFull(r, buf)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return fmt.Errorf("%w: want %d bytes but only got %d", errs.ErrUnexpectedEOF, len(buf), n)
		}

		return err
	}

	return nil
}

func ReadInt8(r io.Reader) (int8, error) {
	var b [1]byte
	if err := ReadExact(r, b[:]); err != nil {
		return 0, err
	}

	return int8(b[0]), nil
}

func WriteInt8(w io.Writer, v int8) error {
	_, err := w.Write([]byte{byte(v)})
	return err
}

func ReadInt16(r io.Reader) (int16, error) {
	var b [2]byte
	if err := ReadExact(r, b[:]); err != nil {
		return 0, err
	}

	return int16(engine.Uint16(b[:])), nil
}

func WriteInt16(w io.Writer, v int16) error {
	_, err := w.Write(engine.AppendUint16(make([]byte, 0, 2), uint16(v)))
	return err
}

func ReadInt32(r io.Reader) (int32, error) {
	var b [4]byte
	if err := ReadExact(r, b[:]); err != nil {
		return 0, err
	}

	return int32(engine.Uint32(b[:])), nil
}

func WriteInt32(w io.Writer, v int32) error {
	_, err := w.Write(engine.AppendUint32(make([]byte, 0, 4), uint32(v)))
	return err
}

func ReadInt64(r io.Reader) (int64, error) {
	var b [8]byte
	if err := ReadExact(r, b[:]); err != nil {
		return 0, err
	}

	return int64(engine.Uint64(b[:])), nil
}

func WriteInt64(w io.Writer, v int64) error {
	_, err := w.Write(engine.AppendUint64(make([]byte, 0, 8), uint64(v)))
	return err
}

func ReadFloat32(r io.Reader) (float32, error) {
	var b [4]byte
	if err := ReadExact(r, b[:]); err != nil {
		return 0, err
	}

	return math.Float32frombits(engine.Uint32(b[:])), nil
}

func WriteFloat32(w io.Writer, v float32) error {
	_, err := w.Write(engine.AppendUint32(make([]byte, 0, 4), math.Float32bits(v)))
	return err
}

func ReadFloat64(r io.Reader) (float64, error) {
	var b [8]byte
	if err := ReadExact(r, b[:]); err != nil {
		return 0, err
	}

	return math.Float64frombits(engine.Uint64(b[:])), nil
}

func WriteFloat64(w io.Writer, v float64) error {
	_, err := w.Write(engine.AppendUint64(make([]byte, 0, 8), math.Float64bits(v)))
	return err
}

// ReadString reads a TAG_String payload: a 2-byte signed byte-length
// followed by that many UTF-8 bytes.
func ReadString(r io.Reader) (string, error) {
	length, err := ReadInt16(r)
	if err != nil {
		return "", err
	}
	if length < 0 {
		return "", &errs.OutOfRangeError{Value: int64(length), Min: 0, Max: format.MaxStringBytes}
	}
	if length == 0 {
		return "", nil
	}

	buf := make([]byte, length)
	if err := ReadExact(r, buf); err != nil {
		return "", err
	}

	return string(buf), nil
}

// WriteString writes a TAG_String payload. The encoded byte length of s
// must not exceed format.MaxStringBytes.
func WriteString(w io.Writer, s string) error {
	if len(s) > format.MaxStringBytes {
		return &errs.OutOfRangeError{Value: int64(len(s)), Min: 0, Max: format.MaxStringBytes}
	}
	if err := WriteInt16(w, int16(len(s))); err != nil {
		return err
	}

	_, err := io.WriteString(w, s)

	return err
}

// ReadTagName reads a named-tag header: a 1-byte type code, a 2-byte signed
// name length, and the UTF-8 name bytes. The type code is not validated;
// the caller decides whether TagEnd or an unknown code is acceptable.
func ReadTagName(r io.Reader) (format.TagType, string, error) {
	t, err := ReadInt8(r)
	if err != nil {
		return 0, "", err
	}

	name, err := ReadString(r)
	if err != nil {
		return 0, "", err
	}

	return format.TagType(t), name, nil
}

// ReadExpectedTagName reads a named-tag header and asserts its type code.
func ReadExpectedTagName(r io.Reader, expected format.TagType) (string, error) {
	t, name, err := ReadTagName(r)
	if err != nil {
		return "", err
	}
	if t != expected {
		return "", &errs.WrongTagError{Expected: expected, Actual: t}
	}

	return name, nil
}

// WriteTagName writes a named-tag header.
func WriteTagName(w io.Writer, t format.TagType, name string) error {
	if err := WriteInt8(w, int8(t)); err != nil {
		return err
	}

	return WriteString(w, name)
}

// WriteEnd writes a single TAG_End type code byte, terminating a
// TAG_Compound body.
func WriteEnd(w io.Writer) error {
	return WriteInt8(w, int8(format.TagEnd))
}

// ReadListHeader reads a TAG_List header: a 1-byte element type code and a
// 4-byte signed length. Fails on unknown element types and negative lengths.
func ReadListHeader(r io.Reader) (format.TagType, int, error) {
	t, err := ReadInt8(r)
	if err != nil {
		return 0, 0, err
	}
	elem := format.TagType(t)
	if !elem.IsValid() {
		return 0, 0, &errs.UnknownTagTypeError{Type: elem}
	}

	length, err := ReadInt32(r)
	if err != nil {
		return 0, 0, err
	}
	if length < 0 {
		return 0, 0, &errs.OutOfRangeError{Value: int64(length), Min: 0, Max: format.MaxLength}
	}

	return elem, int(length), nil
}

// WriteListHeader writes a TAG_List header.
func WriteListHeader(w io.Writer, elem format.TagType, length int) error {
	if err := WriteInt8(w, int8(elem)); err != nil {
		return err
	}

	return WriteInt32(w, int32(length))
}

// ReadArrayHeader reads a TAG_Byte_Array or TAG_Int_Array length field.
// The length counts payload units (bytes and ints, respectively).
func ReadArrayHeader(r io.Reader) (int, error) {
	length, err := ReadInt32(r)
	if err != nil {
		return 0, err
	}
	if length < 0 {
		return 0, &errs.OutOfRangeError{Value: int64(length), Min: 0, Max: format.MaxLength}
	}

	return int(length), nil
}

// WriteArrayHeader writes a TAG_Byte_Array or TAG_Int_Array length field.
func WriteArrayHeader(w io.Writer, length int) error {
	return WriteInt32(w, int32(length))
}
