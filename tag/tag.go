// Package tag provides the DOM-style interface for reading, writing,
// building, modifying and inspecting NBT documents.
//
// The twelve NBT tag kinds are represented as a closed set of concrete
// types implementing the Tag interface: the scalar types Byte, Short, Int,
// Long, Float and Double, the sequence types ByteArray, String and
// IntArray, and the container types List and Compound. Document is a named
// root Compound bound to an optional write target.
//
// Tags are constructed either by decoding bytes (Decode, DecodePayload) or
// by explicit build calls. The checked constructors (NewByte, NewString,
// ...) validate range and length for values of unknown provenance; direct
// conversions (Byte(5), String("x")) are available when the value is known
// to be in range.
//
// Container invariants hold at every mutation: a List is homogeneous and
// its element type resets to TagEnd when it becomes empty; a Compound never
// holds two entries with the same name and preserves insertion order.
package tag

import (
	"math"

	"github.com/theJ8910/jnbt/errs"
	"github.com/theJ8910/jnbt/format"
)

// Tag is one typed value node in an NBT tree.
//
// The set of implementations is closed: Byte, Short, Int, Long, Float,
// Double, ByteArray, String, *List, *Compound, IntArray and *Document.
// Exhaustive switches over these types replace dynamic dispatch.
type Tag interface {
	// Type returns the tag's NBT type code.
	Type() format.TagType

	// isTag closes the implementation set.
	isTag()
}

type (
	// Byte represents a TAG_Byte, a 1-byte signed integer.
	Byte int8
	// Short represents a TAG_Short, a 2-byte signed integer.
	Short int16
	// Int represents a TAG_Int, a 4-byte signed integer.
	Int int32
	// Long represents a TAG_Long, an 8-byte signed integer.
	Long int64
	// Float represents a TAG_Float, an IEEE-754 binary32.
	Float float32
	// Double represents a TAG_Double, an IEEE-754 binary64.
	Double float64
	// ByteArray represents a TAG_Byte_Array. The NBT specification leaves
	// the format of the contained bytes unspecified.
	ByteArray []byte
	// String represents a TAG_String. Its UTF-8 encoded length must not
	// exceed format.MaxStringBytes; NewString enforces this.
	String string
	// IntArray represents a TAG_Int_Array of signed 4-byte integers. The
	// in-memory representation is native-endian; the codec byte-swaps at
	// the wire boundary.
	IntArray []int32
)

func (Byte) Type() format.TagType      { return format.TagByte }
func (Short) Type() format.TagType     { return format.TagShort }
func (Int) Type() format.TagType       { return format.TagInt }
func (Long) Type() format.TagType      { return format.TagLong }
func (Float) Type() format.TagType     { return format.TagFloat }
func (Double) Type() format.TagType    { return format.TagDouble }
func (ByteArray) Type() format.TagType { return format.TagByteArray }
func (String) Type() format.TagType    { return format.TagString }
func (IntArray) Type() format.TagType  { return format.TagIntArray }

func (Byte) isTag()      {}
func (Short) isTag()     {}
func (Int) isTag()       {}
func (Long) isTag()      {}
func (Float) isTag()     {}
func (Double) isTag()    {}
func (ByteArray) isTag() {}
func (String) isTag()    {}
func (IntArray) isTag()  {}

// NewByte validates that v fits a 1-byte signed integer and returns the tag.
func NewByte(v int64) (Byte, error) {
	if v < math.MinInt8 || v > math.MaxInt8 {
		return 0, &errs.OutOfRangeError{Value: v, Min: math.MinInt8, Max: math.MaxInt8}
	}

	return Byte(v), nil
}

// NewShort validates that v fits a 2-byte signed integer and returns the tag.
func NewShort(v int64) (Short, error) {
	if v < math.MinInt16 || v > math.MaxInt16 {
		return 0, &errs.OutOfRangeError{Value: v, Min: math.MinInt16, Max: math.MaxInt16}
	}

	return Short(v), nil
}

// NewInt validates that v fits a 4-byte signed integer and returns the tag.
func NewInt(v int64) (Int, error) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, &errs.OutOfRangeError{Value: v, Min: math.MinInt32, Max: math.MaxInt32}
	}

	return Int(v), nil
}

// NewLong returns v as a TAG_Long. Every int64 is representable; the
// constructor exists for symmetry with the other integral tags.
func NewLong(v int64) (Long, error) {
	return Long(v), nil
}

// NewString validates that the UTF-8 encoded length of s does not exceed
// format.MaxStringBytes and returns the tag.
func NewString(s string) (String, error) {
	if len(s) > format.MaxStringBytes {
		return "", &errs.OutOfRangeError{Value: int64(len(s)), Min: 0, Max: format.MaxStringBytes}
	}

	return String(s), nil
}
