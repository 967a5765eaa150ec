// Package format defines the NBT tag type codes, wire format limits and
// compression mode identifiers shared by every layer of the library.
package format

import "fmt"

type (
	TagType         uint8
	CompressionType uint8
)

// Tag type codes as defined by the NBT specification.
//
// TagEnd is a sentinel: it carries no payload, terminates a TAG_Compound
// body, and is the element type of an empty TAG_List.
const (
	TagEnd       TagType = 0  // TagEnd terminates a TAG_Compound and types empty lists.
	TagByte      TagType = 1  // TagByte stores a 1-byte signed integer.
	TagShort     TagType = 2  // TagShort stores a 2-byte big-endian signed integer.
	TagInt       TagType = 3  // TagInt stores a 4-byte big-endian signed integer.
	TagLong      TagType = 4  // TagLong stores an 8-byte big-endian signed integer.
	TagFloat     TagType = 5  // TagFloat stores a big-endian IEEE-754 binary32.
	TagDouble    TagType = 6  // TagDouble stores a big-endian IEEE-754 binary64.
	TagByteArray TagType = 7  // TagByteArray stores a 4-byte length followed by raw bytes.
	TagString    TagType = 8  // TagString stores a 2-byte byte-length followed by UTF-8 bytes.
	TagList      TagType = 9  // TagList stores an element type, a 4-byte length, and bare payloads.
	TagCompound  TagType = 10 // TagCompound stores named-tag pairs terminated by TagEnd.
	TagIntArray  TagType = 11 // TagIntArray stores a 4-byte length followed by 4-byte signed integers.

	// TagCount is the number of tag types supported by this library.
	TagCount = 12
)

// Wire format limits and parser chunk sizes.
const (
	// MaxStringBytes is the maximum UTF-8 encoded length of a TAG_String
	// or tag name. The wire format stores it in a 2-byte signed field.
	MaxStringBytes = 32767

	// MaxLength is the maximum declared length of a TAG_List,
	// TAG_Byte_Array, or TAG_Int_Array. The wire format stores it in a
	// 4-byte signed field.
	MaxLength = 2147483647

	// ByteChunkSize is the largest byte slice the push parser delivers in
	// a single Bytes callback.
	ByteChunkSize = 4096

	// IntChunkSize is the largest int32 slice the push parser delivers in
	// a single Ints callback.
	IntChunkSize = 1024
)

// Compression modes for NBT files. Gzip is the Minecraft convention for
// standalone .nbt and level.dat files; Zlib is used for chunk payloads
// inside region files. LZ4 and Zstd are offered as extensions.
const (
	CompressionNone CompressionType = 0x1 // CompressionNone stores raw NBT bytes.
	CompressionGzip CompressionType = 0x2 // CompressionGzip wraps the document in a gzip stream.
	CompressionZlib CompressionType = 0x3 // CompressionZlib wraps the document in a zlib stream.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 wraps the document in an LZ4 frame.
	CompressionZstd CompressionType = 0x5 // CompressionZstd wraps the document in a Zstandard frame.
)

var tagNames = [TagCount]string{
	"TAG_End",
	"TAG_Byte",
	"TAG_Short",
	"TAG_Int",
	"TAG_Long",
	"TAG_Float",
	"TAG_Double",
	"TAG_Byte_Array",
	"TAG_String",
	"TAG_List",
	"TAG_Compound",
	"TAG_Int_Array",
}

// IsValid reports whether t is one of the 12 tag types defined by the NBT
// specification. TagEnd is valid; whether it is permitted depends on context.
func (t TagType) IsValid() bool {
	return t < TagCount
}

func (t TagType) String() string {
	if t < TagCount {
		return tagNames[t]
	}

	return fmt.Sprintf("Unknown (%d)", uint8(t))
}

// Describe returns the tag's name together with its numeric code,
// e.g. "TAG_Compound (10)". Used in error messages.
func (t TagType) Describe() string {
	if t < TagCount {
		return fmt.Sprintf("%s (%d)", tagNames[t], uint8(t))
	}

	return fmt.Sprintf("Unknown (%d)", uint8(t))
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionGzip:
		return "Gzip"
	case CompressionZlib:
		return "Zlib"
	case CompressionLZ4:
		return "LZ4"
	case CompressionZstd:
		return "Zstd"
	default:
		return "Unknown"
	}
}
