package wire

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/theJ8910/jnbt/errs"
	"github.com/theJ8910/jnbt/format"
)

func TestScalarRoundTrip(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteInt8(&buf, -3))
	require.NoError(t, WriteInt16(&buf, -500))
	require.NoError(t, WriteInt32(&buf, -1234567))
	require.NoError(t, WriteInt64(&buf, -12345678910111213))
	require.NoError(t, WriteFloat32(&buf, 1.5))
	require.NoError(t, WriteFloat64(&buf, -2.25))

	b, err := ReadInt8(&buf)
	require.NoError(t, err)
	require.Equal(t, int8(-3), b)

	s, err := ReadInt16(&buf)
	require.NoError(t, err)
	require.Equal(t, int16(-500), s)

	i, err := ReadInt32(&buf)
	require.NoError(t, err)
	require.Equal(t, int32(-1234567), i)

	l, err := ReadInt64(&buf)
	require.NoError(t, err)
	require.Equal(t, int64(-12345678910111213), l)

	f, err := ReadFloat32(&buf)
	require.NoError(t, err)
	require.Equal(t, float32(1.5), f)

	d, err := ReadFloat64(&buf)
	require.NoError(t, err)
	require.Equal(t, -2.25, d)

	require.Equal(t, 0, buf.Len())
}

func TestScalarWireLayout(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteInt32(&buf, 0x01020304))
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, buf.Bytes())

	buf.Reset()
	require.NoError(t, WriteInt16(&buf, -1))
	require.Equal(t, []byte{0xff, 0xff}, buf.Bytes())

	buf.Reset()
	require.NoError(t, WriteFloat32(&buf, 1.5))
	require.Equal(t, []byte{0x3f, 0xc0, 0x00, 0x00}, buf.Bytes())
}

func TestReadExactShortRead(t *testing.T) {
	r := bytes.NewReader([]byte{1, 2})
	buf := make([]byte, 4)
	err := ReadExact(r, buf)
	require.ErrorIs(t, err, errs.ErrUnexpectedEOF)
}

func TestStringRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteString(&buf, "hi"))
	require.Equal(t, []byte{0x00, 0x02, 'h', 'i'}, buf.Bytes())

	s, err := ReadString(&buf)
	require.NoError(t, err)
	require.Equal(t, "hi", s)
}

func TestStringEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteString(&buf, ""))
	require.Equal(t, []byte{0x00, 0x00}, buf.Bytes())

	s, err := ReadString(&buf)
	require.NoError(t, err)
	require.Equal(t, "", s)
}

func TestWriteStringTooLong(t *testing.T) {
	var buf bytes.Buffer
	err := WriteString(&buf, strings.Repeat("a", format.MaxStringBytes+1))
	require.ErrorIs(t, err, errs.ErrOutOfRange)
	require.Equal(t, 0, buf.Len())
}

func TestReadStringNegativeLength(t *testing.T) {
	r := bytes.NewReader([]byte{0xff, 0xff})
	_, err := ReadString(r)
	require.ErrorIs(t, err, errs.ErrOutOfRange)
}

func TestTagNameRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTagName(&buf, format.TagByte, "count"))

	typ, name, err := ReadTagName(&buf)
	require.NoError(t, err)
	require.Equal(t, format.TagByte, typ)
	require.Equal(t, "count", name)
}

func TestReadExpectedTagName(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTagName(&buf, format.TagCompound, "root"))

	name, err := ReadExpectedTagName(&buf, format.TagCompound)
	require.NoError(t, err)
	require.Equal(t, "root", name)

	buf.Reset()
	require.NoError(t, WriteTagName(&buf, format.TagByte, "nope"))
	_, err = ReadExpectedTagName(&buf, format.TagCompound)

	var wrong *errs.WrongTagError
	require.ErrorAs(t, err, &wrong)
	require.Equal(t, format.TagCompound, wrong.Expected)
	require.Equal(t, format.TagByte, wrong.Actual)
}

func TestListHeaderRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteListHeader(&buf, format.TagFloat, 2))
	require.Equal(t, []byte{0x05, 0x00, 0x00, 0x00, 0x02}, buf.Bytes())

	elem, length, err := ReadListHeader(&buf)
	require.NoError(t, err)
	require.Equal(t, format.TagFloat, elem)
	require.Equal(t, 2, length)
}

func TestReadListHeaderInvalid(t *testing.T) {
	// Unknown element type
	r := bytes.NewReader([]byte{0x0c, 0x00, 0x00, 0x00, 0x00})
	_, _, err := ReadListHeader(r)
	require.ErrorIs(t, err, errs.ErrFormat)

	// Negative length
	r = bytes.NewReader([]byte{0x01, 0xff, 0xff, 0xff, 0xff})
	_, _, err = ReadListHeader(r)
	require.ErrorIs(t, err, errs.ErrOutOfRange)
}

func TestArrayHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteArrayHeader(&buf, 4))

	n, err := ReadArrayHeader(&buf)
	require.NoError(t, err)
	require.Equal(t, 4, n)

	r := bytes.NewReader([]byte{0x80, 0x00, 0x00, 0x00})
	_, err = ReadArrayHeader(r)
	require.ErrorIs(t, err, errs.ErrOutOfRange)
}

func TestInt32sWireLayout(t *testing.T) {
	var buf bytes.Buffer
	src := []int32{1, -2, 0x01020304}
	require.NoError(t, WriteInt32s(&buf, src))
	require.Equal(t, []byte{
		0x00, 0x00, 0x00, 0x01,
		0xff, 0xff, 0xff, 0xfe,
		0x01, 0x02, 0x03, 0x04,
	}, buf.Bytes())

	// The caller's slice is untouched by the byteswap staging.
	require.Equal(t, []int32{1, -2, 0x01020304}, src)

	v, err := ReadInt32s(&buf, 3)
	require.NoError(t, err)
	require.Equal(t, src, v)
}

func TestInt32sEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteInt32s(&buf, nil))
	require.Equal(t, 0, buf.Len())

	v, err := ReadInt32s(&buf, 0)
	require.NoError(t, err)
	require.Empty(t, v)
}

func TestReadInt32sTruncated(t *testing.T) {
	r := bytes.NewReader([]byte{0, 0, 0, 1, 0, 0})
	_, err := ReadInt32s(r, 2)
	require.ErrorIs(t, err, errs.ErrUnexpectedEOF)
}
