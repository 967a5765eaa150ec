package parse_test

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theJ8910/jnbt/errs"
	"github.com/theJ8910/jnbt/format"
	"github.com/theJ8910/jnbt/parse"
	"github.com/theJ8910/jnbt/tag"
)

// recordingHandler appends one event string per callback.
type recordingHandler struct {
	parse.BaseHandler

	events []string
}

func (h *recordingHandler) record(format string, args ...any) error {
	h.events = append(h.events, fmt.Sprintf(format, args...))
	return nil
}

func (h *recordingHandler) Name(typ format.TagType, name string) error {
	return h.record("name %s %q", typ, name)
}
func (h *recordingHandler) Start() error { return h.record("start") }
func (h *recordingHandler) End() error   { return h.record("end") }

func (h *recordingHandler) Byte(v int8) error     { return h.record("byte %d", v) }
func (h *recordingHandler) Short(v int16) error   { return h.record("short %d", v) }
func (h *recordingHandler) Int(v int32) error     { return h.record("int %d", v) }
func (h *recordingHandler) Long(v int64) error    { return h.record("long %d", v) }
func (h *recordingHandler) Float(v float32) error { return h.record("float %g", v) }
func (h *recordingHandler) String(s string) error { return h.record("string %q", s) }

func (h *recordingHandler) StartByteArray(length int32) error {
	return h.record("startByteArray %d", length)
}
func (h *recordingHandler) Bytes(chunk []byte) error { return h.record("bytes %d", len(chunk)) }
func (h *recordingHandler) EndByteArray() error      { return h.record("endByteArray") }

func (h *recordingHandler) StartIntArray(length int32) error {
	return h.record("startIntArray %d", length)
}
func (h *recordingHandler) Ints(chunk []int32) error { return h.record("ints %d", len(chunk)) }
func (h *recordingHandler) EndIntArray() error       { return h.record("endIntArray") }

func (h *recordingHandler) StartList(elem format.TagType, length int32) error {
	return h.record("startList %s %d", elem, length)
}
func (h *recordingHandler) EndList() error { return h.record("endList") }

func (h *recordingHandler) StartCompound() error { return h.record("startCompound") }
func (h *recordingHandler) EndCompound() error   { return h.record("endCompound") }

// encode builds the uncompressed bytes of a small document.
func encode(t *testing.T, build func(d *tag.Document)) []byte {
	t.Helper()

	d := tag.NewDocument()
	require.NoError(t, d.SetName("root"))
	build(d)

	var buf bytes.Buffer
	require.NoError(t, d.Encode(&buf))

	return buf.Bytes()
}

func TestParseEventSequence(t *testing.T) {
	data := encode(t, func(d *tag.Document) {
		require.NoError(t, d.PutByte("b", -3))
		require.NoError(t, d.PutString("s", "hi"))

		floats, err := d.GetOrCreateList("floats")
		require.NoError(t, err)
		require.NoError(t, floats.AppendFloat(1.5))
		require.NoError(t, floats.AppendFloat(-2.5))

		child, err := d.GetOrCreateCompound("child")
		require.NoError(t, err)
		require.NoError(t, child.PutInt("x", 7))
	})

	h := &recordingHandler{}
	complete, err := parse.Parse(bytes.NewReader(data), h)
	require.NoError(t, err)
	assert.True(t, complete)

	want := []string{
		`name TAG_Compound "root"`,
		`start`,
		`startCompound`,
		`name TAG_Byte "b"`,
		`byte -3`,
		`name TAG_String "s"`,
		`string "hi"`,
		`name TAG_List "floats"`,
		`startList TAG_Float 2`,
		`float 1.5`,
		`float -2.5`,
		`endList`,
		`name TAG_Compound "child"`,
		`startCompound`,
		`name TAG_Int "x"`,
		`int 7`,
		`endCompound`,
		`endCompound`,
		`end`,
	}
	assert.Equal(t, want, h.events)
}

func TestParseChunksArrays(t *testing.T) {
	data := encode(t, func(d *tag.Document) {
		require.NoError(t, d.PutByteArray("bytes", make([]byte, 10000)))
		require.NoError(t, d.PutIntArray("ints", make([]int32, 2500)))
	})

	h := &recordingHandler{}
	complete, err := parse.Parse(bytes.NewReader(data), h)
	require.NoError(t, err)
	assert.True(t, complete)

	assert.Subset(t, h.events, []string{
		"startByteArray 10000",
		"bytes 4096",
		"bytes 1808",
		"endByteArray",
		"startIntArray 2500",
		"ints 1024",
		"ints 452",
		"endIntArray",
	})

	var byteChunks, intChunks []string
	for _, e := range h.events {
		if strings.HasPrefix(e, "bytes ") {
			byteChunks = append(byteChunks, e)
		}
		if strings.HasPrefix(e, "ints ") {
			intChunks = append(intChunks, e)
		}
	}
	assert.Equal(t, []string{"bytes 4096", "bytes 4096", "bytes 1808"}, byteChunks)
	assert.Equal(t, []string{"ints 1024", "ints 1024", "ints 452"}, intChunks)
}

// stopAfterString stops parsing as soon as one string has been seen.
type stopAfterString struct {
	parse.BaseHandler

	seen []string
}

func (h *stopAfterString) String(s string) error {
	h.seen = append(h.seen, s)
	return parse.Stop
}

func TestParseEarlyStop(t *testing.T) {
	data := encode(t, func(d *tag.Document) {
		require.NoError(t, d.PutString("first", "a"))
		require.NoError(t, d.PutString("second", "b"))
	})

	h := &stopAfterString{}
	complete, err := parse.Parse(bytes.NewReader(data), h)
	require.NoError(t, err)
	assert.False(t, complete)
	assert.Equal(t, []string{"a"}, h.seen)
}

// failingHandler fails on the first int.
type failingHandler struct {
	parse.BaseHandler
}

var errHandler = errors.New("handler failed")

func (failingHandler) Int(int32) error { return errHandler }

func TestParseHandlerError(t *testing.T) {
	data := encode(t, func(d *tag.Document) {
		require.NoError(t, d.PutInt("x", 1))
	})

	complete, err := parse.Parse(bytes.NewReader(data), failingHandler{})
	require.ErrorIs(t, err, errHandler)
	assert.False(t, complete)
}

func TestParseRootMustBeCompound(t *testing.T) {
	// TAG_Byte("x"): 1 at the root.
	data := []byte{0x01, 0x00, 0x01, 'x', 0x01}

	complete, err := parse.Parse(bytes.NewReader(data), &recordingHandler{})
	require.ErrorIs(t, err, errs.ErrFormat)
	assert.False(t, complete)
}

func TestParseTruncated(t *testing.T) {
	data := encode(t, func(d *tag.Document) {
		require.NoError(t, d.PutLong("x", 1))
	})

	complete, err := parse.Parse(bytes.NewReader(data[:len(data)-3]), &recordingHandler{})
	require.ErrorIs(t, err, errs.ErrUnexpectedEOF)
	assert.False(t, complete)
}

func TestPrintHandler(t *testing.T) {
	data := encode(t, func(d *tag.Document) {
		require.NoError(t, d.PutByte("b", -3))

		names, err := d.GetOrCreateList("names")
		require.NoError(t, err)
		require.NoError(t, names.AppendString("one"))

		require.NoError(t, d.PutByteArray("blob", []byte{1, 2, 3}))
	})

	var sb strings.Builder
	complete, err := parse.Parse(bytes.NewReader(data), parse.NewPrintHandler(&sb))
	require.NoError(t, err)
	assert.True(t, complete)

	want := strings.Join([]string{
		`TAG_Compound("root"): {`,
		`    TAG_Byte("b"): -3`,
		`    TAG_List("names"): 1 TAG_String [`,
		`        TAG_String: one`,
		`    ]`,
		`    TAG_Byte_Array("blob"): [3 bytes]`,
		`}`,
		``,
	}, "\n")
	assert.Equal(t, want, sb.String())
}
