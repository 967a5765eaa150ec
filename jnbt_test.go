package jnbt_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theJ8910/jnbt"
	"github.com/theJ8910/jnbt/errs"
	"github.com/theJ8910/jnbt/format"
	"github.com/theJ8910/jnbt/parse"
	"github.com/theJ8910/jnbt/tag"
)

// writeSampleFile streams a small document to path and returns its tree
// equivalent.
func writeSampleFile(t *testing.T, path string, opts ...jnbt.Option) *tag.Document {
	t.Helper()

	w, err := jnbt.CreateWriter(path, opts...)
	require.NoError(t, err)

	require.NoError(t, w.Start("root"))
	require.NoError(t, w.Byte("byte", -3))
	require.NoError(t, w.String("string", "hi"))
	require.NoError(t, w.StartList("list2", format.TagFloat, 2))
	require.NoError(t, w.FloatElem(1.5))
	require.NoError(t, w.FloatElem(-2.5))
	require.NoError(t, w.EndList())
	require.NoError(t, w.End())
	require.NoError(t, w.Close())

	d := tag.NewDocument()
	require.NoError(t, d.SetName("root"))
	require.NoError(t, d.PutByte("byte", -3))
	require.NoError(t, d.PutString("string", "hi"))
	floats, err := d.GetOrCreateList("list2")
	require.NoError(t, err)
	require.NoError(t, floats.AppendFloat(1.5))
	require.NoError(t, floats.AppendFloat(-2.5))

	return d
}

func TestWriteThenRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.nbt")
	want := writeSampleFile(t, path)

	doc, err := jnbt.Read(path)
	require.NoError(t, err)
	assert.True(t, tag.Equal(want, doc))

	// Reading binds the document to its source.
	target, compression := doc.WriteArguments()
	assert.Equal(t, path, target)
	assert.Equal(t, jnbt.DefaultCompression, compression)
}

func TestWriteThenReadAllCompressions(t *testing.T) {
	for _, compression := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionGzip,
		format.CompressionZlib,
		format.CompressionLZ4,
		format.CompressionZstd,
	} {
		t.Run(compression.String(), func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "sample.nbt")
			want := writeSampleFile(t, path, jnbt.WithCompression(compression))

			doc, err := jnbt.Read(path, jnbt.WithCompression(compression))
			require.NoError(t, err)
			assert.True(t, tag.Equal(want, doc))
		})
	}
}

func TestReadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.nbt")

	_, err := jnbt.Read(path)
	require.Error(t, err)
}

func TestReadWithCreate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fresh.nbt")

	doc, err := jnbt.Read(path, jnbt.WithCreate())
	require.NoError(t, err)
	assert.Equal(t, 0, doc.Len())

	// The fresh document is already bound, so Write persists it.
	require.NoError(t, doc.PutInt("x", 1))
	require.NoError(t, doc.Write())

	again, err := jnbt.Read(path)
	require.NoError(t, err)
	assert.True(t, tag.Equal(doc, again))
}

func TestDocumentRewrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.nbt")
	writeSampleFile(t, path)

	doc, err := jnbt.Read(path)
	require.NoError(t, err)
	require.NoError(t, doc.PutInt("added", 99))
	require.NoError(t, doc.Write())

	again, err := jnbt.Read(path)
	require.NoError(t, err)
	assert.Equal(t, tag.Int(99), again.Lookup("added"))
	assert.Equal(t, tag.Byte(-3), again.Lookup("byte"))
}

func TestReadFrom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.nbt")
	want := writeSampleFile(t, path, jnbt.WithCompression(format.CompressionNone))

	var buf bytes.Buffer
	require.NoError(t, want.Encode(&buf))

	doc, err := jnbt.ReadFrom(&buf, jnbt.WithCompression(format.CompressionNone))
	require.NoError(t, err)
	assert.True(t, tag.Equal(want, doc))

	target, _ := doc.WriteArguments()
	assert.Empty(t, target)
}

// stringCollector gathers every string in the document.
type stringCollector struct {
	parse.BaseHandler

	strings []string
}

func (h *stringCollector) String(s string) error {
	h.strings = append(h.strings, s)
	return nil
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.nbt")
	writeSampleFile(t, path)

	h := &stringCollector{}
	complete, err := jnbt.ParseFile(path, h)
	require.NoError(t, err)
	assert.True(t, complete)
	assert.Equal(t, []string{"hi"}, h.strings)
}

// firstString stops at the first string seen.
type firstString struct {
	parse.BaseHandler

	value string
}

func (h *firstString) String(s string) error {
	h.value = s
	return parse.Stop
}

func TestParseEarlyStop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.nbt")
	writeSampleFile(t, path)

	h := &firstString{}
	complete, err := jnbt.ParseFile(path, h)
	require.NoError(t, err)
	assert.False(t, complete)
	assert.Equal(t, "hi", h.value)
}

func TestCreateWriterValidatesByDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.nbt")

	w, err := jnbt.CreateWriter(path)
	require.NoError(t, err)

	require.NoError(t, w.Start(""))
	require.NoError(t, w.Byte("a", 1))
	require.ErrorIs(t, w.Byte("a", 2), errs.ErrFormat)

	// Closing before End reports the incomplete document.
	require.ErrorIs(t, w.Close(), errs.ErrUsage)
}

func TestCreateWriterUnchecked(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.nbt")

	w, err := jnbt.CreateWriter(path, jnbt.WithUnchecked())
	require.NoError(t, err)

	require.NoError(t, w.Start(""))
	require.NoError(t, w.Byte("a", 1))
	require.NoError(t, w.End())
	require.NoError(t, w.Close())

	doc, err := jnbt.Read(path)
	require.NoError(t, err)
	assert.Equal(t, tag.Byte(1), doc.Lookup("a"))
}

func TestNewStreamWriterLeavesDestinationOpen(t *testing.T) {
	var buf bytes.Buffer

	w, err := jnbt.NewStreamWriter(&buf, jnbt.WithCompression(format.CompressionNone))
	require.NoError(t, err)
	require.NoError(t, w.Start(""))
	require.NoError(t, w.Int("x", 7))
	require.NoError(t, w.End())
	require.NoError(t, w.Close())

	doc, err := jnbt.ReadFrom(&buf, jnbt.WithCompression(format.CompressionNone))
	require.NoError(t, err)
	assert.Equal(t, tag.Int(7), doc.Lookup("x"))
}

func TestWithCompressionRejectsUnknown(t *testing.T) {
	_, err := jnbt.Read("irrelevant", jnbt.WithCompression(format.CompressionType(99)))
	require.ErrorIs(t, err, errs.ErrUsage)
}
