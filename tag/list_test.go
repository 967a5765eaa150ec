package tag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theJ8910/jnbt/errs"
	"github.com/theJ8910/jnbt/format"
)

func TestListHomogeneity(t *testing.T) {
	l := &List{}
	assert.Equal(t, format.TagEnd, l.Elem())

	require.NoError(t, l.Append(Float(1.5)))
	assert.Equal(t, format.TagFloat, l.Elem())

	err := l.Append(Int(1))
	require.ErrorIs(t, err, errs.ErrFormat)

	var wrong *errs.WrongTagError
	require.ErrorAs(t, err, &wrong)
	assert.Equal(t, format.TagFloat, wrong.Expected)
	assert.Equal(t, format.TagInt, wrong.Actual)
}

func TestListFailedAppendLeavesListUnchanged(t *testing.T) {
	l, err := NewList(Int(1))
	require.NoError(t, err)

	// The mismatch is detected before any element is appended.
	err = l.Append(Int(2), String("x"))
	require.ErrorIs(t, err, errs.ErrFormat)
	assert.Equal(t, 1, l.Len())
	assert.Equal(t, Int(1), l.At(0))
	assert.Equal(t, format.TagInt, l.Elem())

	// A mixed append to an empty list fails without fixing the element
	// type.
	empty := &List{}
	err = empty.Append(Float(1.5), Byte(2))
	require.ErrorIs(t, err, errs.ErrFormat)
	assert.Equal(t, 0, empty.Len())
	assert.Equal(t, format.TagEnd, empty.Elem())
}

func TestListElemResetsWhenEmpty(t *testing.T) {
	l, err := NewList(Float(1.5), Float(-2.5))
	require.NoError(t, err)
	assert.Equal(t, format.TagFloat, l.Elem())

	require.NoError(t, l.Delete(0))
	assert.Equal(t, format.TagFloat, l.Elem())

	require.NoError(t, l.Delete(0))
	assert.Equal(t, format.TagEnd, l.Elem())

	// An emptied list accepts a different element type.
	require.NoError(t, l.Append(String("x")))
	assert.Equal(t, format.TagString, l.Elem())
}

func TestListClear(t *testing.T) {
	l, err := NewList(Int(1), Int(2))
	require.NoError(t, err)

	l.Clear()
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, format.TagEnd, l.Elem())
}

func TestNewListMixedFails(t *testing.T) {
	_, err := NewList(Int(1), String("x"))
	require.ErrorIs(t, err, errs.ErrFormat)
}

func TestListInsertSetDelete(t *testing.T) {
	l, err := NewList(Int(1), Int(3))
	require.NoError(t, err)

	require.NoError(t, l.Insert(1, Int(2)))
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, Int(2), l.At(1))

	require.NoError(t, l.Set(0, Int(10)))
	assert.Equal(t, Int(10), l.At(0))

	// Set must keep the element type even for the sole replacement.
	err = l.Set(0, Long(10))
	require.ErrorIs(t, err, errs.ErrFormat)

	require.NoError(t, l.Delete(1))
	assert.Equal(t, Int(10), l.At(0))
	assert.Equal(t, Int(3), l.At(1))

	// Out of bounds indices are rejected.
	require.ErrorIs(t, l.Insert(5, Int(1)), errs.ErrOutOfRange)
	require.ErrorIs(t, l.Set(-1, Int(1)), errs.ErrOutOfRange)
	require.ErrorIs(t, l.Delete(2), errs.ErrOutOfRange)
}

func TestListSetRange(t *testing.T) {
	l, err := NewList(Int(1), Int(2), Int(3), Int(4))
	require.NoError(t, err)

	// Partial replacement keeps the element type.
	require.NoError(t, l.SetRange(1, 3, []Tag{Int(20)}))
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, Int(20), l.At(1))
	assert.Equal(t, Int(4), l.At(2))

	err = l.SetRange(0, 1, []Tag{String("x")})
	require.ErrorIs(t, err, errs.ErrFormat)

	// Whole-list replacement may change the element type.
	require.NoError(t, l.SetRange(0, l.Len(), []Tag{String("a"), String("b")}))
	assert.Equal(t, format.TagString, l.Elem())
	assert.Equal(t, 2, l.Len())

	// Whole-list replacement with nothing resets the element type.
	require.NoError(t, l.SetRange(0, l.Len(), nil))
	assert.Equal(t, format.TagEnd, l.Elem())
}

func TestListTypedAppenders(t *testing.T) {
	l := &List{}
	require.NoError(t, l.AppendString("one"))
	require.NoError(t, l.AppendString("two"))
	require.ErrorIs(t, l.AppendInt(3), errs.ErrFormat)

	assert.Equal(t, 2, l.Len())
	assert.Equal(t, String("one"), l.At(0))
}

func TestListAll(t *testing.T) {
	l, err := NewList(Int(10), Int(20), Int(30))
	require.NoError(t, err)

	var got []int32
	for i, e := range l.All() {
		got = append(got, int32(e.(Int)))
		if i == 1 {
			break
		}
	}
	assert.Equal(t, []int32{10, 20}, got)
}

func TestListNilTagPanics(t *testing.T) {
	l := &List{}
	assert.Panics(t, func() { _ = l.Append(nil) })
}
