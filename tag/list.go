package tag

import (
	"fmt"
	"iter"

	"github.com/theJ8910/jnbt/errs"
	"github.com/theJ8910/jnbt/format"
)

// List represents a TAG_List, a homogeneous ordered sequence of unnamed tags.
//
// The element type is tracked by the list itself: the first element appended
// to an empty list fixes it, and it resets to format.TagEnd when the list
// becomes empty again. Mutations that would break homogeneity fail with an
// error wrapping errs.ErrFormat.
//
// The zero value is an empty list ready for use.
type List struct {
	elem  format.TagType
	items []Tag
}

var _ Tag = (*List)(nil)

// NewList creates a list containing the given elements.
//
// All elements must share one tag type; otherwise NewList returns a
// WrongTagError against the type of the first element.
func NewList(elems ...Tag) (*List, error) {
	l := &List{}
	if err := l.Append(elems...); err != nil {
		return nil, err
	}

	return l, nil
}

// newDecodedList creates an empty list carrying the element type declared
// on the wire. Decoding preserves the declared type of an empty list so
// that re-encoding reproduces the input bytes.
func newDecodedList(elem format.TagType, capacity int) *List {
	return &List{elem: elem, items: make([]Tag, 0, capacity)}
}

// Type returns format.TagList.
func (l *List) Type() format.TagType { return format.TagList }

func (l *List) isTag() {}

// Elem returns the element type of the list, format.TagEnd when empty.
func (l *List) Elem() format.TagType { return l.elem }

// Len returns the number of elements in the list.
func (l *List) Len() int { return len(l.items) }

// At returns the element at index i. It panics if i is out of bounds,
// matching slice indexing.
func (l *List) At(i int) Tag { return l.items[i] }

// All returns an iterator over (index, element) pairs in list order.
func (l *List) All() iter.Seq2[int, Tag] {
	return func(yield func(int, Tag) bool) {
		for i, t := range l.items {
			if !yield(i, t) {
				return
			}
		}
	}
}

// Append appends elements to the end of the list.
//
// Appending to an empty list fixes the list's element type to the type of
// the first element; every element must match it. A nil element panics.
// All elements are validated before any is appended, so a failed Append
// leaves the list unchanged.
func (l *List) Append(elems ...Tag) error {
	if len(elems) == 0 {
		return nil
	}

	elemType := l.elem
	if len(l.items) == 0 && elemType == format.TagEnd {
		if elems[0] == nil {
			panic("nbt: nil tag")
		}
		elemType = elems[0].Type()
	}

	for _, t := range elems {
		if t == nil {
			panic("nbt: nil tag")
		}
		if t.Type() != elemType {
			return &errs.WrongTagError{Expected: elemType, Actual: t.Type()}
		}
	}

	l.items = append(l.items, elems...)
	l.elem = elemType

	return nil
}

// Insert inserts t at index i, shifting later elements right. i may equal
// Len(), in which case Insert behaves like Append.
func (l *List) Insert(i int, t Tag) error {
	if i < 0 || i > len(l.items) {
		return &errs.OutOfRangeError{Value: int64(i), Min: 0, Max: int64(len(l.items))}
	}

	if err := l.checkElem(t); err != nil {
		return err
	}

	l.items = append(l.items, nil)
	copy(l.items[i+1:], l.items[i:])
	l.items[i] = t

	return nil
}

// Set replaces the element at index i. The replacement must match the
// list's element type even when it is the only element.
func (l *List) Set(i int, t Tag) error {
	if i < 0 || i >= len(l.items) {
		return &errs.OutOfRangeError{Value: int64(i), Min: 0, Max: int64(len(l.items)) - 1}
	}

	if err := l.checkElem(t); err != nil {
		return err
	}

	l.items[i] = t

	return nil
}

// SetRange replaces the elements in [i, j) with elems, growing or shrinking
// the list as needed.
//
// When the range covers the entire list, the replacement may carry any
// single element type and the list adopts it. Otherwise every replacement
// element must match the current element type.
func (l *List) SetRange(i, j int, elems []Tag) error {
	if i < 0 || i > len(l.items) {
		return &errs.OutOfRangeError{Value: int64(i), Min: 0, Max: int64(len(l.items))}
	}
	if j < i || j > len(l.items) {
		return &errs.OutOfRangeError{Value: int64(j), Min: int64(i), Max: int64(len(l.items))}
	}

	replaceAll := i == 0 && j == len(l.items)

	elemType := l.elem
	if replaceAll {
		elemType = format.TagEnd
	}
	for _, t := range elems {
		if t == nil {
			panic("nbt: nil tag")
		}
		if elemType == format.TagEnd {
			elemType = t.Type()
		} else if t.Type() != elemType {
			return &errs.WrongTagError{Expected: elemType, Actual: t.Type()}
		}
	}

	items := make([]Tag, 0, i+len(elems)+(len(l.items)-j))
	items = append(items, l.items[:i]...)
	items = append(items, elems...)
	items = append(items, l.items[j:]...)

	l.items = items
	if len(l.items) == 0 {
		l.elem = format.TagEnd
	} else {
		l.elem = elemType
	}

	return nil
}

// Delete removes the element at index i, shifting later elements left. The
// element type resets to format.TagEnd when the last element is removed.
func (l *List) Delete(i int) error {
	if i < 0 || i >= len(l.items) {
		return &errs.OutOfRangeError{Value: int64(i), Min: 0, Max: int64(len(l.items)) - 1}
	}

	copy(l.items[i:], l.items[i+1:])
	l.items[len(l.items)-1] = nil
	l.items = l.items[:len(l.items)-1]

	if len(l.items) == 0 {
		l.elem = format.TagEnd
	}

	return nil
}

// Clear removes all elements and resets the element type to format.TagEnd.
func (l *List) Clear() {
	l.items = nil
	l.elem = format.TagEnd
}

// AppendByte appends v as a TAG_Byte.
func (l *List) AppendByte(v int8) error { return l.Append(Byte(v)) }

// AppendShort appends v as a TAG_Short.
func (l *List) AppendShort(v int16) error { return l.Append(Short(v)) }

// AppendInt appends v as a TAG_Int.
func (l *List) AppendInt(v int32) error { return l.Append(Int(v)) }

// AppendLong appends v as a TAG_Long.
func (l *List) AppendLong(v int64) error { return l.Append(Long(v)) }

// AppendFloat appends v as a TAG_Float.
func (l *List) AppendFloat(v float32) error { return l.Append(Float(v)) }

// AppendDouble appends v as a TAG_Double.
func (l *List) AppendDouble(v float64) error { return l.Append(Double(v)) }

// AppendString appends s as a TAG_String after validating its length.
func (l *List) AppendString(s string) error {
	t, err := NewString(s)
	if err != nil {
		return err
	}

	return l.Append(t)
}

// AppendByteArray appends v as a TAG_Byte_Array. The slice is aliased, not
// copied.
func (l *List) AppendByteArray(v []byte) error { return l.Append(ByteArray(v)) }

// AppendIntArray appends v as a TAG_Int_Array. The slice is aliased, not
// copied.
func (l *List) AppendIntArray(v []int32) error { return l.Append(IntArray(v)) }

// Lookup walks the given path starting from this list. See the package
// level Lookup for path semantics.
func (l *List) Lookup(path ...any) Tag { return Lookup(l, path...) }

func (l *List) checkElem(t Tag) error {
	if t == nil {
		panic("nbt: nil tag")
	}

	if len(l.items) == 0 && l.elem == format.TagEnd {
		l.elem = t.Type()
		return nil
	}

	if t.Type() != l.elem {
		return &errs.WrongTagError{Expected: l.elem, Actual: t.Type()}
	}

	return nil
}

// elemNoun names the list contents for pretty-printing, e.g. "2 TAG_Floats".
func (l *List) elemNoun() string {
	if len(l.items) == 0 {
		return "0 entries"
	}
	if len(l.items) == 1 {
		return fmt.Sprintf("1 %s", l.elem.String())
	}

	return fmt.Sprintf("%d %ss", len(l.items), l.elem.String())
}
