package tag

import "bytes"

// Equal reports whether two tags are deeply equal: same tag type, same
// value, and for containers the same entries in the same order.
//
// Compound equality is order-sensitive because entry order is part of the
// encoded form. Two documents additionally compare root names; a document
// never equals a plain compound.
func Equal(a, b Tag) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	switch x := a.(type) {
	case Byte:
		y, ok := b.(Byte)
		return ok && x == y
	case Short:
		y, ok := b.(Short)
		return ok && x == y
	case Int:
		y, ok := b.(Int)
		return ok && x == y
	case Long:
		y, ok := b.(Long)
		return ok && x == y
	case Float:
		y, ok := b.(Float)
		return ok && x == y
	case Double:
		y, ok := b.(Double)
		return ok && x == y
	case ByteArray:
		y, ok := b.(ByteArray)
		return ok && bytes.Equal(x, y)
	case String:
		y, ok := b.(String)
		return ok && x == y
	case *List:
		y, ok := b.(*List)
		return ok && equalLists(x, y)
	case *Compound:
		y, ok := b.(*Compound)
		return ok && equalCompounds(x, y)
	case *Document:
		y, ok := b.(*Document)
		return ok && x.name == y.name && equalCompounds(&x.Compound, &y.Compound)
	case IntArray:
		y, ok := b.(IntArray)
		return ok && equalInt32s(x, y)
	default:
		return false
	}
}

func equalLists(a, b *List) bool {
	if a.elem != b.elem || len(a.items) != len(b.items) {
		return false
	}

	for i, t := range a.items {
		if !Equal(t, b.items[i]) {
			return false
		}
	}

	return true
}

func equalCompounds(a, b *Compound) bool {
	if len(a.entries) != len(b.entries) {
		return false
	}

	for i, e := range a.entries {
		if e.name != b.entries[i].name || !Equal(e.tag, b.entries[i].tag) {
			return false
		}
	}

	return true
}

func equalInt32s(a, b []int32) bool {
	if len(a) != len(b) {
		return false
	}

	for i, v := range a {
		if v != b[i] {
			return false
		}
	}

	return true
}
