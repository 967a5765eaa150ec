package tag

import (
	"iter"

	"github.com/theJ8910/jnbt/format"
)

// Compound represents a TAG_Compound, an ordered collection of uniquely
// named tags.
//
// Entries preserve insertion order, which is the order they are encoded in.
// Setting an existing name replaces the entry in place without changing its
// position. Name lookup is O(1).
//
// The zero value is an empty compound ready for use.
type Compound struct {
	entries []entry
	index   map[string]int
}

type entry struct {
	name string
	tag  Tag
}

var _ Tag = (*Compound)(nil)

// NewCompound creates an empty compound.
func NewCompound() *Compound { return &Compound{} }

// Type returns format.TagCompound.
func (c *Compound) Type() format.TagType { return format.TagCompound }

func (c *Compound) isTag() {}

// Len returns the number of entries in the compound.
func (c *Compound) Len() int { return len(c.entries) }

// Get returns the tag stored under name, or (nil, false) if absent.
func (c *Compound) Get(name string) (Tag, bool) {
	i, ok := c.index[name]
	if !ok {
		return nil, false
	}

	return c.entries[i].tag, true
}

// Set stores t under name after validating the name's length.
//
// An existing entry is replaced in place, keeping its position; a new entry
// is appended after all existing entries. A nil tag panics.
func (c *Compound) Set(name string, t Tag) error {
	if t == nil {
		panic("nbt: nil tag")
	}
	if _, err := NewString(name); err != nil {
		return err
	}

	if i, ok := c.index[name]; ok {
		c.entries[i].tag = t
		return nil
	}

	if c.index == nil {
		c.index = make(map[string]int)
	}
	c.index[name] = len(c.entries)
	c.entries = append(c.entries, entry{name: name, tag: t})

	return nil
}

// SetValue stores a native Go value under name, converting it to a tag.
//
// If an entry already exists under name, the value is converted to that
// entry's tag type, so an ambiguous value such as a bare int lands on the
// integral width already in place. Otherwise the value must have an
// unambiguous tag type; see FromValue.
func (c *Compound) SetValue(name string, v any) error {
	if t, ok := v.(Tag); ok {
		return c.Set(name, t)
	}

	var (
		t   Tag
		err error
	)
	if prev, ok := c.Get(name); ok {
		t, err = coerce(prev.Type(), v)
	} else {
		t, err = FromValue(v)
	}
	if err != nil {
		return err
	}

	return c.Set(name, t)
}

// Delete removes the entry stored under name, reporting whether it existed.
// Later entries shift one position earlier.
func (c *Compound) Delete(name string) bool {
	i, ok := c.index[name]
	if !ok {
		return false
	}

	copy(c.entries[i:], c.entries[i+1:])
	c.entries[len(c.entries)-1] = entry{}
	c.entries = c.entries[:len(c.entries)-1]

	delete(c.index, name)
	for j := i; j < len(c.entries); j++ {
		c.index[c.entries[j].name] = j
	}

	return true
}

// Clear removes all entries.
func (c *Compound) Clear() {
	c.entries = nil
	c.index = nil
}

// Names returns the entry names in insertion order.
func (c *Compound) Names() []string {
	names := make([]string, len(c.entries))
	for i, e := range c.entries {
		names[i] = e.name
	}

	return names
}

// All returns an iterator over (name, tag) pairs in insertion order.
func (c *Compound) All() iter.Seq2[string, Tag] {
	return func(yield func(string, Tag) bool) {
		for _, e := range c.entries {
			if !yield(e.name, e.tag) {
				return
			}
		}
	}
}

// PutByte stores v under name as a TAG_Byte.
func (c *Compound) PutByte(name string, v int8) error { return c.Set(name, Byte(v)) }

// PutShort stores v under name as a TAG_Short.
func (c *Compound) PutShort(name string, v int16) error { return c.Set(name, Short(v)) }

// PutInt stores v under name as a TAG_Int.
func (c *Compound) PutInt(name string, v int32) error { return c.Set(name, Int(v)) }

// PutLong stores v under name as a TAG_Long.
func (c *Compound) PutLong(name string, v int64) error { return c.Set(name, Long(v)) }

// PutFloat stores v under name as a TAG_Float.
func (c *Compound) PutFloat(name string, v float32) error { return c.Set(name, Float(v)) }

// PutDouble stores v under name as a TAG_Double.
func (c *Compound) PutDouble(name string, v float64) error { return c.Set(name, Double(v)) }

// PutString stores s under name as a TAG_String after validating its length.
func (c *Compound) PutString(name string, s string) error {
	t, err := NewString(s)
	if err != nil {
		return err
	}

	return c.Set(name, t)
}

// PutByteArray stores v under name as a TAG_Byte_Array. The slice is
// aliased, not copied.
func (c *Compound) PutByteArray(name string, v []byte) error { return c.Set(name, ByteArray(v)) }

// PutIntArray stores v under name as a TAG_Int_Array. The slice is aliased,
// not copied.
func (c *Compound) PutIntArray(name string, v []int32) error { return c.Set(name, IntArray(v)) }

// PutBool stores v under name as a TAG_Byte holding 1 for true, 0 for false.
func (c *Compound) PutBool(name string, v bool) error {
	b := Byte(0)
	if v {
		b = 1
	}

	return c.Set(name, b)
}

// GetOrCreateCompound returns the compound stored under name, creating and
// storing an empty one if the name is absent. It fails with a
// WrongTagError if the name holds a tag of another type.
func (c *Compound) GetOrCreateCompound(name string) (*Compound, error) {
	t, ok := c.Get(name)
	if !ok {
		child := NewCompound()
		if err := c.Set(name, child); err != nil {
			return nil, err
		}

		return child, nil
	}

	child, ok := t.(*Compound)
	if !ok {
		return nil, wrongTag(format.TagCompound, t)
	}

	return child, nil
}

// GetOrCreateList returns the list stored under name, creating and storing
// an empty one if the name is absent. It fails with a WrongTagError if the
// name holds a tag of another type.
func (c *Compound) GetOrCreateList(name string) (*List, error) {
	t, ok := c.Get(name)
	if !ok {
		child := &List{}
		if err := c.Set(name, child); err != nil {
			return nil, err
		}

		return child, nil
	}

	child, ok := t.(*List)
	if !ok {
		return nil, wrongTag(format.TagList, t)
	}

	return child, nil
}

// Lookup walks the given path starting from this compound. See the package
// level Lookup for path semantics.
func (c *Compound) Lookup(path ...any) Tag { return Lookup(c, path...) }
