package tag

import "fmt"

// Lookup walks a tag tree by path and returns the tag it lands on, or nil
// when any step of the path cannot be taken.
//
// Each path segment must be a string (a compound entry name) or an int (a
// list index); any other segment type is a programming error and panics.
// A missing name, an out of bounds index, or a segment kind that does not
// match the node kind (a name applied to a list, an index applied to a
// compound or scalar) all yield nil rather than an error, so a chain of
// lookups into optional structure needs only one nil check at the end.
func Lookup(t Tag, path ...any) Tag {
	cur := t
	for _, seg := range path {
		if cur == nil {
			return nil
		}

		switch s := seg.(type) {
		case string:
			c, ok := cur.(interface{ Get(string) (Tag, bool) })
			if !ok {
				return nil
			}
			child, ok := c.Get(s)
			if !ok {
				return nil
			}
			cur = child
		case int:
			l, ok := cur.(*List)
			if !ok || s < 0 || s >= l.Len() {
				return nil
			}
			cur = l.At(s)
		default:
			panic(fmt.Sprintf("nbt: path segment must be string or int, got %T", seg))
		}
	}

	return cur
}
