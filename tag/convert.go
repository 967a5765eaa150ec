package tag

import (
	"math"
	"sort"

	"github.com/theJ8910/jnbt/errs"
	"github.com/theJ8910/jnbt/format"
)

// FromValue converts a native Go value to a tag when the value's tag type
// is unambiguous.
//
// The supported conversions are:
//   - Tag: returned as-is
//   - bool: TAG_Byte holding 1 or 0
//   - []byte: TAG_Byte_Array (aliased, not copied)
//   - string: TAG_String
//   - []int32: TAG_Int_Array (aliased, not copied)
//   - []Tag: TAG_List
//   - []string: TAG_List of TAG_String
//   - []bool: TAG_List of TAG_Byte
//   - map[string]Tag: TAG_Compound with entries in sorted key order
//
// Bare integer and floating point values are ambiguous (four integral and
// two floating tag widths exist) and fail with a ConversionError; use a
// typed constructor, a direct conversion such as Int(5), or a context that
// fixes the target type such as Compound.SetValue on an existing entry.
func FromValue(v any) (Tag, error) {
	switch x := v.(type) {
	case Tag:
		return x, nil
	case bool:
		if x {
			return Byte(1), nil
		}
		return Byte(0), nil
	case []byte:
		return ByteArray(x), nil
	case string:
		return NewString(x)
	case []int32:
		return IntArray(x), nil
	case []Tag:
		return NewList(x...)
	case []string:
		return stringList(x)
	case []bool:
		return boolList(x)
	case map[string]Tag:
		return compoundFromMap(x)
	default:
		return nil, &errs.ConversionError{Value: v}
	}
}

// stringList builds a TAG_List of TAG_Strings, validating each length.
func stringList(v []string) (*List, error) {
	l := &List{}
	for _, s := range v {
		if err := l.AppendString(s); err != nil {
			return nil, err
		}
	}

	return l, nil
}

// boolList builds a TAG_List of TAG_Bytes holding 1 or 0.
func boolList(v []bool) (*List, error) {
	l := &List{}
	for _, b := range v {
		n := int8(0)
		if b {
			n = 1
		}
		if err := l.AppendByte(n); err != nil {
			return nil, err
		}
	}

	return l, nil
}

// coerce converts a native Go value to a tag of the given type. Unlike
// FromValue, the target type is already fixed, so bare integer and floating
// point values are accepted and range-checked against the target width.
func coerce(target format.TagType, v any) (Tag, error) {
	if t, ok := v.(Tag); ok {
		if t.Type() != target {
			return nil, wrongTag(target, t)
		}
		return t, nil
	}

	switch target {
	case format.TagByte:
		if b, ok := v.(bool); ok {
			if b {
				return Byte(1), nil
			}
			return Byte(0), nil
		}
		if n, ok := toInt64(v); ok {
			return NewByte(n)
		}
	case format.TagShort:
		if n, ok := toInt64(v); ok {
			return NewShort(n)
		}
	case format.TagInt:
		if n, ok := toInt64(v); ok {
			return NewInt(n)
		}
	case format.TagLong:
		if n, ok := toInt64(v); ok {
			return NewLong(n)
		}
	case format.TagFloat:
		if f, ok := toFloat64(v); ok {
			return Float(f), nil
		}
	case format.TagDouble:
		if f, ok := toFloat64(v); ok {
			return Double(f), nil
		}
	case format.TagString:
		if s, ok := v.(string); ok {
			return NewString(s)
		}
	case format.TagByteArray:
		if b, ok := v.([]byte); ok {
			return ByteArray(b), nil
		}
	case format.TagIntArray:
		if n, ok := v.([]int32); ok {
			return IntArray(n), nil
		}
	case format.TagList:
		if elems, ok := v.([]Tag); ok {
			return NewList(elems...)
		}
	case format.TagCompound:
		if m, ok := v.(map[string]Tag); ok {
			return compoundFromMap(m)
		}
	}

	return nil, &errs.ConversionError{Value: v}
}

// compoundFromMap builds a compound from a map. Go maps have no iteration
// order, so entries are inserted in sorted key order for determinism.
func compoundFromMap(m map[string]Tag) (*Compound, error) {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	c := NewCompound()
	for _, name := range names {
		if err := c.Set(name, m[name]); err != nil {
			return nil, err
		}
	}

	return c, nil
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint:
		if uint64(n) > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	default:
		return 0, false
	}
}

func toFloat64(v any) (float64, bool) {
	switch f := v.(type) {
	case float32:
		return float64(f), true
	case float64:
		return f, true
	default:
		if n, ok := toInt64(v); ok {
			return float64(n), true
		}
		return 0, false
	}
}

func wrongTag(expected format.TagType, actual Tag) error {
	return &errs.WrongTagError{Expected: expected, Actual: actual.Type()}
}
