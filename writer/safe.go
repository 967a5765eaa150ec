package writer

import (
	"fmt"
	"io"

	"github.com/theJ8910/jnbt/errs"
	"github.com/theJ8910/jnbt/format"
	"github.com/theJ8910/jnbt/internal/hash"
	"github.com/theJ8910/jnbt/tag"
)

// state identifies what kind of container the writer is currently inside.
type state uint8

const (
	stateFresh     state = iota // nothing written yet; only Start is legal
	stateRoot                   // inside the root compound
	stateCompound               // inside a nested compound
	stateList                   // inside a list
	stateByteArray              // streaming a byte array payload
	stateIntArray               // streaming an int array payload
	stateDone                   // root compound ended; nothing more is legal
)

func (s state) String() string {
	switch s {
	case stateFresh:
		return "before the root TAG_Compound"
	case stateRoot:
		return "the root TAG_Compound"
	case stateCompound:
		return "a TAG_Compound"
	case stateList:
		return "a TAG_List"
	case stateByteArray:
		return "a TAG_Byte_Array"
	case stateIntArray:
		return "a TAG_Int_Array"
	case stateDone:
		return "after the root TAG_Compound"
	default:
		return "an unknown context"
	}
}

// frame is one level of the open container stack.
type frame struct {
	kind state

	// List frames: declared element type. Unused otherwise.
	elem format.TagType
	// List and array frames: declared length, and how much has been
	// written so far. Lists and int arrays count elements; byte arrays
	// count bytes.
	expected int64
	count    int64

	// Compound frames: written entry names, keyed by xxHash64 of the
	// name. Values hold the actual names so a hash collision cannot mask
	// or fake a duplicate.
	names map[uint64][]string
}

// SafeWriter streams NBT output, validating the call sequence as it goes.
//
// It maintains the stack of open containers and rejects any call that
// would produce malformed output: tags written in the wrong context,
// duplicate names in a compound, list elements of the wrong type or beyond
// the declared count, streamed array payloads that overrun or underrun
// their declared length, and mismatched or missing container closers. The
// root compound must be opened with Start and closed with End exactly
// once; Close then confirms the document was completed.
//
// On the first error the output may already hold a partial document; the
// writer does not attempt to roll back bytes.
type SafeWriter struct {
	raw   *Writer
	stack []frame
}

var _ TagWriter = (*SafeWriter)(nil)

// NewSafeWriter creates a validating streaming writer over w.
func NewSafeWriter(w io.Writer) *SafeWriter {
	return &SafeWriter{
		raw:   NewWriter(w),
		stack: []frame{{kind: stateFresh}},
	}
}

func (s *SafeWriter) cur() *frame { return &s.stack[len(s.stack)-1] }

func (s *SafeWriter) push(f frame) { s.stack = append(s.stack, f) }

func (s *SafeWriter) pop() { s.stack = s.stack[:len(s.stack)-1] }

// misplaced reports that the named construct cannot be written in the
// current context.
func (s *SafeWriter) misplaced(what string) error {
	return fmt.Errorf("%w: %s cannot be written inside %s", errs.ErrUsage, what, s.cur().kind)
}

// acceptName validates writing a named entry in the current compound and
// records the name as used.
func (s *SafeWriter) acceptName(name string, typ format.TagType) error {
	cur := s.cur()
	if cur.kind != stateRoot && cur.kind != stateCompound {
		return s.misplaced("a named " + typ.String())
	}

	id := hash.ID(name)
	for _, existing := range cur.names[id] {
		if existing == name {
			return &errs.DuplicateNameError{Name: name}
		}
	}
	cur.names[id] = append(cur.names[id], name)

	return nil
}

// acceptElem validates writing one unnamed element of the given type in
// the current list and counts it.
func (s *SafeWriter) acceptElem(typ format.TagType) error {
	cur := s.cur()
	if cur.kind != stateList {
		return s.misplaced("an unnamed " + typ.String())
	}
	if typ != cur.elem {
		return &errs.WrongTagError{Expected: cur.elem, Actual: typ}
	}
	if cur.count >= cur.expected {
		return &errs.LengthMismatchError{Unit: "tags", Expected: cur.expected, Actual: cur.count + 1}
	}
	cur.count++

	return nil
}

func checkLength(length int32) error {
	if length < 0 {
		return &errs.OutOfRangeError{Value: int64(length), Min: 0, Max: format.MaxLength}
	}

	return nil
}

func checkSliceLength(n int) error {
	if int64(n) > format.MaxLength {
		return &errs.OutOfRangeError{Value: int64(n), Min: 0, Max: format.MaxLength}
	}

	return nil
}

func checkListHeader(elem format.TagType, length int32) error {
	if err := checkLength(length); err != nil {
		return err
	}
	if !elem.IsValid() {
		return &errs.UnknownTagTypeError{Type: elem}
	}
	if elem == format.TagEnd && length > 0 {
		return fmt.Errorf("%w: TAG_List of TAG_End with nonzero length %d", errs.ErrFormat, length)
	}

	return nil
}

// Start opens the root compound. It must be the first call on the writer.
func (s *SafeWriter) Start(name string) error {
	if s.cur().kind != stateFresh {
		return fmt.Errorf("%w: the root TAG_Compound has already been started", errs.ErrUsage)
	}

	if err := s.raw.Start(name); err != nil {
		return err
	}
	s.stack[0] = frame{kind: stateRoot, names: make(map[uint64][]string)}

	return nil
}

// End closes the root compound. Every nested container must already be
// closed; a nested compound is closed with EndCompound, not End.
func (s *SafeWriter) End() error {
	if s.cur().kind != stateRoot {
		return fmt.Errorf("%w: End closes the root TAG_Compound, but the current context is %s",
			errs.ErrUsage, s.cur().kind)
	}

	if err := s.raw.End(); err != nil {
		return err
	}
	s.stack[0] = frame{kind: stateDone}

	return nil
}

// Close verifies the document was completed: the root compound was started
// and ended, with no container left open. It writes nothing.
func (s *SafeWriter) Close() error {
	if len(s.stack) != 1 || s.cur().kind != stateDone {
		return fmt.Errorf("%w: NBT output ended inside %s", errs.ErrUsage, s.cur().kind)
	}

	return nil
}

func (s *SafeWriter) Byte(name string, v int8) error {
	if err := s.acceptName(name, format.TagByte); err != nil {
		return err
	}

	return s.raw.Byte(name, v)
}

func (s *SafeWriter) Short(name string, v int16) error {
	if err := s.acceptName(name, format.TagShort); err != nil {
		return err
	}

	return s.raw.Short(name, v)
}

func (s *SafeWriter) Int(name string, v int32) error {
	if err := s.acceptName(name, format.TagInt); err != nil {
		return err
	}

	return s.raw.Int(name, v)
}

func (s *SafeWriter) Long(name string, v int64) error {
	if err := s.acceptName(name, format.TagLong); err != nil {
		return err
	}

	return s.raw.Long(name, v)
}

func (s *SafeWriter) Float(name string, v float32) error {
	if err := s.acceptName(name, format.TagFloat); err != nil {
		return err
	}

	return s.raw.Float(name, v)
}

func (s *SafeWriter) Double(name string, v float64) error {
	if err := s.acceptName(name, format.TagDouble); err != nil {
		return err
	}

	return s.raw.Double(name, v)
}

func (s *SafeWriter) String(name string, str string) error {
	if err := s.acceptName(name, format.TagString); err != nil {
		return err
	}

	return s.raw.String(name, str)
}

func (s *SafeWriter) ByteArray(name string, v []byte) error {
	if err := checkSliceLength(len(v)); err != nil {
		return err
	}
	if err := s.acceptName(name, format.TagByteArray); err != nil {
		return err
	}

	return s.raw.ByteArray(name, v)
}

func (s *SafeWriter) IntArray(name string, v []int32) error {
	if err := checkSliceLength(len(v)); err != nil {
		return err
	}
	if err := s.acceptName(name, format.TagIntArray); err != nil {
		return err
	}

	return s.raw.IntArray(name, v)
}

func (s *SafeWriter) List(name string, l *tag.List) error {
	if err := checkSliceLength(l.Len()); err != nil {
		return err
	}
	if err := s.acceptName(name, format.TagList); err != nil {
		return err
	}

	return s.raw.List(name, l)
}

func (s *SafeWriter) Tag(name string, t tag.Tag) error {
	if t == nil {
		panic("nbt: nil tag")
	}
	if err := s.acceptName(name, t.Type()); err != nil {
		return err
	}

	return s.raw.Tag(name, t)
}

func (s *SafeWriter) StartByteArray(name string, length int32) error {
	if err := checkLength(length); err != nil {
		return err
	}
	if err := s.acceptName(name, format.TagByteArray); err != nil {
		return err
	}

	if err := s.raw.StartByteArray(name, length); err != nil {
		return err
	}
	s.push(frame{kind: stateByteArray, expected: int64(length)})

	return nil
}

func (s *SafeWriter) Bytes(chunk []byte) error {
	cur := s.cur()
	if cur.kind != stateByteArray {
		return s.misplaced("TAG_Byte_Array data")
	}
	if cur.count+int64(len(chunk)) > cur.expected {
		return &errs.LengthMismatchError{Unit: "bytes", Expected: cur.expected, Actual: cur.count + int64(len(chunk))}
	}

	if err := s.raw.Bytes(chunk); err != nil {
		return err
	}
	cur.count += int64(len(chunk))

	return nil
}

func (s *SafeWriter) EndByteArray() error {
	cur := s.cur()
	if cur.kind != stateByteArray {
		return s.misplaced("the end of a TAG_Byte_Array")
	}
	if cur.count != cur.expected {
		return &errs.LengthMismatchError{Unit: "bytes", Expected: cur.expected, Actual: cur.count}
	}
	s.pop()

	return nil
}

func (s *SafeWriter) StartIntArray(name string, length int32) error {
	if err := checkLength(length); err != nil {
		return err
	}
	if err := s.acceptName(name, format.TagIntArray); err != nil {
		return err
	}

	if err := s.raw.StartIntArray(name, length); err != nil {
		return err
	}
	s.push(frame{kind: stateIntArray, expected: int64(length)})

	return nil
}

func (s *SafeWriter) Ints(chunk []int32) error {
	cur := s.cur()
	if cur.kind != stateIntArray {
		return s.misplaced("TAG_Int_Array data")
	}
	if cur.count+int64(len(chunk)) > cur.expected {
		return &errs.LengthMismatchError{Unit: "ints", Expected: cur.expected, Actual: cur.count + int64(len(chunk))}
	}

	if err := s.raw.Ints(chunk); err != nil {
		return err
	}
	cur.count += int64(len(chunk))

	return nil
}

func (s *SafeWriter) EndIntArray() error {
	cur := s.cur()
	if cur.kind != stateIntArray {
		return s.misplaced("the end of a TAG_Int_Array")
	}
	if cur.count != cur.expected {
		return &errs.LengthMismatchError{Unit: "ints", Expected: cur.expected, Actual: cur.count}
	}
	s.pop()

	return nil
}

func (s *SafeWriter) StartList(name string, elem format.TagType, length int32) error {
	if err := checkListHeader(elem, length); err != nil {
		return err
	}
	if err := s.acceptName(name, format.TagList); err != nil {
		return err
	}

	if err := s.raw.StartList(name, elem, length); err != nil {
		return err
	}
	s.push(frame{kind: stateList, elem: elem, expected: int64(length)})

	return nil
}

func (s *SafeWriter) EndList() error {
	cur := s.cur()
	if cur.kind != stateList {
		return s.misplaced("the end of a TAG_List")
	}
	if cur.count != cur.expected {
		return &errs.LengthMismatchError{Unit: "tags", Expected: cur.expected, Actual: cur.count}
	}
	s.pop()

	return nil
}

func (s *SafeWriter) StartCompound(name string) error {
	if err := s.acceptName(name, format.TagCompound); err != nil {
		return err
	}

	if err := s.raw.StartCompound(name); err != nil {
		return err
	}
	s.push(frame{kind: stateCompound, names: make(map[uint64][]string)})

	return nil
}

func (s *SafeWriter) EndCompound() error {
	cur := s.cur()
	if cur.kind == stateRoot {
		return fmt.Errorf("%w: the root TAG_Compound must be closed with End, not EndCompound", errs.ErrUsage)
	}
	if cur.kind != stateCompound {
		return s.misplaced("the end of a TAG_Compound")
	}

	if err := s.raw.EndCompound(); err != nil {
		return err
	}
	s.pop()

	return nil
}

func (s *SafeWriter) ByteElem(v int8) error {
	if err := s.acceptElem(format.TagByte); err != nil {
		return err
	}

	return s.raw.ByteElem(v)
}

func (s *SafeWriter) ShortElem(v int16) error {
	if err := s.acceptElem(format.TagShort); err != nil {
		return err
	}

	return s.raw.ShortElem(v)
}

func (s *SafeWriter) IntElem(v int32) error {
	if err := s.acceptElem(format.TagInt); err != nil {
		return err
	}

	return s.raw.IntElem(v)
}

func (s *SafeWriter) LongElem(v int64) error {
	if err := s.acceptElem(format.TagLong); err != nil {
		return err
	}

	return s.raw.LongElem(v)
}

func (s *SafeWriter) FloatElem(v float32) error {
	if err := s.acceptElem(format.TagFloat); err != nil {
		return err
	}

	return s.raw.FloatElem(v)
}

func (s *SafeWriter) DoubleElem(v float64) error {
	if err := s.acceptElem(format.TagDouble); err != nil {
		return err
	}

	return s.raw.DoubleElem(v)
}

func (s *SafeWriter) StringElem(str string) error {
	if err := s.acceptElem(format.TagString); err != nil {
		return err
	}

	return s.raw.StringElem(str)
}

func (s *SafeWriter) ByteArrayElem(v []byte) error {
	if err := checkSliceLength(len(v)); err != nil {
		return err
	}
	if err := s.acceptElem(format.TagByteArray); err != nil {
		return err
	}

	return s.raw.ByteArrayElem(v)
}

func (s *SafeWriter) IntArrayElem(v []int32) error {
	if err := checkSliceLength(len(v)); err != nil {
		return err
	}
	if err := s.acceptElem(format.TagIntArray); err != nil {
		return err
	}

	return s.raw.IntArrayElem(v)
}

func (s *SafeWriter) ListElem(l *tag.List) error {
	if err := checkSliceLength(l.Len()); err != nil {
		return err
	}
	if err := s.acceptElem(format.TagList); err != nil {
		return err
	}

	return s.raw.ListElem(l)
}

func (s *SafeWriter) TagElem(t tag.Tag) error {
	if t == nil {
		panic("nbt: nil tag")
	}
	if err := s.acceptElem(t.Type()); err != nil {
		return err
	}

	return s.raw.TagElem(t)
}

func (s *SafeWriter) StartByteArrayElem(length int32) error {
	if err := checkLength(length); err != nil {
		return err
	}
	if err := s.acceptElem(format.TagByteArray); err != nil {
		return err
	}

	if err := s.raw.StartByteArrayElem(length); err != nil {
		return err
	}
	s.push(frame{kind: stateByteArray, expected: int64(length)})

	return nil
}

func (s *SafeWriter) StartIntArrayElem(length int32) error {
	if err := checkLength(length); err != nil {
		return err
	}
	if err := s.acceptElem(format.TagIntArray); err != nil {
		return err
	}

	if err := s.raw.StartIntArrayElem(length); err != nil {
		return err
	}
	s.push(frame{kind: stateIntArray, expected: int64(length)})

	return nil
}

func (s *SafeWriter) StartListElem(elem format.TagType, length int32) error {
	if err := checkListHeader(elem, length); err != nil {
		return err
	}
	if err := s.acceptElem(format.TagList); err != nil {
		return err
	}

	if err := s.raw.StartListElem(elem, length); err != nil {
		return err
	}
	s.push(frame{kind: stateList, elem: elem, expected: int64(length)})

	return nil
}

func (s *SafeWriter) StartCompoundElem() error {
	if err := s.acceptElem(format.TagCompound); err != nil {
		return err
	}

	if err := s.raw.StartCompoundElem(); err != nil {
		return err
	}
	s.push(frame{kind: stateCompound, names: make(map[uint64][]string)})

	return nil
}
