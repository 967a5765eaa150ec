package parse

import (
	"fmt"
	"io"
	"strconv"

	"github.com/theJ8910/jnbt/format"
)

// PrintHandler prints a tree of NBT tags to an io.Writer as they stream
// through it, without buffering the document.
//
// Array contents are summarized by length rather than printed, and a
// compound's entry count is unknown until its end in streaming mode, so
// compounds print without one.
type PrintHandler struct {
	BaseHandler

	w       io.Writer
	name    string
	hasName bool
	indent  int
}

var _ Handler = (*PrintHandler)(nil)

// NewPrintHandler creates a PrintHandler writing to w.
func NewPrintHandler(w io.Writer) *PrintHandler {
	return &PrintHandler{w: w}
}

// line prints one tag line at the current indent, consuming the pending
// name as the tag's label.
func (h *PrintHandler) line(tagName, rest string) error {
	label := ""
	if h.hasName {
		label = `("` + h.name + `")`
		h.hasName = false
	}

	_, err := fmt.Fprintf(h.w, "%*s%s%s%s\n", 4*h.indent, "", tagName, label, rest)

	return err
}

// closer prints a closing bracket one indent level out.
func (h *PrintHandler) closer(s string) error {
	h.indent--
	_, err := fmt.Fprintf(h.w, "%*s%s\n", 4*h.indent, "", s)

	return err
}

func (h *PrintHandler) Name(_ format.TagType, name string) error {
	h.name = name
	h.hasName = true

	return nil
}

func (h *PrintHandler) Byte(v int8) error {
	return h.line("TAG_Byte", fmt.Sprintf(": %d", v))
}

func (h *PrintHandler) Short(v int16) error {
	return h.line("TAG_Short", fmt.Sprintf(": %d", v))
}

func (h *PrintHandler) Int(v int32) error {
	return h.line("TAG_Int", fmt.Sprintf(": %d", v))
}

func (h *PrintHandler) Long(v int64) error {
	return h.line("TAG_Long", fmt.Sprintf(": %d", v))
}

func (h *PrintHandler) Float(v float32) error {
	return h.line("TAG_Float", ": "+strconv.FormatFloat(float64(v), 'g', -1, 32))
}

func (h *PrintHandler) Double(v float64) error {
	return h.line("TAG_Double", ": "+strconv.FormatFloat(v, 'g', -1, 64))
}

func (h *PrintHandler) String(s string) error {
	return h.line("TAG_String", ": "+s)
}

func (h *PrintHandler) StartByteArray(length int32) error {
	return h.line("TAG_Byte_Array", fmt.Sprintf(": [%d %s]", length, plural(length, "byte")))
}

func (h *PrintHandler) StartIntArray(length int32) error {
	return h.line("TAG_Int_Array", fmt.Sprintf(": [%d %s]", length, plural(length, "int")))
}

func (h *PrintHandler) StartList(elem format.TagType, length int32) error {
	contents := "0 entries"
	if length > 0 {
		contents = fmt.Sprintf("%d %s", length, plural(length, elem.String()))
	}

	if err := h.line("TAG_List", ": "+contents+" ["); err != nil {
		return err
	}
	h.hasName = false
	h.indent++

	return nil
}

func (h *PrintHandler) EndList() error { return h.closer("]") }

func (h *PrintHandler) StartCompound() error {
	if err := h.line("TAG_Compound", ": {"); err != nil {
		return err
	}
	h.indent++

	return nil
}

func (h *PrintHandler) EndCompound() error { return h.closer("}") }

func plural(n int32, unit string) string {
	if n == 1 {
		return unit
	}

	return unit + "s"
}
