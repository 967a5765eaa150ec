package tag

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Default bounds for the pretty-printer. Deeply nested or very long
// containers are elided rather than dumped in full.
const (
	DefaultPrintDepth  = 16
	DefaultPrintLength = 64
)

// Fprint pretty-prints a tag tree to w with the default depth and length
// bounds.
func Fprint(w io.Writer, t Tag) error {
	return FprintLimit(w, t, DefaultPrintDepth, DefaultPrintLength)
}

// FprintLimit pretty-prints a tag tree to w.
//
// Containers nested deeper than maxDepth are summarized on one line, and a
// container prints at most maxLength entries before eliding the remainder
// with an ellipsis. Negative bounds mean unbounded.
func FprintLimit(w io.Writer, t Tag, maxDepth, maxLength int) error {
	p := &printer{w: w, maxDepth: maxDepth, maxLength: maxLength}
	p.tag(t, "", 0)
	p.line("")

	return p.err
}

// Sprint returns the pretty-printed form of a tag tree with the default
// bounds.
func Sprint(t Tag) string {
	var sb strings.Builder
	_ = FprintLimit(&sb, t, DefaultPrintDepth, DefaultPrintLength)

	return sb.String()
}

type printer struct {
	w         io.Writer
	maxDepth  int
	maxLength int
	err       error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// line terminates the current output line. Everything before it on the
// line was emitted by printf calls.
func (p *printer) line(s string) { p.printf("%s\n", s) }

func (p *printer) indent(depth int) {
	for i := 0; i < depth; i++ {
		p.printf("    ")
	}
}

// tag prints one tag with its label, e.g. `("name"): ` or `(3): `, leaving
// the trailing newline to the caller of the outermost call.
func (p *printer) tag(t Tag, label string, depth int) {
	switch x := t.(type) {
	case Byte:
		p.printf("TAG_Byte%s: %d", label, int8(x))
	case Short:
		p.printf("TAG_Short%s: %d", label, int16(x))
	case Int:
		p.printf("TAG_Int%s: %d", label, int32(x))
	case Long:
		p.printf("TAG_Long%s: %d", label, int64(x))
	case Float:
		p.printf("TAG_Float%s: %s", label, strconv.FormatFloat(float64(x), 'g', -1, 32))
	case Double:
		p.printf("TAG_Double%s: %s", label, strconv.FormatFloat(float64(x), 'g', -1, 64))
	case ByteArray:
		p.printf("TAG_Byte_Array%s: [%d %s]", label, len(x), plural(len(x), "byte"))
	case String:
		p.printf("TAG_String%s: %s", label, string(x))
	case *List:
		p.list(x, label, depth)
	case *Compound:
		p.compound(x, label, depth)
	case *Document:
		p.compound(&x.Compound, nameLabel(x.name), depth)
	case IntArray:
		p.printf("TAG_Int_Array%s: [%d %s]", label, len(x), plural(len(x), "int"))
	default:
		p.printf("%T%s", t, label)
	}
}

func (p *printer) list(l *List, label string, depth int) {
	p.printf("TAG_List%s: %s [", label, l.elemNoun())

	if l.Len() == 0 {
		p.printf("]")
		return
	}
	if p.elided(depth) {
		p.printf(" ... ]")
		return
	}

	p.line("")
	for i, t := range l.items {
		if p.maxLength >= 0 && i >= p.maxLength {
			p.indent(depth + 1)
			p.line("...")
			break
		}

		p.indent(depth + 1)
		p.tag(t, fmt.Sprintf("(%d)", i), depth+1)
		p.line("")
	}
	p.indent(depth)
	p.printf("]")
}

func (p *printer) compound(c *Compound, label string, depth int) {
	p.printf("TAG_Compound%s: %d %s {", label, c.Len(), plural(c.Len(), "entry"))

	if c.Len() == 0 {
		p.printf("}")
		return
	}
	if p.elided(depth) {
		p.printf(" ... }")
		return
	}

	p.line("")
	for i, e := range c.entries {
		if p.maxLength >= 0 && i >= p.maxLength {
			p.indent(depth + 1)
			p.line("...")
			break
		}

		p.indent(depth + 1)
		p.tag(e.tag, nameLabel(e.name), depth+1)
		p.line("")
	}
	p.indent(depth)
	p.printf("}")
}

func (p *printer) elided(depth int) bool {
	return p.maxDepth >= 0 && depth >= p.maxDepth
}

func nameLabel(name string) string { return `("` + name + `")` }

func plural(n int, unit string) string {
	if n == 1 {
		return unit
	}
	if unit == "entry" {
		return "entries"
	}

	return unit + "s"
}
