package output

import (
	"fmt"
	"strings"
)

// Formatter is an indentation-tracking text sink over a string builder.
// Every encoder writes through it so all generated files share the same
// indentation style, controlled by a single spaces-per-level width.
type Formatter struct {
	buf        *strings.Builder
	indentSize int
	level      int
}

func NewFormatter(buf *strings.Builder, indentSize int) *Formatter {
	return &Formatter{buf: buf, indentSize: indentSize}
}

// WriteLine writes s at the current indentation level, followed by a newline.
func (f *Formatter) WriteLine(s string) {
	f.buf.WriteString(strings.Repeat(" ", f.level*f.indentSize))
	f.buf.WriteString(s)
	f.buf.WriteByte('\n')
}

func (f *Formatter) WriteLinef(format string, args ...any) {
	f.WriteLine(fmt.Sprintf(format, args...))
}

// BlankLine writes an empty line with no indentation.
func (f *Formatter) BlankLine() {
	f.buf.WriteByte('\n')
}

func (f *Formatter) Indent() {
	f.level++
}

func (f *Formatter) Dedent() {
	if f.level > 0 {
		f.level--
	}
}

// Block writes opening, runs body one level deeper, then writes closing.
func (f *Formatter) Block(opening, closing string, body func() error) error {
	f.WriteLine(opening)
	f.Indent()
	err := body()
	f.Dedent()
	if err != nil {
		return err
	}
	f.WriteLine(closing)
	return nil
}
