package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatterIndentation(t *testing.T) {
	var buf strings.Builder
	f := NewFormatter(&buf, 2)

	f.WriteLine("a")
	f.Indent()
	f.WriteLine("b")
	f.Indent()
	f.WriteLinef("c%d", 1)
	f.Dedent()
	f.WriteLine("d")
	f.Dedent()
	f.WriteLine("e")

	assert.Equal(t, "a\n  b\n    c1\n  d\ne\n", buf.String())
}

func TestFormatterBlock(t *testing.T) {
	var buf strings.Builder
	f := NewFormatter(&buf, 4)

	err := f.Block("outer {", "}", func() error {
		return f.Block("inner {", "}", func() error {
			f.WriteLine("x = 1;")
			return nil
		})
	})
	require.NoError(t, err)

	assert.Equal(t, "outer {\n    inner {\n        x = 1;\n    }\n}\n", buf.String())
}

func TestFormatterDedentFloorsAtZero(t *testing.T) {
	var buf strings.Builder
	f := NewFormatter(&buf, 4)

	f.Dedent()
	f.WriteLine("top")

	assert.Equal(t, "top\n", buf.String())
}

func TestFormatterBlankLineHasNoIndent(t *testing.T) {
	var buf strings.Builder
	f := NewFormatter(&buf, 4)

	f.Indent()
	f.BlankLine()
	f.WriteLine("x")

	assert.Equal(t, "\n    x\n", buf.String())
}
