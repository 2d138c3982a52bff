package jdl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripBlockComments(t *testing.T) {
	t.Run("no comments is a no-op", func(t *testing.T) {
		in := "entity Foo { name String }"
		assert.Equal(t, in, StripBlockComments(in))
	})

	t.Run("single block removed", func(t *testing.T) {
		in := "before /* gone */ after"
		assert.Equal(t, "before  after", StripBlockComments(in))
	})

	t.Run("block spanning lines", func(t *testing.T) {
		in := "keep\n/* line one\nline two\n*/\nalso keep"
		out := StripBlockComments(in)
		assert.NotContains(t, out, "line one")
		assert.Contains(t, out, "keep")
		assert.Contains(t, out, "also keep")
	})

	t.Run("multiple blocks removed independently", func(t *testing.T) {
		in := "a /* x */ b /* y */ c"
		assert.Equal(t, "a  b  c", StripBlockComments(in))
	})
}

func TestIsCommented(t *testing.T) {
	text := "// entity Ghost { x String }\nentity Real { y String }"

	ghost := strings.Index(text, "entity Ghost")
	real := strings.Index(text, "entity Real")

	assert.True(t, IsCommented(text, ghost))
	assert.False(t, IsCommented(text, real))

	t.Run("only text strictly before the index counts", func(t *testing.T) {
		s := "   // tail"
		// index sits before the marker, so the truncated line is blank
		assert.False(t, IsCommented(s, 2))
		assert.True(t, IsCommented(s, len(s)))
	})

	t.Run("indented line comment", func(t *testing.T) {
		s := "x\n\t  // entity A {}"
		assert.True(t, IsCommented(s, strings.Index(s, "entity")))
	})

	t.Run("out of range index is clamped", func(t *testing.T) {
		assert.False(t, IsCommented("abc", -1))
		assert.False(t, IsCommented("abc", 99))
	})
}
