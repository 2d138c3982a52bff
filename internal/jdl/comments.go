package jdl

import (
	"regexp"
	"strings"
)

// Блочные комментарии /* ... */ могут занимать несколько строк.
var blockCommentRe = regexp.MustCompile(`(?s)/\*.*?\*/`)

// StripBlockComments returns a copy of text with every /* ... */ span removed.
// No block comments is a no-op. An unterminated opener is left as-is.
func StripBlockComments(text string) string {
	return blockCommentRe.ReplaceAllString(text, "")
}

// IsCommented reports whether the line containing index, truncated to the
// characters strictly before index, starts with "//" after trimming leading
// whitespace. Extractors call this with the start offset of a structural
// match to drop declarations sitting on line-commented lines.
func IsCommented(text string, index int) bool {
	if index < 0 {
		return false
	}
	if index > len(text) {
		index = len(text)
	}
	start := strings.LastIndexByte(text[:index], '\n') + 1
	return strings.HasPrefix(strings.TrimSpace(text[start:index]), "//")
}
