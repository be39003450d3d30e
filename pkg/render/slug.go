package render

import (
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Slug returns the anchor identifier form of a string: lowercased, with
// every run of whitespace collapsed to a single hyphen. It is a pure
// function of its input; title anchors and reference targets both go
// through it so they always agree.
func Slug(s string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(s), "-")
}
