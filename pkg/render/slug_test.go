package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlug(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases", "Intro", "intro"},
		{"single space", "Hello World", "hello-world"},
		{"whitespace run collapses", "a  \t b", "a-b"},
		{"newline is whitespace", "line\nbreak", "line-break"},
		{"already slugged", "already-slugged", "already-slugged"},
		{"empty", "", ""},
		{"mixed case and runs", "Getting   Started Guide", "getting-started-guide"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slug(tt.input))
		})
	}
}

func TestSlug_Deterministic(t *testing.T) {
	in := "Some  Long\tTitle Here"
	first := Slug(in)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Slug(in))
	}
}
