package topicgraph

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Black Holes", "black-holes"},
		{"black-holes", "black-holes"},
		{"Quantum Mechanics!", "quantum-mechanics"},
		{"CRISPR Gene Editing", "crispr-gene-editing"},
		{"  spaced   out  ", "spaced-out"},
		{"What's Up?", "what-s-up"},
		{"multiple---dashes", "multiple-dashes"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.in), "input %q", tc.in)
	}
}

func TestSlugify_Idempotent(t *testing.T) {
	inputs := []string{"Black Holes", "Alien Technology!!", "dark-matter"}
	for _, in := range inputs {
		once := Slugify(in)
		assert.Equal(t, once, Slugify(once))
	}
}

func TestSlugify_Truncates(t *testing.T) {
	long := strings.Repeat("a", 200)
	slug := Slugify(long)
	assert.LessOrEqual(t, len([]rune(slug)), 80)
	assert.Equal(t, slug, Slugify(slug))
}
