package html

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemoveComments(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"no comments", "<p>Hello</p>", "<p>Hello</p>"},
		{"single comment", "<p>Hello</p><!-- note --><p>World</p>", "<p>Hello</p><p>World</p>"},
		{"segments trimmed", "a <!-- x --> b", "ab"},
		{"multiple comments", "<!--a-->one<!--b-->two", "onetwo"},
		{"unterminated opener dropped", "text<!-- open", "textopen"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RemoveComments(tt.input))
		})
	}
}
