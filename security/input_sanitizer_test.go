package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "trims", input: "  Yes \n", want: "Yes"},
		{name: "control chars", input: "y\x00e\x07s", want: "yes"},
		{name: "inner newline", input: "food\nprocessing", want: "food processing"},
		{name: "hindi untouched", input: " हाँ ", want: "हाँ"},
		{name: "nfc", input: "cafe\u0301", want: "caf\u00e9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeInput(tt.input))
		})
	}
}

func TestNormalizeInputCapsLength(t *testing.T) {
	got := NormalizeInput(strings.Repeat("अ", 5000))
	assert.Equal(t, maxInputRunes, len([]rune(got)))
}
