package security

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// maxInputRunes caps what is kept from a single message.
const maxInputRunes = 1000

// NormalizeInput prepares an inbound message body for the dialogue: control
// characters are dropped, line breaks become spaces, the text is put in
// Unicode NFC and surrounding spaces are trimmed.
func NormalizeInput(input string) string {
	cleaned := strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return ' '
		}
		if unicode.IsControl(r) || r == unicode.ReplacementChar {
			return -1
		}
		return r
	}, input)

	cleaned = norm.NFC.String(cleaned)

	if runes := []rune(cleaned); len(runes) > maxInputRunes {
		cleaned = string(runes[:maxInputRunes])
	}
	return strings.TrimSpace(cleaned)
}
