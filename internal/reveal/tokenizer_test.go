package reveal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jmylchreest/hyprmsg/internal/config"
)

func TestTokenize_CharMode(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    []string
	}{
		{"simple", "hi", []string{"h", "i"}},
		{"with space", "a b", []string{"a", " ", "b"}},
		{"unicode", "héllo", []string{"h", "é", "l", "l", "o"}},
		{"emoji", "🎉!", []string{"🎉", "!"}},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.message, config.ModeChar))
		})
	}
}

func TestTokenize_WordMode(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    []string
	}{
		{"two words", "hi there", []string{"hi ", "there"}},
		{"trailing space kept", "hi there ", []string{"hi ", "there "}},
		{"multiple spaces", "a  b", []string{"a  ", "b"}},
		{"tabs and newlines", "a\tb\nc", []string{"a\t", "b\n", "c"}},
		{"single word", "hello", []string{"hello"}},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.message, config.ModeWord))
		})
	}
}

func TestTokenize_RoundTrip(t *testing.T) {
	messages := []string{
		"hello world",
		"one  two   three",
		"trailing spaces   ",
		"tabs\tand\nnewlines",
		"unicode héllo wörld 🎉",
		"x",
		"",
	}

	for _, message := range messages {
		for _, mode := range []config.Mode{config.ModeChar, config.ModeWord} {
			tokens := Tokenize(message, mode)
			assert.Equal(t, message, strings.Join(tokens, ""),
				"mode %s must reassemble %q", mode, message)
		}
	}
}

func TestTokenize_LeadingWhitespaceCharMode(t *testing.T) {
	// Char mode preserves leading whitespace token-for-token.
	tokens := Tokenize(" a", config.ModeChar)
	assert.Equal(t, []string{" ", "a"}, tokens)
	assert.Equal(t, " a", strings.Join(tokens, ""))
}
