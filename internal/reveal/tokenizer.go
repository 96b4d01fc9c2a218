// Package reveal implements the message tokenizer and the timer-driven
// state machine that animates the reveal for one window.
package reveal

import (
	"regexp"

	"github.com/jmylchreest/hyprmsg/internal/config"
)

// wordRegex matches one run of non-space characters plus any immediately
// trailing whitespace, so joining word tokens reassembles the message.
var wordRegex = regexp.MustCompile(`\S+\s*`)

// Tokenize splits message into reveal units: one per Unicode code point in
// char mode, one per word with its trailing whitespace in word mode.
// An empty message yields a nil slice.
func Tokenize(message string, mode config.Mode) []string {
	if message == "" {
		return nil
	}

	if mode == config.ModeWord {
		return wordRegex.FindAllString(message, -1)
	}

	tokens := make([]string, 0, len(message))
	for _, r := range message {
		tokens = append(tokens, string(r))
	}
	return tokens
}
