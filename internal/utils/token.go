package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidToken reports a token the boundary refuses to pass into the
// engine: empty, too long, non-alphabetic, or carrying a malformed or
// negative frequency suffix.
var ErrInvalidToken = errors.New("invalid token")

// ParseToken splits a "word" or "word:frequency" token into its parts.
// A missing frequency defaults to 0.
func ParseToken(token string, maxWordLen int) (string, int, error) {
	word, freqStr, hasFreq := strings.Cut(token, ":")
	popularity := 0
	if hasFreq {
		n, err := strconv.Atoi(freqStr)
		if err != nil {
			return "", 0, fmt.Errorf("%w: bad frequency %q", ErrInvalidToken, freqStr)
		}
		if n < 0 {
			return "", 0, fmt.Errorf("%w: negative frequency %d", ErrInvalidToken, n)
		}
		popularity = n
	}
	if !IsValidWord(word, maxWordLen) {
		return "", 0, fmt.Errorf("%w: %q must be 1..%d letters", ErrInvalidToken, word, maxWordLen)
	}
	return word, popularity, nil
}
