// Package utils holds the small helpers shared by the boundary layers:
// token validation, word-list parsing and TOML/file plumbing.
package utils

// IsAlphabetic reports whether s is non-empty and consists only of
// ASCII letters.
func IsAlphabetic(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('a' <= c && c <= 'z') && !('A' <= c && c <= 'Z') {
			return false
		}
	}
	return true
}

// IsValidWord reports whether s may be handed to the engine: non-empty,
// at most maxLen bytes and alphabetic. The engine itself never
// re-validates.
func IsValidWord(s string, maxLen int) bool {
	if len(s) > maxLen {
		return false
	}
	return IsAlphabetic(s)
}
