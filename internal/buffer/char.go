package buffer

import "unicode/utf8"

// ForwardBoundary returns the byte offset of the start of the codepoint following the one
// that starts at i, or len(s) if there is none.
// Bytes that are not part of a valid UTF-8 sequence count as one-byte codepoints.
func ForwardBoundary(s []byte, i int) int {
	if i < 0 {
		return 0
	}
	if i >= len(s) {
		return len(s)
	}
	if s[i] < utf8.RuneSelf {
		return i + 1
	}
	_, n := utf8.DecodeRune(s[i:])
	return i + n
}

// ForwardBoundaryInString is like ForwardBoundary, but operates on a string.
func ForwardBoundaryInString(s string, i int) int {
	if i < 0 {
		return 0
	}
	if i >= len(s) {
		return len(s)
	}
	if s[i] < utf8.RuneSelf {
		return i + 1
	}
	_, n := utf8.DecodeRuneInString(s[i:])
	return i + n
}

// BackwardBoundary returns the byte offset of the start of the codepoint that ends at i,
// or 0 if there is none.
func BackwardBoundary(s []byte, i int) int {
	if i > len(s) {
		i = len(s)
	}
	if i <= 0 {
		return 0
	}
	_, n := utf8.DecodeLastRune(s[:i])
	return i - n
}

// countChars returns the number of codepoints in s.
func countChars(s []byte) int {
	n := 0
	for p := 0; p < len(s); p = ForwardBoundary(s, p) {
		n++
	}
	return n
}

// cstring returns s up to, but not including, its first NUL byte.
func cstring(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] == 0 {
			return s[:i]
		}
	}
	return s
}
