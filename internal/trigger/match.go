package trigger

import (
	"unicode"
	"unicode/utf8"
)

// find returns the byte span of the first occurrence of pattern in text
// that satisfies policy. Comparison is case-insensitive and works on the
// original text so the span can be used to slice it.
func find(text, pattern string, policy MatchPolicy) (start, end int, ok bool) {
	if pattern == "" {
		return 0, 0, false
	}
	for i := 0; i < len(text); {
		if e, matched := matchAt(text, i, pattern); matched {
			if policy != MatchWordBoundary || onBoundary(text, i, e, pattern) {
				return i, e, true
			}
		}
		_, size := utf8.DecodeRuneInString(text[i:])
		i += size
	}
	return 0, 0, false
}

// matchAt compares pattern with text starting at byte i, rune by rune.
func matchAt(text string, i int, pattern string) (int, bool) {
	j := i
	for _, pr := range pattern {
		if j >= len(text) {
			return 0, false
		}
		tr, size := utf8.DecodeRuneInString(text[j:])
		if !equalFold(tr, pr) {
			return 0, false
		}
		j += size
	}
	return j, true
}

func equalFold(a, b rune) bool {
	if a == b {
		return true
	}
	return unicode.ToLower(a) == unicode.ToLower(b) || unicode.ToUpper(a) == unicode.ToUpper(b)
}

// onBoundary checks that a word character at either edge of the match is
// not continued by another word character in text.
func onBoundary(text string, start, end int, pattern string) bool {
	first, _ := utf8.DecodeRuneInString(pattern)
	if isWord(first) && start > 0 {
		prev, _ := utf8.DecodeLastRuneInString(text[:start])
		if isWord(prev) {
			return false
		}
	}
	last, _ := utf8.DecodeLastRuneInString(pattern)
	if isWord(last) && end < len(text) {
		next, _ := utf8.DecodeRuneInString(text[end:])
		if isWord(next) {
			return false
		}
	}
	return true
}

func isWord(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
