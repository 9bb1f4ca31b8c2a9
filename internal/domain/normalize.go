package domain

import "strings"

// NormalizeWord folds a dictionary word to its lookup key. Only case is folded:
// punctuation, digits, variant markers and surrounding whitespace are preserved,
// so "A(2)" becomes "a(2)" and " cat" stays distinct from "cat".
func NormalizeWord(word string) string {
	return strings.ToLower(word)
}
