package analyzer

import (
	"iter"
	"strings"
	"unicode"
)

// Tokenize splits text on whitespace. Tokens are returned raw; callers pick
// the normalization. The sequence can be ranged over any number of times.
func Tokenize(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		start := -1
		for i, r := range text {
			if unicode.IsSpace(r) {
				if start >= 0 {
					if !yield(text[start:i]) {
						return
					}
					start = -1
				}
				continue
			}
			if start < 0 {
				start = i
			}
		}
		if start >= 0 {
			yield(text[start:])
		}
	}
}

// CountWords returns the number of whitespace-separated tokens in text.
func CountWords(text string) int {
	n := 0
	for range Tokenize(text) {
		n++
	}
	return n
}

// Normalize keeps the letters and digits of word, lowercased. A token made
// only of punctuation normalizes to "".
func Normalize(word string) string {
	var b strings.Builder
	b.Grow(len(word))
	for _, r := range word {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// LowerOnly lowercases word and leaves punctuation in place.
func LowerOnly(word string) string {
	return strings.ToLower(word)
}

// Normalizer maps a raw token to its matching form.
type Normalizer func(string) string

// Words tokenizes text and applies norm to every token.
func Words(text string, norm Normalizer) iter.Seq[string] {
	return func(yield func(string) bool) {
		for tok := range Tokenize(text) {
			if !yield(norm(tok)) {
				return
			}
		}
	}
}
