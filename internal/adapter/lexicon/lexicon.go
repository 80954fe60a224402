// Package lexicon holds the positive and negative sentiment word sets.
package lexicon

import (
	"strings"

	"sentilex/internal/domain"
	"sentilex/internal/domain/collection"
)

// Lexicon is built once and read-only afterwards.
type Lexicon struct {
	positive *collection.Sorted[string]
	negative *collection.Sorted[string]
}

// Build lowercases the raw words of each list and sorts both sets.
func Build(positive, negative []string) *Lexicon {
	return &Lexicon{
		positive: buildSet(positive),
		negative: buildSet(negative),
	}
}

func buildSet(words []string) *collection.Sorted[string] {
	c := collection.NewDefault[string]()
	for _, w := range words {
		c.Append(strings.ToLower(w))
	}
	return c.Sort()
}

// Classify reports the polarity of an already normalized word. A word in
// both lists is Positive.
func (l *Lexicon) Classify(word string) domain.Polarity {
	if l.positive.Contains(word) {
		return domain.Positive
	}
	if l.negative.Contains(word) {
		return domain.Negative
	}
	return domain.Neutral
}

func (l *Lexicon) PositiveIndex(word string) (int, bool) {
	return l.positive.Lookup(word)
}

func (l *Lexicon) NegativeIndex(word string) (int, bool) {
	return l.negative.Lookup(word)
}

func (l *Lexicon) Positive() *collection.Sorted[string] {
	return l.positive
}

func (l *Lexicon) Negative() *collection.Sorted[string] {
	return l.negative
}

// Words returns the set for p, or nil for Neutral.
func (l *Lexicon) Words(p domain.Polarity) *collection.Sorted[string] {
	switch p {
	case domain.Positive:
		return l.positive
	case domain.Negative:
		return l.negative
	default:
		return nil
	}
}
