package port

import (
	"sentilex/internal/domain"
	"sentilex/internal/domain/collection"
)

type Lexicon interface {
	Classify(word string) domain.Polarity

	PositiveIndex(word string) (int, bool)

	NegativeIndex(word string) (int, bool)

	Words(p domain.Polarity) *collection.Sorted[string]
}
