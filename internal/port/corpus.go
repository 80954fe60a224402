package port

import (
	"iter"

	"sentilex/internal/domain"
)

// Corpus is the loaded, read-only review set.
type Corpus interface {
	Len() int

	// Review returns the review at a 1-based ordinal.
	Review(ordinal int) (domain.Review, error)

	All() iter.Seq[domain.Review]

	TotalWords() int

	// Skipped is the number of rows dropped as malformed during load.
	Skipped() int
}
