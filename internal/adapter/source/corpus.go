package source

import (
	"fmt"
	"iter"

	"sentilex/internal/domain"
	"sentilex/internal/domain/collection"
)

// Corpus stores review texts and ratings in parallel collections.
type Corpus struct {
	texts      *collection.OrderedCollection[string]
	ratings    *collection.OrderedCollection[int]
	totalWords int
	skipped    int
}

// NewCorpus creates an empty corpus with the given initial capacity.
func NewCorpus(capacity int) (*Corpus, error) {
	texts, err := collection.New[string](capacity)
	if err != nil {
		return nil, err
	}
	ratings, err := collection.New[int](capacity)
	if err != nil {
		return nil, err
	}
	return &Corpus{texts: texts, ratings: ratings}, nil
}

// Add appends a review and returns its ordinal.
func (c *Corpus) Add(text string, rating, words int) int {
	c.texts.Append(text)
	c.ratings.Append(rating)
	c.totalWords += words
	return c.texts.Len()
}

func (c *Corpus) Len() int {
	return c.texts.Len()
}

func (c *Corpus) Review(ordinal int) (domain.Review, error) {
	if ordinal < 1 || ordinal > c.Len() {
		return domain.Review{}, fmt.Errorf("review %d of %d: %w", ordinal, c.Len(), domain.ErrIndexOutOfRange)
	}
	return domain.Review{
		Ordinal: ordinal,
		Text:    c.texts.MustGet(ordinal - 1),
		Rating:  c.ratings.MustGet(ordinal - 1),
	}, nil
}

func (c *Corpus) All() iter.Seq[domain.Review] {
	return func(yield func(domain.Review) bool) {
		for i, text := range c.texts.All() {
			r := domain.Review{Ordinal: i + 1, Text: text, Rating: c.ratings.MustGet(i)}
			if !yield(r) {
				return
			}
		}
	}
}

func (c *Corpus) TotalWords() int {
	return c.totalWords
}

func (c *Corpus) Skipped() int {
	return c.skipped
}
