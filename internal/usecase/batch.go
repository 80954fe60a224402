package usecase

import (
	"log/slog"

	"sentilex/internal/adapter/analyzer"
	"sentilex/internal/domain"
	"sentilex/internal/port"
)

// ProgressFunc is called after each review with the number processed so far.
type ProgressFunc func(done, total int)

// MatchSet is the result of one pass over the corpus.
type MatchSet struct {
	Records []domain.MatchRecord

	positive map[int]int
	negative map[int]int
	posTotal int
	negTotal int
}

func newMatchSet(size int) *MatchSet {
	return &MatchSet{
		Records:  make([]domain.MatchRecord, 0, size),
		positive: make(map[int]int),
		negative: make(map[int]int),
	}
}

func (m *MatchSet) add(rec domain.MatchRecord) {
	m.Records = append(m.Records, rec)
	for _, i := range rec.Positive {
		m.positive[i]++
	}
	for _, i := range rec.Negative {
		m.negative[i]++
	}
	m.posTotal += len(rec.Positive)
	m.negTotal += len(rec.Negative)
}

// Frequency returns how often the lexicon entry at index matched across the
// corpus.
func (m *MatchSet) Frequency(p domain.Polarity, index int) int {
	switch p {
	case domain.Positive:
		return m.positive[index]
	case domain.Negative:
		return m.negative[index]
	default:
		return 0
	}
}

func (m *MatchSet) PositiveMatches() int { return m.posTotal }

func (m *MatchSet) NegativeMatches() int { return m.negTotal }

// BatchUseCase matches every review of a corpus against the lexicon.
type BatchUseCase struct {
	lexicon port.Lexicon
	log     *slog.Logger
}

func NewBatchUseCase(lexicon port.Lexicon, log *slog.Logger) *BatchUseCase {
	if log == nil {
		log = slog.Default()
	}
	return &BatchUseCase{lexicon: lexicon, log: log}
}

// AnalyzeAll records, per review, the index of every token found in either
// lexicon set. Tokens are only lowercased, so "nice," does not match "nice".
// A word present in both sets is recorded in both.
func (u *BatchUseCase) AnalyzeAll(corpus port.Corpus, progress ProgressFunc) *MatchSet {
	total := corpus.Len()
	set := newMatchSet(total)

	done := 0
	for review := range corpus.All() {
		rec := domain.MatchRecord{Ordinal: review.Ordinal}
		for word := range analyzer.Words(review.Text, analyzer.LowerOnly) {
			if i, ok := u.lexicon.PositiveIndex(word); ok {
				rec.Positive = append(rec.Positive, i)
			}
			if i, ok := u.lexicon.NegativeIndex(word); ok {
				rec.Negative = append(rec.Negative, i)
			}
		}
		set.add(rec)

		done++
		if progress != nil {
			progress(done, total)
		}
	}

	u.log.Debug("batch pass complete", "reviews", total, "positive", set.posTotal, "negative", set.negTotal)
	return set
}

// Listing returns each word of polarity p with its match count, in lexicon
// order, omitting words that never matched.
func (u *BatchUseCase) Listing(set *MatchSet, p domain.Polarity) []domain.WordCount {
	words := u.lexicon.Words(p)
	if words == nil {
		return nil
	}
	var out []domain.WordCount
	for i, w := range words.All() {
		if n := set.Frequency(p, i); n > 0 {
			out = append(out, domain.WordCount{Word: w, Count: n})
		}
	}
	return out
}
