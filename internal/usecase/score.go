package usecase

import (
	"math"

	"sentilex/internal/adapter/analyzer"
	"sentilex/internal/domain"
	"sentilex/internal/port"
)

// NeutralScore is the score of a review with no lexicon evidence either way.
const NeutralScore = 3.0

// ScoreReview counts the positive and negative words of text. Tokens are
// fully normalized before lookup and every occurrence is recorded.
func ScoreReview(text string, lex port.Lexicon) domain.ReviewScore {
	var s domain.ReviewScore
	for word := range analyzer.Words(text, analyzer.Normalize) {
		switch lex.Classify(word) {
		case domain.Positive:
			s.PositiveWords = append(s.PositiveWords, word)
			s.PositiveCount++
		case domain.Negative:
			s.NegativeWords = append(s.NegativeWords, word)
			s.NegativeCount++
		}
	}
	return s
}

// SentimentScore maps the positive/negative balance onto [1, 5]. The raw
// score p-n ranges over [-N, N] with N = p+n and is scaled linearly, so a
// balanced review scores exactly 3.
func SentimentScore(positive, negative int) float64 {
	n := positive + negative
	if n == 0 {
		return NeutralScore
	}
	raw := positive - negative
	normalized := float64(raw+n) / float64(2*n)
	return 1 + 4*normalized
}

// RoundScore rounds half away from zero, so 2.5 becomes 3.
func RoundScore(score float64) int {
	return int(math.Round(score))
}

func ClassifyRating(rounded int) domain.Polarity {
	switch {
	case rounded >= 4:
		return domain.Positive
	case rounded <= 2:
		return domain.Negative
	default:
		return domain.Neutral
	}
}
