package usecase

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"sentilex/internal/domain"
	"sentilex/internal/port"
)

// Agreement compares each review's rounded score with its user rating.
func Agreement(corpus port.Corpus, lexicon port.Lexicon) domain.Agreement {
	n := corpus.Len()
	result := domain.Agreement{Reviews: n}
	if n == 0 {
		return result
	}

	scores := make([]float64, 0, n)
	ratings := make([]float64, 0, n)
	for review := range corpus.All() {
		s := ScoreReview(review.Text, lexicon)
		rounded := RoundScore(SentimentScore(s.PositiveCount, s.NegativeCount))

		if rounded == review.Rating {
			result.ExactMatches++
		}
		if ClassifyRating(rounded) == ClassifyRating(review.Rating) {
			result.LabelMatches++
		}
		scores = append(scores, float64(rounded))
		ratings = append(ratings, float64(review.Rating))
	}

	result.MeanAbsoluteError = floats.Distance(scores, ratings, 1) / float64(n)
	result.MeanScore = stat.Mean(scores, nil)
	result.MeanRating = stat.Mean(ratings, nil)

	// Undefined when either side has no variance.
	if corr := stat.Correlation(scores, ratings, nil); !math.IsNaN(corr) && !math.IsInf(corr, 0) {
		result.Correlation = corr
	}
	return result
}
