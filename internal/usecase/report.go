package usecase

import (
	"fmt"
	"time"

	"sentilex/internal/domain"
	"sentilex/internal/port"
)

// ReportUseCase builds single-review reports and corpus summaries.
type ReportUseCase struct {
	corpus  port.Corpus
	lexicon port.Lexicon
	now     func() time.Time
}

func NewReportUseCase(corpus port.Corpus, lexicon port.Lexicon) *ReportUseCase {
	return &ReportUseCase{corpus: corpus, lexicon: lexicon, now: time.Now}
}

// AnalyzeReview scores the review at a 1-based ordinal.
func (u *ReportUseCase) AnalyzeReview(ordinal int) (domain.ReviewReport, error) {
	start := u.now()

	if ordinal < 1 || ordinal > u.corpus.Len() {
		return domain.ReviewReport{}, fmt.Errorf("%w: review number must be between 1 and %d", domain.ErrInvalidSelection, u.corpus.Len())
	}
	review, err := u.corpus.Review(ordinal)
	if err != nil {
		return domain.ReviewReport{}, err
	}

	score := ScoreReview(review.Text, u.lexicon)
	sentiment := SentimentScore(score.PositiveCount, score.NegativeCount)
	rounded := RoundScore(sentiment)

	return domain.ReviewReport{
		Ordinal:    review.Ordinal,
		Text:       review.Text,
		Score:      score,
		Sentiment:  sentiment,
		Rounded:    rounded,
		Label:      ClassifyRating(rounded),
		UserRating: review.Rating,
		Elapsed:    u.now().Sub(start),
	}, nil
}

// Summarize reports corpus totals for a completed batch pass.
func (u *ReportUseCase) Summarize(set *MatchSet, elapsed time.Duration) domain.Summary {
	return domain.Summary{
		TotalReviews:    u.corpus.Len(),
		TotalWords:      u.corpus.TotalWords(),
		PositiveMatches: set.PositiveMatches(),
		NegativeMatches: set.NegativeMatches(),
		Skipped:         u.corpus.Skipped(),
		Elapsed:         elapsed,
	}
}
