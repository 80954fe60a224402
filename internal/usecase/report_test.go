package usecase

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sentilex/internal/adapter/lexicon"
	"sentilex/internal/adapter/source"
	"sentilex/internal/domain"
)

func TestAnalyzeReview_MixedReview(t *testing.T) {
	lex := lexicon.Build([]string{"great", "nice"}, []string{"bad"})
	corpus := newTestCorpus(t, testReview{"This is a great and nice place, not bad at all", 4})

	report, err := NewReportUseCase(corpus, lex).AnalyzeReview(1)
	require.NoError(t, err)

	assert.Equal(t, 2, report.Score.PositiveCount)
	assert.Equal(t, 1, report.Score.NegativeCount)
	assert.InDelta(t, 3.6667, report.Sentiment, 1e-3)
	assert.Equal(t, 4, report.Rounded)
	assert.Equal(t, domain.Positive, report.Label)
	assert.Equal(t, 4, report.UserRating)
	assert.Equal(t, 1, report.Ordinal)
}

func TestAnalyzeReview_NoMatches(t *testing.T) {
	corpus := newTestCorpus(t, testReview{"The hotel is near the station", 3})

	report, err := NewReportUseCase(corpus, newTestLexicon()).AnalyzeReview(1)
	require.NoError(t, err)
	assert.Equal(t, 3.0, report.Sentiment)
	assert.Equal(t, 3, report.Rounded)
	assert.Equal(t, domain.Neutral, report.Label)
}

func TestAnalyzeReview_InvalidOrdinal(t *testing.T) {
	uc := NewReportUseCase(newTestCorpus(t, testReview{"nice", 5}), newTestLexicon())
	for _, ordinal := range []int{0, -3, 2} {
		_, err := uc.AnalyzeReview(ordinal)
		assert.ErrorIs(t, err, domain.ErrInvalidSelection, "ordinal %d", ordinal)
	}
}

func TestAnalyzeReview_Elapsed(t *testing.T) {
	uc := NewReportUseCase(newTestCorpus(t, testReview{"nice", 5}), newTestLexicon())
	base := time.Unix(1000, 0)
	calls := 0
	uc.now = func() time.Time {
		calls++
		return base.Add(time.Duration(calls) * 250 * time.Microsecond)
	}

	report, err := uc.AnalyzeReview(1)
	require.NoError(t, err)
	assert.Equal(t, 250*time.Microsecond, report.Elapsed)
}

func TestSummarize_MalformedRowExcluded(t *testing.T) {
	input := strings.Join([]string{
		"Review,Rating",
		`"great stay",5`,
		`"broken row,4`,
		`"bad bad room",1`,
	}, "\n")
	corpus, err := source.NewReviewLoader(10, nil).Load(strings.NewReader(input))
	require.NoError(t, err)

	lex := newTestLexicon()
	set := NewBatchUseCase(lex, nil).AnalyzeAll(corpus, nil)
	summary := NewReportUseCase(corpus, lex).Summarize(set, 12*time.Millisecond)

	assert.Equal(t, domain.Summary{
		TotalReviews:    2,
		TotalWords:      5,
		PositiveMatches: 1,
		NegativeMatches: 2,
		Skipped:         1,
		Elapsed:         12 * time.Millisecond,
	}, summary)
}
