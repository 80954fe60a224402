package usecase

import (
	"testing"

	"github.com/stretchr/testify/require"

	"sentilex/internal/adapter/analyzer"
	"sentilex/internal/adapter/lexicon"
	"sentilex/internal/adapter/source"
)

type testReview struct {
	text   string
	rating int
}

func newTestCorpus(t *testing.T, reviews ...testReview) *source.Corpus {
	t.Helper()
	c, err := source.NewCorpus(4)
	require.NoError(t, err)
	for _, r := range reviews {
		c.Add(r.text, r.rating, analyzer.CountWords(r.text))
	}
	return c
}

func newTestLexicon() *lexicon.Lexicon {
	return lexicon.Build([]string{"great", "nice", "clean"}, []string{"bad", "dirty", "noisy"})
}
