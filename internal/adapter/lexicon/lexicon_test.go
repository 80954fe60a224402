package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sentilex/internal/domain"
)

func TestBuild_LowercasesAndSorts(t *testing.T) {
	lex := Build([]string{"Nice", "GREAT", "awesome"}, []string{"Bad"})

	var got []string
	for _, w := range lex.Positive().All() {
		got = append(got, w)
	}
	assert.Equal(t, []string{"awesome", "great", "nice"}, got)

	i, ok := lex.NegativeIndex("bad")
	require.True(t, ok)
	assert.Equal(t, 0, i)
}

func TestClassify(t *testing.T) {
	lex := Build([]string{"great", "nice"}, []string{"bad"})

	tests := []struct {
		word     string
		expected domain.Polarity
	}{
		{"great", domain.Positive},
		{"nice", domain.Positive},
		{"bad", domain.Negative},
		{"place", domain.Neutral},
		{"", domain.Neutral},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, lex.Classify(tt.word), "classify %q", tt.word)
	}
}

func TestClassify_PositiveWinsOverlap(t *testing.T) {
	lex := Build([]string{"cheap"}, []string{"cheap", "dirty"})
	assert.Equal(t, domain.Positive, lex.Classify("cheap"))
	assert.Equal(t, domain.Negative, lex.Classify("dirty"))
}

func TestWords(t *testing.T) {
	lex := Build([]string{"a"}, []string{"b", "c"})
	assert.Equal(t, 1, lex.Words(domain.Positive).Len())
	assert.Equal(t, 2, lex.Words(domain.Negative).Len())
	assert.Nil(t, lex.Words(domain.Neutral))
}
