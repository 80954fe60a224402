package source

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sentilex/internal/domain"
)

func TestParseRecord(t *testing.T) {
	tests := []struct {
		line   string
		text   string
		rating int
	}{
		{`"Great hotel, nice staff",5`, "Great hotel, nice staff", 5},
		{`bad stay,1`, "bad stay", 1},
		{`ok,fine,3`, "ok,fine", 3},
		{`"quoted ""word"" here", 4 `, `quoted "word" here`, 4},
	}
	for _, tt := range tests {
		text, rating, err := ParseRecord(tt.line)
		require.NoError(t, err, tt.line)
		assert.Equal(t, tt.text, text)
		assert.Equal(t, tt.rating, rating)
	}
}

func TestParseRecord_Malformed(t *testing.T) {
	for _, line := range []string{
		`"unbalanced quote,5`,
		`bare "quote" inside,2`,
		`no rating here`,
		`text,five`,
		`,3`,
	} {
		_, _, err := ParseRecord(line)
		assert.ErrorIs(t, err, domain.ErrMalformedRecord, "line %q", line)
	}
}

func TestLoad_SkipsHeaderAndMalformedRows(t *testing.T) {
	input := strings.Join([]string{
		"Review,Rating",
		`"great and nice place",5`,
		`"unbalanced,4`,
		``,
		"terrible room,1\r",
		`not a row`,
	}, "\n")

	corpus, err := NewReviewLoader(2, nil).Load(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 2, corpus.Len())
	assert.Equal(t, 2, corpus.Skipped())
	assert.Equal(t, 6, corpus.TotalWords())

	r, err := corpus.Review(2)
	require.NoError(t, err)
	assert.Equal(t, domain.Review{Ordinal: 2, Text: "terrible room", Rating: 1}, r)

	_, err = corpus.Review(0)
	assert.ErrorIs(t, err, domain.ErrIndexOutOfRange)
	_, err = corpus.Review(3)
	assert.ErrorIs(t, err, domain.ErrIndexOutOfRange)

	var ordinals []int
	for r := range corpus.All() {
		ordinals = append(ordinals, r.Ordinal)
	}
	assert.Equal(t, []int{1, 2}, ordinals)
}

func TestLoad_SkipsOversizedRow(t *testing.T) {
	input := "Review,Rating\n" +
		strings.Repeat("a", maxLineSize+10) + ",3\n" +
		"clean room,4\n"

	corpus, err := NewReviewLoader(2, nil).Load(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 1, corpus.Len())
	assert.Equal(t, 1, corpus.Skipped())
	r, err := corpus.Review(1)
	require.NoError(t, err)
	assert.Equal(t, "clean room", r.Text)
}

func TestLoad_HeaderOnly(t *testing.T) {
	corpus, err := NewReviewLoader(10, nil).Load(strings.NewReader(`"good",5`))
	require.NoError(t, err)
	assert.Equal(t, 0, corpus.Len())
}

func TestLoad_InvalidCapacity(t *testing.T) {
	_, err := NewReviewLoader(0, nil).Load(strings.NewReader(""))
	assert.ErrorIs(t, err, domain.ErrInvalidCapacity)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := NewReviewLoader(10, nil).LoadFile(filepath.Join(t.TempDir(), "reviews.csv"))
	assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
}

func TestReadWords(t *testing.T) {
	input := "; opinion lexicon header\n;\nGood  great\nnice\n\n  a+\n"
	words, err := ReadWords(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"Good", "great", "nice", "a+"}, words)
}

func TestReadWordsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "negative-words.txt")
	require.NoError(t, os.WriteFile(path, []byte("bad\nworse\n"), 0644))

	words, err := ReadWordsFile(path, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"bad", "worse"}, words)

	_, err = ReadWordsFile(path+".missing", nil)
	assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
}
