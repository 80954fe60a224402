package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"sentilex/config"
)

const testReviews = `Review,Rating
"This is a great and nice place, not bad at all",4
"dirty room, bad service. bad!",1
"broken row,3
the view was great,5
`

// writeFixtures creates the default source files in a temp dir.
func writeFixtures(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"positive-words.txt":            "; positive lexicon\ngreat\nnice\nClean\n",
		"negative-words.txt":            "; negative lexicon\nbad\ndirty\n",
		"tripadvisor_hotel_reviews.csv": testReviews,
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
	return dir
}

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.UI.ClearScreen = false
	cfg.UI.ProgressBar = false
	cfg.UI.PauseListing = false
	return cfg
}

func openTestSession(t *testing.T) *session {
	t.Helper()
	s, err := openSession(testConfig(), writeFixtures(t))
	require.NoError(t, err)
	return s
}
