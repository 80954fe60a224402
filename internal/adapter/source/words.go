package source

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"sentilex/internal/adapter/fs"
)

// ReadWords returns every whitespace-separated token of r. Lines starting
// with ';' are comments.
func ReadWords(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(strings.TrimSpace(line), ";") {
			continue
		}
		words = append(words, strings.Fields(line)...)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

func ReadWordsFile(path string, log *slog.Logger) ([]string, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	words, err := ReadWords(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read word list %s: %w", path, err)
	}
	if log != nil {
		log.Info("word list loaded", "path", path, "words", len(words))
	}
	return words, nil
}
