package source

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"sentilex/internal/adapter/analyzer"
	"sentilex/internal/adapter/fs"
	"sentilex/internal/domain"
)

const maxLineSize = 1 << 20

// ReviewLoader reads "text,rating" CSV rows. The first line is a header.
// Rows that do not parse are skipped and counted.
type ReviewLoader struct {
	capacity int
	log      *slog.Logger
}

func NewReviewLoader(capacity int, log *slog.Logger) *ReviewLoader {
	if log == nil {
		log = slog.Default()
	}
	return &ReviewLoader{capacity: capacity, log: log}
}

func (l *ReviewLoader) LoadFile(path string) (*Corpus, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	corpus, err := l.Load(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read reviews from %s: %w", path, err)
	}
	l.log.Info("reviews loaded", "path", path, "reviews", corpus.Len(), "skipped", corpus.Skipped(), "words", corpus.TotalWords())
	return corpus, nil
}

func (l *ReviewLoader) Load(r io.Reader) (*Corpus, error) {
	corpus, err := NewCorpus(l.capacity)
	if err != nil {
		return nil, err
	}

	br := bufio.NewReader(r)
	for lineNo := 1; ; lineNo++ {
		raw, readErr := br.ReadString('\n')
		if raw != "" && lineNo > 1 {
			l.addRow(corpus, raw, lineNo)
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return nil, readErr
		}
	}
	return corpus, nil
}

func (l *ReviewLoader) addRow(corpus *Corpus, raw string, lineNo int) {
	line := strings.TrimRight(raw, "\r\n")
	if strings.TrimSpace(line) == "" {
		return
	}
	if len(line) > maxLineSize {
		corpus.skipped++
		l.log.Debug("skipping review row", "line", lineNo, "error", fmt.Errorf("%w: row exceeds %d bytes", domain.ErrMalformedRecord, maxLineSize))
		return
	}

	text, rating, err := ParseRecord(line)
	if err != nil {
		corpus.skipped++
		l.log.Debug("skipping review row", "line", lineNo, "error", err)
		return
	}
	corpus.Add(text, rating, analyzer.CountWords(text))
}

// ParseRecord parses one CSV row into review text and rating. The rating is
// the last field; any earlier fields form the text, so unquoted commas in
// the text are kept.
func ParseRecord(line string) (string, int, error) {
	cr := csv.NewReader(strings.NewReader(line))
	cr.FieldsPerRecord = -1

	fields, err := cr.Read()
	if err != nil {
		return "", 0, fmt.Errorf("%w: %v", domain.ErrMalformedRecord, err)
	}
	if len(fields) < 2 {
		return "", 0, fmt.Errorf("%w: expected text and rating, got %d field(s)", domain.ErrMalformedRecord, len(fields))
	}

	last := len(fields) - 1
	rating, err := strconv.Atoi(strings.TrimSpace(fields[last]))
	if err != nil {
		return "", 0, fmt.Errorf("%w: rating %q is not a number", domain.ErrMalformedRecord, fields[last])
	}

	text := strings.TrimSpace(strings.Join(fields[:last], ","))
	if text == "" {
		return "", 0, fmt.Errorf("%w: empty review text", domain.ErrMalformedRecord)
	}
	return text, rating, nil
}
