package console

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"sentilex/internal/domain"
	"sentilex/internal/port"
)

// TextSink writes human-readable reports.
type TextSink struct {
	out    io.Writer
	screen port.Screen
}

func NewTextSink(out io.Writer, screen port.Screen) *TextSink {
	if screen == nil {
		screen = NopScreen{}
	}
	return &TextSink{out: out, screen: screen}
}

func (s *TextSink) Review(r domain.ReviewReport) error {
	s.screen.Clear()

	var b strings.Builder
	fmt.Fprintf(&b, "Review #%d\n", r.Ordinal)
	fmt.Fprintf(&b, "Comment: %s\n", r.Text)

	fmt.Fprintf(&b, "\nPositive Words = %d\n", r.Score.PositiveCount)
	for _, w := range r.Score.PositiveWords {
		fmt.Fprintf(&b, "~ %s\n", w)
	}
	fmt.Fprintf(&b, "\nNegative Words = %d\n", r.Score.NegativeCount)
	for _, w := range r.Score.NegativeWords {
		fmt.Fprintf(&b, "~ %s\n", w)
	}

	fmt.Fprintf(&b, "\nSentiment Score Rating: %d (%s)\n", r.Rounded, r.Label)
	fmt.Fprintf(&b, "Rating given by user: %d\n", r.UserRating)
	fmt.Fprintf(&b, "Time Taken to Calculate: %dus\n", r.Elapsed.Microseconds())

	_, err := io.WriteString(s.out, b.String())
	return err
}

func (s *TextSink) Summary(sum domain.Summary) error {
	s.screen.Clear()

	var b strings.Builder
	b.WriteString("==== Summary ====\n")
	fmt.Fprintf(&b, "Number of Reviews: %d\n", sum.TotalReviews)
	fmt.Fprintf(&b, "Total Words: %d\n", sum.TotalWords)
	fmt.Fprintf(&b, "Positive Words: %d\n", sum.PositiveMatches)
	fmt.Fprintf(&b, "Negative Words: %d\n", sum.NegativeMatches)
	if sum.Skipped > 0 {
		fmt.Fprintf(&b, "Skipped Rows: %d\n", sum.Skipped)
	}
	fmt.Fprintf(&b, "Time Elapsed: %d ms\n", sum.Elapsed.Milliseconds())

	_, err := io.WriteString(s.out, b.String())
	return err
}

// Words writes "word(count) | ... | NULL".
func (s *TextSink) Words(words []domain.WordCount) error {
	s.screen.Clear()

	var b strings.Builder
	for _, w := range words {
		fmt.Fprintf(&b, "%s(%d) | ", w.Word, w.Count)
	}
	b.WriteString("NULL\n\n")

	_, err := io.WriteString(s.out, b.String())
	return err
}

func (s *TextSink) Agreement(a domain.Agreement) error {
	var b strings.Builder
	b.WriteString("==== Score vs. User Rating ====\n")
	fmt.Fprintf(&b, "Reviews: %d\n", a.Reviews)
	if a.Reviews > 0 {
		fmt.Fprintf(&b, "Exact Matches: %d (%.1f%%)\n", a.ExactMatches, percent(a.ExactMatches, a.Reviews))
		fmt.Fprintf(&b, "Label Matches: %d (%.1f%%)\n", a.LabelMatches, percent(a.LabelMatches, a.Reviews))
	}
	fmt.Fprintf(&b, "Mean Score: %.2f\n", a.MeanScore)
	fmt.Fprintf(&b, "Mean Rating: %.2f\n", a.MeanRating)
	fmt.Fprintf(&b, "Mean Absolute Error: %.2f\n", a.MeanAbsoluteError)
	fmt.Fprintf(&b, "Correlation: %.3f\n", a.Correlation)

	_, err := io.WriteString(s.out, b.String())
	return err
}

func percent(n, total int) float64 {
	return 100 * float64(n) / float64(total)
}

// JSONSink writes each result as an indented JSON document.
type JSONSink struct {
	enc *json.Encoder
}

func NewJSONSink(out io.Writer) *JSONSink {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return &JSONSink{enc: enc}
}

func (s *JSONSink) Review(r domain.ReviewReport) error { return s.enc.Encode(r) }

func (s *JSONSink) Summary(sum domain.Summary) error { return s.enc.Encode(sum) }

func (s *JSONSink) Words(words []domain.WordCount) error {
	if words == nil {
		words = []domain.WordCount{}
	}
	return s.enc.Encode(words)
}

func (s *JSONSink) Agreement(a domain.Agreement) error { return s.enc.Encode(a) }
