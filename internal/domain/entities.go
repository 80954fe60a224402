package domain

import (
	"fmt"
	"strings"
	"time"
)

// Polarity is the sentiment class of a word or a review.
type Polarity int

const (
	Neutral Polarity = iota
	Positive
	Negative
)

func (p Polarity) String() string {
	switch p {
	case Positive:
		return "Positive"
	case Negative:
		return "Negative"
	default:
		return "Neutral"
	}
}

func (p Polarity) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// ParsePolarity accepts "positive"/"pos" and "negative"/"neg" in any case.
func ParsePolarity(s string) (Polarity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "positive", "pos":
		return Positive, nil
	case "negative", "neg":
		return Negative, nil
	default:
		return Neutral, fmt.Errorf("%w: unknown polarity %q", ErrInvalidSelection, s)
	}
}

// Review is a single corpus entry. Ordinal is 1-based.
type Review struct {
	Ordinal int
	Text    string
	Rating  int
}

type ReviewScore struct {
	PositiveCount int
	NegativeCount int
	PositiveWords []string
	NegativeWords []string
}

// MatchRecord holds the lexicon indices a review matched, by polarity.
type MatchRecord struct {
	Ordinal  int
	Positive []int
	Negative []int
}

type ReviewReport struct {
	Ordinal    int           `json:"ordinal"`
	Text       string        `json:"text"`
	Score      ReviewScore   `json:"score"`
	Sentiment  float64       `json:"sentiment"`
	Rounded    int           `json:"rounded"`
	Label      Polarity      `json:"label"`
	UserRating int           `json:"user_rating"`
	Elapsed    time.Duration `json:"elapsed"`
}

type Summary struct {
	TotalReviews    int           `json:"total_reviews"`
	TotalWords      int           `json:"total_words"`
	PositiveMatches int           `json:"positive_matches"`
	NegativeMatches int           `json:"negative_matches"`
	Skipped         int           `json:"skipped"`
	Elapsed         time.Duration `json:"elapsed"`
}

type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Agreement compares computed scores with the ratings users gave.
type Agreement struct {
	Reviews           int     `json:"reviews"`
	ExactMatches      int     `json:"exact_matches"`
	LabelMatches      int     `json:"label_matches"`
	MeanAbsoluteError float64 `json:"mean_absolute_error"`
	MeanScore         float64 `json:"mean_score"`
	MeanRating        float64 `json:"mean_rating"`
	Correlation       float64 `json:"correlation"`
}
