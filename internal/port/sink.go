package port

import "sentilex/internal/domain"

// Sink renders analysis results.
type Sink interface {
	Review(r domain.ReviewReport) error

	Summary(s domain.Summary) error

	// Words renders a frequency listing in lexicon order.
	Words(words []domain.WordCount) error

	Agreement(a domain.Agreement) error
}

// Screen is the terminal area a Sink draws on.
type Screen interface {
	Clear()
}
