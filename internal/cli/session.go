package cli

import (
	"fmt"
	"io"
	"os"

	"sentilex/config"
	"sentilex/internal/adapter/console"
	"sentilex/internal/adapter/fs"
	"sentilex/internal/adapter/lexicon"
	"sentilex/internal/adapter/source"
	"sentilex/internal/logger"
	"sentilex/internal/port"
	"sentilex/internal/usecase"
)

// session is the loaded lexicon and corpus with the use cases over them.
type session struct {
	lexicon *lexicon.Lexicon
	corpus  *source.Corpus
	batch   *usecase.BatchUseCase
	reports *usecase.ReportUseCase
}

// openSession resolves the configured sources under root and loads them.
// Any failure here is fatal for the command.
func openSession(cfg *config.Config, root string) (*session, error) {
	log := logger.WithComponent("loader")
	resolver := fs.NewResolver(root)

	positivePath, err := resolver.Resolve(cfg.Sources.PositiveWords)
	if err != nil {
		return nil, fmt.Errorf("positive word list: %w", err)
	}
	negativePath, err := resolver.Resolve(cfg.Sources.NegativeWords)
	if err != nil {
		return nil, fmt.Errorf("negative word list: %w", err)
	}
	reviewsPath, err := resolver.Resolve(cfg.Sources.Reviews)
	if err != nil {
		return nil, fmt.Errorf("reviews: %w", err)
	}

	positive, err := source.ReadWordsFile(positivePath, log)
	if err != nil {
		return nil, err
	}
	negative, err := source.ReadWordsFile(negativePath, log)
	if err != nil {
		return nil, err
	}
	lex := lexicon.Build(positive, negative)

	corpus, err := source.NewReviewLoader(cfg.Analysis.InitialCapacity, log).LoadFile(reviewsPath)
	if err != nil {
		return nil, err
	}

	return &session{
		lexicon: lex,
		corpus:  corpus,
		batch:   usecase.NewBatchUseCase(lex, logger.WithComponent("batch")),
		reports: usecase.NewReportUseCase(corpus, lex),
	}, nil
}

// newScreen clears w only when it is a terminal and clearing is enabled.
func newScreen(w io.Writer, enabled bool) port.Screen {
	if f, ok := w.(*os.File); ok {
		return console.NewScreen(f, enabled)
	}
	return console.NopScreen{}
}

func newSink(w io.Writer, asJSON bool, screen port.Screen) port.Sink {
	if asJSON {
		return console.NewJSONSink(w)
	}
	return console.NewTextSink(w, screen)
}
