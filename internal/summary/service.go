package summary

import (
	"errors"
	"fmt"
	"log/slog"

	"explore-places/internal/config"
	"explore-places/internal/providers/wikipedia"
)

// The closed set of summary failure kinds. Callers collapse all of them to
// one fallback string at the presentation boundary, but tests and logs keep
// the causes apart.
var (
	ErrNotFound    = errors.New("no page matches the title")
	ErrAmbiguous   = errors.New("title is a disambiguation page")
	ErrUnavailable = errors.New("summary provider unavailable")
)

// Result is an encyclopedic blurb with its canonical page URL.
type Result struct {
	Text         string
	ReferenceURL string
}

type SummaryProvider interface {
	FetchSummary(title string, sentences int) (*wikipedia.SummaryAPIResponse, error)
}

type Service interface {
	// Summarize returns the summary for a place, or one of ErrNotFound,
	// ErrAmbiguous, ErrUnavailable.
	Summarize(place string) (*Result, error)
}

type summaryService struct {
	provider  SummaryProvider
	sentences int
	logger    *slog.Logger
}

// NewSummaryService creates a summary service with a real Wikipedia client.
func NewSummaryService(cfg *config.Config, logger *slog.Logger) Service {
	return NewSummaryServiceWithProvider(wikipedia.NewClient(logger), cfg.App.SummarySentences, logger)
}

// NewSummaryServiceWithProvider creates a summary service with a custom
// provider. This is useful for testing with mock providers.
func NewSummaryServiceWithProvider(provider SummaryProvider, sentences int, logger *slog.Logger) Service {
	return &summaryService{
		provider:  provider,
		sentences: sentences,
		logger:    logger.With("component", "summary-service"),
	}
}

func (s *summaryService) Summarize(place string) (*Result, error) {
	resp, err := s.provider.FetchSummary(place, s.sentences)
	if err != nil {
		s.logger.Warn("summary fetch failed", "place", place, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	// The action API keys the pages map by page id, with "-1" for a miss.
	// A single title query yields a single entry either way.
	for _, page := range resp.Query.Pages {
		if page.Missing != nil {
			return nil, ErrNotFound
		}
		if page.PageProps.Disambiguation != nil {
			return nil, ErrAmbiguous
		}
		if page.Extract == "" {
			return nil, ErrNotFound
		}
		return &Result{
			Text:         page.Extract,
			ReferenceURL: page.FullURL,
		}, nil
	}

	return nil, ErrNotFound
}
