package services

import (
	"math/rand/v2"
)

// FallbackQuote is returned when the reference set is empty; an empty
// quotes table is degraded behavior, not a failure.
const FallbackQuote = "Keep pushing forward!"

// QuoteService serves milestone quotes. Quotes are reference data with no
// owner, so nothing here is identity-scoped.
type QuoteService struct {
	repo QuoteRepository
}

// NewQuoteService creates a new quote service
func NewQuoteService(repo QuoteRepository) *QuoteService {
	return &QuoteService{repo: repo}
}

// Random picks one quote uniformly from the full reference set. Selection
// is independent across calls.
func (qs *QuoteService) Random() (string, error) {
	quotes, err := qs.repo.GetQuotes()
	if err != nil {
		return "", err
	}
	if len(quotes) == 0 {
		return FallbackQuote, nil
	}

	return quotes[rand.IntN(len(quotes))].Quote, nil
}
