package services

import (
	"errors"
	"testing"

	"worklog/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockQuoteRepository is a mock implementation of QuoteRepository
type MockQuoteRepository struct {
	mock.Mock
}

var _ QuoteRepository = (*MockQuoteRepository)(nil)

func (m *MockQuoteRepository) GetQuotes() ([]models.MilestoneQuote, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MilestoneQuote), args.Error(1)
}

func TestQuoteService_Random(t *testing.T) {
	t.Run("always returns a member of the reference set", func(t *testing.T) {
		repo := new(MockQuoteRepository)
		repo.On("GetQuotes").Return([]models.MilestoneQuote{
			{Quote: "A", SortOrder: 0},
			{Quote: "B", SortOrder: 1},
			{Quote: "C", SortOrder: 2},
		}, nil)

		service := NewQuoteService(repo)
		members := map[string]bool{"A": true, "B": true, "C": true}

		for i := 0; i < 50; i++ {
			quote, err := service.Random()
			require.NoError(t, err)
			assert.True(t, members[quote], "unexpected quote %q", quote)
		}
	})

	t.Run("empty reference set degrades to the fallback", func(t *testing.T) {
		repo := new(MockQuoteRepository)
		repo.On("GetQuotes").Return([]models.MilestoneQuote{}, nil)

		service := NewQuoteService(repo)

		quote, err := service.Random()
		require.NoError(t, err)
		assert.Equal(t, "Keep pushing forward!", quote)
	})

	t.Run("backend failure propagates", func(t *testing.T) {
		repo := new(MockQuoteRepository)
		repo.On("GetQuotes").Return(nil, errors.New("db closed"))

		service := NewQuoteService(repo)

		_, err := service.Random()
		assert.Error(t, err)
	})
}
