package store

import (
	"log/slog"

	"github.com/linneanarhi/internal-dashboard/internal/domain/entities"
	"github.com/linneanarhi/internal-dashboard/internal/usecase/interfaces"
)

// QuoteStore owns the quote collection.
type QuoteStore struct {
	*collection[entities.Quote]
}

var _ interfaces.IQuoteStore = (*QuoteStore)(nil)

func NewQuoteStore(cache BlobCache, log *slog.Logger) *QuoteStore {
	return &QuoteStore{
		collection: newCollection(cache, QuotesCacheKey,
			func(q entities.Quote) string { return q.ID }, log),
	}
}

// ListByCustomer returns the customer's quotes, newest first.
func (s *QuoteStore) ListByCustomer(customerID string) []entities.Quote {
	var out []entities.Quote
	for _, q := range s.Snapshot() {
		if q.CustomerID == customerID {
			out = append(out, q)
		}
	}
	return out
}
