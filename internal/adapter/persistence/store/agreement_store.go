package store

import (
	"log/slog"

	"github.com/linneanarhi/internal-dashboard/internal/domain/entities"
	"github.com/linneanarhi/internal-dashboard/internal/usecase/interfaces"
)

// AgreementStore owns the agreement collection.
type AgreementStore struct {
	*collection[entities.Agreement]
}

var _ interfaces.IAgreementStore = (*AgreementStore)(nil)

func NewAgreementStore(cache BlobCache, log *slog.Logger) *AgreementStore {
	return &AgreementStore{
		collection: newCollection(cache, AgreementsCacheKey,
			func(a entities.Agreement) string { return a.ID }, log),
	}
}

// FindPendingByCustomer returns the customer's agreement still waiting
// for setup, if any. The orchestrator reuses it instead of creating a
// second one.
func (s *AgreementStore) FindPendingByCustomer(customerID string) (entities.Agreement, bool) {
	for _, a := range s.Snapshot() {
		if a.CustomerID == customerID && a.Status == entities.AgreementStatusPendingSetup {
			return a, true
		}
	}
	return entities.Agreement{}, false
}

// ListByCustomer returns the customer's agreements, newest first.
func (s *AgreementStore) ListByCustomer(customerID string) []entities.Agreement {
	var out []entities.Agreement
	for _, a := range s.Snapshot() {
		if a.CustomerID == customerID {
			out = append(out, a)
		}
	}
	return out
}
