package store

import (
	"log/slog"

	"github.com/linneanarhi/internal-dashboard/internal/domain/entities"
	"github.com/linneanarhi/internal-dashboard/internal/usecase/interfaces"
)

// SetupStore owns the technical setup collection. Setups are keyed by
// customer id: exactly one record per customer.
type SetupStore struct {
	*collection[entities.TechnicalSetup]
}

var _ interfaces.ISetupStore = (*SetupStore)(nil)

func NewSetupStore(cache BlobCache, log *slog.Logger) *SetupStore {
	return &SetupStore{
		collection: newCollection(cache, SetupsCacheKey,
			func(s entities.TechnicalSetup) string { return s.CustomerID }, log),
	}
}

// GetByCustomer returns the customer's setup record, if any.
func (s *SetupStore) GetByCustomer(customerID string) (entities.TechnicalSetup, bool) {
	return s.GetByID(customerID)
}
