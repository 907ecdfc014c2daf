package store

import (
	"log/slog"

	"github.com/linneanarhi/internal-dashboard/internal/domain/entities"
	"github.com/linneanarhi/internal-dashboard/internal/usecase/interfaces"
)

// CustomerStore owns the customer collection.
type CustomerStore struct {
	*collection[entities.Customer]
}

var _ interfaces.ICustomerStore = (*CustomerStore)(nil)

func NewCustomerStore(cache BlobCache, log *slog.Logger) *CustomerStore {
	return &CustomerStore{
		collection: newCollection(cache, CustomersCacheKey,
			func(c entities.Customer) string { return c.ID }, log),
	}
}

// FindByCompanyID resolves a customer by the external company
// identifier, so a new quote for a known company reuses the customer.
func (s *CustomerStore) FindByCompanyID(companyID int) (entities.Customer, bool) {
	for _, c := range s.Snapshot() {
		if c.CompanyID == companyID {
			return c, true
		}
	}
	return entities.Customer{}, false
}
