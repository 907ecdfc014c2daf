package interfaces

import (
	"github.com/linneanarhi/internal-dashboard/internal/domain/entities"
)

// Store interfaces consumed by the lifecycle use case. Concrete
// implementations live in internal/adapter/persistence/store; the use
// case only needs lookup and mutation, so subscription feeds are not
// part of these contracts.
//
// Patch applies the mutation to a copy of the record and stores it back
// as a full replacement; it reports false, without side effects, when
// the id is unknown.

//go:generate mockgen -source=store_interfaces.go -destination=mocks/store_mocks.go -package=mock_interfaces

type ICustomerStore interface {
	GetByID(id string) (entities.Customer, bool)
	FindByCompanyID(companyID int) (entities.Customer, bool)
	Snapshot() []entities.Customer
	Upsert(c entities.Customer)
	Patch(id string, mutate func(*entities.Customer)) bool
}

type IQuoteStore interface {
	GetByID(id string) (entities.Quote, bool)
	Snapshot() []entities.Quote
	Upsert(q entities.Quote)
	Patch(id string, mutate func(*entities.Quote)) bool
}

type IAgreementStore interface {
	GetByID(id string) (entities.Agreement, bool)
	FindPendingByCustomer(customerID string) (entities.Agreement, bool)
	ListByCustomer(customerID string) []entities.Agreement
	Snapshot() []entities.Agreement
	Upsert(a entities.Agreement)
	Patch(id string, mutate func(*entities.Agreement)) bool
}

type ISetupStore interface {
	GetByCustomer(customerID string) (entities.TechnicalSetup, bool)
	Snapshot() []entities.TechnicalSetup
	Upsert(s entities.TechnicalSetup)
	Patch(customerID string, mutate func(*entities.TechnicalSetup)) bool
}
