package usecase

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/linneanarhi/internal-dashboard/internal/domain/entities"
	"github.com/linneanarhi/internal-dashboard/internal/domain/flow"
	"github.com/linneanarhi/internal-dashboard/internal/usecase/interfaces"
)

// Config tunes lifecycle policy.
type Config struct {
	// AutoActivate activates the customer's pending agreement as part
	// of CompleteSetup when the remaining preconditions already hold.
	// Default is off: activation is a separate manual step.
	AutoActivate bool
}

// ILifecycleUseCase exposes the customer lifecycle transitions invoked
// by the presentation layer.
//
// Every transition is monotonic and idempotent: statuses never move
// backwards, and re-invoking a transition whose target state is already
// reached is a no-op success.
type ILifecycleUseCase interface {
	CreateQuote(q entities.Quote) (entities.Quote, error)
	UpdateQuote(q entities.Quote) (entities.Quote, error)
	SendQuote(quoteID string) (entities.Quote, error)
	RejectQuote(quoteID string) (entities.Quote, error)
	ApproveQuote(quoteID string) (agreementID string, err error)
	ConvertQuote(quoteID string) (entities.Quote, error)

	EnsureSetup(customerID string) (entities.TechnicalSetup, error)
	SaveSetup(s entities.TechnicalSetup) (entities.TechnicalSetup, error)
	CompleteSetup(customerID string) (entities.TechnicalSetup, error)

	ActivateAgreement(agreementID string) (entities.Agreement, error)

	FlowState(customerID string) (flow.State, error)
}

// LifecycleUseCase orchestrates the quote → agreement → setup →
// activation flow across the entity stores. Entities are created only
// here, never directly by the presentation layer.
type LifecycleUseCase struct {
	customers  interfaces.ICustomerStore
	quotes     interfaces.IQuoteStore
	agreements interfaces.IAgreementStore
	setups     interfaces.ISetupStore
	cfg        Config
	log        *slog.Logger
	now        func() time.Time
}

var _ ILifecycleUseCase = (*LifecycleUseCase)(nil)

func NewLifecycleUseCase(
	customers interfaces.ICustomerStore,
	quotes interfaces.IQuoteStore,
	agreements interfaces.IAgreementStore,
	setups interfaces.ISetupStore,
	cfg Config,
	log *slog.Logger,
) *LifecycleUseCase {
	if log == nil {
		log = slog.Default()
	}
	return &LifecycleUseCase{
		customers:  customers,
		quotes:     quotes,
		agreements: agreements,
		setups:     setups,
		cfg:        cfg,
		log:        log,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// ApproveQuote moves the quote to APPROVED and guarantees the follow-up
// records exist: a PENDING_SETUP agreement (reused when one is already
// pending, never duplicated) and the setup stub. Returns the id of the
// agreement now driving the flow.
//
// Calling it again on an approved quote returns the same agreement id
// without side effects.
func (u *LifecycleUseCase) ApproveQuote(quoteID string) (string, error) {
	q, ok := u.quotes.GetByID(quoteID)
	if !ok {
		return "", notFound("quote", quoteID)
	}
	if q.CustomerID == "" {
		return "", missingReference("", "quote has no customer id", "quote", quoteID)
	}

	now := u.now()
	if q.Status != entities.QuoteStatusApproved {
		if !q.Status.CanTransitionTo(entities.QuoteStatusApproved) {
			return "", invalidPrecondition("",
				"quote in status "+string(q.Status)+" cannot be approved", "quote", quoteID)
		}
		u.quotes.Patch(quoteID, func(q *entities.Quote) {
			q.Status = entities.QuoteStatusApproved
			if q.ApprovedAt == nil {
				q.ApprovedAt = &now
			}
			q.UpdatedAt = now
		})
	}

	// Always point the customer at the quote that is driving the flow.
	u.customers.Patch(q.CustomerID, func(c *entities.Customer) {
		c.CurrentQuoteID = quoteID
		advanceStage(c, entities.StageQuoteApproved)
	})

	customer, ok := u.customers.GetByID(q.CustomerID)
	if !ok {
		return "", missingReference("", "quote references unknown customer", "customer", q.CustomerID)
	}

	if _, err := u.EnsureSetup(customer.ID); err != nil {
		return "", err
	}

	// Customer already has a current agreement: stop here, approval only
	// advanced the displayed stage.
	if customer.CurrentAgreementID != "" {
		return customer.CurrentAgreementID, nil
	}

	agreement, ok := u.agreements.FindPendingByCustomer(customer.ID)
	if !ok {
		agreement = entities.Agreement{
			ID:         uuid.NewString(),
			CustomerID: customer.ID,
			Status:     entities.AgreementStatusPendingSetup,
			Products:   q.Products,
			CreatedAt:  now,
		}
		u.agreements.Upsert(agreement)
	}

	u.customers.Patch(customer.ID, func(c *entities.Customer) {
		c.CurrentAgreementID = agreement.ID
	})

	u.log.Info("quote approved",
		"quote_id", quoteID, "customer_id", customer.ID, "agreement_id", agreement.ID)
	return agreement.ID, nil
}

// EnsureSetup returns the customer's setup record, creating the
// placeholder stub on first visit.
func (u *LifecycleUseCase) EnsureSetup(customerID string) (entities.TechnicalSetup, error) {
	if _, ok := u.customers.GetByID(customerID); !ok {
		return entities.TechnicalSetup{}, notFound("customer", customerID)
	}
	if s, ok := u.setups.GetByCustomer(customerID); ok {
		return s, nil
	}
	stub := entities.NewSetupStub(customerID)
	u.setups.Upsert(stub)
	return stub, nil
}

// SaveSetup stores edited credentials and data sources. A COMPLETE
// setup never moves back to INCOMPLETE.
func (u *LifecycleUseCase) SaveSetup(s entities.TechnicalSetup) (entities.TechnicalSetup, error) {
	if s.CustomerID == "" {
		return entities.TechnicalSetup{}, missingReference("", "setup has no customer id", "setup", "")
	}
	if _, ok := u.customers.GetByID(s.CustomerID); !ok {
		return entities.TechnicalSetup{}, notFound("customer", s.CustomerID)
	}
	if existing, ok := u.setups.GetByCustomer(s.CustomerID); ok {
		if existing.Status == entities.SetupStatusComplete {
			s.Status = entities.SetupStatusComplete
		}
	}
	u.setups.Upsert(s)
	return s, nil
}

// CompleteSetup marks the customer's technical setup COMPLETE.
// Idempotent once complete. With Config.AutoActivate set, a pending
// agreement whose quote is already approved is activated in the same
// call; when its preconditions do not hold yet the setup still
// completes and activation stays available as a manual step.
func (u *LifecycleUseCase) CompleteSetup(customerID string) (entities.TechnicalSetup, error) {
	if _, ok := u.setups.GetByCustomer(customerID); !ok {
		return entities.TechnicalSetup{}, notFound("setup", customerID)
	}

	u.setups.Patch(customerID, func(s *entities.TechnicalSetup) {
		s.Status = entities.SetupStatusComplete
	})
	setup, _ := u.setups.GetByCustomer(customerID)

	if u.cfg.AutoActivate {
		if customer, ok := u.customers.GetByID(customerID); ok && customer.CurrentAgreementID != "" {
			if _, err := u.ActivateAgreement(customer.CurrentAgreementID); err != nil {
				u.log.Info("setup complete, agreement left for manual activation",
					"customer_id", customerID, "reason", Reason(err))
			}
		}
	}
	return setup, nil
}

// ActivateAgreement is the only transition that sets an agreement
// ACTIVE. Each guard surfaces its own failure reason so the caller can
// say exactly what is still missing.
func (u *LifecycleUseCase) ActivateAgreement(agreementID string) (entities.Agreement, error) {
	if agreementID == "" {
		return entities.Agreement{}, missingReference(ReasonAgreementMissing,
			"no agreement id: the quote was approved without provisioning an agreement", "agreement", "")
	}
	agreement, ok := u.agreements.GetByID(agreementID)
	if !ok {
		return entities.Agreement{}, notFound("agreement", agreementID)
	}
	if agreement.Status == entities.AgreementStatusActive {
		return agreement, nil
	}

	customer, ok := u.customers.GetByID(agreement.CustomerID)
	if !ok {
		return entities.Agreement{}, missingReference("",
			"agreement references unknown customer", "customer", agreement.CustomerID)
	}

	quote, ok := u.quotes.GetByID(customer.CurrentQuoteID)
	if !ok || quote.Status != entities.QuoteStatusApproved {
		return entities.Agreement{}, invalidPrecondition(ReasonQuoteNotApproved,
			"quote must be approved before activation", "quote", customer.CurrentQuoteID)
	}

	setup, ok := u.setups.GetByCustomer(customer.ID)
	if !ok || setup.Status != entities.SetupStatusComplete {
		return entities.Agreement{}, invalidPrecondition(ReasonSetupIncomplete,
			"technical setup is not complete", "setup", customer.ID)
	}

	u.agreements.Patch(agreementID, func(a *entities.Agreement) {
		a.Status = entities.AgreementStatusActive
	})
	u.customers.Patch(customer.ID, func(c *entities.Customer) {
		advanceStage(c, entities.StageActive)
	})

	agreement, _ = u.agreements.GetByID(agreementID)
	u.log.Info("agreement activated", "agreement_id", agreementID, "customer_id", customer.ID)
	return agreement, nil
}

// FlowState assembles the resolver snapshot for one customer via store
// lookups and resolves it. Convenience for the presentation layer; the
// resolver itself stays store-free.
func (u *LifecycleUseCase) FlowState(customerID string) (flow.State, error) {
	customer, ok := u.customers.GetByID(customerID)
	if !ok {
		return flow.Resolve(flow.Snapshot{}), notFound("customer", customerID)
	}

	snap := flow.Snapshot{Customer: &customer}
	if q, ok := u.quotes.GetByID(customer.CurrentQuoteID); ok {
		snap.CurrentQuote = &q
	}
	if a, ok := u.agreements.GetByID(customer.CurrentAgreementID); ok {
		snap.AgreementStatus = a.Status
	}
	if s, ok := u.setups.GetByCustomer(customerID); ok {
		snap.SetupStatus = s.Status
	}
	return flow.Resolve(snap), nil
}

// advanceStage moves the displayed pipeline stage forward, never back.
func advanceStage(c *entities.Customer, stage entities.CustomerStage) {
	if c.Stage.Before(stage) {
		c.Stage = stage
	}
}
