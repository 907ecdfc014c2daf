package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/linneanarhi/internal-dashboard/internal/domain/entities"
)

// CreateQuote persists a new draft quote and binds it to its customer.
// The customer is resolved by external company id and reused when known
// (profile fields refreshed from the quote); otherwise it is created.
// Derived monetary fields and the customer's displayed quote metrics
// are computed here.
func (u *LifecycleUseCase) CreateQuote(q entities.Quote) (entities.Quote, error) {
	if q.CustomerID == "" && q.CompanyID == 0 {
		return entities.Quote{}, missingReference("",
			"quote needs a customer id or an external company id", "quote", q.ID)
	}

	now := u.now()
	customer, err := u.resolveCustomer(q, now)
	if err != nil {
		return entities.Quote{}, err
	}

	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	if q.Status == "" {
		q.Status = entities.QuoteStatusDraft
	}
	if q.Type == "" {
		q.Type = entities.QuoteTypeNew
	}
	q.CustomerID = customer.ID
	q.CustomerName = customer.Name
	q.CompanyID = customer.CompanyID
	q.Recalculate(now)
	q.CreatedAt = now
	q.UpdatedAt = now

	u.quotes.Upsert(q)
	u.customers.Patch(customer.ID, func(c *entities.Customer) {
		c.CurrentQuoteID = q.ID
		c.MonthsLeft = q.MonthsLeft
		c.ValueLeft = q.ValueLeft
	})

	u.log.Info("quote created", "quote_id", q.ID, "customer_id", customer.ID)
	return q, nil
}

// UpdateQuote applies a free-form edit to an existing quote. Approved
// and converted quotes are locked: only status-driven transitions may
// touch them after that.
func (u *LifecycleUseCase) UpdateQuote(q entities.Quote) (entities.Quote, error) {
	existing, ok := u.quotes.GetByID(q.ID)
	if !ok {
		return entities.Quote{}, notFound("quote", q.ID)
	}
	if existing.Locked() {
		return entities.Quote{}, invalidPrecondition(ReasonQuoteLocked,
			"quote is "+strings.ToLower(string(existing.Status))+" and read-only", "quote", q.ID)
	}

	now := u.now()
	// Status and binding are owned by the transitions, not by edits.
	q.Status = existing.Status
	q.CustomerID = existing.CustomerID
	q.CreatedAt = existing.CreatedAt
	q.ApprovedAt = existing.ApprovedAt
	q.ConvertedAt = existing.ConvertedAt
	q.Recalculate(now)
	q.UpdatedAt = now

	u.quotes.Upsert(q)
	u.customers.Patch(q.CustomerID, func(c *entities.Customer) {
		if c.CurrentQuoteID == q.ID {
			c.MonthsLeft = q.MonthsLeft
			c.ValueLeft = q.ValueLeft
		}
	})
	return q, nil
}

// SendQuote moves a draft quote to SENT. Idempotent once sent.
func (u *LifecycleUseCase) SendQuote(quoteID string) (entities.Quote, error) {
	return u.transitionQuote(quoteID, entities.QuoteStatusSent, func(c *entities.Customer) {
		advanceStage(c, entities.StageQuoteSent)
	})
}

// RejectQuote closes the quote as REJECTED, a terminal state. The
// customer keeps the quote as current so the flow can offer "create new
// quote" next.
func (u *LifecycleUseCase) RejectQuote(quoteID string) (entities.Quote, error) {
	return u.transitionQuote(quoteID, entities.QuoteStatusRejected, nil)
}

// ConvertQuote stamps an approved quote CONVERTED. Idempotent once
// converted; the conversion timestamp is written once.
func (u *LifecycleUseCase) ConvertQuote(quoteID string) (entities.Quote, error) {
	q, ok := u.quotes.GetByID(quoteID)
	if !ok {
		return entities.Quote{}, notFound("quote", quoteID)
	}

	now := u.now()
	if q.Status == entities.QuoteStatusConverted {
		if q.ConvertedAt == nil {
			u.quotes.Patch(quoteID, func(q *entities.Quote) {
				q.ConvertedAt = &now
			})
			q, _ = u.quotes.GetByID(quoteID)
		}
		return q, nil
	}
	if !q.Status.CanTransitionTo(entities.QuoteStatusConverted) {
		return entities.Quote{}, invalidPrecondition("",
			"only approved quotes can be converted", "quote", quoteID)
	}

	u.quotes.Patch(quoteID, func(q *entities.Quote) {
		q.Status = entities.QuoteStatusConverted
		q.ConvertedAt = &now
		q.UpdatedAt = now
	})
	q, _ = u.quotes.GetByID(quoteID)
	return q, nil
}

// transitionQuote applies a one-directional status move, treating an
// already-reached target as a no-op success.
func (u *LifecycleUseCase) transitionQuote(
	quoteID string,
	target entities.QuoteStatus,
	onCustomer func(*entities.Customer),
) (entities.Quote, error) {
	q, ok := u.quotes.GetByID(quoteID)
	if !ok {
		return entities.Quote{}, notFound("quote", quoteID)
	}
	if q.Status == target {
		return q, nil
	}
	if !q.Status.CanTransitionTo(target) {
		return entities.Quote{}, invalidPrecondition("",
			"quote in status "+string(q.Status)+" cannot move to "+string(target), "quote", quoteID)
	}

	now := u.now()
	u.quotes.Patch(quoteID, func(q *entities.Quote) {
		q.Status = target
		q.UpdatedAt = now
	})
	if onCustomer != nil && q.CustomerID != "" {
		u.customers.Patch(q.CustomerID, onCustomer)
	}
	q, _ = u.quotes.GetByID(quoteID)
	return q, nil
}

// resolveCustomer reuses the customer a new quote belongs to, creating
// it from the quote's contact fields when the external company id is
// unseen.
func (u *LifecycleUseCase) resolveCustomer(q entities.Quote, now time.Time) (entities.Customer, error) {
	if q.CustomerID != "" {
		customer, ok := u.customers.GetByID(q.CustomerID)
		if !ok {
			return entities.Customer{}, notFound("customer", q.CustomerID)
		}
		return customer, nil
	}

	if existing, ok := u.customers.FindByCompanyID(q.CompanyID); ok {
		u.customers.Patch(existing.ID, func(c *entities.Customer) {
			if q.CustomerName != "" {
				c.Name = q.CustomerName
			}
			if q.ContactEmail != "" {
				c.Email = q.ContactEmail
			}
			if len(q.Products) > 0 {
				c.Products = q.Products
			}
		})
		customer, _ := u.customers.GetByID(existing.ID)
		return customer, nil
	}

	customer := entities.Customer{
		ID:        entities.CustomerIDForCompany(q.CompanyID),
		Name:      q.CustomerName,
		Email:     q.ContactEmail,
		CompanyID: q.CompanyID,
		CreatedAt: now,
		Products:  q.Products,
		Stage:     entities.StageNew,
	}
	u.customers.Upsert(customer)
	return customer, nil
}
