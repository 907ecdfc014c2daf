// Package flow derives the customer's pipeline view state from a
// snapshot of the records driving it. Resolution is a pure function so
// it can run on every render without throttling.
package flow

import (
	"github.com/linneanarhi/internal-dashboard/internal/domain/entities"
)

// Snapshot bundles the already-resolved records for one customer. The
// caller assembles it via store lookups; the resolver never touches a
// store itself. Absent records are left nil/empty.
type Snapshot struct {
	Customer        *entities.Customer
	CurrentQuote    *entities.Quote
	AgreementStatus entities.AgreementStatus
	SetupStatus     entities.SetupStatus
}

// State is the derived view state for one customer.
type State struct {
	StatusLabel          string `json:"status_label"`
	NextAction           string `json:"next_action"`
	IsActive             bool   `json:"is_active"`
	CanApproveQuote      bool   `json:"can_approve_quote"`
	CanActivateAgreement bool   `json:"can_activate_agreement"`
}

// Resolve maps a snapshot to its view state. First matching rule wins,
// evaluated top to bottom.
func Resolve(s Snapshot) State {
	if s.Customer == nil {
		return State{StatusLabel: "—", NextAction: "—"}
	}

	var quoteStatus entities.QuoteStatus
	if s.CurrentQuote != nil {
		quoteStatus = s.CurrentQuote.Status
	}

	agreementActive := s.AgreementStatus == entities.AgreementStatusActive
	setupComplete := s.SetupStatus == entities.SetupStatusComplete
	isActive := agreementActive && setupComplete

	canApproveQuote := s.CurrentQuote != nil &&
		(quoteStatus == entities.QuoteStatusDraft || quoteStatus == entities.QuoteStatusSent)
	canActivateAgreement := quoteStatus == entities.QuoteStatusApproved && !isActive

	st := State{
		IsActive:             isActive,
		CanApproveQuote:      canApproveQuote,
		CanActivateAgreement: canActivateAgreement,
	}

	switch {
	case isActive:
		st.StatusLabel = "Done"
		st.NextAction = "Nothing – customer is active"
	case s.CurrentQuote == nil:
		st.StatusLabel = "New customer"
		st.NextAction = "Create quote"
	case quoteStatus == entities.QuoteStatusDraft:
		st.StatusLabel = "Quote: draft"
		st.NextAction = "Send quote"
	case quoteStatus == entities.QuoteStatusSent:
		st.StatusLabel = "Quote: sent"
		st.NextAction = "Await approval / approve manually"
	case quoteStatus == entities.QuoteStatusApproved:
		st.StatusLabel = "Quote: approved"
		st.NextAction = nextAfterApproval(setupComplete)
	case quoteStatus == entities.QuoteStatusRejected:
		st.StatusLabel = "Quote: rejected"
		st.NextAction = "Create new quote"
	case quoteStatus == entities.QuoteStatusConverted:
		st.StatusLabel = "Converted"
		st.NextAction = nextAfterApproval(setupComplete)
	default:
		st.StatusLabel = "In progress"
		st.NextAction = "Continue the flow"
	}
	return st
}

func nextAfterApproval(setupComplete bool) string {
	if setupComplete {
		return "Activate agreement"
	}
	return "Technical setup"
}
