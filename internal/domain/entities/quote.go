package entities

import "time"

// QuoteStatus represents the lifecycle of a quote.
//
// Domain notes:
//   - Progression is strictly one-directional: DRAFT → SENT → APPROVED,
//     then CONVERTED. REJECTED and CONVERTED are terminal.
//   - Once a quote reaches APPROVED it is locked against free-form edits;
//     only status-driven fields may change after that.
type QuoteStatus string

const (
	QuoteStatusDraft     QuoteStatus = "DRAFT"
	QuoteStatusSent      QuoteStatus = "SENT"
	QuoteStatusApproved  QuoteStatus = "APPROVED"
	QuoteStatusRejected  QuoteStatus = "REJECTED"
	QuoteStatusConverted QuoteStatus = "CONVERTED"
)

// quoteTransitions lists the legal forward moves per status.
var quoteTransitions = map[QuoteStatus]map[QuoteStatus]bool{
	QuoteStatusDraft:     {QuoteStatusSent: true, QuoteStatusApproved: true, QuoteStatusRejected: true},
	QuoteStatusSent:      {QuoteStatusApproved: true, QuoteStatusRejected: true},
	QuoteStatusApproved:  {QuoteStatusConverted: true},
	QuoteStatusRejected:  {},
	QuoteStatusConverted: {},
}

// CanTransitionTo reports whether moving from s to next is legal.
// Re-applying the current status is not a transition; callers treat it
// as an idempotent no-op.
func (s QuoteStatus) CanTransitionTo(next QuoteStatus) bool {
	return quoteTransitions[s][next]
}

// Terminal reports whether no further transitions exist from s.
func (s QuoteStatus) Terminal() bool {
	return len(quoteTransitions[s]) == 0
}

// QuoteType distinguishes a first quote from an add-on to an active
// customer.
type QuoteType string

const (
	QuoteTypeNew   QuoteType = "NEW"
	QuoteTypeAddon QuoteType = "ADDON"
)

// Quote is a commercial offer in the pipeline.
//
// CustomerName and CompanyID duplicate Customer fields for list display
// only; flow decisions always read the Customer record itself.
type Quote struct {
	ID         string      `json:"id"`
	CustomerID string      `json:"customer_id,omitempty"`
	Status     QuoteStatus `json:"status"`
	Type       QuoteType   `json:"type"`

	CustomerName string `json:"customer_name"`
	CompanyID    int    `json:"company_id"`

	// Monetary terms. MonthsLeft and ValueLeft are derived from
	// AgreementEnd and MonthlyValue via Recalculate.
	MonthlyValue   float64   `json:"monthly_value"`
	AgreementStart time.Time `json:"agreement_start,omitzero"`
	AgreementEnd   time.Time `json:"agreement_end,omitzero"`
	MonthsLeft     int       `json:"months_left"`
	ValueLeft      float64   `json:"value_left"`

	Products []Product `json:"products"`

	SalesRep     string `json:"sales_rep,omitempty"`
	ContactName  string `json:"contact_name,omitempty"`
	ContactEmail string `json:"contact_email,omitempty"`
	ContactPhone string `json:"contact_phone,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	ApprovedAt  *time.Time `json:"approved_at,omitempty"`
	ConvertedAt *time.Time `json:"converted_at,omitempty"`
}

// Locked reports whether the quote is closed to free-form edits.
func (q Quote) Locked() bool {
	return q.Status == QuoteStatusApproved || q.Status == QuoteStatusConverted
}

// Recalculate refreshes the derived monetary fields from the agreement
// end date as of now.
func (q *Quote) Recalculate(now time.Time) {
	q.MonthsLeft = MonthsRemaining(q.AgreementEnd, now)
	q.ValueLeft = max(0, float64(q.MonthsLeft)*q.MonthlyValue)
}

// MonthsRemaining counts whole months from now until end, including the
// end month while its day-of-month has not yet passed. A past or unset
// end date yields zero.
func MonthsRemaining(end, now time.Time) int {
	if end.IsZero() {
		return 0
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	endDay := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	if !endDay.After(today) {
		return 0
	}

	months := (endDay.Year()-today.Year())*12 + int(endDay.Month()) - int(today.Month())
	if endDay.Day() >= today.Day() {
		months++
	}
	return max(0, months)
}
