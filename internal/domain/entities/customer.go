package entities

import (
	"strconv"
	"time"
)

// Product identifies a product line a customer can be entitled to.
type Product string

const (
	ProductCalls Product = "calls"
	ProductEmail Product = "email"
	ProductChat  Product = "chat"
	ProductCases Product = "cases"
	ProductOther Product = "other"
)

// CustomerStage is the coarse pipeline position shown on customer lists.
// It is advanced by lifecycle transitions and never moves backwards.
type CustomerStage string

const (
	StageNew           CustomerStage = "NEW"
	StageQuoteSent     CustomerStage = "QUOTE_SENT"
	StageQuoteApproved CustomerStage = "QUOTE_APPROVED"
	StageActive        CustomerStage = "ACTIVE"
)

// stageRank orders stages for monotonic advancement.
var stageRank = map[CustomerStage]int{
	StageNew:           0,
	StageQuoteSent:     1,
	StageQuoteApproved: 2,
	StageActive:        3,
}

// Before reports whether s precedes other in the pipeline order.
func (s CustomerStage) Before(other CustomerStage) bool {
	return stageRank[s] < stageRank[other]
}

// Customer is the account record driving the commercial lifecycle.
//
// Identity:
//   - ID is derived from the external company identifier, so a new quote
//     for a known company reuses the existing customer instead of
//     creating a duplicate.
//
// Pointers:
//   - CurrentQuoteID / CurrentAgreementID mark the records currently
//     driving the flow; at most one non-terminal quote and one
//     non-terminal agreement are "current" at a time.
type Customer struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	Email      string        `json:"email"`
	CompanyID  int           `json:"company_id"`
	CreatedAt  time.Time     `json:"created_at"`
	Products   []Product     `json:"products"`
	UsersCount int           `json:"users_count"`
	Stage      CustomerStage `json:"stage"`

	CurrentQuoteID     string `json:"current_quote_id,omitempty"`
	CurrentAgreementID string `json:"current_agreement_id,omitempty"`

	// Denormalized metrics from the current quote, shown on the
	// customer profile.
	MonthsLeft int     `json:"months_left"`
	ValueLeft  float64 `json:"value_left"`
}

// CustomerIDForCompany derives the stable customer id from the external
// company identifier.
func CustomerIDForCompany(companyID int) string {
	return strconv.Itoa(companyID)
}
