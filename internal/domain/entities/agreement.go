package entities

import "time"

// AgreementStatus is monotonic: PENDING_SETUP → ACTIVE.
type AgreementStatus string

const (
	AgreementStatusPendingSetup AgreementStatus = "PENDING_SETUP"
	AgreementStatusActive       AgreementStatus = "ACTIVE"
)

// Agreement is provisioned when a quote is approved and activated once
// the technical setup is complete.
//
// Invariant: a customer has at most one agreement in PENDING_SETUP at a
// time; approving another quote reuses it instead of creating a second
// one.
type Agreement struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customer_id"`
	Status     AgreementStatus `json:"status"`
	Products   []Product       `json:"products"`
	CreatedAt  time.Time       `json:"created_at"`
}
