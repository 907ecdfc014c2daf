package usecase

import (
	"errors"
	"fmt"
)

// FlowErrorCode categorizes lifecycle transition failures. All of them
// are recoverable by the caller: the orchestrator returns the failure
// instead of panicking, and the presentation layer renders the reason
// and blocks the action.
type FlowErrorCode string

const (
	// ErrCodeNotFound indicates a referenced id has no record.
	ErrCodeNotFound FlowErrorCode = "NOT_FOUND"

	// ErrCodeInvalidPrecondition indicates a transition attempted from
	// a state that does not permit it.
	ErrCodeInvalidPrecondition FlowErrorCode = "INVALID_PRECONDITION"

	// ErrCodeMissingReference indicates a required cross-entity pointer
	// is absent, e.g. a quote with no customer id.
	ErrCodeMissingReference FlowErrorCode = "MISSING_REFERENCE"
)

// Reasons distinguish the individual activation guards so the caller
// can render a precise message.
const (
	ReasonQuoteNotApproved = "quote_not_approved"
	ReasonSetupIncomplete  = "setup_incomplete"
	ReasonAgreementMissing = "agreement_missing"
	ReasonQuoteLocked      = "quote_locked"
)

// FlowError is a typed lifecycle failure with structured fields for
// diagnostics.
type FlowError struct {
	// Code identifies the failure category.
	Code FlowErrorCode

	// Reason is a short machine-readable tag for the specific guard
	// that rejected the transition. Optional.
	Reason string

	// Message is a human-readable description.
	Message string

	// EntityKind and EntityID identify the record the failure is about.
	EntityKind string
	EntityID   string
}

// Error implements the error interface.
func (e *FlowError) Error() string {
	if e.EntityID != "" {
		return fmt.Sprintf("%s: %s (%s=%s)", e.Code, e.Message, e.EntityKind, e.EntityID)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsNotFound reports whether err is a NOT_FOUND flow error. Uses
// errors.As to handle wrapped errors.
func IsNotFound(err error) bool {
	return hasCode(err, ErrCodeNotFound)
}

// IsInvalidPrecondition reports whether err is an INVALID_PRECONDITION
// flow error.
func IsInvalidPrecondition(err error) bool {
	return hasCode(err, ErrCodeInvalidPrecondition)
}

// IsMissingReference reports whether err is a MISSING_REFERENCE flow
// error.
func IsMissingReference(err error) bool {
	return hasCode(err, ErrCodeMissingReference)
}

// Reason extracts the guard tag from a flow error, or "".
func Reason(err error) string {
	var fe *FlowError
	if errors.As(err, &fe) {
		return fe.Reason
	}
	return ""
}

func hasCode(err error, code FlowErrorCode) bool {
	var fe *FlowError
	if errors.As(err, &fe) {
		return fe.Code == code
	}
	return false
}

func notFound(kind, id string) *FlowError {
	return &FlowError{
		Code:       ErrCodeNotFound,
		Message:    kind + " not found",
		EntityKind: kind,
		EntityID:   id,
	}
}

func invalidPrecondition(reason, message, kind, id string) *FlowError {
	return &FlowError{
		Code:       ErrCodeInvalidPrecondition,
		Reason:     reason,
		Message:    message,
		EntityKind: kind,
		EntityID:   id,
	}
}

func missingReference(reason, message, kind, id string) *FlowError {
	return &FlowError{
		Code:       ErrCodeMissingReference,
		Reason:     reason,
		Message:    message,
		EntityKind: kind,
		EntityID:   id,
	}
}
