package flow

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linneanarhi/internal-dashboard/internal/domain/entities"
)

func customerFixture() *entities.Customer {
	return &entities.Customer{
		ID:        "32226",
		Name:      "Ticket",
		Email:     "ticket@example.com",
		CompanyID: 32226,
		Stage:     entities.StageNew,
	}
}

func quoteFixture(status entities.QuoteStatus) *entities.Quote {
	return &entities.Quote{
		ID:         "q-1",
		CustomerID: "32226",
		Status:     status,
	}
}

func TestResolve_DecisionOrder(t *testing.T) {
	cases := []struct {
		name string
		snap Snapshot
		want State
	}{
		{
			name: "no customer yields neutral placeholders",
			snap: Snapshot{},
			want: State{StatusLabel: "—", NextAction: "—"},
		},
		{
			name: "new customer without quote",
			snap: Snapshot{Customer: customerFixture()},
			want: State{StatusLabel: "New customer", NextAction: "Create quote"},
		},
		{
			name: "draft quote",
			snap: Snapshot{Customer: customerFixture(), CurrentQuote: quoteFixture(entities.QuoteStatusDraft)},
			want: State{StatusLabel: "Quote: draft", NextAction: "Send quote", CanApproveQuote: true},
		},
		{
			name: "sent quote",
			snap: Snapshot{Customer: customerFixture(), CurrentQuote: quoteFixture(entities.QuoteStatusSent)},
			want: State{StatusLabel: "Quote: sent", NextAction: "Await approval / approve manually", CanApproveQuote: true},
		},
		{
			name: "approved quote before setup",
			snap: Snapshot{
				Customer:        customerFixture(),
				CurrentQuote:    quoteFixture(entities.QuoteStatusApproved),
				AgreementStatus: entities.AgreementStatusPendingSetup,
				SetupStatus:     entities.SetupStatusIncomplete,
			},
			want: State{StatusLabel: "Quote: approved", NextAction: "Technical setup", CanActivateAgreement: true},
		},
		{
			name: "approved quote after setup",
			snap: Snapshot{
				Customer:        customerFixture(),
				CurrentQuote:    quoteFixture(entities.QuoteStatusApproved),
				AgreementStatus: entities.AgreementStatusPendingSetup,
				SetupStatus:     entities.SetupStatusComplete,
			},
			want: State{StatusLabel: "Quote: approved", NextAction: "Activate agreement", CanActivateAgreement: true},
		},
		{
			name: "rejected quote asks for a new one",
			snap: Snapshot{Customer: customerFixture(), CurrentQuote: quoteFixture(entities.QuoteStatusRejected)},
			want: State{StatusLabel: "Quote: rejected", NextAction: "Create new quote"},
		},
		{
			name: "converted quote mirrors approval gating",
			snap: Snapshot{
				Customer:        customerFixture(),
				CurrentQuote:    quoteFixture(entities.QuoteStatusConverted),
				AgreementStatus: entities.AgreementStatusPendingSetup,
				SetupStatus:     entities.SetupStatusIncomplete,
			},
			want: State{StatusLabel: "Converted", NextAction: "Technical setup"},
		},
		{
			name: "active agreement with complete setup wins",
			snap: Snapshot{
				Customer:        customerFixture(),
				CurrentQuote:    quoteFixture(entities.QuoteStatusApproved),
				AgreementStatus: entities.AgreementStatusActive,
				SetupStatus:     entities.SetupStatusComplete,
			},
			want: State{StatusLabel: "Done", NextAction: "Nothing – customer is active", IsActive: true},
		},
		{
			name: "unknown status falls back to in progress",
			snap: Snapshot{Customer: customerFixture(), CurrentQuote: quoteFixture(entities.QuoteStatus("LEGACY"))},
			want: State{StatusLabel: "In progress", NextAction: "Continue the flow"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Resolve(tc.snap))
		})
	}
}

// The resolver must be a pure function: identical snapshots yield
// identical output across repeated calls.
func TestResolve_Pure(t *testing.T) {
	snap := Snapshot{
		Customer:        customerFixture(),
		CurrentQuote:    quoteFixture(entities.QuoteStatusApproved),
		AgreementStatus: entities.AgreementStatusPendingSetup,
		SetupStatus:     entities.SetupStatusComplete,
	}

	first := Resolve(snap)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Resolve(snap))
	}
}

// canActivateAgreement holds iff the quote is APPROVED and the combined
// active condition does not already hold.
func TestResolve_ActivationGate(t *testing.T) {
	statuses := []entities.QuoteStatus{
		entities.QuoteStatusDraft,
		entities.QuoteStatusSent,
		entities.QuoteStatusApproved,
		entities.QuoteStatusRejected,
		entities.QuoteStatusConverted,
	}
	agreements := []entities.AgreementStatus{"", entities.AgreementStatusPendingSetup, entities.AgreementStatusActive}
	setups := []entities.SetupStatus{"", entities.SetupStatusIncomplete, entities.SetupStatusComplete}

	for _, qs := range statuses {
		for _, as := range agreements {
			for _, ss := range setups {
				got := Resolve(Snapshot{
					Customer:        customerFixture(),
					CurrentQuote:    quoteFixture(qs),
					AgreementStatus: as,
					SetupStatus:     ss,
				})
				active := as == entities.AgreementStatusActive && ss == entities.SetupStatusComplete
				want := qs == entities.QuoteStatusApproved && !active
				assert.Equalf(t, want, got.CanActivateAgreement,
					"quote=%s agreement=%s setup=%s", qs, as, ss)
				assert.Equal(t, active, got.IsActive)
			}
		}
	}
}

func TestResolve_Golden(t *testing.T) {
	g := goldie.New(t)

	cases := []struct {
		name string
		snap Snapshot
	}{
		{name: "new_customer", snap: Snapshot{Customer: customerFixture()}},
		{name: "quote_sent", snap: Snapshot{Customer: customerFixture(), CurrentQuote: quoteFixture(entities.QuoteStatusSent)}},
		{
			name: "active_customer",
			snap: Snapshot{
				Customer:        customerFixture(),
				CurrentQuote:    quoteFixture(entities.QuoteStatusApproved),
				AgreementStatus: entities.AgreementStatusActive,
				SetupStatus:     entities.SetupStatusComplete,
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			data, err := json.MarshalIndent(Resolve(tc.snap), "", "  ")
			require.NoError(t, err)
			g.Assert(t, tc.name, data)
		})
	}
}
