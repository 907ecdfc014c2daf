package entities

import (
	"testing"
	"time"
)

func TestQuoteStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to QuoteStatus
		want     bool
	}{
		{QuoteStatusDraft, QuoteStatusSent, true},
		{QuoteStatusDraft, QuoteStatusApproved, true},
		{QuoteStatusDraft, QuoteStatusRejected, true},
		{QuoteStatusDraft, QuoteStatusConverted, false},
		{QuoteStatusSent, QuoteStatusApproved, true},
		{QuoteStatusSent, QuoteStatusRejected, true},
		{QuoteStatusSent, QuoteStatusDraft, false},
		{QuoteStatusApproved, QuoteStatusConverted, true},
		{QuoteStatusApproved, QuoteStatusSent, false},
		{QuoteStatusApproved, QuoteStatusRejected, false},
		{QuoteStatusRejected, QuoteStatusSent, false},
		{QuoteStatusConverted, QuoteStatusApproved, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Errorf("%s -> %s = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestQuoteStatusTerminal(t *testing.T) {
	if !QuoteStatusRejected.Terminal() || !QuoteStatusConverted.Terminal() {
		t.Fatalf("REJECTED and CONVERTED must be terminal")
	}
	if QuoteStatusDraft.Terminal() || QuoteStatusSent.Terminal() || QuoteStatusApproved.Terminal() {
		t.Fatalf("open statuses must not be terminal")
	}
}

func TestQuoteLocked(t *testing.T) {
	if (Quote{Status: QuoteStatusSent}).Locked() {
		t.Fatalf("sent quote must be editable")
	}
	if !(Quote{Status: QuoteStatusApproved}).Locked() {
		t.Fatalf("approved quote must be locked")
	}
	if !(Quote{Status: QuoteStatusConverted}).Locked() {
		t.Fatalf("converted quote must be locked")
	}
}

func TestMonthsRemaining(t *testing.T) {
	now := time.Date(2025, 8, 15, 10, 30, 0, 0, time.UTC)

	cases := []struct {
		name string
		end  time.Time
		want int
	}{
		{name: "unset end date", end: time.Time{}, want: 0},
		{name: "end in the past", end: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), want: 0},
		{name: "end today", end: now, want: 0},
		{name: "later this month", end: time.Date(2025, 8, 20, 0, 0, 0, 0, time.UTC), want: 1},
		{name: "next month before day-of-month", end: time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC), want: 1},
		{name: "next month after day-of-month", end: time.Date(2025, 9, 20, 0, 0, 0, 0, time.UTC), want: 2},
		{name: "one year out", end: time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC), want: 13},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := MonthsRemaining(tc.end, now); got != tc.want {
				t.Fatalf("MonthsRemaining(%v) = %d, want %d", tc.end, got, tc.want)
			}
		})
	}
}

func TestQuoteRecalculate(t *testing.T) {
	now := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	q := Quote{
		MonthlyValue: 1500,
		AgreementEnd: time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
	}
	q.Recalculate(now)
	if q.MonthsLeft != 5 {
		t.Fatalf("months left = %d, want 5", q.MonthsLeft)
	}
	if q.ValueLeft != 7500 {
		t.Fatalf("value left = %v, want 7500", q.ValueLeft)
	}
}

func TestCustomerStageOrder(t *testing.T) {
	order := []CustomerStage{StageNew, StageQuoteSent, StageQuoteApproved, StageActive}
	for i, lower := range order {
		for _, higher := range order[i+1:] {
			if !lower.Before(higher) {
				t.Errorf("%s should precede %s", lower, higher)
			}
			if higher.Before(lower) {
				t.Errorf("%s should not precede %s", higher, lower)
			}
		}
	}
}
