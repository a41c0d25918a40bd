package scriptgen

import (
	"reflect"
	"testing"
)

func TestClassifyAmountExtraction(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantAmount string
	}{
		{
			name:       "pound amount with decimals",
			input:      "unsettled balance of £42.50",
			wantAmount: "£42.50",
		},
		{
			name:       "bare number gets pound prefix",
			input:      "payment of 100 due",
			wantAmount: "£100",
		},
		{
			name:       "no amount",
			input:      "calling about your account balance",
			wantAmount: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.input)
			if got.Amount != tt.wantAmount {
				t.Errorf("Classify(%q).Amount = %q, want %q", tt.input, got.Amount, tt.wantAmount)
			}
		})
	}
}

func TestClassifyCompanyExtraction(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantCompany string
	}{
		{
			name:        "calling from pattern",
			input:       "calling from NatWest Bank about your account",
			wantCompany: "NatWest",
		},
		{
			name:        "company is pattern",
			input:       "the company is Lloyds, calling about a fine",
			wantCompany: "Lloyds",
		},
		{
			name:        "bank suffix pattern",
			input:       "Barclays Bank needs to verify details",
			wantCompany: "Barclays",
		},
		{
			name:        "no company falls back to placeholder",
			input:       "your payment of £10 is overdue",
			wantCompany: "our company",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.input)
			if got.CompanyName != tt.wantCompany {
				t.Errorf("Classify(%q).CompanyName = %q, want %q", tt.input, got.CompanyName, tt.wantCompany)
			}
		})
	}
}

func TestClassifyIntentPriority(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantIntent  Intent
		wantIssue   string
		wantUrgency string
	}{
		{
			name:        "unsettled balance beats balance",
			input:       "you have an unsettled balance with us",
			wantIntent:  IntentDebtCollection,
			wantIssue:   "unsettled balance",
			wantUrgency: UrgencyHigh,
		},
		{
			name:        "fine is debt collection",
			input:       "there is a fine on your account",
			wantIntent:  IntentDebtCollection,
			wantIssue:   "fine",
			wantUrgency: UrgencyHigh,
		},
		{
			name:        "payment keyword",
			input:       "an immediate payment is required",
			wantIntent:  IntentPaymentCollection,
			wantIssue:   "payment",
			wantUrgency: UrgencyHigh,
		},
		{
			name:        "bare balance is balance inquiry",
			input:       "check balance on your account",
			wantIntent:  IntentBalanceInquiry,
			wantIssue:   "balance inquiry",
			wantUrgency: UrgencyNormal,
		},
		{
			name:        "maintenance is service update",
			input:       "scheduled maintenance this weekend",
			wantIntent:  IntentServiceUpdate,
			wantIssue:   "service update",
			wantUrgency: UrgencyNormal,
		},
		{
			name:        "no keywords yields general",
			input:       "hello there",
			wantIntent:  IntentGeneral,
			wantIssue:   "general inquiry",
			wantUrgency: UrgencyNormal,
		},
		{
			// Fraud is selected via an explicit script mode, never by keyword.
			name:        "fraud wording has no keyword rule",
			input:       "suspicious activity detected, possible fraud",
			wantIntent:  IntentGeneral,
			wantIssue:   "general inquiry",
			wantUrgency: UrgencyNormal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.input)
			if got.Intent != tt.wantIntent {
				t.Errorf("intent = %q, want %q", got.Intent, tt.wantIntent)
			}
			if got.SpecificIssue != tt.wantIssue {
				t.Errorf("specific issue = %q, want %q", got.SpecificIssue, tt.wantIssue)
			}
			if got.Urgency != tt.wantUrgency {
				t.Errorf("urgency = %q, want %q", got.Urgency, tt.wantUrgency)
			}
		})
	}
}

func TestClassifyIdempotent(t *testing.T) {
	input := "calling from NatWest Bank regarding your unsettled balance of £120.50"

	first := Classify(input)
	second := Classify(input)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Classify is not deterministic: %+v != %+v", first, second)
	}
}
