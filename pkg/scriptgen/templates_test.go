package scriptgen

import (
	"strings"
	"testing"
)

func TestBuildScriptFallsBackToGeneric(t *testing.T) {
	analysis := EnhancedAnalysis{
		IntentAnalysis: IntentAnalysis{
			Intent:      Intent("future_intent"),
			CompanyName: "Acme",
		},
	}

	lines := buildScript(Persona{Name: "Acme"}, "we have news about your widget", analysis)
	if len(lines) == 0 {
		t.Fatal("generic fallback produced no output")
	}

	text := strings.Join(lines, "\n")
	if !strings.Contains(text, "Acme") {
		t.Errorf("generic script missing company name: %q", text)
	}
	if !strings.Contains(text, "we have news about your widget") {
		t.Errorf("generic script missing product info: %q", text)
	}
}

func TestBuildScriptMissingAmountUsesPlaceholder(t *testing.T) {
	tests := []struct {
		name            string
		intent          Intent
		wantPlaceholder string
	}{
		{
			name:            "payment collection",
			intent:          IntentPaymentCollection,
			wantPlaceholder: "the amount",
		},
		{
			name:            "debt collection",
			intent:          IntentDebtCollection,
			wantPlaceholder: "the amount",
		},
		{
			name:            "balance inquiry",
			intent:          IntentBalanceInquiry,
			wantPlaceholder: "your current balance",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analysis := EnhancedAnalysis{
				IntentAnalysis: IntentAnalysis{
					Intent:        tt.intent,
					CompanyName:   "our company",
					SpecificIssue: "unsettled balance",
				},
			}

			text := strings.Join(buildScript(Persona{}, "", analysis), "\n")
			if !strings.Contains(text, tt.wantPlaceholder) {
				t.Errorf("script missing placeholder %q:\n%s", tt.wantPlaceholder, text)
			}
			if strings.Contains(text, "of .") || strings.Contains(text, "of  ") {
				t.Errorf("script leaked an empty amount:\n%s", text)
			}
		})
	}
}

func TestBuildScriptDeterministic(t *testing.T) {
	analysis := Merge(Classify("unsettled balance of £99.99 from NatWest Bank"), "debt_collection", CallTypeOutbound, "")

	first := strings.Join(buildScript(Persona{Name: "NatWest Bank"}, "x", analysis), "\n")
	second := strings.Join(buildScript(Persona{Name: "NatWest Bank"}, "x", analysis), "\n")

	if first != second {
		t.Error("builder output is not byte-identical across calls")
	}
}

func TestBuildScriptEveryIntentHasNonEmptyOutput(t *testing.T) {
	intents := []Intent{
		IntentPaymentCollection, IntentDebtCollection, IntentBalanceInquiry,
		IntentServiceUpdate, IntentFraudPrevention, IntentBanking,
		IntentShopping, IntentUtilities, IntentGeneral,
	}

	for _, intent := range intents {
		analysis := EnhancedAnalysis{
			IntentAnalysis: IntentAnalysis{
				Intent:        intent,
				CompanyName:   "TestCo",
				SpecificIssue: "fine",
			},
		}

		lines := buildScript(Persona{Name: "TestCo"}, "prompt", analysis)
		if len(lines) == 0 {
			t.Errorf("intent %q produced no lines", intent)
			continue
		}
		if !strings.Contains(lines[0], "TestCo") {
			t.Errorf("intent %q opening missing company name: %q", intent, lines[0])
		}
	}
}

func TestMergeExplicitCategoryOverridesKeywordGuess(t *testing.T) {
	analysis := Classify("calling about your recent order and purchase")
	merged := Merge(analysis, "banking", CallTypeOutbound, "")

	if merged.Intent != IntentBanking {
		t.Errorf("merged intent = %q, want %q", merged.Intent, IntentBanking)
	}
	if merged.Category != "banking" {
		t.Errorf("merged category = %q, want banking", merged.Category)
	}
	if merged.Department != "banking services" {
		t.Errorf("merged department = %q, want banking services", merged.Department)
	}
}

func TestMergeUnknownModeKeepsClassifierIntent(t *testing.T) {
	analysis := Classify("you have a fine of £30")
	merged := Merge(analysis, "lead_generation", CallTypeOutbound, "no pressure tactics")

	if merged.Intent != IntentDebtCollection {
		t.Errorf("merged intent = %q, want %q", merged.Intent, IntentDebtCollection)
	}
	if merged.Category != "general" {
		t.Errorf("merged category = %q, want general", merged.Category)
	}
	if merged.CallType != CallTypeOutbound {
		t.Errorf("call type not carried through: %q", merged.CallType)
	}
	if merged.NegativePrompts != "no pressure tactics" {
		t.Errorf("negative prompts not carried through: %q", merged.NegativePrompts)
	}
}
