package scriptgen

import (
	"errors"
	"strings"
	"testing"

	"ScriptForge/pkg/voicecatalog"
)

func newTestGenerator() IGenerator {
	return New(voicecatalog.New())
}

func TestGenerateAutocallDebtCollectionEndToEnd(t *testing.T) {
	gen := newTestGenerator()

	script, err := gen.GenerateAutocall(Request{
		VoiceID:     "natwest",
		CallType:    CallTypeOutbound,
		ScriptMode:  "debt_collection",
		ProductInfo: "calling from NatWest Bank about your unsettled balance of £120.50",
	})
	if err != nil {
		t.Fatalf("GenerateAutocall returned error: %v", err)
	}

	for _, want := range []string{
		"NatWest",
		"£120.50",
		"Press 1",
		"Press 2",
		"Press 3",
		"16-digit card number",
		"MM/YY format",
		"3-digit security code",
	} {
		if !strings.Contains(script.Text, want) {
			t.Errorf("script missing %q:\n%s", want, script.Text)
		}
	}

	if script.ScriptType != ScriptTypeAutocall {
		t.Errorf("script type = %q, want autocall", script.ScriptType)
	}
	if script.Voice.ID != "natwest" {
		t.Errorf("voice id = %q, want natwest", script.Voice.ID)
	}
}

func TestGenerateAutocallUnknownVoice(t *testing.T) {
	gen := newTestGenerator()

	_, err := gen.GenerateAutocall(Request{VoiceID: "nonexistent", ProductInfo: "hello"})
	if !errors.Is(err, ErrVoiceNotFound) {
		t.Errorf("error = %v, want ErrVoiceNotFound", err)
	}
}

func TestGenerateAutocallUsePromptVoice(t *testing.T) {
	gen := newTestGenerator()

	script, err := gen.GenerateAutocall(Request{
		VoiceID:     voicecatalog.UsePromptVoiceID,
		CallType:    CallTypeOutbound,
		ScriptMode:  "general",
		ProductInfo: "the company is Northwind Bank, calling about your loan",
	})
	if err != nil {
		t.Fatalf("GenerateAutocall returned error: %v", err)
	}

	if script.Voice.ID != voicecatalog.UsePromptVoiceID {
		t.Errorf("voice id = %q, want use_prompt", script.Voice.ID)
	}
	if script.Voice.Name != "Northwind" {
		t.Errorf("extracted company = %q, want Northwind", script.Voice.Name)
	}
}

func TestGenerateAutocallAppendsInteractiveElements(t *testing.T) {
	gen := newTestGenerator()

	script, err := gen.GenerateAutocall(Request{
		VoiceID:     "amazon",
		CallType:    CallTypeOutbound,
		ScriptMode:  "shopping",
		ProductInfo: "your recent order",
		InteractiveElements: []InteractiveElement{
			{Type: "menu", Prompt: "Press 1 to track your parcel"},
			{Type: "pause", Duration: 3},
		},
	})
	if err != nil {
		t.Fatalf("GenerateAutocall returned error: %v", err)
	}

	menuIdx := strings.Index(script.Text, "Press 1 to track your parcel")
	pauseIdx := strings.Index(script.Text, "[Pause for 3 seconds]")
	if menuIdx < 0 || pauseIdx < 0 {
		t.Fatalf("interactive elements missing:\n%s", script.Text)
	}
	if menuIdx > pauseIdx {
		t.Error("interactive elements rendered out of order")
	}
}

func TestGenerateHumanizedOutbound(t *testing.T) {
	gen := newTestGenerator()

	script, err := gen.GenerateHumanized(Request{
		VoiceID:         "british_man_young",
		CallType:        CallTypeOutbound,
		ScriptMode:      "banking",
		ProductInfo:     "a new savings product",
		NegativePrompts: "fees, penalties",
	})
	if err != nil {
		t.Fatalf("GenerateHumanized returned error: %v", err)
	}

	for _, want := range []string{
		"AGENT: Hi, this is ",
		"--- OBJECTION HANDLING ---",
		"--- AVOID THESE TOPICS ---",
		"DO NOT mention: fees, penalties",
		"--- CLOSING ---",
		"Is there anything else I can help you with today?",
	} {
		if !strings.Contains(script.Text, want) {
			t.Errorf("script missing %q:\n%s", want, script.Text)
		}
	}
}

func TestGenerateHumanizedInboundOpening(t *testing.T) {
	gen := newTestGenerator()

	script, err := gen.GenerateHumanized(Request{
		VoiceID:     "natwest",
		CallType:    CallTypeInbound,
		ScriptMode:  "banking",
		ProductInfo: "account review",
	})
	if err != nil {
		t.Fatalf("GenerateHumanized returned error: %v", err)
	}

	if !strings.HasPrefix(script.Text, "AGENT: Thank you for calling NatWest Bank.") {
		t.Errorf("inbound opening wrong:\n%s", script.Text)
	}
}

func TestGenerateHumanizedSkipsEmptySections(t *testing.T) {
	gen := newTestGenerator()

	script, err := gen.GenerateHumanized(Request{
		VoiceID:     "british_man_young",
		CallType:    CallTypeOutbound,
		ScriptMode:  "unknown_mode",
		ProductInfo: "a quick note",
	})
	if err != nil {
		t.Fatalf("GenerateHumanized returned error: %v", err)
	}

	if strings.Contains(script.Text, "--- AVOID THESE TOPICS ---") {
		t.Error("avoid-topics section rendered without negative prompts")
	}
	if strings.Contains(script.Text, "--- CUSTOMER RESPONSES ---") {
		t.Error("customer responses rendered for a mode without any")
	}
	// Unknown modes still get the default compliance note.
	if !strings.Contains(script.Text, "Follow standard compliance procedures") {
		t.Errorf("default compliance note missing:\n%s", script.Text)
	}
}

func TestGenerateHumanizedDeterministic(t *testing.T) {
	gen := newTestGenerator()
	req := Request{
		VoiceID:     "natwest",
		CallType:    CallTypeOutbound,
		ScriptMode:  "banking",
		ProductInfo: "account review",
	}

	first, err := gen.GenerateHumanized(req)
	if err != nil {
		t.Fatal(err)
	}
	second, err := gen.GenerateHumanized(req)
	if err != nil {
		t.Fatal(err)
	}

	if first.Text != second.Text {
		t.Error("humanized script output is not deterministic")
	}
}

func TestAnalyzeCallContext(t *testing.T) {
	gen := newTestGenerator()

	tests := []struct {
		name           string
		scriptText     string
		wantIssue      string
		wantAmount     string
		wantDepartment string
	}{
		{
			name:           "payment context",
			scriptText:     "AGENT: We are calling regarding your payment of £55.20.",
			wantIssue:      "payment",
			wantAmount:     "£55.20",
			wantDepartment: "customer service",
		},
		{
			name:           "security context routes to fraud team",
			scriptText:     "AGENT: We have detected suspicious activity on your account.",
			wantIssue:      "security",
			wantDepartment: "fraud team",
		},
		{
			name:           "order context",
			scriptText:     "AGENT: Your order is currently being processed.",
			wantIssue:      "order",
			wantDepartment: "customer service",
		},
		{
			name:           "empty context gets defaults",
			scriptText:     "AGENT: Hello.",
			wantIssue:      "general inquiry",
			wantDepartment: "customer service",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := gen.AnalyzeCallContext(tt.scriptText)
			if got.IssueType != tt.wantIssue {
				t.Errorf("issue type = %q, want %q", got.IssueType, tt.wantIssue)
			}
			if got.Amount != tt.wantAmount {
				t.Errorf("amount = %q, want %q", got.Amount, tt.wantAmount)
			}
			if got.Department != tt.wantDepartment {
				t.Errorf("department = %q, want %q", got.Department, tt.wantDepartment)
			}
		})
	}
}

func TestGenerateConnectedReferencesAutocallIssue(t *testing.T) {
	gen := newTestGenerator()

	autocall, err := gen.GenerateAutocall(Request{
		VoiceID:     "natwest",
		CallType:    CallTypeOutbound,
		ScriptMode:  "debt_collection",
		ProductInfo: "unsettled balance of £120.50",
	})
	if err != nil {
		t.Fatal(err)
	}

	followUp, err := gen.GenerateConnected(autocall, Request{
		VoiceID:     "british_woman_young",
		CallType:    CallTypeOutbound,
		ScriptMode:  "debt_collection",
		ProductInfo: "following up on the earlier call",
	})
	if err != nil {
		t.Fatalf("GenerateConnected returned error: %v", err)
	}

	if !strings.Contains(followUp.Text, "follow up on our recent automated call regarding your payment") {
		t.Errorf("follow-up missing issue reference:\n%s", followUp.Text)
	}
	if !strings.Contains(followUp.Text, "£120.50") {
		t.Errorf("follow-up missing amount from auto-call:\n%s", followUp.Text)
	}
}

func TestGenerateDispatch(t *testing.T) {
	gen := newTestGenerator()

	_, err := gen.Generate(Request{ScriptType: "carrier_pigeon", VoiceID: "natwest", ProductInfo: "x"})
	if !errors.Is(err, ErrInvalidScriptType) {
		t.Errorf("error = %v, want ErrInvalidScriptType", err)
	}
}
