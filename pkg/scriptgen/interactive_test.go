package scriptgen

import (
	"strings"
	"testing"
)

func TestRenderInteractiveOrderPreserved(t *testing.T) {
	elements := []InteractiveElement{
		{Type: "menu", Prompt: "Press 1 for sales"},
		{Type: "pause", Duration: 4},
		{Type: "input", Prompt: "Enter your account number"},
	}

	lines := RenderInteractive(elements)
	text := strings.Join(lines, "\n")

	menuIdx := strings.Index(text, "Press 1 for sales")
	pauseIdx := strings.Index(text, "[Pause for 4 seconds]")
	inputIdx := strings.Index(text, "Enter your account number")

	if menuIdx < 0 || pauseIdx < 0 || inputIdx < 0 {
		t.Fatalf("missing rendered element:\n%s", text)
	}
	if !(menuIdx < pauseIdx && pauseIdx < inputIdx) {
		t.Errorf("elements rendered out of order: menu=%d pause=%d input=%d", menuIdx, pauseIdx, inputIdx)
	}
}

func TestRenderInteractiveMenu(t *testing.T) {
	lines := RenderInteractive([]InteractiveElement{{Type: "menu", Prompt: "Choose an option"}})

	want := []string{
		"AGENT: Choose an option",
		"SYSTEM: [Wait for keypad input - 3 second timeout]",
	}
	for i, line := range want {
		if lines[i] != line {
			t.Errorf("line %d = %q, want %q", i, lines[i], line)
		}
	}
}

func TestRenderInteractiveInputConfirmation(t *testing.T) {
	lines := RenderInteractive([]InteractiveElement{{
		Type:         "input",
		Prompt:       "Enter your postcode",
		Confirmation: "You entered {input}, is that correct?",
	}})
	text := strings.Join(lines, "\n")

	if !strings.Contains(text, "SYSTEM: [Wait for input - 10 second timeout]") {
		t.Errorf("input wait line missing:\n%s", text)
	}
	if !strings.Contains(text, "You entered [CUSTOMER_INPUT], is that correct?") {
		t.Errorf("confirmation placeholder not substituted:\n%s", text)
	}
	if !strings.Contains(text, "SYSTEM: [Wait for confirmation - 3 second timeout]") {
		t.Errorf("confirmation wait line missing:\n%s", text)
	}
}

func TestRenderInteractiveInputWithoutConfirmation(t *testing.T) {
	lines := RenderInteractive([]InteractiveElement{{Type: "input", Prompt: "Enter your postcode"}})
	text := strings.Join(lines, "\n")

	if strings.Contains(text, "Wait for confirmation") {
		t.Errorf("confirmation round-trip rendered without a confirmation template:\n%s", text)
	}
}

func TestRenderInteractiveConfirmation(t *testing.T) {
	lines := RenderInteractive([]InteractiveElement{{Type: "confirmation", Prompt: "Do you agree?"}})
	text := strings.Join(lines, "\n")

	if !strings.Contains(text, "SYSTEM: [Wait for response - 5 second timeout]") {
		t.Errorf("confirmation wait line missing:\n%s", text)
	}
	if !strings.Contains(text, `Press 0: "I need to speak to someone"`) {
		t.Errorf("escalation outcome missing:\n%s", text)
	}
}

func TestRenderInteractivePauseDefaultsToTwoSeconds(t *testing.T) {
	lines := RenderInteractive([]InteractiveElement{{Type: "pause"}})

	if len(lines) != 1 || lines[0] != "SYSTEM: [Pause for 2 seconds]" {
		t.Errorf("pause default wrong: %v", lines)
	}
}
