package scriptgen

import (
	"strings"
	"testing"
)

func testScript() Script {
	return Script{
		Text: strings.Join([]string{
			"AGENT: Hi, this is an automated call from TestCo.",
			"SYSTEM: [Wait for keypad input - 5 second timeout]",
			"CUSTOMER: [Presses 1]",
			"SYSTEM: [Wait for confirmation - 5 second timeout]",
			"SYSTEM: [Pause for 4 seconds]",
		}, "\n"),
		Voice: Persona{
			ID:      "testco",
			Name:    "TestCo",
			Phrases: []string{"Hello, this is TestCo calling"},
		},
		ProductInfo: "your account",
	}
}

func TestBuildAudioSegments(t *testing.T) {
	segments := BuildAudioSegments(testScript())

	if len(segments) != 4 {
		t.Fatalf("got %d segments, want 4 (customer lines are not audio)", len(segments))
	}

	speech := segments[0]
	if speech.Type != "speech" {
		t.Errorf("first segment type = %q, want speech", speech.Type)
	}
	if speech.Text != "Hi, this is an automated call from TestCo." {
		t.Errorf("speech text = %q", speech.Text)
	}
	wantDuration := float64(len(speech.Text)) * 0.1
	if speech.Duration != wantDuration {
		t.Errorf("speech duration = %v, want %v", speech.Duration, wantDuration)
	}

	if segments[1].Type != "pause" || segments[1].Duration != 5 {
		t.Errorf("keypad wait segment = %+v, want 5s pause", segments[1])
	}
	if segments[2].Text != "Waiting for confirmation..." {
		t.Errorf("confirmation segment text = %q", segments[2].Text)
	}
	if segments[3].Duration != 4 || segments[3].Text != "Pause" {
		t.Errorf("pause segment = %+v, want 4s Pause", segments[3])
	}
}

func TestBuildBotFormat(t *testing.T) {
	format := BuildBotFormat(testScript())

	if format.VoiceSettings.VoiceID != "testco" {
		t.Errorf("voice id = %q", format.VoiceSettings.VoiceID)
	}
	if format.VoiceSettings.SpeechRate != 0.9 || format.VoiceSettings.Pitch != 1.0 || format.VoiceSettings.Volume != 0.8 {
		t.Errorf("voice settings = %+v", format.VoiceSettings)
	}
	if format.CallFlow.Opening.Text != "Hello, this is TestCo calling" {
		t.Errorf("opening text = %q", format.CallFlow.Opening.Text)
	}
	if format.CallFlow.Opening.Next != "introduction" || format.CallFlow.Closing.Next != "end" {
		t.Error("call flow chain broken")
	}
	if format.TimeoutSettings["menu_input"] != 3 || format.TimeoutSettings["text_input"] != 10 {
		t.Errorf("timeout settings = %v", format.TimeoutSettings)
	}
	if format.ValidationRules["card_number"] != `^\d{13,19}$` {
		t.Errorf("card number rule = %q", format.ValidationRules["card_number"])
	}
}

func TestExportBotFormat(t *testing.T) {
	format := BuildBotFormat(testScript())

	jsonOut, err := ExportBotFormat(format, "json")
	if err != nil {
		t.Fatalf("json export failed: %v", err)
	}
	if !strings.Contains(jsonOut, `"script_id": "autocall_script"`) {
		t.Errorf("json export missing script id:\n%s", jsonOut)
	}

	xmlOut, err := ExportBotFormat(format, "xml")
	if err != nil {
		t.Fatalf("xml export failed: %v", err)
	}
	if !strings.HasPrefix(xmlOut, `<?xml version="1.0" encoding="UTF-8"?>`) {
		t.Errorf("xml export missing declaration:\n%s", xmlOut)
	}
	if !strings.Contains(xmlOut, "<voice_name>TestCo</voice_name>") {
		t.Errorf("xml export missing voice name:\n%s", xmlOut)
	}

	csvOut, err := ExportBotFormat(format, "csv")
	if err != nil {
		t.Fatalf("csv export failed: %v", err)
	}
	if !strings.HasPrefix(csvOut, "Type,Text,Duration,Next_Action") {
		t.Errorf("csv export missing header:\n%s", csvOut)
	}

	if _, err := ExportBotFormat(format, "yaml"); err == nil {
		t.Error("unsupported format did not error")
	}
}
