package voicecatalog

import (
	"strings"
	"testing"
)

func TestCompanyVoiceLookup(t *testing.T) {
	c := New()

	voice, ok := c.CompanyVoice("natwest")
	if !ok {
		t.Fatal("natwest voice not found")
	}
	if voice.Name != "NatWest Bank" {
		t.Errorf("name = %q, want NatWest Bank", voice.Name)
	}
	if len(voice.Phrases) == 0 {
		t.Error("voice has no phrases")
	}
	if _, ok := voice.ObjectionHandling["skepticism"]; !ok {
		t.Error("voice missing skepticism objection response")
	}

	if _, ok := c.CompanyVoice("nonexistent"); ok {
		t.Error("unknown id reported as found")
	}
}

func TestCompanyVoiceLookupReturnsCopies(t *testing.T) {
	c := New()

	first, _ := c.CompanyVoice("natwest")
	first.Phrases[0] = "tampered"
	first.ObjectionHandling["price"] = "tampered"

	second, _ := c.CompanyVoice("natwest")
	if second.Phrases[0] == "tampered" {
		t.Error("phrase mutation leaked into the catalog")
	}
	if second.ObjectionHandling["price"] == "tampered" {
		t.Error("objection mutation leaked into the catalog")
	}
}

func TestHumanizedVoiceFilters(t *testing.T) {
	c := New()

	british := c.HumanizedVoices(HumanizedFilter{Accent: "british"})
	if len(british) == 0 {
		t.Fatal("no british voices")
	}
	for _, v := range british {
		if !strings.EqualFold(v.Accent, "british") {
			t.Errorf("filter leaked accent %q", v.Accent)
		}
	}

	women := c.HumanizedVoices(HumanizedFilter{Accent: "british", Gender: "female"})
	for _, v := range women {
		if !strings.EqualFold(v.Gender, "female") {
			t.Errorf("filter leaked gender %q", v.Gender)
		}
	}
	if len(women) >= len(british) {
		t.Error("gender filter did not narrow the result")
	}

	if got := c.HumanizedVoices(HumanizedFilter{Accent: "martian"}); len(got) != 0 {
		t.Errorf("unknown accent returned %d voices", len(got))
	}
}

func TestHumanizedOptionsSorted(t *testing.T) {
	c := New()

	opts := c.HumanizedOptions()
	if len(opts.Accents) == 0 || len(opts.Genders) == 0 || len(opts.AgeRanges) == 0 {
		t.Fatalf("options incomplete: %+v", opts)
	}
	for i := 1; i < len(opts.Accents); i++ {
		if opts.Accents[i-1] > opts.Accents[i] {
			t.Errorf("accents not sorted: %v", opts.Accents)
			break
		}
	}
}

func TestModeConfigKnownMode(t *testing.T) {
	c := New()

	mode := c.ModeConfig("banking")
	if mode.Name == "General" {
		t.Error("known mode fell through to the default config")
	}
	if mode.Department == "" {
		t.Error("known mode has no department default")
	}
	if len(mode.CustomerResponses) == 0 {
		t.Error("banking mode missing customer responses")
	}
}

func TestModeConfigUnknownModeDefaults(t *testing.T) {
	c := New()

	mode := c.ModeConfig("interpretive_dance")
	if mode.Name != "General" {
		t.Errorf("name = %q, want General", mode.Name)
	}
	if mode.Tone != "professional" {
		t.Errorf("tone = %q, want professional", mode.Tone)
	}
	if mode.Department != "customer service" {
		t.Errorf("department = %q, want customer service", mode.Department)
	}
	if mode.ComplianceNotes == "" {
		t.Error("default config missing compliance note")
	}
}

func TestCompanyVoiceFromPrompt(t *testing.T) {
	c := New()

	tests := []struct {
		name            string
		prompt          string
		wantCompany     string
		wantCompanyType string
		wantTone        string
	}{
		{
			name:            "banking prompt",
			prompt:          "the company is Northwind Bank, calling about a loan",
			wantCompany:     "Northwind",
			wantCompanyType: "banking",
			wantTone:        "professional",
		},
		{
			name:            "retail prompt",
			prompt:          "calling from Brightside Ltd about your recent order",
			wantCompany:     "Brightside",
			wantCompanyType: "retail",
			wantTone:        "friendly",
		},
		{
			name:            "security prompt",
			prompt:          "we need to verify suspicious activity",
			wantCompany:     "Custom Company",
			wantCompanyType: "security",
			wantTone:        "urgent",
		},
		{
			name:            "no matches",
			prompt:          "hi",
			wantCompany:     "Custom Company",
			wantCompanyType: "general",
			wantTone:        "professional",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			voice := c.CompanyVoiceFromPrompt(tt.prompt)
			if voice.Name != tt.wantCompany {
				t.Errorf("company = %q, want %q", voice.Name, tt.wantCompany)
			}
			if voice.CompanyType != tt.wantCompanyType {
				t.Errorf("company type = %q, want %q", voice.CompanyType, tt.wantCompanyType)
			}
			if voice.Tone != tt.wantTone {
				t.Errorf("tone = %q, want %q", voice.Tone, tt.wantTone)
			}
			if voice.ID != UsePromptVoiceID {
				t.Errorf("id = %q, want use_prompt", voice.ID)
			}
			if len(voice.Phrases) != 5 {
				t.Errorf("got %d phrases, want 5", len(voice.Phrases))
			}
		})
	}
}
