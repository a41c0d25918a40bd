package export

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

var fixedTime = time.Date(2026, 8, 30, 15, 30, 0, 0, time.UTC)

func sampleData() ScriptExport {
	return ScriptExport{
		ID:          42,
		CompanyName: "NatWest Bank",
		Script:      "AGENT: Hello.\nCUSTOMER: [Response]\nAGENT: Goodbye.",
		ScriptType:  "autocall",
		Tone:        "professional",
		CreatedAt:   "2026-08-30T12:00:00Z",
	}
}

func TestFileName(t *testing.T) {
	e := New()

	got := e.FileName(42, "pdf", fixedTime)
	want := "script_42_20260830_153000.pdf"
	if got != want {
		t.Errorf("FileName = %q, want %q", got, want)
	}
}

func TestContentType(t *testing.T) {
	e := New()

	tests := []struct {
		format string
		want   string
	}{
		{"pdf", "application/pdf"},
		{"json", "application/json"},
		{"txt", "text/plain; charset=utf-8"},
	}
	for _, tt := range tests {
		if got := e.ContentType(tt.format); got != tt.want {
			t.Errorf("ContentType(%q) = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestToTXT(t *testing.T) {
	e := New()

	out := string(e.ToTXT(sampleData()))

	if !strings.HasPrefix(out, "Call Script - NatWest Bank\n") {
		t.Errorf("txt missing header:\n%s", out)
	}
	if !strings.Contains(out, strings.Repeat("=", 50)) {
		t.Error("txt missing title rule")
	}
	if !strings.Contains(out, "Script Type: autocall") {
		t.Error("txt missing metadata")
	}
	if !strings.Contains(out, "SCRIPT CONTENT:") {
		t.Error("txt missing content header")
	}
	if !strings.HasSuffix(out, "AGENT: Goodbye.") {
		t.Errorf("txt missing script body:\n%s", out)
	}
}

func TestToTXTUnknownCompany(t *testing.T) {
	e := New()

	out := string(e.ToTXT(ScriptExport{Script: "AGENT: Hi."}))
	if !strings.HasPrefix(out, "Call Script - Unknown Company") {
		t.Errorf("missing company fallback:\n%s", out)
	}
}

func TestToJSON(t *testing.T) {
	e := New()

	out, err := e.ToJSON(sampleData(), fixedTime)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}

	for _, want := range []string{
		`"exported_at": "2026-08-30T15:30:00Z"`,
		`"version": "1.0"`,
		`"company_name": "NatWest Bank"`,
		`"script_data"`,
	} {
		if !strings.Contains(string(out), want) {
			t.Errorf("json missing %q:\n%s", want, out)
		}
	}
}

func TestToPDF(t *testing.T) {
	e := New()

	out, err := e.ToPDF(sampleData())
	if err != nil {
		t.Fatalf("ToPDF failed: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Error("output is not a PDF document")
	}
	if len(out) < 500 {
		t.Errorf("pdf suspiciously small: %d bytes", len(out))
	}
}
