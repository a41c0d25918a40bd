package scriptService

import (
	"errors"
	"io"
	"strings"
	"testing"

	"ScriptForge/internal/api/script"
	"ScriptForge/pkg/scriptgen"
	"ScriptForge/pkg/voicecatalog"

	"github.com/sirupsen/logrus"
)

func newPreviewService() *service {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return &service{
		log:       logger,
		generator: scriptgen.New(voicecatalog.New()),
	}
}

func TestPreviewScriptReportsVoiceName(t *testing.T) {
	svc := newPreviewService()

	res, err := svc.PreviewScript(scripts.GenerateScriptRequest{
		VoiceID:     "natwest",
		ScriptType:  scriptgen.ScriptTypeAutocall,
		CallType:    scriptgen.CallTypeOutbound,
		ScriptMode:  "debt_collection",
		ProductInfo: "calling from NatWest Bank about your unsettled balance of £120.50",
	})
	if err != nil {
		t.Fatalf("PreviewScript returned error: %v", err)
	}

	if res.Voice != "NatWest Bank" {
		t.Errorf("voice = %q, want display name of the resolved voice", res.Voice)
	}
	if !strings.Contains(res.Script, "£120.50") {
		t.Errorf("script missing amount:\n%s", res.Script)
	}
	if res.ConnectedScript != "" {
		t.Errorf("connected script should be empty for autocall, got:\n%s", res.ConnectedScript)
	}
}

func TestPreviewScriptBothIncludesConnected(t *testing.T) {
	svc := newPreviewService()

	res, err := svc.PreviewScript(scripts.GenerateScriptRequest{
		VoiceID:     "natwest",
		ScriptType:  scriptgen.ScriptTypeBoth,
		CallType:    scriptgen.CallTypeOutbound,
		ScriptMode:  "debt_collection",
		ProductInfo: "unsettled balance of £120.50",
	})
	if err != nil {
		t.Fatalf("PreviewScript returned error: %v", err)
	}

	if res.ConnectedScript == "" {
		t.Error("expected a connected follow-up script")
	}
}

func TestPreviewScriptUnknownVoice(t *testing.T) {
	svc := newPreviewService()

	_, err := svc.PreviewScript(scripts.GenerateScriptRequest{
		VoiceID:     "nonexistent",
		ScriptType:  scriptgen.ScriptTypeAutocall,
		CallType:    scriptgen.CallTypeOutbound,
		ProductInfo: "hello",
	})
	if !errors.Is(err, scripts.ErrVoiceNotFound) {
		t.Errorf("error = %v, want ErrVoiceNotFound", err)
	}
}

func TestPreviewScriptInvalidType(t *testing.T) {
	svc := newPreviewService()

	_, err := svc.PreviewScript(scripts.GenerateScriptRequest{
		VoiceID:     "natwest",
		ScriptType:  "broadcast",
		CallType:    scriptgen.CallTypeOutbound,
		ProductInfo: "hello",
	})
	if !errors.Is(err, scripts.ErrInvalidScriptType) {
		t.Errorf("error = %v, want ErrInvalidScriptType", err)
	}
}
