package voices

import "ScriptForge/pkg/response"

var (
	ErrVoiceNotFound = response.NewError(404, "voice not found")
	ErrModeNotFound  = response.NewError(404, "script mode not found")
	ErrSampleFailed  = response.NewError(502, "voice sample synthesis failed")
)
