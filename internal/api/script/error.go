package scripts

import "ScriptForge/pkg/response"

var (
	ErrScriptNotFound          = response.NewError(404, "script not found")
	ErrScriptNotOwned          = response.NewError(403, "script does not belong to user")
	ErrLibraryEntryNotFound    = response.NewError(404, "library entry not found")
	ErrVoiceNotFound           = response.NewError(404, "voice not found")
	ErrInvalidScriptType       = response.NewError(400, "invalid script type")
	ErrGenerationFailed        = response.NewError(500, "script generation failed")
	ErrCreateScript            = response.NewError(500, "failed to store script")
	ErrSaveToLibrary           = response.NewError(500, "failed to save script to library")
	ErrUnsupportedExportFormat = response.NewError(400, "unsupported export format")
	ErrExportFailed            = response.NewError(502, "script export failed")
	ErrVoiceOverFailed         = response.NewError(502, "voice-over synthesis failed")
)
