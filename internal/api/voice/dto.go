package voices

import "ScriptForge/pkg/voicecatalog"

type CompanyVoiceListResponse struct {
	Voices []voicecatalog.CompanyVoice `json:"voices"`
	Total  int                         `json:"total"`
}

type HumanizedVoiceListResponse struct {
	Voices []voicecatalog.HumanizedVoice `json:"voices"`
	Total  int                           `json:"total"`
}

type ScriptModeListResponse struct {
	Modes []voicecatalog.ScriptMode `json:"modes"`
	Total int                       `json:"total"`
}

type PreviewVoiceRequest struct {
	Prompt string `json:"prompt" validate:"required,min=3"`
}

type VoiceSampleRequest struct {
	Text   string `json:"text" validate:"required,max=500"`
	Accent string `json:"accent" validate:"omitempty,max=50"`
}

type VoiceSampleResponse struct {
	ContentType string `json:"content_type"`
	AudioBase64 string `json:"audio_base64"`
}
