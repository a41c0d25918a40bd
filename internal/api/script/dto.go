package scripts

import (
	"ScriptForge/pkg/scriptgen"
	"time"
)

type GenerateScriptRequest struct {
	CompanyID           int64                          `json:"company_id" validate:"required,gt=0"`
	VoiceID             string                         `json:"voice_id" validate:"required"`
	ScriptType          string                         `json:"script_type" validate:"required,oneof=autocall humanized both"`
	CallType            string                         `json:"call_type" validate:"required,oneof=inbound outbound"`
	ScriptMode          string                         `json:"script_mode" validate:"omitempty,max=50"`
	Audience            string                         `json:"audience" validate:"omitempty,max=100"`
	Tone                string                         `json:"tone" validate:"omitempty,max=100"`
	ProductInfo         string                         `json:"product_info" validate:"required"`
	NegativePrompts     string                         `json:"negative_prompts" validate:"omitempty"`
	FormatType          string                         `json:"format_type" validate:"omitempty,oneof=standard bot"`
	BrandVoiceID        int64                          `json:"brand_voice_id" validate:"omitempty,gt=0"`
	HandleObjections    bool                           `json:"handle_objections"`
	UseTrainingData     bool                           `json:"use_training_data"`
	UseLLM              bool                           `json:"use_llm"`
	InteractiveElements []scriptgen.InteractiveElement `json:"interactive_elements" validate:"omitempty,dive"`
}

type GeneratedScriptResponse struct {
	ScriptID        int64                `json:"script_id"`
	Script          string               `json:"script"`
	ConnectedScript string               `json:"connected_script,omitempty"`
	ScriptType      string               `json:"script_type"`
	CallType        string               `json:"call_type"`
	Voice           string               `json:"voice"`
	BotFormat       *scriptgen.BotFormat `json:"bot_format,omitempty"`
	Cached          bool                 `json:"cached"`
}

type ScriptResponse struct {
	ID               int64             `json:"id"`
	CompanyID        int64             `json:"company_id"`
	BrandVoiceID     int64             `json:"brand_voice_id,omitempty"`
	ScriptType       string            `json:"script_type"`
	Audience         string            `json:"audience,omitempty"`
	Tone             string            `json:"tone,omitempty"`
	ProductInfo      string            `json:"product_info"`
	FormatType       string            `json:"format_type"`
	HandleObjections bool              `json:"handle_objections"`
	UseTrainingData  bool              `json:"use_training_data"`
	GeneratedScript  string            `json:"generated_script"`
	Metadata         map[string]string `json:"metadata,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
}

type ScriptListResponse struct {
	Scripts []ScriptResponse `json:"scripts"`
	Total   int              `json:"total"`
}

type SaveToLibraryRequest struct {
	Title string   `json:"title" validate:"required,min=1,max=255"`
	Tags  []string `json:"tags" validate:"omitempty,dive,min=1"`
}

type LibraryEntryResponse struct {
	ID         int64     `json:"id"`
	ScriptID   int64     `json:"script_id"`
	Title      string    `json:"title"`
	Tags       []string  `json:"tags"`
	IsFavorite bool      `json:"is_favorite"`
	UsageCount int64     `json:"usage_count"`
	CreatedAt  time.Time `json:"created_at"`
}

type LibraryListResponse struct {
	Entries []LibraryEntryResponse `json:"entries"`
}

type ExportScriptRequest struct {
	Format string `json:"format" validate:"required,oneof=txt json pdf"`
}

type ExportResponse struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	URL         string `json:"url"`
}

type BotFormatResponse struct {
	ScriptID int64  `json:"script_id"`
	Format   string `json:"format"`
	Content  string `json:"content"`
}

type VoiceOverRequest struct {
	Accent string `json:"accent" validate:"omitempty,max=50"`
}

type VoiceOverResponse struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	URL         string `json:"url"`
}
