package companies

import "time"

type CreateCompanyRequest struct {
	Name string `json:"name" validate:"required,min=2,max=255"`
}

type CompanyResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

type CompanyListResponse struct {
	Companies []CompanyResponse `json:"companies"`
	Total     int               `json:"total"`
}

type CreateBrandVoiceRequest struct {
	Name            string   `json:"name" validate:"required,min=2,max=100"`
	VoiceType       string   `json:"voice_type" validate:"required,max=50"`
	Description     string   `json:"description" validate:"omitempty"`
	TrainingPrompts []string `json:"training_prompts" validate:"omitempty,dive,min=1"`
	AnalyzeSamples  bool     `json:"analyze_samples"`
}

type BrandVoiceResponse struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	CompanyID       int64     `json:"company_id"`
	VoiceType       string    `json:"voice_type"`
	Description     string    `json:"description"`
	TrainingPrompts []string  `json:"training_prompts"`
	CreatedAt       time.Time `json:"created_at"`
}

type BrandVoiceListResponse struct {
	BrandVoices []BrandVoiceResponse `json:"brand_voices"`
}

type CreateTrainingDataRequest struct {
	DataType string            `json:"data_type" validate:"required,oneof=custom_info brand_voice style_guide other"`
	Content  string            `json:"content" validate:"required"`
	Metadata map[string]string `json:"metadata" validate:"omitempty"`
}

type TrainingDataResponse struct {
	ID        int64             `json:"id"`
	CompanyID int64             `json:"company_id"`
	DataType  string            `json:"data_type"`
	Content   string            `json:"content"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

type TrainingDataListResponse struct {
	TrainingData []TrainingDataResponse `json:"training_data"`
}

type StyleAnalysisResponse struct {
	CompanyID int64  `json:"company_id"`
	Analysis  string `json:"analysis"`
}

type SaveMemoryRequest struct {
	MemoryType  string            `json:"memory_type" validate:"required,oneof=script_preference brand_style objection_handling custom"`
	MemoryKey   string            `json:"memory_key" validate:"required,max=255"`
	MemoryValue string            `json:"memory_value" validate:"required"`
	Metadata    map[string]string `json:"metadata" validate:"omitempty"`
}

type MemoryResponse struct {
	ID          int64             `json:"id"`
	CompanyID   int64             `json:"company_id"`
	MemoryType  string            `json:"memory_type"`
	MemoryKey   string            `json:"memory_key"`
	MemoryValue string            `json:"memory_value"`
	Metadata    map[string]string `json:"metadata,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

type MemoryListResponse struct {
	Memories []MemoryResponse `json:"memories"`
}
