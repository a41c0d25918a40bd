package objections

import "time"

type CreateObjectionTemplateRequest struct {
	ObjectionType    string `json:"objection_type" validate:"required,max=50"`
	ObjectionText    string `json:"objection_text" validate:"required"`
	ResponseTemplate string `json:"response_template" validate:"required"`
	CompanyID        int64  `json:"company_id" validate:"omitempty,gt=0"`
	IsDefault        bool   `json:"is_default"`
}

type ObjectionTemplateResponse struct {
	ID               int64     `json:"id"`
	ObjectionType    string    `json:"objection_type"`
	ObjectionText    string    `json:"objection_text"`
	ResponseTemplate string    `json:"response_template"`
	CompanyID        int64     `json:"company_id,omitempty"`
	IsDefault        bool      `json:"is_default"`
	CreatedAt        time.Time `json:"created_at"`
}

type ObjectionTemplateListResponse struct {
	Templates []ObjectionTemplateResponse `json:"templates"`
}

type GenerateObjectionRequest struct {
	ObjectionType string `json:"objection_type" validate:"required,max=50"`
	ObjectionText string `json:"objection_text" validate:"omitempty"`
	Context       string `json:"context" validate:"omitempty"`
	BrandVoice    string `json:"brand_voice" validate:"omitempty"`
	CompanyID     int64  `json:"company_id" validate:"omitempty,gt=0"`
}

type ObjectionResponsesResponse struct {
	ObjectionType string   `json:"objection_type"`
	Responses     []string `json:"responses"`
	Source        string   `json:"source"`
}

type CommonObjectionsResponse struct {
	Objections []string `json:"objections"`
}
