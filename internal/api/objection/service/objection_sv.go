package objectionService

import (
	"ScriptForge/internal/api/company"
	"ScriptForge/internal/api/objection"
	"ScriptForge/internal/entity"
	contextPkg "ScriptForge/pkg/context"
	"ScriptForge/pkg/openai"
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// commonObjections is the canonical set of objection types the generator
// and the template seed data work with.
var commonObjections = []string{
	"price",
	"time",
	"competitor",
	"authority",
	"skepticism",
	"budget",
	"timing",
	"need",
	"trust",
	"complexity",
}

const fallbackObjectionResponse = "I understand your concern. Let me address that for you."

func (s *service) CommonObjections() objections.CommonObjectionsResponse {
	result := make([]string, len(commonObjections))
	copy(result, commonObjections)
	return objections.CommonObjectionsResponse{Objections: result}
}

func (s *service) CreateTemplate(ctx context.Context, userID string, req objections.CreateObjectionTemplateRequest) (objections.ObjectionTemplateResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if req.CompanyID > 0 {
		if err := s.checkCompanyOwnership(ctx, userID, req.CompanyID); err != nil {
			return objections.ObjectionTemplateResponse{}, err
		}
	}

	repo, err := s.repo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return objections.ObjectionTemplateResponse{}, objections.ErrCreateTemplate
	}
	defer repo.Rollback()

	template := entity.ObjectionTemplate{
		ObjectionType:    req.ObjectionType,
		ObjectionText:    req.ObjectionText,
		ResponseTemplate: req.ResponseTemplate,
		CompanyID:        req.CompanyID,
		IsDefault:        req.IsDefault && req.CompanyID == 0,
		CreatedAt:        time.Now(),
	}

	id, err := repo.Templates.CreateTemplate(ctx, template)
	if err != nil {
		return objections.ObjectionTemplateResponse{}, objections.ErrCreateTemplate
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit objection template")
		return objections.ObjectionTemplateResponse{}, objections.ErrCreateTemplate
	}

	template.ID = id
	return makeTemplateResponse(template), nil
}

func (s *service) GetTemplates(ctx context.Context, userID string, companyID int64) (objections.ObjectionTemplateListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if companyID > 0 {
		if err := s.checkCompanyOwnership(ctx, userID, companyID); err != nil {
			return objections.ObjectionTemplateListResponse{}, err
		}
	}

	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return objections.ObjectionTemplateListResponse{}, err
	}

	templates, err := repo.Templates.GetTemplatesForCompany(ctx, companyID)
	if err != nil {
		return objections.ObjectionTemplateListResponse{}, err
	}

	result := objections.ObjectionTemplateListResponse{
		Templates: make([]objections.ObjectionTemplateResponse, 0, len(templates)),
	}
	for _, template := range templates {
		result.Templates = append(result.Templates, makeTemplateResponse(template))
	}

	return result, nil
}

func (s *service) DeleteTemplate(ctx context.Context, userID string, templateID int64) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.repo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}
	defer repo.Rollback()

	template, err := repo.Templates.GetTemplateByID(ctx, templateID)
	if err != nil {
		return err
	}

	// Default templates are shared, only company templates can be removed
	if template.CompanyID == 0 {
		return objections.ErrTemplateNotOwned
	}
	if err := s.checkCompanyOwnership(ctx, userID, template.CompanyID); err != nil {
		return err
	}

	if err := repo.Templates.DeleteTemplate(ctx, templateID); err != nil {
		return err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit template deletion")
		return err
	}

	return nil
}

func (s *service) GenerateResponses(ctx context.Context, userID string, req objections.GenerateObjectionRequest) (objections.ObjectionResponsesResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if req.CompanyID > 0 {
		if err := s.checkCompanyOwnership(ctx, userID, req.CompanyID); err != nil {
			return objections.ObjectionResponsesResponse{}, err
		}
	}

	baseTemplate := s.storedTemplate(ctx, requestID, req.ObjectionType, req.CompanyID)

	responses, err := s.chatGPT.GenerateObjectionResponses(ctx, openai.ObjectionPrompt{
		ObjectionType: req.ObjectionType,
		ObjectionText: req.ObjectionText,
		Context:       req.Context,
		BaseTemplate:  baseTemplate,
		BrandVoice:    req.BrandVoice,
	})
	if err == nil && len(responses) > 0 {
		return objections.ObjectionResponsesResponse{
			ObjectionType: req.ObjectionType,
			Responses:     responses,
			Source:        "llm",
		}, nil
	}

	s.log.WithFields(logrus.Fields{
		"request_id":     requestID,
		"objection_type": req.ObjectionType,
		"error":          errString(err),
	}).Warn("LLM objection responses unavailable, using stored template")

	if strings.TrimSpace(baseTemplate) != "" {
		return objections.ObjectionResponsesResponse{
			ObjectionType: req.ObjectionType,
			Responses:     []string{baseTemplate},
			Source:        "template",
		}, nil
	}

	return objections.ObjectionResponsesResponse{
		ObjectionType: req.ObjectionType,
		Responses:     []string{fallbackObjectionResponse},
		Source:        "fallback",
	}, nil
}

// storedTemplate returns the best stored response template for the
// objection type, preferring company templates over defaults.
func (s *service) storedTemplate(ctx context.Context, requestID, objectionType string, companyID int64) string {
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to create repository client for template lookup")
		return ""
	}

	templates, err := repo.Templates.GetTemplatesByType(ctx, objectionType, companyID)
	if err != nil || len(templates) == 0 {
		return ""
	}

	return templates[0].ResponseTemplate
}

func (s *service) checkCompanyOwnership(ctx context.Context, userID string, companyID int64) error {
	repo, err := s.companyRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Error("Failed to create company repository client")
		return err
	}

	company, err := repo.Companies.GetCompanyByID(ctx, companyID)
	if err != nil {
		return err
	}

	if company.UserID != userID {
		return companies.ErrCompanyNotOwned
	}

	return nil
}

func errString(err error) string {
	if err == nil {
		return "empty response"
	}
	return err.Error()
}

func makeTemplateResponse(template entity.ObjectionTemplate) objections.ObjectionTemplateResponse {
	return objections.ObjectionTemplateResponse{
		ID:               template.ID,
		ObjectionType:    template.ObjectionType,
		ObjectionText:    template.ObjectionText,
		ResponseTemplate: template.ResponseTemplate,
		CompanyID:        template.CompanyID,
		IsDefault:        template.IsDefault,
		CreatedAt:        template.CreatedAt,
	}
}
