package objectionService

import (
	"ScriptForge/internal/api/objection"
	companyRepository "ScriptForge/internal/api/company/repository"
	objectionRepository "ScriptForge/internal/api/objection/repository"
	"ScriptForge/pkg/openai"
	"context"

	"github.com/sirupsen/logrus"
)

type service struct {
	log         *logrus.Logger
	repo        objectionRepository.Repository
	companyRepo companyRepository.Repository
	chatGPT     openai.IChatGPT
}

func NewObjectionsService(
	log *logrus.Logger,
	repo objectionRepository.Repository,
	companyRepo companyRepository.Repository,
	chatGPT openai.IChatGPT,
) IObjectionsService {
	return &service{
		log:         log,
		repo:        repo,
		companyRepo: companyRepo,
		chatGPT:     chatGPT,
	}
}

type IObjectionsService interface {
	CommonObjections() objections.CommonObjectionsResponse
	CreateTemplate(ctx context.Context, userID string, req objections.CreateObjectionTemplateRequest) (objections.ObjectionTemplateResponse, error)
	GetTemplates(ctx context.Context, userID string, companyID int64) (objections.ObjectionTemplateListResponse, error)
	DeleteTemplate(ctx context.Context, userID string, templateID int64) error
	GenerateResponses(ctx context.Context, userID string, req objections.GenerateObjectionRequest) (objections.ObjectionResponsesResponse, error)
}
