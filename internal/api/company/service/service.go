package companyService

import (
	"ScriptForge/internal/api/company"
	companyRepository "ScriptForge/internal/api/company/repository"
	"ScriptForge/pkg/gemini"
	"ScriptForge/pkg/redis"
	"context"

	"github.com/sirupsen/logrus"
)

type service struct {
	log    *logrus.Logger
	repo   companyRepository.Repository
	gemini gemini.IGemini
	redis  redis.IRedis
}

func NewCompanyService(log *logrus.Logger, repo companyRepository.Repository, geminiClient gemini.IGemini, redisClient redis.IRedis) ICompanyService {
	return &service{
		log:    log,
		repo:   repo,
		gemini: geminiClient,
		redis:  redisClient,
	}
}

type ICompanyService interface {
	CreateCompany(ctx context.Context, userID string, req companies.CreateCompanyRequest) (companies.CompanyResponse, error)
	GetCompany(ctx context.Context, userID string, companyID int64) (companies.CompanyResponse, error)
	GetCompanies(ctx context.Context, userID string, limit, offset int) (companies.CompanyListResponse, error)
	DeleteCompany(ctx context.Context, userID string, companyID int64) error

	CreateBrandVoice(ctx context.Context, userID string, companyID int64, req companies.CreateBrandVoiceRequest) (companies.BrandVoiceResponse, error)
	GetBrandVoices(ctx context.Context, userID string, companyID int64) (companies.BrandVoiceListResponse, error)
	DeleteBrandVoice(ctx context.Context, userID string, companyID, voiceID int64) error

	AddTrainingData(ctx context.Context, userID string, companyID int64, req companies.CreateTrainingDataRequest) (companies.TrainingDataResponse, error)
	GetTrainingData(ctx context.Context, userID string, companyID int64, dataType string) (companies.TrainingDataListResponse, error)
	DeleteTrainingData(ctx context.Context, userID string, companyID, dataID int64) error
	AnalyzeWritingStyle(ctx context.Context, userID string, companyID int64) (companies.StyleAnalysisResponse, error)

	SaveMemory(ctx context.Context, userID string, companyID int64, req companies.SaveMemoryRequest) (companies.MemoryResponse, error)
	GetMemories(ctx context.Context, userID string, companyID int64, memoryType string) (companies.MemoryListResponse, error)
	DeleteMemory(ctx context.Context, userID string, companyID, memoryID int64) error
}
