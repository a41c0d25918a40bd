package companyService

import (
	"ScriptForge/internal/api/company"
	companyRepository "ScriptForge/internal/api/company/repository"
	"ScriptForge/internal/entity"
	contextPkg "ScriptForge/pkg/context"
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
)

func (s *service) CreateCompany(ctx context.Context, userID string, req companies.CreateCompanyRequest) (companies.CompanyResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.repo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return companies.CompanyResponse{}, companies.ErrCreateCompany
	}
	defer repo.Rollback()

	if _, err := repo.Companies.GetCompanyByName(ctx, req.Name); err == nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"name":       req.Name,
		}).Warn("Company name already taken")
		return companies.CompanyResponse{}, companies.ErrCompanyAlreadyExists
	} else if !errors.Is(err, companies.ErrCompanyNotFound) {
		return companies.CompanyResponse{}, companies.ErrCreateCompany
	}

	company := entity.Company{
		Name:      req.Name,
		UserID:    userID,
		CreatedAt: time.Now(),
	}

	id, err := repo.Companies.CreateCompany(ctx, company)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create company")
		return companies.CompanyResponse{}, companies.ErrCreateCompany
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit company creation")
		return companies.CompanyResponse{}, companies.ErrCreateCompany
	}

	return companies.CompanyResponse{
		ID:        id,
		Name:      company.Name,
		UserID:    company.UserID,
		CreatedAt: company.CreatedAt,
	}, nil
}

func (s *service) GetCompany(ctx context.Context, userID string, companyID int64) (companies.CompanyResponse, error) {
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return companies.CompanyResponse{}, err
	}

	company, err := s.ownedCompany(ctx, repo, userID, companyID)
	if err != nil {
		return companies.CompanyResponse{}, err
	}

	return makeCompanyResponse(company), nil
}

func (s *service) GetCompanies(ctx context.Context, userID string, limit, offset int) (companies.CompanyListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return companies.CompanyListResponse{}, err
	}

	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	companiesList, total, err := repo.Companies.GetCompaniesByUser(ctx, userID, limit, offset)
	if err != nil {
		return companies.CompanyListResponse{}, err
	}

	result := companies.CompanyListResponse{
		Companies: make([]companies.CompanyResponse, 0, len(companiesList)),
		Total:     total,
	}
	for _, company := range companiesList {
		result.Companies = append(result.Companies, makeCompanyResponse(company))
	}

	return result, nil
}

func (s *service) DeleteCompany(ctx context.Context, userID string, companyID int64) error {
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

	if _, err := s.ownedCompany(ctx, repo, userID, companyID); err != nil {
		return err
	}

	if err := repo.Companies.DeleteCompany(ctx, companyID); err != nil {
		return err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit company deletion")
		return err
	}

	return nil
}

func (s *service) CreateBrandVoice(ctx context.Context, userID string, companyID int64, req companies.CreateBrandVoiceRequest) (companies.BrandVoiceResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.repo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return companies.BrandVoiceResponse{}, companies.ErrCreateBrandVoice
	}
	defer repo.Rollback()

	if _, err := s.ownedCompany(ctx, repo, userID, companyID); err != nil {
		return companies.BrandVoiceResponse{}, err
	}

	if req.AnalyzeSamples && len(req.TrainingPrompts) == 0 {
		return companies.BrandVoiceResponse{}, companies.ErrNoTrainingSamples
	}

	voice := entity.BrandVoice{
		Name:            req.Name,
		CompanyID:       companyID,
		VoiceType:       req.VoiceType,
		Description:     req.Description,
		TrainingPrompts: req.TrainingPrompts,
		CreatedAt:       time.Now(),
	}

	id, err := repo.BrandVoices.CreateBrandVoice(ctx, voice)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create brand voice")
		return companies.BrandVoiceResponse{}, companies.ErrCreateBrandVoice
	}

	if req.AnalyzeSamples {
		analysis, err := s.gemini.AnalyzeWritingStyle(ctx, req.TrainingPrompts)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Writing style analysis failed, storing brand voice without style notes")
		} else {
			memory := entity.MemoryData{
				CompanyID:   companyID,
				MemoryType:  "brand_style",
				MemoryKey:   "style_analysis:" + req.Name,
				MemoryValue: analysis,
				CreatedAt:   time.Now(),
				UpdatedAt:   time.Now(),
			}
			if err := repo.Memories.UpsertMemory(ctx, memory); err != nil {
				s.log.WithFields(logrus.Fields{
					"request_id": requestID,
					"error":      err.Error(),
				}).Warn("Failed to persist style analysis memory")
			}
		}
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit brand voice creation")
		return companies.BrandVoiceResponse{}, companies.ErrCreateBrandVoice
	}

	voice.ID = id
	return makeBrandVoiceResponse(voice), nil
}

func (s *service) GetBrandVoices(ctx context.Context, userID string, companyID int64) (companies.BrandVoiceListResponse, error) {
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return companies.BrandVoiceListResponse{}, err
	}

	if _, err := s.ownedCompany(ctx, repo, userID, companyID); err != nil {
		return companies.BrandVoiceListResponse{}, err
	}

	voices, err := repo.BrandVoices.GetBrandVoicesByCompany(ctx, companyID)
	if err != nil {
		return companies.BrandVoiceListResponse{}, err
	}

	result := companies.BrandVoiceListResponse{
		BrandVoices: make([]companies.BrandVoiceResponse, 0, len(voices)),
	}
	for _, voice := range voices {
		result.BrandVoices = append(result.BrandVoices, makeBrandVoiceResponse(voice))
	}

	return result, nil
}

func (s *service) DeleteBrandVoice(ctx context.Context, userID string, companyID, voiceID int64) error {
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

	if _, err := s.ownedCompany(ctx, repo, userID, companyID); err != nil {
		return err
	}

	voice, err := repo.BrandVoices.GetBrandVoiceByID(ctx, voiceID)
	if err != nil {
		return err
	}
	if voice.CompanyID != companyID {
		return companies.ErrBrandVoiceNotFound
	}

	if err := repo.BrandVoices.DeleteBrandVoice(ctx, voiceID); err != nil {
		return err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit brand voice deletion")
		return err
	}

	return nil
}

func (s *service) ownedCompany(ctx context.Context, repo companyRepository.Client, userID string, companyID int64) (entity.Company, error) {
	company, err := repo.Companies.GetCompanyByID(ctx, companyID)
	if err != nil {
		return entity.Company{}, err
	}

	if company.UserID != userID {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"company_id": companyID,
		}).Warn("Company does not belong to requesting user")
		return entity.Company{}, companies.ErrCompanyNotOwned
	}

	return company, nil
}

func makeCompanyResponse(company entity.Company) companies.CompanyResponse {
	return companies.CompanyResponse{
		ID:        company.ID,
		Name:      company.Name,
		UserID:    company.UserID,
		CreatedAt: company.CreatedAt,
	}
}

func makeBrandVoiceResponse(voice entity.BrandVoice) companies.BrandVoiceResponse {
	return companies.BrandVoiceResponse{
		ID:              voice.ID,
		Name:            voice.Name,
		CompanyID:       voice.CompanyID,
		VoiceType:       voice.VoiceType,
		Description:     voice.Description,
		TrainingPrompts: voice.TrainingPrompts,
		CreatedAt:       voice.CreatedAt,
	}
}
