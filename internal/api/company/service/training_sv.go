package companyService

import (
	"ScriptForge/internal/api/company"
	"ScriptForge/internal/entity"
	contextPkg "ScriptForge/pkg/context"
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// memoryContextCacheKey names the cached memory context consumed by
// script generation. Every memory write invalidates it.
func memoryContextCacheKey(companyID int64) string {
	return fmt.Sprintf("scriptforge:memory_context:%d", companyID)
}

func (s *service) AddTrainingData(ctx context.Context, userID string, companyID int64, req companies.CreateTrainingDataRequest) (companies.TrainingDataResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.repo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return companies.TrainingDataResponse{}, companies.ErrCreateTrainingData
	}
	defer repo.Rollback()

	if _, err := s.ownedCompany(ctx, repo, userID, companyID); err != nil {
		return companies.TrainingDataResponse{}, err
	}

	data := entity.TrainingData{
		CompanyID: companyID,
		DataType:  req.DataType,
		Content:   req.Content,
		Metadata:  req.Metadata,
		CreatedAt: time.Now(),
	}

	id, err := repo.TrainingData.CreateTrainingData(ctx, data)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to store training data")
		return companies.TrainingDataResponse{}, companies.ErrCreateTrainingData
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit training data")
		return companies.TrainingDataResponse{}, companies.ErrCreateTrainingData
	}

	data.ID = id
	return makeTrainingDataResponse(data), nil
}

func (s *service) GetTrainingData(ctx context.Context, userID string, companyID int64, dataType string) (companies.TrainingDataListResponse, error) {
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return companies.TrainingDataListResponse{}, err
	}

	if _, err := s.ownedCompany(ctx, repo, userID, companyID); err != nil {
		return companies.TrainingDataListResponse{}, err
	}

	dataList, err := repo.TrainingData.GetTrainingDataByCompany(ctx, companyID, dataType)
	if err != nil {
		return companies.TrainingDataListResponse{}, err
	}

	result := companies.TrainingDataListResponse{
		TrainingData: make([]companies.TrainingDataResponse, 0, len(dataList)),
	}
	for _, data := range dataList {
		result.TrainingData = append(result.TrainingData, makeTrainingDataResponse(data))
	}

	return result, nil
}

func (s *service) DeleteTrainingData(ctx context.Context, userID string, companyID, dataID int64) error {
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

	if err := repo.TrainingData.DeleteTrainingData(ctx, dataID); err != nil {
		return err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit training data deletion")
		return err
	}

	return nil
}

func (s *service) AnalyzeWritingStyle(ctx context.Context, userID string, companyID int64) (companies.StyleAnalysisResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.repo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return companies.StyleAnalysisResponse{}, err
	}
	defer repo.Rollback()

	if _, err := s.ownedCompany(ctx, repo, userID, companyID); err != nil {
		return companies.StyleAnalysisResponse{}, err
	}

	dataList, err := repo.TrainingData.GetTrainingDataByCompany(ctx, companyID, "brand_voice")
	if err != nil {
		return companies.StyleAnalysisResponse{}, err
	}

	samples := make([]string, 0, len(dataList))
	for _, data := range dataList {
		if data.Content != "" {
			samples = append(samples, data.Content)
		}
	}

	if len(samples) == 0 {
		return companies.StyleAnalysisResponse{}, companies.ErrNoTrainingSamples
	}

	analysis, err := s.gemini.AnalyzeWritingStyle(ctx, samples)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Writing style analysis failed")
		return companies.StyleAnalysisResponse{}, companies.ErrStyleAnalysisFailed
	}

	memory := entity.MemoryData{
		CompanyID:   companyID,
		MemoryType:  "brand_style",
		MemoryKey:   "style_analysis",
		MemoryValue: analysis,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := repo.Memories.UpsertMemory(ctx, memory); err != nil {
		return companies.StyleAnalysisResponse{}, companies.ErrSaveMemory
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit style analysis memory")
		return companies.StyleAnalysisResponse{}, companies.ErrSaveMemory
	}

	s.invalidateMemoryContext(ctx, requestID, companyID)

	return companies.StyleAnalysisResponse{
		CompanyID: companyID,
		Analysis:  analysis,
	}, nil
}

func (s *service) SaveMemory(ctx context.Context, userID string, companyID int64, req companies.SaveMemoryRequest) (companies.MemoryResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.repo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return companies.MemoryResponse{}, companies.ErrSaveMemory
	}
	defer repo.Rollback()

	if _, err := s.ownedCompany(ctx, repo, userID, companyID); err != nil {
		return companies.MemoryResponse{}, err
	}

	now := time.Now()
	memory := entity.MemoryData{
		CompanyID:   companyID,
		MemoryType:  req.MemoryType,
		MemoryKey:   req.MemoryKey,
		MemoryValue: req.MemoryValue,
		Metadata:    req.Metadata,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := repo.Memories.UpsertMemory(ctx, memory); err != nil {
		return companies.MemoryResponse{}, companies.ErrSaveMemory
	}

	stored, err := repo.Memories.GetMemoryByKey(ctx, companyID, req.MemoryKey)
	if err != nil {
		return companies.MemoryResponse{}, companies.ErrSaveMemory
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit memory save")
		return companies.MemoryResponse{}, companies.ErrSaveMemory
	}

	s.invalidateMemoryContext(ctx, requestID, companyID)

	return makeMemoryResponse(stored), nil
}

func (s *service) GetMemories(ctx context.Context, userID string, companyID int64, memoryType string) (companies.MemoryListResponse, error) {
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return companies.MemoryListResponse{}, err
	}

	if _, err := s.ownedCompany(ctx, repo, userID, companyID); err != nil {
		return companies.MemoryListResponse{}, err
	}

	memories, err := repo.Memories.GetMemoriesByCompany(ctx, companyID, memoryType)
	if err != nil {
		return companies.MemoryListResponse{}, err
	}

	result := companies.MemoryListResponse{
		Memories: make([]companies.MemoryResponse, 0, len(memories)),
	}
	for _, memory := range memories {
		result.Memories = append(result.Memories, makeMemoryResponse(memory))
	}

	return result, nil
}

func (s *service) DeleteMemory(ctx context.Context, userID string, companyID, memoryID int64) error {
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

	if err := repo.Memories.DeleteMemory(ctx, memoryID); err != nil {
		return err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit memory deletion")
		return err
	}

	s.invalidateMemoryContext(ctx, requestID, companyID)

	return nil
}

func (s *service) invalidateMemoryContext(ctx context.Context, requestID string, companyID int64) {
	if err := s.redis.DeleteCache(ctx, memoryContextCacheKey(companyID)); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to invalidate memory context cache")
	}
}

func makeTrainingDataResponse(data entity.TrainingData) companies.TrainingDataResponse {
	return companies.TrainingDataResponse{
		ID:        data.ID,
		CompanyID: data.CompanyID,
		DataType:  data.DataType,
		Content:   data.Content,
		Metadata:  data.Metadata,
		CreatedAt: data.CreatedAt,
	}
}

func makeMemoryResponse(memory entity.MemoryData) companies.MemoryResponse {
	return companies.MemoryResponse{
		ID:          memory.ID,
		CompanyID:   memory.CompanyID,
		MemoryType:  memory.MemoryType,
		MemoryKey:   memory.MemoryKey,
		MemoryValue: memory.MemoryValue,
		Metadata:    memory.Metadata,
		CreatedAt:   memory.CreatedAt,
		UpdatedAt:   memory.UpdatedAt,
	}
}
