package scriptService

import (
	"ScriptForge/internal/api/company"
	"ScriptForge/internal/api/script"
	companyRepository "ScriptForge/internal/api/company/repository"
	scriptRepository "ScriptForge/internal/api/script/repository"
	"ScriptForge/internal/entity"
	contextPkg "ScriptForge/pkg/context"
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

func (s *service) GetScript(ctx context.Context, userID string, scriptID int64) (scripts.ScriptResponse, error) {
	script, _, err := s.ownedScript(ctx, userID, scriptID)
	if err != nil {
		return scripts.ScriptResponse{}, err
	}

	return makeScriptResponse(script), nil
}

func (s *service) GetScripts(ctx context.Context, userID string, companyID int64, limit, offset int) (scripts.ScriptListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	companyRepo, err := s.companyRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create company repository client")
		return scripts.ScriptListResponse{}, err
	}

	if _, err := s.ownedCompany(ctx, companyRepo, userID, companyID); err != nil {
		return scripts.ScriptListResponse{}, err
	}

	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return scripts.ScriptListResponse{}, err
	}

	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	scriptsList, total, err := repo.Scripts.GetScriptsByCompany(ctx, companyID, limit, offset)
	if err != nil {
		return scripts.ScriptListResponse{}, err
	}

	result := scripts.ScriptListResponse{
		Scripts: make([]scripts.ScriptResponse, 0, len(scriptsList)),
		Total:   total,
	}
	for _, script := range scriptsList {
		result.Scripts = append(result.Scripts, makeScriptResponse(script))
	}

	return result, nil
}

func (s *service) DeleteScript(ctx context.Context, userID string, scriptID int64) error {
	requestID := contextPkg.GetRequestID(ctx)

	if _, _, err := s.ownedScript(ctx, userID, scriptID); err != nil {
		return err
	}

	repo, err := s.repo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}
	defer repo.Rollback()

	if err := repo.Scripts.DeleteScript(ctx, scriptID); err != nil {
		return err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit script deletion")
		return err
	}

	return nil
}

func (s *service) SaveToLibrary(ctx context.Context, userID string, scriptID int64, req scripts.SaveToLibraryRequest) (scripts.LibraryEntryResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if _, _, err := s.ownedScript(ctx, userID, scriptID); err != nil {
		return scripts.LibraryEntryResponse{}, err
	}

	repo, err := s.repo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return scripts.LibraryEntryResponse{}, scripts.ErrSaveToLibrary
	}
	defer repo.Rollback()

	entry := entity.ScriptLibraryEntry{
		ScriptID:  scriptID,
		Title:     req.Title,
		Tags:      req.Tags,
		CreatedAt: time.Now(),
	}

	id, err := repo.Library.CreateEntry(ctx, entry)
	if err != nil {
		return scripts.LibraryEntryResponse{}, scripts.ErrSaveToLibrary
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit library entry")
		return scripts.LibraryEntryResponse{}, scripts.ErrSaveToLibrary
	}

	entry.ID = id
	return makeLibraryEntryResponse(entry), nil
}

func (s *service) GetLibrary(ctx context.Context, userID string, companyID int64) (scripts.LibraryListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	companyRepo, err := s.companyRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create company repository client")
		return scripts.LibraryListResponse{}, err
	}

	if _, err := s.ownedCompany(ctx, companyRepo, userID, companyID); err != nil {
		return scripts.LibraryListResponse{}, err
	}

	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return scripts.LibraryListResponse{}, err
	}

	entries, err := repo.Library.GetEntriesByCompany(ctx, companyID)
	if err != nil {
		return scripts.LibraryListResponse{}, err
	}

	result := scripts.LibraryListResponse{
		Entries: make([]scripts.LibraryEntryResponse, 0, len(entries)),
	}
	for _, entry := range entries {
		result.Entries = append(result.Entries, makeLibraryEntryResponse(entry))
	}

	return result, nil
}

func (s *service) SetFavorite(ctx context.Context, userID string, entryID int64, favorite bool) error {
	return s.updateLibraryEntry(ctx, userID, entryID, func(repo scriptRepository.Client) error {
		return repo.Library.SetFavorite(ctx, entryID, favorite)
	})
}

func (s *service) MarkUsed(ctx context.Context, userID string, entryID int64) error {
	return s.updateLibraryEntry(ctx, userID, entryID, func(repo scriptRepository.Client) error {
		return repo.Library.IncrementUsage(ctx, entryID)
	})
}

func (s *service) DeleteLibraryEntry(ctx context.Context, userID string, entryID int64) error {
	return s.updateLibraryEntry(ctx, userID, entryID, func(repo scriptRepository.Client) error {
		return repo.Library.DeleteEntry(ctx, entryID)
	})
}

func (s *service) updateLibraryEntry(ctx context.Context, userID string, entryID int64, update func(repo scriptRepository.Client) error) error {
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

	entry, err := repo.Library.GetEntryByID(ctx, entryID)
	if err != nil {
		return err
	}

	if _, _, err := s.ownedScript(ctx, userID, entry.ScriptID); err != nil {
		return err
	}

	if err := update(repo); err != nil {
		return err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit library update")
		return err
	}

	return nil
}

func (s *service) ownedScript(ctx context.Context, userID string, scriptID int64) (entity.Script, entity.Company, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.Script{}, entity.Company{}, err
	}

	script, err := repo.Scripts.GetScriptByID(ctx, scriptID)
	if err != nil {
		return entity.Script{}, entity.Company{}, err
	}

	companyRepo, err := s.companyRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create company repository client")
		return entity.Script{}, entity.Company{}, err
	}

	company, err := companyRepo.Companies.GetCompanyByID(ctx, script.CompanyID)
	if err != nil {
		return entity.Script{}, entity.Company{}, err
	}

	if company.UserID != userID {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"script_id":  scriptID,
		}).Warn("Script does not belong to requesting user")
		return entity.Script{}, entity.Company{}, scripts.ErrScriptNotOwned
	}

	return script, company, nil
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

func makeScriptResponse(script entity.Script) scripts.ScriptResponse {
	return scripts.ScriptResponse{
		ID:               script.ID,
		CompanyID:        script.CompanyID,
		BrandVoiceID:     script.BrandVoiceID,
		ScriptType:       script.ScriptType,
		Audience:         script.Audience,
		Tone:             script.Tone,
		ProductInfo:      script.ProductInfo,
		FormatType:       script.FormatType,
		HandleObjections: script.HandleObjections,
		UseTrainingData:  script.UseTrainingData,
		GeneratedScript:  script.GeneratedScript,
		Metadata:         script.Metadata,
		CreatedAt:        script.CreatedAt,
	}
}

func makeLibraryEntryResponse(entry entity.ScriptLibraryEntry) scripts.LibraryEntryResponse {
	return scripts.LibraryEntryResponse{
		ID:         entry.ID,
		ScriptID:   entry.ScriptID,
		Title:      entry.Title,
		Tags:       entry.Tags,
		IsFavorite: entry.IsFavorite,
		UsageCount: entry.UsageCount,
		CreatedAt:  entry.CreatedAt,
	}
}
