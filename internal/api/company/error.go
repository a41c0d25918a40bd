package companies

import "ScriptForge/pkg/response"

var (
	ErrCompanyNotFound      = response.NewError(404, "company not found")
	ErrCompanyAlreadyExists = response.NewError(409, "company already exists")
	ErrCompanyNotOwned      = response.NewError(403, "company does not belong to user")
	ErrBrandVoiceNotFound   = response.NewError(404, "brand voice not found")
	ErrTrainingDataNotFound = response.NewError(404, "training data not found")
	ErrMemoryNotFound       = response.NewError(404, "memory not found")
	ErrNoTrainingSamples    = response.NewError(400, "no training samples to analyze")
	ErrStyleAnalysisFailed  = response.NewError(502, "writing style analysis failed")
	ErrCreateCompany        = response.NewError(500, "failed to create company")
	ErrCreateBrandVoice     = response.NewError(500, "failed to create brand voice")
	ErrCreateTrainingData   = response.NewError(500, "failed to store training data")
	ErrSaveMemory           = response.NewError(500, "failed to save memory")
)
