package companyHandler

import (
	companyService "ScriptForge/internal/api/company/service"
	"ScriptForge/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type CompaniesHandler struct {
	log            *logrus.Logger
	validator      *validator.Validate
	middleware     middleware.Middleware
	companyService companyService.ICompanyService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	cs companyService.ICompanyService,
) *CompaniesHandler {
	return &CompaniesHandler{
		log:            log,
		validator:      validate,
		middleware:     middleware,
		companyService: cs,
	}
}

func (h *CompaniesHandler) Start(srv fiber.Router) {
	companies := srv.Group("/companies")

	// All company data is scoped to the authenticated user
	companies.Post("/", h.middleware.NewTokenMiddleware, h.CreateCompany)
	companies.Get("", h.middleware.NewTokenMiddleware, h.GetCompanies)
	companies.Get("/:id", h.middleware.NewTokenMiddleware, h.GetCompany)
	companies.Delete("/:id", h.middleware.NewTokenMiddleware, h.DeleteCompany)

	companies.Post("/:id/brand-voices", h.middleware.NewTokenMiddleware, h.CreateBrandVoice)
	companies.Get("/:id/brand-voices", h.middleware.NewTokenMiddleware, h.GetBrandVoices)
	companies.Delete("/:id/brand-voices/:voiceId", h.middleware.NewTokenMiddleware, h.DeleteBrandVoice)

	companies.Post("/:id/training-data", h.middleware.NewTokenMiddleware, h.AddTrainingData)
	companies.Get("/:id/training-data", h.middleware.NewTokenMiddleware, h.GetTrainingData)
	companies.Delete("/:id/training-data/:dataId", h.middleware.NewTokenMiddleware, h.DeleteTrainingData)
	companies.Post("/:id/analyze-style", h.middleware.NewTokenMiddleware, h.AnalyzeWritingStyle)

	companies.Post("/:id/memory", h.middleware.NewTokenMiddleware, h.SaveMemory)
	companies.Get("/:id/memory", h.middleware.NewTokenMiddleware, h.GetMemories)
	companies.Delete("/:id/memory/:memoryId", h.middleware.NewTokenMiddleware, h.DeleteMemory)
}
