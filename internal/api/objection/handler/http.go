package objectionHandler

import (
	objectionService "ScriptForge/internal/api/objection/service"
	"ScriptForge/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ObjectionsHandler struct {
	log               *logrus.Logger
	validator         *validator.Validate
	middleware        middleware.Middleware
	objectionsService objectionService.IObjectionsService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	os objectionService.IObjectionsService,
) *ObjectionsHandler {
	return &ObjectionsHandler{
		log:               log,
		validator:         validate,
		middleware:        middleware,
		objectionsService: os,
	}
}

func (h *ObjectionsHandler) Start(srv fiber.Router) {
	objections := srv.Group("/objections")

	// The common objection list is static, no auth needed
	objections.Get("/common", h.CommonObjections)

	objections.Post("/templates", h.middleware.NewTokenMiddleware, h.CreateTemplate)
	objections.Get("/templates", h.middleware.NewTokenMiddleware, h.GetTemplates)
	objections.Delete("/templates/:id", h.middleware.NewTokenMiddleware, h.DeleteTemplate)

	objections.Post("/generate", h.middleware.NewTokenMiddleware, h.GenerateResponses)
}
