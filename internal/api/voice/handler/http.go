package voiceHandler

import (
	voiceService "ScriptForge/internal/api/voice/service"
	"ScriptForge/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type VoicesHandler struct {
	log           *logrus.Logger
	validator     *validator.Validate
	middleware    middleware.Middleware
	voicesService voiceService.IVoicesService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	vs voiceService.IVoicesService,
) *VoicesHandler {
	return &VoicesHandler{
		log:           log,
		validator:     validate,
		middleware:    middleware,
		voicesService: vs,
	}
}

func (h *VoicesHandler) Start(srv fiber.Router) {
	voices := srv.Group("/voices")

	// Catalog endpoints are read-only and public
	voices.Get("/company", h.GetCompanyVoices)
	voices.Get("/company/:id", h.GetCompanyVoice)
	voices.Post("/preview", h.PreviewVoice)

	voices.Get("/humanized", h.GetHumanizedVoices)
	voices.Get("/humanized/options", h.GetHumanizedOptions)
	voices.Get("/humanized/:id", h.GetHumanizedVoice)

	voices.Get("/modes", h.GetModes)
	voices.Get("/modes/:id", h.GetMode)

	// Sample synthesis calls an external TTS provider, so it needs auth
	voices.Post("/sample", h.middleware.NewTokenMiddleware, h.SynthesizeSample)
}
