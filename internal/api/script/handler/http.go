package scriptHandler

import (
	scriptService "ScriptForge/internal/api/script/service"
	"ScriptForge/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/sirupsen/logrus"
)

type ScriptsHandler struct {
	log            *logrus.Logger
	validator      *validator.Validate
	middleware     middleware.Middleware
	scriptsService scriptService.IScriptsService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	ss scriptService.IScriptsService,
) *ScriptsHandler {
	return &ScriptsHandler{
		log:            log,
		validator:      validate,
		middleware:     middleware,
		scriptsService: ss,
	}
}

func (h *ScriptsHandler) Start(srv fiber.Router) {
	scripts := srv.Group("/scripts")

	scripts.Post("/generate", h.middleware.NewTokenMiddleware, h.GenerateScript)

	// Live preview over websocket (no persistence)
	wsMiddleware := func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	}
	scripts.Use("/preview/ws", wsMiddleware)
	scripts.Get("/preview/ws", websocket.New(h.handlePreviewWebSocket))

	scripts.Get("", h.middleware.NewTokenMiddleware, h.GetScripts)
	scripts.Get("/:id", h.middleware.NewTokenMiddleware, h.GetScript)
	scripts.Delete("/:id", h.middleware.NewTokenMiddleware, h.DeleteScript)

	scripts.Post("/:id/export", h.middleware.NewTokenMiddleware, h.ExportScript)
	scripts.Get("/:id/bot-format", h.middleware.NewTokenMiddleware, h.BotFormat)
	scripts.Post("/:id/voice-over", h.middleware.NewTokenMiddleware, h.VoiceOver)

	scripts.Post("/:id/library", h.middleware.NewTokenMiddleware, h.SaveToLibrary)

	library := srv.Group("/library")
	library.Get("", h.middleware.NewTokenMiddleware, h.GetLibrary)
	library.Put("/:id/favorite", h.middleware.NewTokenMiddleware, h.SetFavorite)
	library.Post("/:id/used", h.middleware.NewTokenMiddleware, h.MarkUsed)
	library.Delete("/:id", h.middleware.NewTokenMiddleware, h.DeleteLibraryEntry)
}
