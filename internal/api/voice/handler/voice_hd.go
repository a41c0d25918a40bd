package voiceHandler

import (
	"ScriptForge/internal/api/voice"
	contextPkg "ScriptForge/pkg/context"
	"ScriptForge/pkg/handlerUtil"
	jwtPkg "ScriptForge/pkg/jwt"
	"ScriptForge/pkg/log"
	"ScriptForge/pkg/voicecatalog"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *VoicesHandler) GetCompanyVoices(ctx *fiber.Ctx) error {
	errHandler := handlerUtil.New(h.log)
	return errHandler.HandleSuccess(ctx, fiber.StatusOK, h.voicesService.GetCompanyVoices())
}

func (h *VoicesHandler) GetCompanyVoice(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	errHandler := handlerUtil.New(h.log)

	voice, err := h.voicesService.GetCompanyVoice(ctx.Params("id"))
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_company_voice")
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, voice)
}

func (h *VoicesHandler) PreviewVoice(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing voice preview request")

	var req voices.PreviewVoiceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, h.voicesService.PreviewVoiceFromPrompt(req.Prompt))
}

func (h *VoicesHandler) GetHumanizedVoices(ctx *fiber.Ctx) error {
	errHandler := handlerUtil.New(h.log)

	filter := voicecatalog.HumanizedFilter{
		Accent:   ctx.Query("accent"),
		Gender:   ctx.Query("gender"),
		AgeRange: ctx.Query("age_range"),
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, h.voicesService.GetHumanizedVoices(filter))
}

func (h *VoicesHandler) GetHumanizedOptions(ctx *fiber.Ctx) error {
	errHandler := handlerUtil.New(h.log)
	return errHandler.HandleSuccess(ctx, fiber.StatusOK, h.voicesService.GetHumanizedOptions())
}

func (h *VoicesHandler) GetHumanizedVoice(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	errHandler := handlerUtil.New(h.log)

	voice, err := h.voicesService.GetHumanizedVoice(ctx.Params("id"))
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_humanized_voice")
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, voice)
}

func (h *VoicesHandler) GetModes(ctx *fiber.Ctx) error {
	errHandler := handlerUtil.New(h.log)
	return errHandler.HandleSuccess(ctx, fiber.StatusOK, h.voicesService.GetModes())
}

func (h *VoicesHandler) GetMode(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	errHandler := handlerUtil.New(h.log)

	mode, err := h.voicesService.GetMode(ctx.Params("id"))
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_script_mode")
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, mode)
}

func (h *VoicesHandler) SynthesizeSample(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 30*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing voice sample request")

	if _, err := jwtPkg.GetUserLoginData(ctx); err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	var req voices.VoiceSampleRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	res, err := h.voicesService.SynthesizeSample(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "synthesize_sample")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}
