package handlerUtil

import (
	"ScriptForge/internal/api/company"
	"ScriptForge/internal/api/objection"
	"ScriptForge/internal/api/script"
	"ScriptForge/internal/api/voice"
	"ScriptForge/pkg/log"
	"ScriptForge/pkg/response"
	"errors"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/sirupsen/logrus"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

type ErrorHandler struct {
	logger *logrus.Logger
}

func New(logger *logrus.Logger) *ErrorHandler {
	return &ErrorHandler{
		logger: logger,
	}
}

func (h *ErrorHandler) Handle(c *fiber.Ctx, requestID string, err error, path string, operation string) error {
	// Company domain errors
	if errors.Is(err, companies.ErrCompanyNotFound) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Company not found")
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Company not found",
			"code":    "COMPANY_NOT_FOUND",
		})
	}

	if errors.Is(err, companies.ErrCompanyAlreadyExists) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Company already exists")
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "Company already exists",
			"code":    "COMPANY_ALREADY_EXISTS",
		})
	}

	if errors.Is(err, companies.ErrCompanyNotOwned) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Company does not belong to user")
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Company does not belong to user",
			"code":    "COMPANY_NOT_OWNED",
		})
	}

	if errors.Is(err, companies.ErrNoTrainingSamples) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("No training samples to analyze")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "No training samples to analyze",
			"code":    "NO_TRAINING_SAMPLES",
		})
	}

	// Script domain errors
	if errors.Is(err, scripts.ErrScriptNotFound) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Script not found")
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Script not found",
			"code":    "SCRIPT_NOT_FOUND",
		})
	}

	if errors.Is(err, scripts.ErrScriptNotOwned) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Script does not belong to user")
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Script does not belong to user",
			"code":    "SCRIPT_NOT_OWNED",
		})
	}

	if errors.Is(err, scripts.ErrVoiceNotFound) || errors.Is(err, voices.ErrVoiceNotFound) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Voice not found")
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Voice not found",
			"code":    "VOICE_NOT_FOUND",
		})
	}

	if errors.Is(err, scripts.ErrInvalidScriptType) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Invalid script type")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid script type",
			"code":    "INVALID_SCRIPT_TYPE",
		})
	}

	if errors.Is(err, scripts.ErrUnsupportedExportFormat) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Unsupported export format")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Unsupported export format",
			"code":    "UNSUPPORTED_EXPORT_FORMAT",
		})
	}

	// Objection domain errors
	if errors.Is(err, objections.ErrTemplateNotFound) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Objection template not found")
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Objection template not found",
			"code":    "OBJECTION_TEMPLATE_NOT_FOUND",
		})
	}

	var respErr *response.Error
	if errors.As(err, &respErr) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"code":       respErr.Code,
			"path":       path,
			"operation":  operation,
		}).Warn("Operation failed with error response")
		return c.Status(respErr.Code).JSON(fiber.Map{"error": err.Error()})
	}

	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
		"operation":  operation,
	}).Error("Unexpected error")

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "An unexpected error occurred",
	})
}

func (h *ErrorHandler) HandleValidationError(c *fiber.Ctx, requestID string, err error, path string) error {
	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
	}).Warn("Validation failed")

	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": "Validation failed: " + err.Error(),
		"code":  "VALIDATION_ERROR",
	})
}

func (h *ErrorHandler) HandleRequestTimeout(c *fiber.Ctx) error {
	return c.Status(fiber.StatusRequestTimeout).JSON(utils.StatusMessage(fiber.StatusRequestTimeout))
}

func (h *ErrorHandler) HandleUnauthorized(c *fiber.Ctx, requestID string, message string) error {
	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"path":       c.Path(),
		"message":    message,
	}).Warn("Unauthorized access")

	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": message,
		"code":  "UNAUTHORIZED",
	})
}

func (h *ErrorHandler) HandleSuccess(c *fiber.Ctx, statusCode int, data interface{}) error {
	if data == nil {
		return c.SendStatus(statusCode)
	}
	return c.Status(statusCode).JSON(data)
}
