package config

import (
	"ScriptForge/database/postgres"
	companyHandler "ScriptForge/internal/api/company/handler"
	companyRepository "ScriptForge/internal/api/company/repository"
	companyService "ScriptForge/internal/api/company/service"
	objectionHandler "ScriptForge/internal/api/objection/handler"
	objectionRepository "ScriptForge/internal/api/objection/repository"
	objectionService "ScriptForge/internal/api/objection/service"
	scriptHandler "ScriptForge/internal/api/script/handler"
	scriptRepository "ScriptForge/internal/api/script/repository"
	scriptService "ScriptForge/internal/api/script/service"
	voiceHandler "ScriptForge/internal/api/voice/handler"
	voiceService "ScriptForge/internal/api/voice/service"
	"ScriptForge/internal/middleware"
	"ScriptForge/pkg/export"
	"ScriptForge/pkg/gemini"
	"ScriptForge/pkg/openai"
	"ScriptForge/pkg/redis"
	"ScriptForge/pkg/s3"
	"ScriptForge/pkg/scriptgen"
	"ScriptForge/pkg/tts"
	"ScriptForge/pkg/utils"
	"ScriptForge/pkg/voicecatalog"
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"os"
)

type ServerOption func(*Server) error

type Server struct {
	engine       *fiber.App
	db           *sqlx.DB
	log          *logrus.Logger
	middleware   middleware.Middleware
	validator    *validator.Validate
	utils        utils.IUtils
	handlers     []handler
	redisServer  redis.IRedis
	chatGPT      openai.IChatGPT
	geminiClient gemini.IGemini
	ttsClient    tts.ITTS
	s3Client     s3.ItfS3
	exporter     export.IExport
	catalog      voicecatalog.ICatalog
	generator    scriptgen.IGenerator
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db
		return nil
	}
}

func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func WithS3Client() ServerOption {
	return func(s *Server) error {
		client, err := s3.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to initialize S3 client: %v", err)
			}
			return fmt.Errorf("failed to create S3 client: %w", err)
		}
		s.s3Client = client
		return nil
	}
}

func WithChatGPTClient() ServerOption {
	return func(s *Server) error {
		s.chatGPT = openai.NewChatGPT()
		return nil
	}
}

func WithGeminiClient() ServerOption {
	return func(s *Server) error {
		client, err := gemini.NewGeminiClient()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to create Gemini client: %v", err)
			}
			return fmt.Errorf("failed to create Gemini client: %w", err)
		}
		s.geminiClient = client
		return nil
	}
}

func WithTTSClient() ServerOption {
	return func(s *Server) error {
		s.ttsClient = tts.New()
		return nil
	}
}

func WithExporter() ServerOption {
	return func(s *Server) error {
		s.exporter = export.New()
		return nil
	}
}

func WithVoiceCatalog() ServerOption {
	return func(s *Server) error {
		s.catalog = voicecatalog.New()
		s.generator = scriptgen.New(s.catalog)
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Company Domain
	companyRepo := companyRepository.New(s.db, s.log)
	companyServices := companyService.NewCompanyService(s.log, companyRepo, s.geminiClient, s.redisServer)
	companyHandlers := companyHandler.New(s.log, s.validator, s.middleware, companyServices)

	// Script Domain
	scriptRepo := scriptRepository.New(s.db, s.log)
	scriptServices := scriptService.NewScriptsService(s.log, scriptRepo, companyRepo, s.generator, s.chatGPT, s.redisServer, s.utils, s.exporter, s.s3Client, s.ttsClient)
	scriptHandlers := scriptHandler.New(s.log, s.validator, s.middleware, scriptServices)

	// Objection Domain
	objectionRepo := objectionRepository.New(s.db, s.log)
	objectionServices := objectionService.NewObjectionsService(s.log, objectionRepo, companyRepo, s.chatGPT)
	objectionHandlers := objectionHandler.New(s.log, s.validator, s.middleware, objectionServices)

	// Voice Catalog Domain
	voiceServices := voiceService.NewVoicesService(s.log, s.catalog, s.ttsClient)
	voiceHandlers := voiceHandler.New(s.log, s.validator, s.middleware, voiceServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, companyHandlers, scriptHandlers, objectionHandlers, voiceHandlers)
}

func (s *Server) Run() error {
	router := s.engine.Group("/api/v1")
	s.engine.Use(s.middleware.NewRequestIDMiddleware())

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
