package scriptService

import (
	"ScriptForge/internal/api/script"
	companyRepository "ScriptForge/internal/api/company/repository"
	scriptRepository "ScriptForge/internal/api/script/repository"
	"ScriptForge/pkg/export"
	"ScriptForge/pkg/openai"
	"ScriptForge/pkg/redis"
	"ScriptForge/pkg/s3"
	"ScriptForge/pkg/scriptgen"
	"ScriptForge/pkg/tts"
	"ScriptForge/pkg/utils"
	"context"

	"github.com/sirupsen/logrus"
)

type service struct {
	log         *logrus.Logger
	repo        scriptRepository.Repository
	companyRepo companyRepository.Repository
	generator   scriptgen.IGenerator
	chatGPT     openai.IChatGPT
	redis       redis.IRedis
	utils       utils.IUtils
	exporter    export.IExport
	s3          s3.ItfS3
	tts         tts.ITTS
}

func NewScriptsService(
	log *logrus.Logger,
	repo scriptRepository.Repository,
	companyRepo companyRepository.Repository,
	generator scriptgen.IGenerator,
	chatGPT openai.IChatGPT,
	redisClient redis.IRedis,
	utilsClient utils.IUtils,
	exporter export.IExport,
	s3Client s3.ItfS3,
	ttsClient tts.ITTS,
) IScriptsService {
	return &service{
		log:         log,
		repo:        repo,
		companyRepo: companyRepo,
		generator:   generator,
		chatGPT:     chatGPT,
		redis:       redisClient,
		utils:       utilsClient,
		exporter:    exporter,
		s3:          s3Client,
		tts:         ttsClient,
	}
}

type IScriptsService interface {
	GenerateScript(ctx context.Context, userID string, req scripts.GenerateScriptRequest) (scripts.GeneratedScriptResponse, error)
	PreviewScript(req scripts.GenerateScriptRequest) (scripts.GeneratedScriptResponse, error)

	GetScript(ctx context.Context, userID string, scriptID int64) (scripts.ScriptResponse, error)
	GetScripts(ctx context.Context, userID string, companyID int64, limit, offset int) (scripts.ScriptListResponse, error)
	DeleteScript(ctx context.Context, userID string, scriptID int64) error

	SaveToLibrary(ctx context.Context, userID string, scriptID int64, req scripts.SaveToLibraryRequest) (scripts.LibraryEntryResponse, error)
	GetLibrary(ctx context.Context, userID string, companyID int64) (scripts.LibraryListResponse, error)
	SetFavorite(ctx context.Context, userID string, entryID int64, favorite bool) error
	MarkUsed(ctx context.Context, userID string, entryID int64) error
	DeleteLibraryEntry(ctx context.Context, userID string, entryID int64) error

	ExportScript(ctx context.Context, userID string, scriptID int64, format string) (scripts.ExportResponse, error)
	BotFormat(ctx context.Context, userID string, scriptID int64, format string) (scripts.BotFormatResponse, error)
	VoiceOver(ctx context.Context, userID string, scriptID int64, accent string) (scripts.VoiceOverResponse, error)
}
