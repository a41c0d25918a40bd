package voiceService

import (
	"ScriptForge/internal/api/voice"
	"ScriptForge/pkg/tts"
	"ScriptForge/pkg/voicecatalog"
	"context"

	"github.com/sirupsen/logrus"
)

type service struct {
	log     *logrus.Logger
	catalog voicecatalog.ICatalog
	tts     tts.ITTS
}

func NewVoicesService(log *logrus.Logger, catalog voicecatalog.ICatalog, ttsClient tts.ITTS) IVoicesService {
	return &service{
		log:     log,
		catalog: catalog,
		tts:     ttsClient,
	}
}

type IVoicesService interface {
	GetCompanyVoices() voices.CompanyVoiceListResponse
	GetCompanyVoice(id string) (voicecatalog.CompanyVoice, error)
	PreviewVoiceFromPrompt(prompt string) voicecatalog.CompanyVoice

	GetHumanizedVoices(filter voicecatalog.HumanizedFilter) voices.HumanizedVoiceListResponse
	GetHumanizedVoice(id string) (voicecatalog.HumanizedVoice, error)
	GetHumanizedOptions() voicecatalog.HumanizedOptions

	GetModes() voices.ScriptModeListResponse
	GetMode(id string) (voicecatalog.ScriptMode, error)

	SynthesizeSample(ctx context.Context, req voices.VoiceSampleRequest) (voices.VoiceSampleResponse, error)
}
