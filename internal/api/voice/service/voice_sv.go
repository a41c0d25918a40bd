package voiceService

import (
	"ScriptForge/internal/api/voice"
	contextPkg "ScriptForge/pkg/context"
	"ScriptForge/pkg/voicecatalog"
	"context"
	"encoding/base64"

	"github.com/sirupsen/logrus"
)

func (s *service) GetCompanyVoices() voices.CompanyVoiceListResponse {
	list := s.catalog.CompanyVoices()
	return voices.CompanyVoiceListResponse{
		Voices: list,
		Total:  len(list),
	}
}

func (s *service) GetCompanyVoice(id string) (voicecatalog.CompanyVoice, error) {
	voice, ok := s.catalog.CompanyVoice(id)
	if !ok {
		return voicecatalog.CompanyVoice{}, voices.ErrVoiceNotFound
	}
	return voice, nil
}

func (s *service) PreviewVoiceFromPrompt(prompt string) voicecatalog.CompanyVoice {
	return s.catalog.CompanyVoiceFromPrompt(prompt)
}

func (s *service) GetHumanizedVoices(filter voicecatalog.HumanizedFilter) voices.HumanizedVoiceListResponse {
	list := s.catalog.HumanizedVoices(filter)
	return voices.HumanizedVoiceListResponse{
		Voices: list,
		Total:  len(list),
	}
}

func (s *service) GetHumanizedVoice(id string) (voicecatalog.HumanizedVoice, error) {
	voice, ok := s.catalog.HumanizedVoice(id)
	if !ok {
		return voicecatalog.HumanizedVoice{}, voices.ErrVoiceNotFound
	}
	return voice, nil
}

func (s *service) GetHumanizedOptions() voicecatalog.HumanizedOptions {
	return s.catalog.HumanizedOptions()
}

func (s *service) GetModes() voices.ScriptModeListResponse {
	list := s.catalog.Modes()
	return voices.ScriptModeListResponse{
		Modes: list,
		Total: len(list),
	}
}

func (s *service) GetMode(id string) (voicecatalog.ScriptMode, error) {
	mode, ok := s.catalog.Mode(id)
	if !ok {
		return voicecatalog.ScriptMode{}, voices.ErrModeNotFound
	}
	return mode, nil
}

func (s *service) SynthesizeSample(ctx context.Context, req voices.VoiceSampleRequest) (voices.VoiceSampleResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	audio, contentType, err := s.tts.Synthesize(ctx, req.Text, req.Accent)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to synthesize voice sample")
		return voices.VoiceSampleResponse{}, voices.ErrSampleFailed
	}

	return voices.VoiceSampleResponse{
		ContentType: contentType,
		AudioBase64: base64.StdEncoding.EncodeToString(audio),
	}, nil
}
