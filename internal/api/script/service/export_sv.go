package scriptService

import (
	"ScriptForge/internal/api/script"
	contextPkg "ScriptForge/pkg/context"
	"ScriptForge/pkg/export"
	"ScriptForge/pkg/scriptgen"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

func (s *service) ExportScript(ctx context.Context, userID string, scriptID int64, format string) (scripts.ExportResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	script, company, err := s.ownedScript(ctx, userID, scriptID)
	if err != nil {
		return scripts.ExportResponse{}, err
	}

	data := export.ScriptExport{
		ID:          script.ID,
		CompanyName: company.Name,
		Script:      script.GeneratedScript,
		ScriptType:  script.ScriptType,
		Audience:    script.Audience,
		Tone:        script.Tone,
		BrandVoice:  script.Metadata["voice_name"],
		CreatedAt:   script.CreatedAt.UTC().Format(time.RFC3339),
	}

	now := time.Now()

	var payload []byte
	switch format {
	case "txt":
		payload = s.exporter.ToTXT(data)
	case "json":
		payload, err = s.exporter.ToJSON(data, now)
	case "pdf":
		payload, err = s.exporter.ToPDF(data)
	default:
		return scripts.ExportResponse{}, scripts.ErrUnsupportedExportFormat
	}
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to render script export")
		return scripts.ExportResponse{}, scripts.ErrExportFailed
	}

	fileName := s.exporter.FileName(script.ID, format, now)
	contentType := s.exporter.ContentType(format)

	fileURL, err := s.s3.UploadBytes(fileName, payload, contentType)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to upload script export")
		return scripts.ExportResponse{}, scripts.ErrExportFailed
	}

	presigned, err := s.s3.PresignUrl(fileURL)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to presign export URL")
		return scripts.ExportResponse{}, scripts.ErrExportFailed
	}

	return scripts.ExportResponse{
		FileName:    fileName,
		ContentType: contentType,
		URL:         presigned,
	}, nil
}

func (s *service) BotFormat(ctx context.Context, userID string, scriptID int64, format string) (scripts.BotFormatResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	script, _, err := s.ownedScript(ctx, userID, scriptID)
	if err != nil {
		return scripts.BotFormatResponse{}, err
	}

	if format == "" {
		format = "json"
	}

	rebuilt := scriptgen.Script{
		Text: script.GeneratedScript,
		Voice: scriptgen.Persona{
			ID:   script.Metadata["voice_id"],
			Name: script.Metadata["voice_name"],
		},
		ScriptType:  script.ScriptType,
		CallType:    script.Metadata["call_type"],
		ScriptMode:  script.Metadata["script_mode"],
		ProductInfo: script.ProductInfo,
	}

	botFormat := scriptgen.BuildBotFormat(rebuilt)
	botFormat.ScriptID = fmt.Sprintf("%d", script.ID)

	content, err := scriptgen.ExportBotFormat(botFormat, format)
	if err != nil {
		if errors.Is(err, scriptgen.ErrUnsupportedBotFormat) {
			return scripts.BotFormatResponse{}, scripts.ErrUnsupportedExportFormat
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to render bot format")
		return scripts.BotFormatResponse{}, scripts.ErrExportFailed
	}

	return scripts.BotFormatResponse{
		ScriptID: script.ID,
		Format:   format,
		Content:  content,
	}, nil
}

func (s *service) VoiceOver(ctx context.Context, userID string, scriptID int64, accent string) (scripts.VoiceOverResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	script, _, err := s.ownedScript(ctx, userID, scriptID)
	if err != nil {
		return scripts.VoiceOverResponse{}, err
	}

	audio, contentType, err := s.tts.Synthesize(ctx, script.GeneratedScript, accent)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to synthesize voice-over")
		return scripts.VoiceOverResponse{}, scripts.ErrVoiceOverFailed
	}

	fileName := fmt.Sprintf("script_%d_voiceover_%s.mp3", script.ID, time.Now().Format("20060102_150405"))

	fileURL, err := s.s3.UploadBytes(fileName, audio, contentType)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to upload voice-over")
		return scripts.VoiceOverResponse{}, scripts.ErrVoiceOverFailed
	}

	presigned, err := s.s3.PresignUrl(fileURL)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to presign voice-over URL")
		return scripts.VoiceOverResponse{}, scripts.ErrVoiceOverFailed
	}

	return scripts.VoiceOverResponse{
		FileName:    fileName,
		ContentType: contentType,
		URL:         presigned,
	}, nil
}
