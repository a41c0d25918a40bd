package scriptService

import (
	"ScriptForge/internal/api/script"
	companyRepository "ScriptForge/internal/api/company/repository"
	"ScriptForge/internal/entity"
	contextPkg "ScriptForge/pkg/context"
	"ScriptForge/pkg/openai"
	"ScriptForge/pkg/scriptgen"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const generationCacheTTL = time.Hour

func generationCacheKey(fingerprint string) string {
	return "scriptforge:generation:" + fingerprint
}

func memoryContextCacheKey(companyID int64) string {
	return fmt.Sprintf("scriptforge:memory_context:%d", companyID)
}

func (s *service) GenerateScript(ctx context.Context, userID string, req scripts.GenerateScriptRequest) (scripts.GeneratedScriptResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	companyRepo, err := s.companyRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create company repository client")
		return scripts.GeneratedScriptResponse{}, scripts.ErrGenerationFailed
	}

	company, err := s.ownedCompany(ctx, companyRepo, userID, req.CompanyID)
	if err != nil {
		return scripts.GeneratedScriptResponse{}, err
	}

	brandVoice, err := s.resolveBrandVoice(ctx, companyRepo, req)
	if err != nil {
		return scripts.GeneratedScriptResponse{}, err
	}

	fingerprint := s.utils.RequestFingerprint(
		strconv.FormatInt(req.CompanyID, 10),
		req.VoiceID,
		req.ScriptType,
		req.CallType,
		req.ScriptMode,
		req.ProductInfo,
		req.NegativePrompts,
		req.Audience,
		req.Tone,
		strconv.FormatBool(req.UseLLM),
	)

	if cached, err := s.redis.GetCache(ctx, generationCacheKey(fingerprint)); err == nil && cached != "" {
		var res scripts.GeneratedScriptResponse
		if err := json.Unmarshal([]byte(cached), &res); err == nil {
			res.Cached = true
			return res, nil
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err,
		}).Warn("Failed to decode cached generation, regenerating")
	}

	genReq := scriptgen.Request{
		ScriptType:          req.ScriptType,
		VoiceID:             req.VoiceID,
		CallType:            req.CallType,
		ScriptMode:          req.ScriptMode,
		ProductInfo:         req.ProductInfo,
		NegativePrompts:     req.NegativePrompts,
		InteractiveElements: req.InteractiveElements,
	}

	script, connected, err := s.runPipeline(genReq)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Script generation pipeline failed")
		switch {
		case errors.Is(err, scriptgen.ErrVoiceNotFound):
			return scripts.GeneratedScriptResponse{}, scripts.ErrVoiceNotFound
		case errors.Is(err, scriptgen.ErrInvalidScriptType):
			return scripts.GeneratedScriptResponse{}, scripts.ErrInvalidScriptType
		default:
			return scripts.GeneratedScriptResponse{}, scripts.ErrGenerationFailed
		}
	}

	if req.UseLLM {
		script.Text = s.tryLLMScript(ctx, requestID, company.Name, brandVoice, req, script.Text)
	}

	var botFormat *scriptgen.BotFormat
	if req.FormatType == "bot" && req.ScriptType != scriptgen.ScriptTypeHumanized {
		built := scriptgen.BuildBotFormat(script)
		botFormat = &built
	}

	scriptID, err := s.persistScript(ctx, req, script)
	if err != nil {
		return scripts.GeneratedScriptResponse{}, err
	}

	res := scripts.GeneratedScriptResponse{
		ScriptID:   scriptID,
		Script:     script.Text,
		ScriptType: req.ScriptType,
		CallType:   req.CallType,
		Voice:      script.Voice.Name,
		BotFormat:  botFormat,
	}
	if connected != nil {
		res.ConnectedScript = connected.Text
	}

	if raw, err := json.Marshal(res); err == nil {
		if err := s.redis.SetCache(ctx, generationCacheKey(fingerprint), string(raw), generationCacheTTL); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Failed to cache generated script")
		}
	}

	return res, nil
}

// PreviewScript runs the rule-based pipeline without persisting or
// caching anything. Used by the live preview stream.
func (s *service) PreviewScript(req scripts.GenerateScriptRequest) (scripts.GeneratedScriptResponse, error) {
	genReq := scriptgen.Request{
		ScriptType:          req.ScriptType,
		VoiceID:             req.VoiceID,
		CallType:            req.CallType,
		ScriptMode:          req.ScriptMode,
		ProductInfo:         req.ProductInfo,
		NegativePrompts:     req.NegativePrompts,
		InteractiveElements: req.InteractiveElements,
	}

	script, connected, err := s.runPipeline(genReq)
	if err != nil {
		switch {
		case errors.Is(err, scriptgen.ErrVoiceNotFound):
			return scripts.GeneratedScriptResponse{}, scripts.ErrVoiceNotFound
		case errors.Is(err, scriptgen.ErrInvalidScriptType):
			return scripts.GeneratedScriptResponse{}, scripts.ErrInvalidScriptType
		default:
			return scripts.GeneratedScriptResponse{}, scripts.ErrGenerationFailed
		}
	}

	res := scripts.GeneratedScriptResponse{
		Script:     script.Text,
		ScriptType: req.ScriptType,
		CallType:   req.CallType,
		Voice:      script.Voice.Name,
	}
	if connected != nil {
		res.ConnectedScript = connected.Text
	}

	return res, nil
}

// runPipeline runs the rule-based generation. For "both" the autocall
// script is generated first, then a connected follow-up derived from it.
func (s *service) runPipeline(req scriptgen.Request) (scriptgen.Script, *scriptgen.Script, error) {
	switch req.ScriptType {
	case scriptgen.ScriptTypeAutocall:
		script, err := s.generator.GenerateAutocall(req)
		return script, nil, err
	case scriptgen.ScriptTypeHumanized:
		script, err := s.generator.GenerateHumanized(req)
		return script, nil, err
	case scriptgen.ScriptTypeBoth:
		autocall, err := s.generator.GenerateAutocall(req)
		if err != nil {
			return scriptgen.Script{}, nil, err
		}
		connected, err := s.generator.GenerateConnected(autocall, req)
		if err != nil {
			return scriptgen.Script{}, nil, err
		}
		return autocall, &connected, nil
	default:
		return scriptgen.Script{}, nil, scriptgen.ErrInvalidScriptType
	}
}

// tryLLMScript asks the chat model for a script and falls back to the
// rule-based text when the model is unreachable or returns nothing.
func (s *service) tryLLMScript(ctx context.Context, requestID, companyName, brandVoice string, req scripts.GenerateScriptRequest, fallback string) string {
	brandVoiceContext := brandVoice
	if req.UseTrainingData {
		memoryContext := s.memoryContext(ctx, requestID, req.CompanyID)
		if memoryContext != "" {
			if brandVoiceContext != "" {
				brandVoiceContext += "\n"
			}
			brandVoiceContext += memoryContext
		}
	}

	generated, err := s.chatGPT.GenerateScript(ctx, openai.ScriptPrompt{
		CompanyName:     companyName,
		ScriptMode:      req.ScriptMode,
		CallType:        req.CallType,
		Audience:        req.Audience,
		Tone:            req.Tone,
		ProductInfo:     req.ProductInfo,
		BrandVoice:      brandVoiceContext,
		NegativePrompts: req.NegativePrompts,
	})
	if err != nil || strings.TrimSpace(generated) == "" {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      fmt.Sprintf("%v", err),
		}).Warn("LLM generation unavailable, using rule-based script")
		return fallback
	}

	return generated
}

// memoryContext assembles stored memories and custom training data into
// a prompt context block, cached per company.
func (s *service) memoryContext(ctx context.Context, requestID string, companyID int64) string {
	key := memoryContextCacheKey(companyID)
	if cached, err := s.redis.GetCache(ctx, key); err == nil && cached != "" {
		return cached
	}

	companyRepo, err := s.companyRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to create company repository client for memory context")
		return ""
	}

	var sb strings.Builder

	memories, err := companyRepo.Memories.GetMemoriesByCompany(ctx, companyID, "")
	if err == nil {
		for _, memory := range memories {
			sb.WriteString(fmt.Sprintf("%s: %s\n", memory.MemoryKey, memory.MemoryValue))
		}
	}

	trainingData, err := companyRepo.TrainingData.GetTrainingDataByCompany(ctx, companyID, "custom_info")
	if err == nil {
		for _, data := range trainingData {
			sb.WriteString(data.Content)
			sb.WriteString("\n")
		}
	}

	result := strings.TrimSpace(sb.String())
	if result != "" {
		if err := s.redis.SetCache(ctx, key, result, generationCacheTTL); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Failed to cache memory context")
		}
	}

	return result
}

func (s *service) persistScript(ctx context.Context, req scripts.GenerateScriptRequest, script scriptgen.Script) (int64, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.repo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return 0, scripts.ErrCreateScript
	}
	defer repo.Rollback()

	formatType := req.FormatType
	if formatType == "" {
		formatType = "standard"
	}

	record := entity.Script{
		CompanyID:        req.CompanyID,
		BrandVoiceID:     req.BrandVoiceID,
		ScriptType:       req.ScriptType,
		Audience:         req.Audience,
		Tone:             req.Tone,
		ProductInfo:      req.ProductInfo,
		FormatType:       formatType,
		HandleObjections: req.HandleObjections,
		UseTrainingData:  req.UseTrainingData,
		GeneratedScript:  script.Text,
		Metadata: map[string]string{
			"voice_id":    script.Voice.ID,
			"voice_name":  script.Voice.Name,
			"call_type":   req.CallType,
			"script_mode": req.ScriptMode,
			"llm":         strconv.FormatBool(req.UseLLM),
		},
		CreatedAt: time.Now(),
	}

	id, err := repo.Scripts.CreateScript(ctx, record)
	if err != nil {
		return 0, scripts.ErrCreateScript
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit script")
		return 0, scripts.ErrCreateScript
	}

	return id, nil
}

func (s *service) resolveBrandVoice(ctx context.Context, repo companyRepository.Client, req scripts.GenerateScriptRequest) (string, error) {
	if req.BrandVoiceID == 0 {
		return "", nil
	}

	voice, err := repo.BrandVoices.GetBrandVoiceByID(ctx, req.BrandVoiceID)
	if err != nil {
		return "", err
	}
	if voice.CompanyID != req.CompanyID {
		return "", scripts.ErrVoiceNotFound
	}

	description := voice.Description
	if len(voice.TrainingPrompts) > 0 {
		description += "\nExamples:\n" + strings.Join(voice.TrainingPrompts, "\n")
	}

	return description, nil
}
