package openai

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/sashabaranov/go-openai"
)

type IChatGPT interface {
	GenerateScript(ctx context.Context, req ScriptPrompt) (string, error)
	GenerateObjectionResponses(ctx context.Context, req ObjectionPrompt) ([]string, error)
}

type ScriptPrompt struct {
	CompanyName     string `json:"company_name"`
	ScriptMode      string `json:"script_mode"`
	CallType        string `json:"call_type"`
	Audience        string `json:"audience"`
	Tone            string `json:"tone"`
	ProductInfo     string `json:"product_info"`
	BrandVoice      string `json:"brand_voice"`
	NegativePrompts string `json:"negative_prompts"`
}

type ObjectionPrompt struct {
	ObjectionType string `json:"objection_type"`
	ObjectionText string `json:"objection_text"`
	Context       string `json:"context"`
	BaseTemplate  string `json:"base_template"`
	BrandVoice    string `json:"brand_voice"`
}

type chatGPTService struct {
	client *openai.Client
	model  string
}

func NewChatGPT() IChatGPT {
	apiKey := os.Getenv("OPENAI_API_KEY")
	model := os.Getenv("OPENAI_CHAT_MODEL")

	if model == "" {
		model = openai.GPT4
	}

	return &chatGPTService{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *chatGPTService) GenerateScript(ctx context.Context, req ScriptPrompt) (string, error) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Write a %s call script for %s.\n", req.CallType, req.CompanyName))
	sb.WriteString(fmt.Sprintf("Mode: %s. Audience: %s. Tone: %s.\n", req.ScriptMode, req.Audience, req.Tone))
	sb.WriteString(fmt.Sprintf("Subject of the call: %s\n", req.ProductInfo))

	if req.BrandVoice != "" {
		sb.WriteString(fmt.Sprintf("Match this brand voice: %s\n", req.BrandVoice))
	}
	if req.NegativePrompts != "" {
		sb.WriteString(fmt.Sprintf("Never mention: %s\n", req.NegativePrompts))
	}

	sb.WriteString("Format every spoken line as 'AGENT:' and system cues as 'SYSTEM:'.")

	messages := []openai.ChatCompletionMessage{
		{
			Role: openai.ChatMessageRoleSystem,
			Content: `You are a call script writer for outbound and inbound phone campaigns.
Write natural, compliant scripts with clear AGENT: and SYSTEM: line prefixes.
Keep each spoken line short enough to read aloud in one breath.`,
		},
		{
			Role:    openai.ChatMessageRoleUser,
			Content: sb.String(),
		},
	}

	resp, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model:       c.model,
			Messages:    messages,
			Temperature: 0.7,
			MaxTokens:   1500,
		},
	)

	if err != nil {
		return "", fmt.Errorf("ChatGPT API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from ChatGPT")
	}

	return resp.Choices[0].Message.Content, nil
}

func (c *chatGPTService) GenerateObjectionResponses(ctx context.Context, req ObjectionPrompt) ([]string, error) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Generate 3 different responses to the objection: %s\n", req.ObjectionText))
	sb.WriteString(fmt.Sprintf("Objection type: %s\n", req.ObjectionType))

	if req.Context != "" {
		sb.WriteString(fmt.Sprintf("Call context: %s\n", req.Context))
	}
	if req.BaseTemplate != "" {
		sb.WriteString(fmt.Sprintf("Base template to improve on: %s\n", req.BaseTemplate))
	}
	if req.BrandVoice != "" {
		sb.WriteString(fmt.Sprintf("Brand voice: %s\n", req.BrandVoice))
	}

	sb.WriteString("Label each line 'Response 1:', 'Response 2:', 'Response 3:'.")

	messages := []openai.ChatCompletionMessage{
		{
			Role:    openai.ChatMessageRoleSystem,
			Content: "You are a sales coach writing short, empathetic objection responses for phone agents.",
		},
		{
			Role:    openai.ChatMessageRoleUser,
			Content: sb.String(),
		},
	}

	resp, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model:       c.model,
			Messages:    messages,
			Temperature: 0.8,
			MaxTokens:   600,
		},
	)

	if err != nil {
		return nil, fmt.Errorf("ChatGPT API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from ChatGPT")
	}

	var responses []string
	for _, line := range strings.Split(resp.Choices[0].Message.Content, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "Response") {
			continue
		}

		if idx := strings.Index(line, ":"); idx >= 0 {
			line = strings.TrimSpace(line[idx+1:])
		}
		if line != "" {
			responses = append(responses, line)
		}
	}

	if len(responses) == 0 {
		return nil, fmt.Errorf("no usable responses from ChatGPT")
	}

	return responses, nil
}
