package gemini

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type IGemini interface {
	AnalyzeWritingStyle(ctx context.Context, samples []string) (string, error)
}

type geminiClient struct {
	apiKey    string
	modelName string
	client    *genai.Client
}

func NewGeminiClient() (IGemini, error) {

	apiKey := os.Getenv("GEMINI_API_KEY")

	modelName := os.Getenv("GEMINI_MODEL_NAME")
	if apiKey == "" {
		return nil, errors.New("gemini API key is required")
	}

	if modelName == "" {
		modelName = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	return &geminiClient{
		apiKey:    apiKey,
		modelName: modelName,
		client:    client,
	}, nil
}

// AnalyzeWritingStyle summarizes tone, vocabulary and phrasing across the
// provided writing samples so the summary can be stored as a brand style note.
func (g *geminiClient) AnalyzeWritingStyle(ctx context.Context, samples []string) (string, error) {
	if len(samples) == 0 {
		return "", errors.New("no samples to analyze")
	}

	model := g.client.GenerativeModel(g.modelName)

	var sb strings.Builder
	sb.WriteString("Analyze the writing style of the following samples. ")
	sb.WriteString("Describe tone, formality, vocabulary and recurring phrases in at most 5 sentences.\n\n")
	for i, sample := range samples {
		sb.WriteString(fmt.Sprintf("Sample %d:\n%s\n\n", i+1, sample))
	}

	res, err := model.GenerateContent(ctx, genai.Text(sb.String()))
	if err != nil {
		return "", err
	}

	if len(res.Candidates) == 0 || len(res.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("no response from Gemini API")
	}

	response := res.Candidates[0].Content.Parts[0]
	text, ok := response.(genai.Text)
	if !ok {
		return "", errors.New("unexpected response format from Gemini API")
	}

	return string(text), nil
}

func (g *geminiClient) Close() {
	if g.client != nil {
		g.client.Close()
	}
}
