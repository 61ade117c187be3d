package gemini

import (
	"context"
	"fmt"
	"sync"

	"google.golang.org/genai"

	"github.com/akolanti/CatalystAPI/internal/pipeline/llm"
	"github.com/akolanti/CatalystAPI/pkg/logger_i"
)

type llmClient struct {
	client    *genai.Client
	modelName string
}

var logger *logger_i.Logger
var geminiClient *llmClient
var once sync.Once

// GetGeminiClient builds the singleton Gemini client on first call. Returns
// nil when the client cannot be created (bad key, no network).
func GetGeminiClient(ctx context.Context, modelName string, apiKey string) llm.Provider {
	once.Do(func() {
		logger = logger_i.NewLogger("llm_gemini")

		c, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
		if err != nil {
			logger.Error("Error creating Gemini client", "error", err)
			return
		}
		geminiClient = &llmClient{client: c, modelName: modelName}
		logger.Info("Gemini client created", "model", modelName)
	})

	if geminiClient == nil {
		return nil
	}
	return geminiClient
}

func (c *llmClient) Generate(ctx context.Context, parts []string) (string, error) {
	genaiParts := make([]*genai.Part, 0, len(parts))
	for _, p := range parts {
		genaiParts = append(genaiParts, &genai.Part{Text: p})
	}
	contents := []*genai.Content{{Parts: genaiParts}}

	result, err := c.client.Models.GenerateContent(ctx, c.modelName, contents, nil)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	return result.Text(), nil
}
