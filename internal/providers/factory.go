package providers

import (
	"fmt"

	"github.com/StephenOravec/nifty-bot-v4/internal/config"
)

// Per-provider default models, used when the configuration does not name one.
const (
	defaultVertexModel    = "gemini-1.5-flash-002"
	defaultOpenAIModel    = "gpt-4o-mini"
	defaultAnthropicModel = "claude-3-5-haiku-latest"
)

// NewClientFromConfig creates a Client for the configured provider. The
// system instruction is attached once here, at provider-call configuration
// time. It returns the resolved model name alongside the client.
func NewClientFromConfig(cfg *config.Config, systemInstruction string) (Client, string, error) {
	switch cfg.Provider {
	case "vertex":
		if cfg.ProjectID == "" {
			return nil, "", fmt.Errorf("GCP_PROJECT_ID not set")
		}
		if cfg.APIKey == "" {
			return nil, "", fmt.Errorf("VERTEX_ACCESS_TOKEN not set")
		}

		modelName := cfg.Model
		if modelName == "" {
			modelName = defaultVertexModel
		}

		client, err := NewOpenAIClient("vertex", cfg.APIKey, "google/"+modelName,
			vertexBaseURL(cfg.ProjectID, cfg.Location), systemInstruction)
		if err != nil {
			return nil, "", fmt.Errorf("failed to create Vertex AI client: %w", err)
		}
		return client, modelName, nil

	case "openai":
		if cfg.APIKey == "" {
			return nil, "", fmt.Errorf("OPENAI_API_KEY not set")
		}

		modelName := cfg.Model
		if modelName == "" {
			modelName = defaultOpenAIModel
		}

		client, err := NewOpenAIClient("openai", cfg.APIKey, modelName, cfg.BaseURL, systemInstruction)
		if err != nil {
			return nil, "", fmt.Errorf("failed to create OpenAI client: %w", err)
		}
		return client, modelName, nil

	case "anthropic":
		if cfg.APIKey == "" {
			return nil, "", fmt.Errorf("ANTHROPIC_API_KEY not set")
		}

		modelName := cfg.Model
		if modelName == "" {
			modelName = defaultAnthropicModel
		}

		client, err := NewAnthropicClient(cfg.APIKey, modelName, systemInstruction)
		if err != nil {
			return nil, "", fmt.Errorf("failed to create Anthropic client: %w", err)
		}
		return client, modelName, nil

	default:
		return nil, "", fmt.Errorf("unknown LLM_PROVIDER: %s (supported: vertex, openai, anthropic)", cfg.Provider)
	}
}

// vertexBaseURL builds the OpenAI-compatibility endpoint Vertex AI exposes
// for Gemini models in a given project and region.
func vertexBaseURL(projectID, location string) string {
	return fmt.Sprintf(
		"https://%s-aiplatform.googleapis.com/v1/projects/%s/locations/%s/endpoints/openapi",
		location, projectID, location,
	)
}
