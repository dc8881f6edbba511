package providers

import (
	"context"
	"errors"

	openai "github.com/meguminnnnnnnnn/go-openai"
)

var errNoChoices = errors.New("no completion choices returned")

// OpenAIClient implements Client over any OpenAI-compatible chat completion
// endpoint. It also backs the Vertex AI provider, which exposes Gemini
// models through an OpenAI-compatibility surface.
type OpenAIClient struct {
	client            *openai.Client
	name              string
	model             string
	systemInstruction string
}

// NewOpenAIClient creates an OpenAI-compatible chat client. name labels the
// provider in errors and logs; baseURL may be empty for the default API.
func NewOpenAIClient(name, apiKey, modelName, baseURL, systemInstruction string) (*OpenAIClient, error) {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}

	return &OpenAIClient{
		client:            openai.NewClientWithConfig(config),
		name:              name,
		model:             modelName,
		systemInstruction: systemInstruction,
	}, nil
}

// Generate performs a single chat completion call.
func (c *OpenAIClient) Generate(ctx context.Context, messages []Message) (string, error) {
	openaiMsgs := make([]openai.ChatCompletionMessage, 0, len(messages)+1)

	// The system instruction is configuration, not a stored turn.
	if c.systemInstruction != "" {
		openaiMsgs = append(openaiMsgs, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: c.systemInstruction,
		})
	}

	for _, msg := range messages {
		role := openai.ChatMessageRoleUser
		if msg.Role == RoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		openaiMsgs = append(openaiMsgs, openai.ChatCompletionMessage{
			Role:    role,
			Content: msg.Content,
		})
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: openaiMsgs,
	})
	if err != nil {
		return "", wrapError(c.name, err)
	}

	if len(resp.Choices) == 0 {
		return "", &Error{Provider: c.name, Category: "empty_response", Err: errNoChoices}
	}
	return resp.Choices[0].Message.Content, nil
}
