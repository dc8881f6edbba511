package providers

import (
	"context"
	"errors"

	anthropic "github.com/liushuangls/go-anthropic/v2"
)

// Claude declines very long replies without an explicit cap; this bot keeps
// answers short, so a modest ceiling is enough.
const anthropicMaxTokens = 1024

// AnthropicClient implements Client by calling the Anthropic SDK directly.
type AnthropicClient struct {
	client            *anthropic.Client
	model             string
	systemInstruction string
}

// NewAnthropicClient creates an Anthropic chat client.
func NewAnthropicClient(apiKey, modelName, systemInstruction string) (*AnthropicClient, error) {
	return &AnthropicClient{
		client:            anthropic.NewClient(apiKey),
		model:             modelName,
		systemInstruction: systemInstruction,
	}, nil
}

// Generate performs a single messages call.
func (c *AnthropicClient) Generate(ctx context.Context, messages []Message) (string, error) {
	anthropicMsgs := make([]anthropic.Message, 0, len(messages))
	for _, msg := range messages {
		role := anthropic.RoleUser
		if msg.Role == RoleAssistant {
			role = anthropic.RoleAssistant
		}
		anthropicMsgs = append(anthropicMsgs, anthropic.Message{
			Role:    role,
			Content: []anthropic.MessageContent{anthropic.NewTextMessageContent(msg.Content)},
		})
	}

	req := anthropic.MessagesRequest{
		Model:     anthropic.Model(c.model),
		Messages:  anthropicMsgs,
		MaxTokens: anthropicMaxTokens,
	}
	if c.systemInstruction != "" {
		req.MultiSystem = []anthropic.MessageSystemPart{
			{Type: "text", Text: c.systemInstruction},
		}
	}

	resp, err := c.client.CreateMessages(ctx, req)
	if err != nil {
		return "", wrapError("anthropic", err)
	}

	var text string
	for _, block := range resp.Content {
		if block.Type == anthropic.MessagesContentTypeText && block.Text != nil {
			text += *block.Text
		}
	}
	if text == "" {
		return "", &Error{Provider: "anthropic", Category: "empty_response", Err: errors.New("no text content in response")}
	}
	return text, nil
}
