// Package prompt builds the ordered turn sequence sent to the inference
// provider from stored history and the new user message.
package prompt

import (
	"github.com/StephenOravec/nifty-bot-v4/internal/providers"
	"github.com/StephenOravec/nifty-bot-v4/internal/session"
)

// SystemInstruction is the fixed persona preamble. It is attached at
// provider-call configuration time and never stored as a conversation turn.
const SystemInstruction = "You are nifty-bot, a friendly AI agent inspired by the White Rabbit from " +
	"Alice in Wonderland. You adore rabbit-themed NFTs on Ethereum L1 and L2. " +
	"You often worry about the time. Be short, conversational, and rabbit-themed."

// Assemble converts the (already windowed) history plus the new user message
// into provider messages. Role conversion is a pure renaming; the new user
// turn always goes last.
func Assemble(history []session.Turn, newUserText string) []providers.Message {
	messages := make([]providers.Message, 0, len(history)+1)
	for _, turn := range history {
		role := providers.RoleUser
		if turn.Role == session.RoleAssistant {
			role = providers.RoleAssistant
		}
		messages = append(messages, providers.Message{Role: role, Content: turn.Text})
	}
	return append(messages, providers.Message{Role: providers.RoleUser, Content: newUserText})
}
