// Package chat implements the per-request control flow: resolve a session,
// load context, call the inference provider once, persist the exchange, and
// produce the response payload.
package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/StephenOravec/nifty-bot-v4/internal/privacy"
	"github.com/StephenOravec/nifty-bot-v4/internal/prompt"
	"github.com/StephenOravec/nifty-bot-v4/internal/providers"
	"github.com/StephenOravec/nifty-bot-v4/internal/session"
)

// FallbackReply is the fixed, non-technical text returned when the inference
// call fails. Provider error details never reach the user.
const FallbackReply = "Sorry, I encountered an error. Please try again!"

// ErrEmptyMessage indicates a missing or blank user message.
var ErrEmptyMessage = errors.New("message required")

// Reply is the payload returned to the HTTP surface. The session id is
// always present so subsequent requests can continue the conversation.
type Reply struct {
	Response  string `json:"response"`
	SessionID string `json:"session_id"`
}

// Orchestrator runs one logical flow per inbound request. It holds no
// per-request state; the session store owns all persisted state.
type Orchestrator struct {
	store        *session.Store
	client       providers.Client
	historyLimit int
	log          zerolog.Logger
}

// NewOrchestrator wires the store and provider client together.
func NewOrchestrator(store *session.Store, client providers.Client, historyLimit int, logger zerolog.Logger) *Orchestrator {
	if historyLimit <= 0 {
		historyLimit = session.DefaultHistoryLimit
	}
	return &Orchestrator{
		store:        store,
		client:       client,
		historyLimit: historyLimit,
		log:          logger,
	}
}

// HandleMessage processes one chat exchange. Provider failures are converted
// into the fallback reply and still persisted, so every user turn has
// exactly one assistant turn. Storage failures are returned to the caller:
// a reply the system cannot later recall as context must not be served.
func (o *Orchestrator) HandleMessage(ctx context.Context, sessionID, message string) (Reply, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		o.log.Warn().Msg("empty message received")
		return Reply{}, ErrEmptyMessage
	}

	if sessionID == "" {
		id, err := privacy.NewSessionID()
		if err != nil {
			return Reply{}, fmt.Errorf("failed to mint session id: %w", err)
		}
		sessionID = id
		o.log.Info().Str("session", privacy.HashSessionID(sessionID)).Msg("new session created")
	} else {
		o.log.Info().Str("session", privacy.HashSessionID(sessionID)).Msg("continuing session")
	}
	sessionHash := privacy.HashSessionID(sessionID)

	history, err := o.store.GetHistory(ctx, sessionID, o.historyLimit)
	if err != nil {
		return Reply{}, fmt.Errorf("failed to load session history: %w", err)
	}

	messages := prompt.Assemble(history, message)
	o.log.Info().
		Str("session", sessionHash).
		Int("context_messages", len(history)).
		Msg("processing request")

	// Exactly one provider call, no retries.
	reply, genErr := o.client.Generate(ctx, messages)
	if genErr != nil {
		category := "unknown"
		var perr *providers.Error
		if errors.As(genErr, &perr) {
			category = perr.Category
		}
		o.log.Error().
			Str("session", sessionHash).
			Str("category", category).
			Msg("inference call failed")
		reply = FallbackReply
	} else {
		o.log.Info().
			Str("session", sessionHash).
			Int("response_chars", len(reply)).
			Msg("generated response")
	}

	// Persist the user turn and its assistant (or fallback) turn together so
	// stored history stays consistent with what the user saw.
	if err := o.store.Append(ctx, sessionID, session.RoleUser, message); err != nil {
		return Reply{}, fmt.Errorf("failed to persist user turn: %w", err)
	}
	if err := o.store.Append(ctx, sessionID, session.RoleAssistant, reply); err != nil {
		return Reply{}, fmt.Errorf("failed to persist assistant turn: %w", err)
	}

	o.log.Info().Str("session", sessionHash).Msg("request completed")
	return Reply{Response: reply, SessionID: sessionID}, nil
}
