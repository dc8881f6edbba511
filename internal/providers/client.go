// Package providers implements clients for hosted inference APIs. The
// gateway treats every provider as an opaque call: an ordered turn sequence
// in, one text reply out, no streaming, no retries.
package providers

import (
	"context"
	"fmt"
	"strings"
)

// Provider-facing role labels. Stored roles map onto these by pure renaming;
// a client translates them again into whatever its SDK expects.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn of the prompt sent to an inference provider.
type Message struct {
	Role    string
	Content string
}

// Client abstracts the chosen inference SDK.
type Client interface {
	Generate(ctx context.Context, messages []Message) (string, error)
}

// Error wraps a provider failure with a coarse category suitable for
// metadata-only logging. The underlying error never reaches a response body.
type Error struct {
	Provider string
	Category string
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s provider error (%s): %v", e.Provider, e.Category, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// wrapError classifies err and tags it with the provider name.
func wrapError(provider string, err error) *Error {
	return &Error{Provider: provider, Category: categorize(err), Err: err}
}

// categorize maps a provider error onto a coarse category label.
func categorize(err error) string {
	if err == nil {
		return "none"
	}

	errStr := strings.ToLower(err.Error())

	switch {
	case strings.Contains(errStr, "429"),
		strings.Contains(errStr, "rate limit"),
		strings.Contains(errStr, "too many requests"):
		return "rate_limit"
	case strings.Contains(errStr, "quota"):
		return "quota"
	case strings.Contains(errStr, "401"),
		strings.Contains(errStr, "403"),
		strings.Contains(errStr, "unauthorized"),
		strings.Contains(errStr, "forbidden"),
		strings.Contains(errStr, "invalid api key"):
		return "auth"
	case strings.Contains(errStr, "safety"),
		strings.Contains(errStr, "content_filter"),
		strings.Contains(errStr, "blocked"):
		return "safety"
	case strings.Contains(errStr, "context deadline exceeded"),
		strings.Contains(errStr, "timeout"):
		return "timeout"
	case strings.Contains(errStr, "connection refused"),
		strings.Contains(errStr, "connection reset"),
		strings.Contains(errStr, "no such host"),
		strings.Contains(errStr, "network"):
		return "network"
	case strings.Contains(errStr, "500"),
		strings.Contains(errStr, "502"),
		strings.Contains(errStr, "503"),
		strings.Contains(errStr, "internal server error"),
		strings.Contains(errStr, "service unavailable"):
		return "server"
	default:
		return "unknown"
	}
}
