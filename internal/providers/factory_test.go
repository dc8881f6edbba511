package providers

import (
	"errors"
	"testing"

	"github.com/StephenOravec/nifty-bot-v4/internal/config"
)

func TestNewClientFromConfigVertex(t *testing.T) {
	cfg := &config.Config{
		Provider:  "vertex",
		ProjectID: "my-project",
		Location:  "us-central1",
		APIKey:    "token",
	}

	client, modelName, err := NewClientFromConfig(cfg, "be helpful")
	if err != nil {
		t.Fatalf("NewClientFromConfig failed: %v", err)
	}
	if client == nil {
		t.Fatal("expected a client")
	}
	if modelName != defaultVertexModel {
		t.Errorf("model = %q, want %q", modelName, defaultVertexModel)
	}
}

func TestNewClientFromConfigMissingCredentials(t *testing.T) {
	cases := []*config.Config{
		{Provider: "vertex", ProjectID: "p", Location: "us-central1"},
		{Provider: "vertex", APIKey: "token", Location: "us-central1"},
		{Provider: "openai"},
		{Provider: "anthropic"},
	}
	for _, cfg := range cases {
		if _, _, err := NewClientFromConfig(cfg, ""); err == nil {
			t.Errorf("provider %s: expected error for missing credentials", cfg.Provider)
		}
	}
}

func TestNewClientFromConfigUnknownProvider(t *testing.T) {
	if _, _, err := NewClientFromConfig(&config.Config{Provider: "telegraph"}, ""); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestVertexBaseURL(t *testing.T) {
	got := vertexBaseURL("my-project", "europe-west4")
	want := "https://europe-west4-aiplatform.googleapis.com/v1/projects/my-project/locations/europe-west4/endpoints/openapi"
	if got != want {
		t.Errorf("vertexBaseURL = %q, want %q", got, want)
	}
}

func TestCategorize(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{errors.New("429 too many requests"), "rate_limit"},
		{errors.New("quota exceeded for project"), "quota"},
		{errors.New("401 unauthorized"), "auth"},
		{errors.New("response blocked by safety filters"), "safety"},
		{errors.New("context deadline exceeded"), "timeout"},
		{errors.New("dial tcp: connection refused"), "network"},
		{errors.New("503 service unavailable"), "server"},
		{errors.New("something odd"), "unknown"},
	}
	for _, tc := range cases {
		if got := categorize(tc.err); got != tc.want {
			t.Errorf("categorize(%q) = %q, want %q", tc.err, got, tc.want)
		}
	}
}

func TestErrorUnwrap(t *testing.T) {
	inner := errors.New("boom")
	wrapped := wrapError("vertex", inner)

	if !errors.Is(wrapped, inner) {
		t.Error("wrapped error must unwrap to the original")
	}
	var perr *Error
	if !errors.As(error(wrapped), &perr) {
		t.Error("expected errors.As to find *Error")
	}
}
