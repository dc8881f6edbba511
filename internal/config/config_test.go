package config

import "testing"

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"GCP_PROJECT_ID", "GCP_LOCATION", "PORT", "LLM_PROVIDER",
		"SESSION_DB_PATH", "SESSION_HISTORY_LIMIT", "LOG_LEVEL",
		"VERTEX_ACCESS_TOKEN", "VERTEX_MODEL",
		"OPENAI_API_KEY", "OPENAI_MODEL", "OPENAI_BASE_URL",
		"ANTHROPIC_API_KEY", "ANTHROPIC_MODEL",
	} {
		t.Setenv(key, "")
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("GCP_PROJECT_ID", "my-project")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv failed: %v", err)
	}

	if cfg.ProjectID != "my-project" {
		t.Errorf("ProjectID = %q", cfg.ProjectID)
	}
	if cfg.Location != DefaultLocation {
		t.Errorf("Location = %q, want %q", cfg.Location, DefaultLocation)
	}
	if cfg.Port != DefaultPort {
		t.Errorf("Port = %d, want %d", cfg.Port, DefaultPort)
	}
	if cfg.Provider != DefaultProvider {
		t.Errorf("Provider = %q, want %q", cfg.Provider, DefaultProvider)
	}
	if cfg.DBPath != DefaultDBPath {
		t.Errorf("DBPath = %q, want %q", cfg.DBPath, DefaultDBPath)
	}
	if cfg.HistoryLimit != DefaultHistoryLimit {
		t.Errorf("HistoryLimit = %d, want %d", cfg.HistoryLimit, DefaultHistoryLimit)
	}
}

func TestFromEnvMissingProjectID(t *testing.T) {
	clearEnv(t)

	if _, err := FromEnv(); err == nil {
		t.Fatal("expected error when GCP_PROJECT_ID is unset")
	}
}

func TestFromEnvProjectIDNotRequiredForAnthropic(t *testing.T) {
	clearEnv(t)
	t.Setenv("LLM_PROVIDER", "anthropic")
	t.Setenv("ANTHROPIC_API_KEY", "key")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv failed: %v", err)
	}
	if cfg.APIKey != "key" {
		t.Errorf("APIKey = %q", cfg.APIKey)
	}
}

func TestFromEnvInvalidPort(t *testing.T) {
	clearEnv(t)
	t.Setenv("GCP_PROJECT_ID", "my-project")

	for _, port := range []string{"abc", "-1", "0", "70000"} {
		t.Setenv("PORT", port)
		if _, err := FromEnv(); err == nil {
			t.Errorf("PORT=%q: expected error", port)
		}
	}
}

func TestFromEnvInvalidHistoryLimit(t *testing.T) {
	clearEnv(t)
	t.Setenv("GCP_PROJECT_ID", "my-project")
	t.Setenv("SESSION_HISTORY_LIMIT", "zero")

	if _, err := FromEnv(); err == nil {
		t.Fatal("expected error for non-numeric history limit")
	}
}

func TestFromEnvUnknownProvider(t *testing.T) {
	clearEnv(t)
	t.Setenv("LLM_PROVIDER", "carrier-pigeon")

	if _, err := FromEnv(); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestFromEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("GCP_PROJECT_ID", "my-project")
	t.Setenv("GCP_LOCATION", "europe-west4")
	t.Setenv("PORT", "9090")
	t.Setenv("SESSION_HISTORY_LIMIT", "8")
	t.Setenv("VERTEX_MODEL", "gemini-2.0-flash")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv failed: %v", err)
	}
	if cfg.Location != "europe-west4" {
		t.Errorf("Location = %q", cfg.Location)
	}
	if cfg.Port != 9090 {
		t.Errorf("Port = %d", cfg.Port)
	}
	if cfg.HistoryLimit != 8 {
		t.Errorf("HistoryLimit = %d", cfg.HistoryLimit)
	}
	if cfg.Model != "gemini-2.0-flash" {
		t.Errorf("Model = %q", cfg.Model)
	}
}
