package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/StephenOravec/nifty-bot-v4/internal/chat"
	"github.com/StephenOravec/nifty-bot-v4/internal/config"
	"github.com/StephenOravec/nifty-bot-v4/internal/prompt"
	"github.com/StephenOravec/nifty-bot-v4/internal/providers"
	"github.com/StephenOravec/nifty-bot-v4/internal/server"
	"github.com/StephenOravec/nifty-bot-v4/internal/session"
)

func main() {
	// Load .env file if it exists.
	_ = godotenv.Load()

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := config.FromEnv()
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	if cfg.LogLevel != "" {
		level, err := zerolog.ParseLevel(cfg.LogLevel)
		if err != nil {
			logger.Fatal().Err(err).Msg("invalid LOG_LEVEL")
		}
		logger = logger.Level(level)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := session.NewStore(ctx, cfg.DBPath, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open session store")
	}
	defer store.Close()

	client, modelName, err := providers.NewClientFromConfig(cfg, prompt.SystemInstruction)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create inference client")
	}

	orch := chat.NewOrchestrator(store, client, cfg.HistoryLimit, logger)

	srv, err := server.New(orch, cfg.Port, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build http server")
	}

	logStartup(logger, cfg, modelName)

	if err := srv.ListenAndServe(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server failed")
	}

	logger.Info().Msg("nifty-bot shutting down")
}

// logStartup records the running configuration: metadata only, matching the
// privacy-first posture of the rest of the service.
func logStartup(logger zerolog.Logger, cfg *config.Config, modelName string) {
	logger.Info().
		Str("project", cfg.ProjectID).
		Str("location", cfg.Location).
		Str("provider", cfg.Provider).
		Str("model", modelName).
		Str("database", cfg.DBPath).
		Int("history_limit", cfg.HistoryLimit).
		Msg("nifty-bot starting (privacy-first mode)")
	logger.Info().
		Strs("privacy_features", []string{
			"hashed session ids in logs",
			"no message content logged",
			"ephemeral session database",
		}).
		Msg("privacy features active")
}
