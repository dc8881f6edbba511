// Package server exposes the HTTP surface: POST /chat and GET /health.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/xeipuuv/gojsonschema"

	"github.com/StephenOravec/nifty-bot-v4/internal/chat"
)

// chatRequestSchema validates the /chat body shape before orchestration.
// Unknown extra fields are tolerated; wrong types are not.
const chatRequestSchema = `{
	"type": "object",
	"properties": {
		"session_id": {"type": "string"},
		"message": {"type": "string"}
	},
	"required": ["message"]
}`

const shutdownTimeout = 10 * time.Second

type chatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

// Server serves the chat gateway over HTTP.
type Server struct {
	orch   *chat.Orchestrator
	schema *gojsonschema.Schema
	log    zerolog.Logger
	addr   string
}

// New builds a Server listening on the given port.
func New(orch *chat.Orchestrator, port int, logger zerolog.Logger) (*Server, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(chatRequestSchema))
	if err != nil {
		return nil, fmt.Errorf("failed to compile request schema: %w", err)
	}

	return &Server{
		orch:   orch,
		schema: schema,
		log:    logger,
		addr:   fmt.Sprintf(":%d", port),
	}, nil
}

// Handler returns the fully wired HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/chat", s.handleChat)
	mux.HandleFunc("/health", s.handleHealth)
	return s.withRequestLogging(mux)
}

// ListenAndServe runs the server until ctx is canceled, then drains
// in-flight requests.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	s.log.Info().Str("addr", s.addr).Msg("http server listening")

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down cleanly: %w", err)
	}
	return nil
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	result, err := s.schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		// Body is not parseable JSON at all.
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if !result.Valid() {
		writeError(w, http.StatusBadRequest, "message required")
		return
	}

	var req chatRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	reply, err := s.orch.HandleMessage(r.Context(), req.SessionID, req.Message)
	switch {
	case errors.Is(err, chat.ErrEmptyMessage):
		writeError(w, http.StatusBadRequest, "message required")
		return
	case err != nil:
		// Storage or other internal failure. Details stay in the log;
		// the caller gets uniform non-technical language.
		s.log.Error().Err(err).Msg("chat request failed")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, reply)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorResponse{Detail: detail})
}
