// Package session persists bounded conversation histories keyed by session
// identifier. Storage is a local SQLite database on ephemeral disk: sessions
// survive for the lifetime of the running process and a redeploy discards
// them all. That is a deliberate privacy trade-off, not a defect.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"github.com/StephenOravec/nifty-bot-v4/internal/privacy"
)

// DefaultHistoryLimit is the number of turns read back as context when the
// caller does not specify a window.
const DefaultHistoryLimit = 20

// Store handles persistence of session message histories.
type Store struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewStore opens (or creates) the session database at dbPath and initializes
// the schema.
func NewStore(ctx context.Context, dbPath string, logger zerolog.Logger) (*Store, error) {
	// WAL mode allows readers to proceed alongside the single writer.
	dsn := dbPath + "?_journal_mode=WAL&_busy_timeout=5000"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite supports only one writer; funneling all statements through a
	// single connection also makes each transaction a serialization point,
	// which Append relies on for its read-modify-write.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &Store{db: db, log: logger}
	if err := s.initSchema(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	logger.Info().Str("path", dbPath).Msg("session database initialized")
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) initSchema(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS sessions (
		session_id TEXT PRIMARY KEY,
		messages   TEXT NOT NULL
	);`

	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create sessions table: %w", err)
	}
	return nil
}

// GetHistory returns the most recent limit turns for the session in
// chronological order (oldest of the window first). An unknown session id is
// not an error; it yields an empty history. limit <= 0 selects the default
// window.
func (s *Store) GetHistory(ctx context.Context, sessionID string, limit int) ([]Turn, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	var raw string
	err := s.db.QueryRowContext(ctx,
		"SELECT messages FROM sessions WHERE session_id = ?", sessionID,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query session: %w", err)
	}

	turns, err := decodeTurns([]byte(raw))
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("session", privacy.HashSessionID(sessionID)).
		Int("count", len(turns)).
		Msg("loaded session history")

	if len(turns) > limit {
		turns = turns[len(turns)-limit:]
	}
	return turns, nil
}

// Append adds one turn to the end of the session's history, creating the
// session if absent. The read-modify-write runs inside a single transaction
// on the store's only connection, so concurrent appends to the same session
// cannot lose updates.
func (s *Store) Append(ctx context.Context, sessionID string, role Role, text string) error {
	turn := Turn{Role: role, Text: text}
	if err := turn.Validate(); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var raw string
	var turns []Turn
	err = tx.QueryRowContext(ctx,
		"SELECT messages FROM sessions WHERE session_id = ?", sessionID,
	).Scan(&raw)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		// First write creates the session.
	case err != nil:
		return fmt.Errorf("failed to query session: %w", err)
	default:
		if turns, err = decodeTurns([]byte(raw)); err != nil {
			return err
		}
	}

	turns = append(turns, turn)
	data, err := json.Marshal(turns)
	if err != nil {
		return fmt.Errorf("failed to encode session messages: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO sessions (session_id, messages) VALUES (?, ?)
		 ON CONFLICT(session_id) DO UPDATE SET messages = excluded.messages`,
		sessionID, string(data),
	)
	if err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit session write: %w", err)
	}

	s.log.Info().
		Str("session", privacy.HashSessionID(sessionID)).
		Str("role", string(role)).
		Msg("saved message")
	return nil
}

// decodeTurns parses the stored JSON turn list, rejecting unrecognized role
// values at the read boundary.
func decodeTurns(data []byte) ([]Turn, error) {
	var turns []Turn
	if err := json.Unmarshal(data, &turns); err != nil {
		return nil, fmt.Errorf("failed to decode session messages: %w", err)
	}
	for i, turn := range turns {
		if err := turn.Validate(); err != nil {
			return nil, fmt.Errorf("corrupt session history at turn %d: %w", i, err)
		}
	}
	return turns, nil
}
