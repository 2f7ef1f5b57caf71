package sessions

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/tutormesh/tutormesh/pkg/pagination"
	"github.com/tutormesh/tutormesh/pkg/repository"
)

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates a session storage system backed by the database.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "sessions"),
	}
}

func (r *repo) Create(ctx context.Context, userID uuid.UUID, title string) (*Session, error) {
	q := `
		INSERT INTO chat_sessions (id, user_id, title)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, title, created_at
	`

	session, err := repository.QueryOne(ctx, r.db, q, []any{uuid.New(), userID, title}, scanSession)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrNotFound)
	}

	r.logger.Info("session created", "session_id", session.ID, "user_id", userID)
	return &session, nil
}

func (r *repo) Find(ctx context.Context, id, userID uuid.UUID) (*Session, error) {
	q := `
		SELECT id, user_id, title, created_at
		FROM chat_sessions
		WHERE id = $1 AND user_id = $2
	`

	session, err := repository.QueryOne(ctx, r.db, q, []any{id, userID}, scanSession)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrNotFound)
	}
	return &session, nil
}

func (r *repo) List(ctx context.Context, userID uuid.UUID, page pagination.PageRequest) (*pagination.PageResult[Session], error) {
	countQuery := `SELECT COUNT(*) FROM chat_sessions WHERE user_id = $1`

	total, err := repository.QueryOne(ctx, r.db, countQuery, []any{userID}, scanCount)
	if err != nil {
		return nil, err
	}

	q := `
		SELECT id, user_id, title, created_at
		FROM chat_sessions
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	data, err := repository.QueryMany(ctx, r.db, q, []any{userID, page.PageSize, page.Offset()}, scanSession)
	if err != nil {
		return nil, err
	}

	result := pagination.NewPageResult(data, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) AppendMessage(ctx context.Context, sessionID uuid.UUID, role, content string, metadata map[string]any) (*Message, error) {
	switch role {
	case RoleUser, RoleAssistant, RoleSystem:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}

	encoded := []byte("{}")
	if metadata != nil {
		var err error
		if encoded, err = json.Marshal(metadata); err != nil {
			return nil, fmt.Errorf("encode metadata: %w", err)
		}
	}

	q := `
		INSERT INTO chat_messages (id, session_id, role, content, metadata)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, session_id, role, content, metadata, created_at
	`

	message, err := repository.QueryOne(ctx, r.db, q, []any{uuid.New(), sessionID, role, content, encoded}, scanMessage)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrNotFound)
	}
	return &message, nil
}

// History returns the most recent messages in chronological order.
func (r *repo) History(ctx context.Context, sessionID uuid.UUID, limit int) ([]Message, error) {
	q := `
		SELECT id, session_id, role, content, metadata, created_at
		FROM (
			SELECT id, session_id, role, content, metadata, created_at
			FROM chat_messages
			WHERE session_id = $1
			ORDER BY created_at DESC
			LIMIT $2
		) recent
		ORDER BY created_at ASC
	`

	return repository.QueryMany(ctx, r.db, q, []any{sessionID, limit}, scanMessage)
}

func scanSession(s repository.Scanner) (Session, error) {
	var session Session
	err := s.Scan(&session.ID, &session.UserID, &session.Title, &session.CreatedAt)
	return session, err
}

func scanMessage(s repository.Scanner) (Message, error) {
	var (
		message Message
		raw     []byte
	)

	if err := s.Scan(&message.ID, &message.SessionID, &message.Role, &message.Content, &raw, &message.CreatedAt); err != nil {
		return message, err
	}

	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &message.Metadata); err != nil {
			return message, fmt.Errorf("decode metadata: %w", err)
		}
	}
	return message, nil
}

func scanCount(s repository.Scanner) (int, error) {
	var count int
	err := s.Scan(&count)
	return count, err
}
