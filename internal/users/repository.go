package users

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"
	"strings"

	"github.com/google/uuid"

	"github.com/tutormesh/tutormesh/pkg/repository"
)

const userColumns = "id, email, full_name, is_active, preferences, created_at, hashed_password"

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates a user storage system backed by the database.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "users"),
	}
}

func (r *repo) Create(ctx context.Context, create CreateUser) (*User, error) {
	q := fmt.Sprintf(`
		INSERT INTO users (id, email, full_name, hashed_password)
		VALUES ($1, $2, $3, $4)
		RETURNING %s
	`, userColumns)

	email := strings.ToLower(strings.TrimSpace(create.Email))

	user, err := repository.QueryOne(ctx, r.db, q, []any{uuid.New(), email, create.FullName, create.HashedPassword}, scanUser)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("user registered", "user_id", user.ID, "email", user.Email)
	return &user, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*User, error) {
	q := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, userColumns)

	user, err := repository.QueryOne(ctx, r.db, q, []any{id}, scanUser)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &user, nil
}

func (r *repo) FindByEmail(ctx context.Context, email string) (*User, error) {
	q := fmt.Sprintf(`SELECT %s FROM users WHERE email = $1`, userColumns)

	user, err := repository.QueryOne(ctx, r.db, q, []any{strings.ToLower(strings.TrimSpace(email))}, scanUser)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &user, nil
}

func (r *repo) UpdatePreferences(ctx context.Context, id uuid.UUID, prefs map[string]any) (*User, error) {
	return repository.WithTx(ctx, r.db, func(tx *sql.Tx) (*User, error) {
		q := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1 FOR UPDATE`, userColumns)

		user, err := repository.QueryOne(ctx, tx, q, []any{id}, scanUser)
		if err != nil {
			return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
		}

		merged := make(map[string]any, len(user.Preferences)+len(prefs))
		maps.Copy(merged, user.Preferences)
		maps.Copy(merged, prefs)

		encoded, err := json.Marshal(merged)
		if err != nil {
			return nil, fmt.Errorf("encode preferences: %w", err)
		}

		update := `UPDATE users SET preferences = $2 WHERE id = $1`
		if err := repository.ExecExpectOne(ctx, tx, update, id, encoded); err != nil {
			return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
		}

		user.Preferences = merged
		r.logger.Info("preferences updated", "user_id", id, "keys", len(prefs))
		return &user, nil
	})
}

func scanUser(s repository.Scanner) (User, error) {
	var (
		user User
		raw  []byte
	)

	if err := s.Scan(&user.ID, &user.Email, &user.FullName, &user.IsActive, &raw, &user.CreatedAt, &user.HashedPassword); err != nil {
		return user, err
	}

	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &user.Preferences); err != nil {
			return user, fmt.Errorf("decode preferences: %w", err)
		}
	}
	if user.Preferences == nil {
		user.Preferences = map[string]any{}
	}
	return user, nil
}
