package memory

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/tutormesh/tutormesh/pkg/repository"
)

type repo struct {
	db     *sql.DB
	logger *slog.Logger

	// Serializes merge-then-write per user so concurrent store actions on the
	// same profile cannot lose updates within this process.
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

// New creates a profile storage system backed by the users table.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "memory"),
		locks:  make(map[uuid.UUID]*sync.Mutex),
	}
}

func (r *repo) Profile(ctx context.Context, userID uuid.UUID) (Profile, error) {
	q := `SELECT memory_profile FROM users WHERE id = $1`

	raw, err := repository.QueryOne(ctx, r.db, q, []any{userID}, scanRaw)
	if err != nil {
		return nil, repository.MapError(err, ErrUserNotFound, ErrUserNotFound)
	}

	return decodeProfile(raw)
}

func (r *repo) UpdateProfile(ctx context.Context, userID uuid.UUID, update map[string]any) (Profile, error) {
	lock := r.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	current, err := r.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	merged := Merge(current, update)

	encoded, err := json.Marshal(merged)
	if err != nil {
		return nil, fmt.Errorf("encode profile: %w", err)
	}

	q := `UPDATE users SET memory_profile = $2 WHERE id = $1`
	if err := repository.ExecExpectOne(ctx, r.db, q, userID, encoded); err != nil {
		return nil, repository.MapError(err, ErrUserNotFound, ErrUserNotFound)
	}

	r.logger.Info("profile updated", "user_id", userID, "keys", len(update))
	return merged, nil
}

func (r *repo) userLock(userID uuid.UUID) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()

	lock, ok := r.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		r.locks[userID] = lock
	}
	return lock
}

func scanRaw(s repository.Scanner) ([]byte, error) {
	var raw []byte
	if err := s.Scan(&raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func decodeProfile(raw []byte) (Profile, error) {
	if len(raw) == 0 {
		return NewProfile(), nil
	}

	var profile Profile
	if err := json.Unmarshal(raw, &profile); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	if profile == nil {
		profile = NewProfile()
	}
	return profile, nil
}
