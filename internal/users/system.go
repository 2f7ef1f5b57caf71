package users

import (
	"context"

	"github.com/google/uuid"
)

// System defines the interface for user account storage.
type System interface {
	Create(ctx context.Context, create CreateUser) (*User, error)
	Find(ctx context.Context, id uuid.UUID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)

	// UpdatePreferences merges the provided keys into the stored preferences,
	// overwriting existing keys and returning the updated user.
	UpdatePreferences(ctx context.Context, id uuid.UUID, prefs map[string]any) (*User, error)
}
