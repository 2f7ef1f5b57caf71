package memory

import (
	"context"

	"github.com/google/uuid"
)

// System defines the interface for profile storage and merge application.
type System interface {
	// Profile returns the stored profile for the user. Reading never mutates
	// stored state.
	Profile(ctx context.Context, userID uuid.UUID) (Profile, error)

	// UpdateProfile merges the partial update into the stored profile and
	// persists the result, returning the new profile. The merge-then-write is
	// serialized per user.
	UpdateProfile(ctx context.Context, userID uuid.UUID, update map[string]any) (Profile, error)
}
