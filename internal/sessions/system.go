package sessions

import (
	"context"

	"github.com/google/uuid"

	"github.com/tutormesh/tutormesh/pkg/pagination"
)

// System defines the interface for session and message storage.
type System interface {
	Create(ctx context.Context, userID uuid.UUID, title string) (*Session, error)
	Find(ctx context.Context, id, userID uuid.UUID) (*Session, error)
	List(ctx context.Context, userID uuid.UUID, page pagination.PageRequest) (*pagination.PageResult[Session], error)
	AppendMessage(ctx context.Context, sessionID uuid.UUID, role, content string, metadata map[string]any) (*Message, error)
	History(ctx context.Context, sessionID uuid.UUID, limit int) ([]Message, error)
}
