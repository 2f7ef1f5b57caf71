package users

import "context"

type contextKey struct{}

var userKey contextKey

// NewContext returns a context carrying the authenticated user.
func NewContext(ctx context.Context, user *User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// FromContext returns the authenticated user stored in the context.
func FromContext(ctx context.Context) (*User, bool) {
	user, ok := ctx.Value(userKey).(*User)
	return user, ok
}
