// Package users provides the domain system for user accounts and their
// tutoring preferences.
package users

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account. The password hash never leaves the server.
type User struct {
	ID             uuid.UUID      `json:"id"`
	Email          string         `json:"email"`
	FullName       string         `json:"full_name"`
	IsActive       bool           `json:"is_active"`
	Preferences    map[string]any `json:"preferences"`
	CreatedAt      time.Time      `json:"created_at"`
	HashedPassword string         `json:"-"`
}

// CreateUser holds the fields required to register an account.
type CreateUser struct {
	Email          string
	FullName       string
	HashedPassword string
}
