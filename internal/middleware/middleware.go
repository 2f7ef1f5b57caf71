// Package middleware provides the HTTP middleware stack: request logging,
// CORS, trailing-slash normalization, and request body limits.
package middleware

import "net/http"

// Middleware wraps an http.Handler with additional behavior.
type Middleware func(http.Handler) http.Handler

// System composes middleware into a single handler chain.
type System interface {
	Use(m Middleware)
	Apply(handler http.Handler) http.Handler
}

type system struct {
	stack []Middleware
}

// New creates an empty middleware system.
func New() System {
	return &system{stack: []Middleware{}}
}

// Use appends middleware to the stack. Middleware is applied in registration
// order: the first registered is the outermost wrapper.
func (s *system) Use(m Middleware) {
	s.stack = append(s.stack, m)
}

// Apply wraps the handler with all registered middleware.
func (s *system) Apply(handler http.Handler) http.Handler {
	wrapped := handler
	for i := len(s.stack) - 1; i >= 0; i-- {
		wrapped = s.stack[i](wrapped)
	}
	return wrapped
}
