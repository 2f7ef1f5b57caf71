package auth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/tutormesh/tutormesh/internal/routes"
	"github.com/tutormesh/tutormesh/internal/users"
	"github.com/tutormesh/tutormesh/pkg/handlers"
)

// Token is the response body for successful registration and login.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	UserID      string `json:"user_id"`
	UserName    string `json:"user_name"`
}

type registerRequest struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Handler provides HTTP handlers for registration, login, and identity.
type Handler struct {
	users  users.System
	issuer *Issuer
	guard  *Guard
	logger *slog.Logger
}

// NewHandler creates a new auth HTTP handler.
func NewHandler(users users.System, issuer *Issuer, guard *Guard, logger *slog.Logger) *Handler {
	return &Handler{
		users:  users,
		issuer: issuer,
		guard:  guard,
		logger: logger,
	}
}

// Routes returns the route group configuration for auth endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/api/auth",
		Description: "Registration, login, and identity",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/register", Handler: h.Register},
			{Method: "POST", Pattern: "/login", Handler: h.Login},
			{Method: "GET", Pattern: "/me", Handler: h.guard.Wrap(h.Me)},
		},
	}
}

// Register handles POST /api/auth/register to create an account and return a
// token.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, errors.New("email and password are required"))
		return
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	user, err := h.users.Create(r.Context(), users.CreateUser{
		Email:          req.Email,
		FullName:       req.FullName,
		HashedPassword: hash,
	})
	if err != nil {
		handlers.RespondError(w, h.logger, users.MapHTTPStatus(err), err)
		return
	}

	h.respondToken(w, user, http.StatusCreated)
}

// Login handles POST /api/auth/login to exchange credentials for a token.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	user, err := h.users.FindByEmail(r.Context(), req.Email)
	if err != nil || !VerifyPassword(user.HashedPassword, req.Password) {
		handlers.RespondError(w, h.logger, http.StatusUnauthorized, errors.New("incorrect email or password"))
		return
	}

	h.respondToken(w, user, http.StatusOK)
}

// Me handles GET /api/auth/me to return the authenticated user.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := users.FromContext(r.Context())
	if !ok {
		handlers.RespondError(w, h.logger, http.StatusUnauthorized, ErrUnauthorized)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, user)
}

func (h *Handler) respondToken(w http.ResponseWriter, user *users.User, status int) {
	token, err := h.issuer.Issue(user.ID)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, status, Token{
		AccessToken: token,
		TokenType:   "bearer",
		UserID:      user.ID.String(),
		UserName:    user.FullName,
	})
}
