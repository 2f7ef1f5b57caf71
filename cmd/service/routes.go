package main

import (
	"net/http"

	"github.com/tutormesh/tutormesh/internal/auth"
	"github.com/tutormesh/tutormesh/internal/chat"
	"github.com/tutormesh/tutormesh/internal/memory"
	"github.com/tutormesh/tutormesh/internal/models"
	"github.com/tutormesh/tutormesh/internal/research"
	"github.com/tutormesh/tutormesh/internal/routes"
	"github.com/tutormesh/tutormesh/internal/sessions"
	"github.com/tutormesh/tutormesh/internal/users"
	"github.com/tutormesh/tutormesh/pkg/handlers"
)

type handlerSet struct {
	auth     *auth.Handler
	chat     *chat.Handler
	memory   *memory.Handler
	models   *models.Handler
	research *research.Handler
	sessions *sessions.Handler
	users    *users.Handler
}

func registerRoutes(sys routes.System, set handlerSet) {
	sys.RegisterRoute(routes.Route{
		Method:  "GET",
		Pattern: "/healthz",
		Handler: healthz,
	})

	sys.RegisterGroup(set.auth.Routes())
	sys.RegisterGroup(set.chat.Routes())
	sys.RegisterGroup(set.memory.Routes())
	sys.RegisterGroup(set.models.Routes())
	sys.RegisterGroup(set.research.Routes())
	sys.RegisterGroup(set.sessions.Routes())
	sys.RegisterGroup(set.users.Routes())
}

func healthz(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
