package main

import (
	"context"
	"sync"

	"github.com/tutormesh/tutormesh/internal/agents"
	"github.com/tutormesh/tutormesh/internal/auth"
	"github.com/tutormesh/tutormesh/internal/chat"
	"github.com/tutormesh/tutormesh/internal/config"
	"github.com/tutormesh/tutormesh/internal/database"
	"github.com/tutormesh/tutormesh/internal/logger"
	"github.com/tutormesh/tutormesh/internal/memory"
	"github.com/tutormesh/tutormesh/internal/models"
	"github.com/tutormesh/tutormesh/internal/orchestrator"
	"github.com/tutormesh/tutormesh/internal/providers"
	"github.com/tutormesh/tutormesh/internal/research"
	"github.com/tutormesh/tutormesh/internal/routes"
	"github.com/tutormesh/tutormesh/internal/server"
	"github.com/tutormesh/tutormesh/internal/sessions"
	"github.com/tutormesh/tutormesh/internal/users"
)

// Service wires configuration, storage, providers, agents, and the HTTP
// surface into a runnable unit.
type Service struct {
	cfg    *config.Config
	log    logger.System
	db     database.System
	server server.System
}

// NewService constructs the full dependency graph from finalized
// configuration.
func NewService(cfg *config.Config) (*Service, error) {
	log := logger.New(&cfg.Logging)
	slogger := log.Logger()

	db, err := database.New(&cfg.Database, slogger)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, err
	}

	rlog := research.NewLog()
	router := providers.New(&cfg.Providers, slogger, rlog)

	defaults := agents.Defaults{
		Model:       cfg.Providers.DefaultModel,
		Temperature: cfg.Providers.Temperature,
	}

	memorySys := memory.New(db.DB(), slogger)
	userSys := users.New(db.DB(), slogger)
	sessionSys := sessions.New(db.DB(), slogger)

	orch := orchestrator.New(slogger,
		agents.NewDiagnosis(router, defaults),
		agents.NewExplanation(router, defaults),
		agents.NewSocratic(router, defaults),
		agents.NewAdaptation(router, defaults),
		agents.NewMemory(memorySys),
	)

	issuer := auth.NewIssuer(cfg.Auth.Secret, cfg.Auth.TokenTTLDuration())
	guard := auth.NewGuard(issuer, userSys, slogger)

	routeSys := routes.New(slogger)
	registerRoutes(routeSys, handlerSet{
		auth:     auth.NewHandler(userSys, issuer, guard, slogger),
		chat:     chat.NewHandler(orch, sessionSys, guard.Wrap, slogger),
		memory:   memory.NewHandler(memorySys, slogger),
		models:   models.NewHandler(cfg.Providers.DefaultModel, slogger),
		research: research.NewHandler(rlog, slogger),
		sessions: sessions.NewHandler(sessionSys, guard.Wrap, cfg.Pagination, slogger),
		users:    users.NewHandler(userSys, guard.Wrap, slogger),
	})

	handler := buildMiddleware(cfg, slogger).Apply(routeSys.Build())

	return &Service{
		cfg:    cfg,
		log:    log,
		db:     db,
		server: server.New(&cfg.Server, handler, slogger),
	}, nil
}

// Start launches the HTTP server.
func (s *Service) Start(ctx context.Context, wg *sync.WaitGroup) error {
	return s.server.Start(ctx, wg)
}

// Close releases service resources.
func (s *Service) Close() error {
	return s.db.Close()
}
