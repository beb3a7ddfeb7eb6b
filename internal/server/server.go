package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/marcuslim/authd/internal/auth"
	"github.com/marcuslim/authd/internal/config"
	"github.com/marcuslim/authd/internal/http/handlers"
	"github.com/marcuslim/authd/internal/middleware"
	"github.com/marcuslim/authd/internal/service"
	"github.com/marcuslim/authd/internal/storage"
)

// Server wraps an http.Server with configured routes.
type Server struct {
	inner *http.Server
}

// New wires the auth service, handlers, and middleware into a ready server.
func New(cfg config.Config, store storage.UserStore, logger *slog.Logger) *Server {
	hasher := auth.NewPasswordHasher(cfg.PasswordSalt)
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	svc := service.NewAuth(store, hasher, tokens)

	mux := http.NewServeMux()
	handlers.NewAuthHandler(svc).Register(mux)
	handlers.NewHealthHandler(time.Now()).Register(mux)
	handlers.NewDocsHandler().Register(mux)

	handler := middleware.CORS(cfg.CORSOrigins, middleware.Logging(logger, mux))

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return &Server{inner: httpServer}
}

// Start begins serving HTTP traffic.
func (s *Server) Start() error {
	return s.inner.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.inner.Shutdown(ctx)
}
