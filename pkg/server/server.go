// Package server dispatches requests against a built route table. It is
// the request-time consumer of compiled route descriptors: the compiler
// stores each route's private configuration in the table, and this
// package retrieves it to drive rendering and the live socket. Route
// options remain opaque here; the server merges sessions, wraps output
// in the configured container and layout, and otherwise passes the
// configuration through.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/glint-dev/glint/pkg/router"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

// Server serves a built route table over HTTP and the live socket.
type Server struct {
	table      *router.Table
	config     config
	upgrader   websocket.Upgrader
	httpServer *http.Server
}

// New creates a server for a built table.
func New(table *router.Table, opts ...Option) *Server {
	config := defaultServerConfig()
	for _, opt := range opts {
		opt(&config)
	}

	s := &Server{
		table:  table,
		config: config,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     config.checkOrigin,
		},
	}
	config.recorder.SetRoutes(len(table.Routes()))
	return s
}

// Handler returns the HTTP handler: the live socket endpoint plus the
// page dispatcher for every other path.
func (s *Server) Handler() http.Handler {
	mux := chi.NewRouter()
	mux.Get(s.config.socketPath, s.handleSocket)
	mux.NotFound(s.dispatch)
	return mux
}

// Run starts the server and blocks until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:              s.config.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpServer.ListenAndServe()
	}()

	s.config.logger.Info("server started", "addr", s.config.addr, "routes", len(s.table.Routes()))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.shutdownTimeout)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	}
}
