package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/glint-dev/glint/pkg/metrics"
	"github.com/glint-dev/glint/pkg/tracing"
)

// config holds resolved server settings.
type config struct {
	addr            string
	socketPath      string
	logger          *slog.Logger
	recorder        *metrics.Recorder
	dispatcher      *tracing.Dispatcher
	renderer        ViewRenderer
	baseSession     map[string]any
	checkOrigin     func(*http.Request) bool
	readTimeout     time.Duration
	shutdownTimeout time.Duration
}

// Option configures the server.
type Option func(*config)

// WithAddr sets the listen address (default ":8080").
func WithAddr(addr string) Option {
	return func(c *config) {
		c.addr = addr
	}
}

// WithSocketPath sets the live socket endpoint (default "/live/socket").
func WithSocketPath(path string) Option {
	return func(c *config) {
		c.socketPath = path
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithMetrics attaches a metrics recorder. A nil recorder disables
// instrumentation.
func WithMetrics(recorder *metrics.Recorder) Option {
	return func(c *config) {
		c.recorder = recorder
	}
}

// WithTracing attaches a dispatch tracer.
func WithTracing(dispatcher *tracing.Dispatcher) Option {
	return func(c *config) {
		c.dispatcher = dispatcher
	}
}

// WithViewRenderer overrides the placeholder view renderer.
func WithViewRenderer(renderer ViewRenderer) Option {
	return func(c *config) {
		c.renderer = renderer
	}
}

// WithBaseSession sets session values present on every request before
// per-route additions are merged in.
func WithBaseSession(values map[string]any) Option {
	return func(c *config) {
		c.baseSession = values
	}
}

// WithCheckOrigin sets the websocket origin check.
func WithCheckOrigin(check func(*http.Request) bool) Option {
	return func(c *config) {
		c.checkOrigin = check
	}
}

// WithReadTimeout sets the websocket read deadline (default 60s).
func WithReadTimeout(d time.Duration) Option {
	return func(c *config) {
		c.readTimeout = d
	}
}

// WithShutdownTimeout bounds graceful shutdown (default 10s).
func WithShutdownTimeout(d time.Duration) Option {
	return func(c *config) {
		c.shutdownTimeout = d
	}
}

func defaultServerConfig() config {
	return config{
		addr:            ":8080",
		socketPath:      "/live/socket",
		logger:          slog.Default(),
		renderer:        placeholderRenderer,
		readTimeout:     60 * time.Second,
		shutdownTimeout: 10 * time.Second,
	}
}
