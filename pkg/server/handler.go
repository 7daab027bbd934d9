package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/glint-dev/glint/pkg/liveroute"
	"github.com/glint-dev/glint/pkg/tracing"
)

// Dispatch carries everything the render layer needs for one request.
type Dispatch struct {
	// Config is the route's private configuration, retrieved from the
	// table exactly as the compiler stored it.
	Config liveroute.RouteConfig

	// Params are the extracted path parameters.
	Params map[string]string

	// Session is the merged request session.
	Session Session

	// Path is the requested path.
	Path string
}

// ViewRenderer renders the view placeholder inside the container. The
// default renderer emits a marker for the thin client to hydrate.
type ViewRenderer func(ctx context.Context, w io.Writer, d *Dispatch) error

// placeholderRenderer is the default ViewRenderer.
func placeholderRenderer(_ context.Context, w io.Writer, d *Dispatch) error {
	_, err := fmt.Fprintf(w, "<!-- glint:view %s -->", htmlEscape(string(d.Config.View)))
	return err
}

// dispatch serves a page request from the route table.
func (s *Server) dispatch(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	path := r.URL.Path

	match, ok := s.table.Match(path)
	ctx, span := s.config.dispatcher.Start(r.Context(), path, match)
	if !ok {
		s.config.recorder.ObserveDispatch("", "not_found", time.Since(start))
		s.config.logger.Debug("no route", "path", path)
		httpError(w, http.StatusNotFound)
		tracing.End(span, fmt.Errorf("no route matches %q", path))
		return
	}

	cfg, ok := match.Route.Private().(liveroute.RouteConfig)
	if !ok {
		// Route was not produced by the live compiler; nothing to render.
		s.config.recorder.ObserveDispatch(match.Route.Helper, "unroutable", time.Since(start))
		httpError(w, http.StatusNotFound)
		tracing.End(span, fmt.Errorf("route %q carries no live configuration", match.Route.Path))
		return
	}

	d := &Dispatch{
		Config:  cfg,
		Params:  match.Params,
		Session: newSession(s.config.baseSession, cfg.Session),
		Path:    path,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.renderPage(ctx, w, d); err != nil {
		s.config.recorder.ObserveDispatch(match.Route.Helper, "error", time.Since(start))
		s.config.logger.Error("render failed", "path", path, "view", cfg.View, "error", err)
		tracing.End(span, err)
		return
	}

	s.config.recorder.ObserveDispatch(match.Route.Helper, "ok", time.Since(start))
	tracing.End(span, nil)
}

func httpError(w http.ResponseWriter, status int) {
	http.Error(w, http.StatusText(status), status)
}
