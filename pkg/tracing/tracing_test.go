package tracing

import (
	"context"
	"errors"
	"testing"

	"github.com/glint-dev/glint/pkg/router"
	"go.opentelemetry.io/otel/attribute"
)

func buildMatch(t *testing.T) *router.Match {
	t.Helper()
	b := router.NewBuilder()
	b.AddRoute("/articles/:id", "ArticleLive.Show", "show", router.RouteOptions{As: "article"})
	table, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	match, ok := table.Match("/articles/1")
	if !ok {
		t.Fatal("expected match")
	}
	return match
}

func TestStartAndEnd(t *testing.T) {
	// Without a configured provider the global tracer is a no-op;
	// Start/End must still be safe and return a usable context.
	d := NewDispatcher(WithTracerName("test"))
	match := buildMatch(t)

	ctx, span := d.Start(context.Background(), "/articles/1", match)
	if ctx == nil {
		t.Fatal("Start returned nil context")
	}
	End(span, nil)

	_, span = d.Start(context.Background(), "/articles/1", match)
	End(span, errors.New("boom"))
}

func TestStartWithoutMatch(t *testing.T) {
	d := NewDispatcher()
	_, span := d.Start(context.Background(), "/missing", nil)
	End(span, nil)
}

func TestAttributeExtractor(t *testing.T) {
	called := false
	d := NewDispatcher(WithAttributeExtractor(func(match *router.Match) []attribute.KeyValue {
		called = true
		return []attribute.KeyValue{attribute.String("custom", "yes")}
	}))

	_, span := d.Start(context.Background(), "/articles/1", buildMatch(t))
	End(span, nil)

	if !called {
		t.Error("attribute extractor was not called")
	}
}
