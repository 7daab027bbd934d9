// Package tracing provides OpenTelemetry spans around route dispatch.
//
// The tracer uses the global OpenTelemetry tracer provider. Configure it
// in main() before starting the server; without a provider the spans are
// no-ops and dispatch proceeds untraced.
package tracing

import (
	"context"

	"github.com/glint-dev/glint/pkg/router"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Default tracer name for glint applications.
const defaultTracerName = "glint"

// Config configures dispatch tracing.
type Config struct {
	// TracerName is the name of the tracer (default: "glint").
	TracerName string

	// AttributeExtractor adds custom attributes to each dispatch span.
	AttributeExtractor func(match *router.Match) []attribute.KeyValue

	tracer trace.Tracer
}

// Option configures dispatch tracing.
type Option func(*Config)

// WithTracerName sets the tracer name.
func WithTracerName(name string) Option {
	return func(c *Config) {
		c.TracerName = name
	}
}

// WithAttributeExtractor sets a custom attribute extractor.
func WithAttributeExtractor(extractor func(match *router.Match) []attribute.KeyValue) Option {
	return func(c *Config) {
		c.AttributeExtractor = extractor
	}
}

// Dispatcher starts and finishes dispatch spans.
type Dispatcher struct {
	config Config
}

// NewDispatcher creates a span factory for route dispatch.
func NewDispatcher(opts ...Option) *Dispatcher {
	config := Config{TracerName: defaultTracerName}
	for _, opt := range opts {
		opt(&config)
	}
	config.tracer = otel.Tracer(config.TracerName)
	return &Dispatcher{config: config}
}

// Start opens a span for one dispatch. The returned context carries the
// span for downstream calls; End must be called when dispatch completes.
func (d *Dispatcher) Start(ctx context.Context, path string, match *router.Match) (context.Context, trace.Span) {
	if d == nil {
		return ctx, noopSpan(ctx)
	}

	attrs := []attribute.KeyValue{
		attribute.String("glint.path", path),
	}
	if match != nil {
		attrs = append(attrs,
			attribute.String("glint.route.pattern", match.Route.Path),
			attribute.String("glint.route.view", string(match.Route.View)),
			attribute.String("glint.route.action", match.Route.Action),
			attribute.String("glint.route.helper", match.Route.Helper),
		)
		if d.config.AttributeExtractor != nil {
			attrs = append(attrs, d.config.AttributeExtractor(match)...)
		}
	}

	return d.config.tracer.Start(ctx, "glint.dispatch",
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(attrs...),
	)
}

// End closes a dispatch span, recording the error if any.
func End(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

func noopSpan(ctx context.Context) trace.Span {
	return trace.SpanFromContext(ctx)
}
