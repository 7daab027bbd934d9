package liveroute

import "github.com/glint-dev/glint/pkg/view"

// Action is the symbolic tag distinguishing routes that share a view.
// The zero value marks an absent action.
type Action string

// NoAction declares a route without an action tag. Such routes compile
// to the implied default helper name.
const NoAction Action = ""

// Layout identifies the wrapping template rendered around a view's
// output: a layout view reference plus a template tag.
type Layout struct {
	View     view.Ref
	Template string
}

// Container specifies the HTML element the dispatch layer wraps a view
// in. The compiler passes it through opaquely.
type Container struct {
	Tag   string
	Attrs map[string]string
}

// Options is the resolved per-route configuration bag.
type Options struct {
	session    map[string]any
	layout     *Layout
	container  *Container
	helperName string
}

// Option configures a route or group declaration.
type Option func(*Options)

// WithSession adds values merged into the request session at dispatch
// time. Values are passed through opaquely; keys merge across nested
// groups with inner declarations winning per key.
func WithSession(values map[string]any) Option {
	return func(o *Options) {
		if o.session == nil {
			o.session = make(map[string]any, len(values))
		}
		for k, v := range values {
			o.session[k] = v
		}
	}
}

// WithLayout overrides the inferred default layout.
func WithLayout(v view.Ref, template string) Option {
	return func(o *Options) {
		o.layout = &Layout{View: v, Template: template}
	}
}

// WithContainer overrides the default container element.
func WithContainer(tag string, attrs map[string]string) Option {
	return func(o *Options) {
		o.container = &Container{Tag: tag, Attrs: attrs}
	}
}

// WithHelperName sets an explicit helper name, bypassing inference.
func WithHelperName(name string) Option {
	return func(o *Options) {
		o.helperName = name
	}
}

// clone deep-copies the options so a group's bag is never mutated by a
// route-local override.
func (o Options) clone() Options {
	out := o
	if o.session != nil {
		out.session = make(map[string]any, len(o.session))
		for k, v := range o.session {
			out.session[k] = v
		}
	}
	return out
}

// apply layers opts over o, innermost last.
func (o *Options) apply(opts []Option) {
	for _, opt := range opts {
		opt(o)
	}
}
