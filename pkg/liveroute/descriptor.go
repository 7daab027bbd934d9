package liveroute

import (
	"github.com/glint-dev/glint/pkg/router"
	"github.com/glint-dev/glint/pkg/view"
)

// Metadata is the public (view, action) pair exposed for introspection.
type Metadata struct {
	View   view.Ref
	Action Action
}

// RouteConfig is the private dispatch payload: the target view plus the
// full resolved per-route options. The route table stores it opaquely;
// the dispatch/render layer retrieves it at request time.
type RouteConfig struct {
	View      view.Ref
	Action    Action
	Layout    Layout
	Container Container
	Session   map[string]any
}

// Descriptor is the immutable, fully resolved record compiled from one
// route declaration. All fields are fixed at build time; accessors
// return copies of mutable values.
type Descriptor struct {
	action     Action
	helperName string
	targetView view.Ref
	layout     Layout
	container  Container
	session    map[string]any
}

// Action returns the route's action tag; NoAction marks the index-like
// default route.
func (d *Descriptor) Action() Action { return d.action }

// HelperName returns the identifier registered for path building. It is
// never empty on a finalized descriptor.
func (d *Descriptor) HelperName() string { return d.helperName }

// TargetView returns the namespace-qualified view reference.
func (d *Descriptor) TargetView() view.Ref { return d.targetView }

// Layout returns the resolved layout pair. It is never unset: absence in
// the options triggers derivation from the router namespace.
func (d *Descriptor) Layout() Layout { return d.layout }

// Container returns the container spec handed to the render layer.
func (d *Descriptor) Container() Container { return d.container }

// Session returns a copy of the session additions for this route.
func (d *Descriptor) Session() map[string]any {
	if d.session == nil {
		return nil
	}
	out := make(map[string]any, len(d.session))
	for k, v := range d.session {
		out[k] = v
	}
	return out
}

// AliasSuppressed reports whether the table's default helper aliasing is
// bypassed. It is true for every compiled live route.
func (d *Descriptor) AliasSuppressed() bool { return true }

// Public returns the metadata pair exposed through the table's listings.
func (d *Descriptor) Public() Metadata {
	return Metadata{View: d.targetView, Action: d.action}
}

// Config returns the private dispatch payload.
func (d *Descriptor) Config() RouteConfig {
	return RouteConfig{
		View:      d.targetView,
		Action:    d.action,
		Layout:    d.layout,
		Container: d.container,
		Session:   d.Session(),
	}
}

// compile assembles a descriptor from a declaration. The view is
// qualified through the scope resolver; inference fills whatever the
// merged options leave unset.
func compile(ns view.Ref, scope *router.Scope, inherited Options, v view.Ref, action Action, opts []Option) (*Descriptor, error) {
	merged := inherited.clone()
	merged.apply(opts)

	target := scope.ResolveView(v)

	helper := merged.helperName
	normalized := action
	if helper == "" {
		var err error
		helper, normalized, err = InferHelperName(target, action)
		if err != nil {
			return nil, err
		}
	}

	layout := InferLayout(ns)
	if merged.layout != nil {
		layout = *merged.layout
	}

	container := Container{Tag: "div"}
	if merged.container != nil {
		container = *merged.container
	}

	return &Descriptor{
		action:     normalized,
		helperName: helper,
		targetView: target,
		layout:     layout,
		container:  container,
		session:    merged.session,
	}, nil
}

// emit converts the descriptor into the (action, options) shape required
// by the table's AddRoute primitive. The transform is lossless; any
// failure already occurred during compilation.
func (d *Descriptor) emit() (string, router.RouteOptions) {
	return string(d.action), router.RouteOptions{
		As:       d.helperName,
		Alias:    !d.AliasSuppressed(),
		Private:  d.Config(),
		Metadata: d.Public(),
	}
}
