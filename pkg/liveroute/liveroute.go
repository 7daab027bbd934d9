package liveroute

import (
	"github.com/glint-dev/glint/pkg/router"
	"github.com/glint-dev/glint/pkg/view"
)

// Router compiles live-route declarations into a host route table. It
// carries the router's own namespace (used for layout inference), the
// current registration scope, and any group-level options.
//
// A Router is used sequentially at definition time; build the table once
// all routes are declared.
type Router struct {
	ns        view.Ref
	scope     *router.Scope
	inherited Options
}

// New creates a route compiler for the given router namespace, emitting
// into b. The namespace's final segment is conventionally "Router"; the
// default layout is its LayoutView sibling.
func New(namespace view.Ref, b *router.Builder) *Router {
	return &Router{
		ns:    namespace,
		scope: b.Root(),
	}
}

// Namespace returns the router's own hierarchical identifier.
func (r *Router) Namespace() view.Ref {
	return r.ns
}

// Group opens a nested registration scope. The prefix prepends to every
// path declared inside; the alias qualifies view references; opts become
// group-level defaults that route-local options override.
func (r *Router) Group(prefix string, alias view.Ref, opts ...Option) *Router {
	inherited := r.inherited.clone()
	inherited.apply(opts)
	return &Router{
		ns:        r.ns,
		scope:     r.scope.Scope(prefix, alias),
		inherited: inherited,
	}
}

// Live compiles one route declaration and registers it. The declaration
// is normalized into an immutable descriptor (helper name and layout
// inferred unless overridden), then emitted through the table's generic
// AddRoute primitive with the table's own aliasing suppressed.
//
// Failure is a definition-time configuration error: it aborts the router
// definition and never surfaces at request time.
func (r *Router) Live(path string, v view.Ref, action Action, opts ...Option) (*Descriptor, error) {
	desc, err := compile(r.ns, r.scope, r.inherited, v, action, opts)
	if err != nil {
		return nil, err
	}

	emittedAction, routeOpts := desc.emit()
	if _, err := r.scope.AddRoute(path, desc.TargetView(), emittedAction, routeOpts); err != nil {
		return nil, err
	}
	return desc, nil
}
