package router

import (
	"strings"

	"github.com/glint-dev/glint/internal/diag"
	"github.com/glint-dev/glint/pkg/routepath"
	"github.com/glint-dev/glint/pkg/view"
)

// Builder accumulates routes for one router definition. It is used
// single-threaded at definition time and sealed by Build; the resulting
// Table is immutable and safe for concurrent reads.
type Builder struct {
	root   *node
	routes []*Route
	built  bool
}

// NewBuilder creates an empty route table builder.
func NewBuilder() *Builder {
	return &Builder{root: newNode("")}
}

// AddRoute registers a route for a path. The path is canonicalized before
// insertion. Registering a path twice replaces the earlier route at the
// matching node; both registrations remain visible in Routes().
func (b *Builder) AddRoute(path string, v view.Ref, action string, opts RouteOptions) (*Route, error) {
	if b.built {
		return nil, diag.New("G004")
	}

	canon, err := routepath.Canonicalize(path)
	if err != nil {
		return nil, diag.New("G003").
			WithDetail("path %q: %v", path, err).
			Wrap(err)
	}

	helper := opts.As
	if helper == "" && opts.Alias {
		// Default aliasing from the view's final segment. Compiled live
		// routes suppress this and carry their own helper name.
		helper = view.Underscore(v.Base())
	}

	route := &Route{
		Path:     canon,
		View:     v,
		Action:   action,
		Helper:   helper,
		Metadata: opts.Metadata,
		private:  opts.Private,
	}

	b.root.insert(canon).route = route
	b.routes = append(b.routes, route)
	return route, nil
}

// Build seals the builder and returns the immutable table. Duplicate
// (helper, action) pairs are a definition-time error.
func (b *Builder) Build() (*Table, error) {
	helpers := make(map[string]map[string]*Route)
	for _, route := range b.routes {
		if route.Helper == "" {
			continue
		}
		byAction := helpers[route.Helper]
		if byAction == nil {
			byAction = make(map[string]*Route)
			helpers[route.Helper] = byAction
		}
		if prev, exists := byAction[route.Action]; exists && prev.Path != route.Path {
			return nil, diag.New("G002").
				WithDetail("helper %q action %q is claimed by both %q and %q",
					route.Helper, route.Action, prev.Path, route.Path).
				WithSuggestion("pass an explicit helper name for one of the routes")
		}
		byAction[route.Action] = route
	}

	b.built = true
	return &Table{
		root:    b.root,
		routes:  b.routes,
		helpers: helpers,
	}, nil
}

// Table is an immutable, built route table.
type Table struct {
	root    *node
	routes  []*Route
	helpers map[string]map[string]*Route
}

// Routes returns all registered routes in declaration order.
func (t *Table) Routes() []*Route {
	out := make([]*Route, len(t.routes))
	copy(out, t.routes)
	return out
}

// Match finds the route for a request path.
func (t *Table) Match(path string) (*Match, bool) {
	canon, err := routepath.Canonicalize(path)
	if err != nil {
		return nil, false
	}
	params := make(map[string]string)
	route, ok := t.root.match(routepath.Split(canon), params)
	if !ok {
		return nil, false
	}
	return &Match{Route: route, Params: params}, true
}

// PathFor builds a concrete path from the pattern registered under a
// helper name and action, substituting :param and *catchall segments
// from params.
func (t *Table) PathFor(helper, action string, params map[string]string) (string, error) {
	byAction, ok := t.helpers[helper]
	if !ok {
		return "", diag.New("G101").WithDetail("helper %q is not registered", helper)
	}
	route, ok := byAction[action]
	if !ok {
		return "", diag.New("G101").
			WithDetail("helper %q has no action %q", helper, action)
	}

	segs := routepath.Split(route.Path)
	out := make([]string, 0, len(segs))
	for _, seg := range segs {
		switch {
		case strings.HasPrefix(seg, ":"), strings.HasPrefix(seg, "*"):
			name := seg[1:]
			val, ok := params[name]
			if !ok {
				return "", diag.New("G102").
					WithDetail("pattern %q needs parameter %q", route.Path, name)
			}
			out = append(out, val)
		default:
			out = append(out, seg)
		}
	}
	return "/" + strings.Join(out, "/"), nil
}

// Scope is a registration scope with a path prefix and a view alias.
// Scopes nest; prefixes concatenate and aliases qualify view references
// declared inside the scope.
type Scope struct {
	builder *Builder
	parent  *Scope
	prefix  string
	alias   view.Ref
}

// Root returns the builder's root scope (no prefix, no alias).
func (b *Builder) Root() *Scope {
	return &Scope{builder: b}
}

// Scope creates a nested scope under s.
func (s *Scope) Scope(prefix string, alias view.Ref) *Scope {
	return &Scope{
		builder: s.builder,
		parent:  s,
		prefix:  prefix,
		alias:   alias,
	}
}

// FullPath concatenates all enclosing scope prefixes with path.
func (s *Scope) FullPath(path string) string {
	if s.parent == nil {
		return routepath.Join(s.prefix, path)
	}
	return s.parent.FullPath(routepath.Join(s.prefix, path))
}

// ResolveView qualifies a view reference against the accumulated scope
// aliases, outermost first.
func (s *Scope) ResolveView(ref view.Ref) view.Ref {
	return ref.Qualify(s.aliasChain())
}

func (s *Scope) aliasChain() view.Ref {
	if s.parent == nil {
		return s.alias
	}
	outer := s.parent.aliasChain()
	if s.alias == "" {
		return outer
	}
	if outer == "" {
		return s.alias
	}
	return outer.Child(string(s.alias))
}

// AddRoute registers a route relative to the scope. The view reference
// must already be qualified (see ResolveView).
func (s *Scope) AddRoute(path string, v view.Ref, action string, opts RouteOptions) (*Route, error) {
	return s.builder.AddRoute(s.FullPath(path), v, action, opts)
}
