package router

import "github.com/glint-dev/glint/pkg/view"

// RouteOptions is the generic options bag accepted by AddRoute. Callers
// that compile richer route descriptors (the live-route compiler) flatten
// them into this shape.
type RouteOptions struct {
	// As overrides the helper name registered for path building.
	As string

	// Alias controls the table's default helper aliasing. When true and
	// As is empty, a helper name is derived from the view's final
	// segment. Compiled live routes always pass false: their helper
	// naming is owned entirely by the compiler.
	Alias bool

	// Private is an opaque payload stored for the dispatch layer.
	// The table never inspects it.
	Private any

	// Metadata is the public metadata exposed through Routes() for
	// introspection and listings.
	Metadata any
}

// Route is one registered route. Fields are fixed at registration time.
type Route struct {
	// Path is the canonicalized path pattern.
	Path string

	// View is the fully qualified view reference the route targets.
	View view.Ref

	// Action distinguishes routes sharing a view. Empty means none.
	Action string

	// Helper is the name registered for path building. Empty means the
	// route exposes no helper.
	Helper string

	// Metadata is the public metadata supplied at registration.
	Metadata any

	private any
}

// Private returns the opaque dispatch payload stored at registration.
func (r *Route) Private() any {
	return r.private
}

// Match is the result of matching a path against a built table.
type Match struct {
	// Route is the matched route.
	Route *Route

	// Params are the extracted path parameters.
	Params map[string]string
}
