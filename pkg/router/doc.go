// Package router implements the generic route table that compiled routes
// are registered into.
//
// The table provides:
//   - A generic AddRoute(path, view, action, options) primitive
//   - Radix tree matching with :param and *catchall segments
//   - Nested scopes carrying path prefixes and view aliases
//   - Helper-name indexing for path building (PathFor)
//   - Declaration-order introspection via Routes()
//
// # Lifecycle
//
// A Builder is constructed once per router definition, populated
// sequentially at definition time, and sealed with Build(). The resulting
// Table is immutable; request-time code only reads it.
//
//	b := router.NewBuilder()
//	scope := b.Root().Scope("/admin", "Admin")
//	scope.AddRoute("/articles/:id", "Demo.Web.Admin.ArticleLive.Index", "edit", opts)
//	table, err := b.Build()
//
//	match, ok := table.Match("/admin/articles/7")
//	// match.Params["id"] == "7"
//
// # Collisions
//
// Registering the same path twice replaces the earlier route at the
// matched node while both registrations remain listed by Routes(). The
// table owns this policy; registration compilers emit declarations in
// order and do not resolve collisions themselves.
package router
