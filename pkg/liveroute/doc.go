// Package liveroute compiles declarative live-route statements into
// normalized route descriptors and registers them with the generic route
// table.
//
// A declaration is a (path, view, action, options) tuple. Compilation
// runs once per declaration at router-definition time and performs:
//   - Helper-name inference from the view reference's "Live"-suffixed
//     segments (or the implied default "live" when no action is given)
//   - Layout inference from the router's own namespace
//   - Option merging with innermost-wins precedence: route options over
//     group options over system defaults
//   - Emission into the table's AddRoute primitive, with the table's own
//     helper aliasing suppressed
//
// # Usage
//
//	b := router.NewBuilder()
//	r := liveroute.New("Demo.Web.Router", b)
//
//	web := r.Group("", "Demo.Web")
//	web.Live("/articles", "ArticleLive.Index", liveroute.NoAction)
//	web.Live("/articles/:id/edit", "ArticleLive.Index", "edit")
//
//	table, err := b.Build()
//
// Compilation is a pure, single-pass transform: the same declaration
// always yields an identical descriptor, and any failure aborts the
// router definition rather than surfacing at request time.
package liveroute
