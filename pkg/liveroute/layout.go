package liveroute

import "github.com/glint-dev/glint/pkg/view"

// LayoutViewName is the sibling view a router's default layout resolves to.
const LayoutViewName = "LayoutView"

// DefaultTemplate is the template tag paired with the inferred layout.
const DefaultTemplate = "app"

// InferLayout derives the default layout from the router's own
// namespace: the final ("Router") segment is dropped and a sibling
// LayoutView is rebuilt in the same namespace, paired with the default
// template tag:
//
//	InferLayout("Demo.Web.Router") // {Demo.Web.LayoutView, "app"}
//
// The result is a convention default only; any explicit layout option at
// the route or group level overrides it.
func InferLayout(routerNamespace view.Ref) Layout {
	return Layout{
		View:     routerNamespace.Namespace().Child(LayoutViewName),
		Template: DefaultTemplate,
	}
}
