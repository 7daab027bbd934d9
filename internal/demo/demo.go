// Package demo defines the sample application routing used by the CLI
// and the end-to-end tests.
package demo

import (
	"github.com/glint-dev/glint/pkg/liveroute"
	"github.com/glint-dev/glint/pkg/router"
)

// Namespace is the demo router's own identifier; its layout defaults to
// Demo.Web.LayoutView per convention.
const Namespace = "Demo.Web.Router"

// BuildTable compiles the demo routing table.
func BuildTable() (*router.Table, error) {
	b := router.NewBuilder()
	r := liveroute.New(Namespace, b)

	web := r.Group("", "Demo.Web")
	if _, err := web.Live("/", "HomeLive", liveroute.NoAction); err != nil {
		return nil, err
	}
	if _, err := web.Live("/articles", "ArticleLive.Index", "index"); err != nil {
		return nil, err
	}
	if _, err := web.Live("/articles/new", "ArticleLive.Index", "new"); err != nil {
		return nil, err
	}
	if _, err := web.Live("/articles/:id/edit", "ArticleLive.Index", "edit",
		liveroute.WithSession(map[string]any{"mode": "edit"}),
	); err != nil {
		return nil, err
	}

	admin := web.Group("/admin", "Admin",
		liveroute.WithLayout("Demo.Web.AdminLayoutView", "admin"),
		liveroute.WithSession(map[string]any{"realm": "admin"}),
	)
	if _, err := admin.Live("/dashboard", "DashboardLive", "home"); err != nil {
		return nil, err
	}
	if _, err := admin.Live("/reports/:id", "ReportLive.Show", "show",
		liveroute.WithContainer("section", map[string]string{"class": "report"}),
	); err != nil {
		return nil, err
	}

	return b.Build()
}
