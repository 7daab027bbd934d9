package router

import (
	"errors"
	"testing"

	"github.com/glint-dev/glint/internal/diag"
)

func TestAddRouteAndMatch(t *testing.T) {
	b := NewBuilder()

	if _, err := b.AddRoute("/articles", "Demo.Web.ArticleLive.Index", "", RouteOptions{}); err != nil {
		t.Fatalf("AddRoute: %v", err)
	}

	table, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	match, ok := table.Match("/articles")
	if !ok {
		t.Fatal("expected match for /articles")
	}
	if match.Route.View != "Demo.Web.ArticleLive.Index" {
		t.Errorf("View = %q, want %q", match.Route.View, "Demo.Web.ArticleLive.Index")
	}
}

func TestMatchParams(t *testing.T) {
	b := NewBuilder()
	b.AddRoute("/articles/:id/edit", "ArticleLive.Index", "edit", RouteOptions{})
	table, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	match, ok := table.Match("/articles/123/edit")
	if !ok {
		t.Fatal("expected match for /articles/123/edit")
	}
	if match.Params["id"] != "123" {
		t.Errorf("params[id] = %q, want %q", match.Params["id"], "123")
	}
}

func TestMatchCatchAll(t *testing.T) {
	b := NewBuilder()
	b.AddRoute("/files/*rest", "FileLive.Show", "", RouteOptions{})
	table, _ := b.Build()

	match, ok := table.Match("/files/a/b/c")
	if !ok {
		t.Fatal("expected match for /files/a/b/c")
	}
	if match.Params["rest"] != "a/b/c" {
		t.Errorf("params[rest] = %q, want %q", match.Params["rest"], "a/b/c")
	}
}

func TestMatchStaticBeatsParam(t *testing.T) {
	b := NewBuilder()
	b.AddRoute("/articles/:id", "ArticleLive.Show", "", RouteOptions{})
	b.AddRoute("/articles/new", "ArticleLive.New", "", RouteOptions{})
	table, _ := b.Build()

	match, ok := table.Match("/articles/new")
	if !ok {
		t.Fatal("expected match")
	}
	if match.Route.View != "ArticleLive.New" {
		t.Errorf("static segment should win, got %q", match.Route.View)
	}
}

func TestNoMatch(t *testing.T) {
	b := NewBuilder()
	b.AddRoute("/articles", "ArticleLive.Index", "", RouteOptions{})
	table, _ := b.Build()

	if _, ok := table.Match("/projects"); ok {
		t.Error("should not match /projects")
	}
}

func TestMatchRejectsMalformedEscape(t *testing.T) {
	// Match receives raw request paths; malformed percent escapes must
	// fail canonicalization rather than reach the tree.
	b := NewBuilder()
	b.AddRoute("/articles/:id", "ArticleLive.Show", "", RouteOptions{})
	table, _ := b.Build()

	for _, path := range []string{"/articles/%GG", "/articles/%2", "/articles/%00"} {
		if _, ok := table.Match(path); ok {
			t.Errorf("Match(%q) succeeded, want rejection", path)
		}
	}
}

func TestAddRouteInvalidPath(t *testing.T) {
	b := NewBuilder()
	_, err := b.AddRoute("/../secret", "ArticleLive.Index", "", RouteOptions{})
	if err == nil {
		t.Fatal("expected error for path escaping root")
	}
	var de *diag.Error
	if !errors.As(err, &de) || de.Code != "G003" {
		t.Errorf("error = %v, want G003", err)
	}
}

func TestAddRouteAfterBuild(t *testing.T) {
	b := NewBuilder()
	b.Build()

	_, err := b.AddRoute("/late", "LateLive.Index", "", RouteOptions{})
	var de *diag.Error
	if !errors.As(err, &de) || de.Code != "G004" {
		t.Errorf("error = %v, want G004", err)
	}
}

func TestDefaultAliasing(t *testing.T) {
	b := NewBuilder()
	route, err := b.AddRoute("/articles", "Demo.Web.ArticleIndex", "", RouteOptions{Alias: true})
	if err != nil {
		t.Fatalf("AddRoute: %v", err)
	}
	if route.Helper != "article_index" {
		t.Errorf("Helper = %q, want %q", route.Helper, "article_index")
	}

	// Alias suppressed: no helper derived.
	route, _ = b.AddRoute("/other", "Demo.Web.OtherIndex", "", RouteOptions{Alias: false})
	if route.Helper != "" {
		t.Errorf("Helper = %q, want empty with aliasing suppressed", route.Helper)
	}
}

func TestRoutesDeclarationOrder(t *testing.T) {
	b := NewBuilder()
	b.AddRoute("/b", "BLive.Index", "", RouteOptions{})
	b.AddRoute("/a", "ALive.Index", "", RouteOptions{})
	table, _ := b.Build()

	routes := table.Routes()
	if len(routes) != 2 {
		t.Fatalf("len(Routes()) = %d, want 2", len(routes))
	}
	if routes[0].Path != "/b" || routes[1].Path != "/a" {
		t.Errorf("routes not in declaration order: %q, %q", routes[0].Path, routes[1].Path)
	}
}

func TestDuplicatePathBothListed(t *testing.T) {
	b := NewBuilder()
	b.AddRoute("/articles", "FirstLive.Index", "", RouteOptions{})
	b.AddRoute("/articles", "SecondLive.Index", "", RouteOptions{})
	table, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if got := len(table.Routes()); got != 2 {
		t.Errorf("len(Routes()) = %d, want 2", got)
	}

	// Last registration wins at the matching node.
	match, _ := table.Match("/articles")
	if match.Route.View != "SecondLive.Index" {
		t.Errorf("matched %q, want later registration", match.Route.View)
	}
}

func TestBuildDuplicateHelper(t *testing.T) {
	b := NewBuilder()
	b.AddRoute("/a", "ALive.Index", "edit", RouteOptions{As: "article"})
	b.AddRoute("/b", "BLive.Index", "edit", RouteOptions{As: "article"})

	_, err := b.Build()
	var de *diag.Error
	if !errors.As(err, &de) || de.Code != "G002" {
		t.Errorf("error = %v, want G002", err)
	}
}

func TestPathFor(t *testing.T) {
	b := NewBuilder()
	b.AddRoute("/articles/:id/edit", "ArticleLive.Index", "edit", RouteOptions{As: "article_index"})
	table, _ := b.Build()

	path, err := table.PathFor("article_index", "edit", map[string]string{"id": "42"})
	if err != nil {
		t.Fatalf("PathFor: %v", err)
	}
	if path != "/articles/42/edit" {
		t.Errorf("PathFor = %q, want %q", path, "/articles/42/edit")
	}
}

func TestPathForErrors(t *testing.T) {
	b := NewBuilder()
	b.AddRoute("/articles/:id", "ArticleLive.Show", "", RouteOptions{As: "article"})
	table, _ := b.Build()

	_, err := table.PathFor("missing", "", nil)
	var de *diag.Error
	if !errors.As(err, &de) || de.Code != "G101" {
		t.Errorf("unknown helper error = %v, want G101", err)
	}

	_, err = table.PathFor("article", "", map[string]string{})
	if !errors.As(err, &de) || de.Code != "G102" {
		t.Errorf("missing param error = %v, want G102", err)
	}
}

func TestPrivatePayload(t *testing.T) {
	b := NewBuilder()
	payload := map[string]string{"k": "v"}
	route, _ := b.AddRoute("/p", "PLive.Index", "", RouteOptions{Private: payload})

	got, ok := route.Private().(map[string]string)
	if !ok || got["k"] != "v" {
		t.Errorf("Private() = %v, want stored payload", route.Private())
	}
}
