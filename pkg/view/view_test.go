package view

import (
	"reflect"
	"testing"
)

func TestSegments(t *testing.T) {
	tests := []struct {
		ref  Ref
		want []string
	}{
		{"", nil},
		{"ArticleLive", []string{"ArticleLive"}},
		{"Admin.ArticleLive.Index", []string{"Admin", "ArticleLive", "Index"}},
	}

	for _, tt := range tests {
		got := tt.ref.Segments()
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Segments(%q) = %v, want %v", tt.ref, got, tt.want)
		}
	}
}

func TestNamespaceAndBase(t *testing.T) {
	r := Ref("Demo.Web.Router")
	if got := r.Namespace(); got != "Demo.Web" {
		t.Errorf("Namespace() = %q, want %q", got, "Demo.Web")
	}
	if got := r.Base(); got != "Router" {
		t.Errorf("Base() = %q, want %q", got, "Router")
	}

	single := Ref("Router")
	if got := single.Namespace(); got != "" {
		t.Errorf("Namespace() of single segment = %q, want empty", got)
	}
}

func TestChild(t *testing.T) {
	if got := Ref("Demo.Web").Child("LayoutView"); got != "Demo.Web.LayoutView" {
		t.Errorf("Child() = %q, want %q", got, "Demo.Web.LayoutView")
	}
	if got := Ref("").Child("LayoutView"); got != "LayoutView" {
		t.Errorf("Child() on empty ref = %q, want %q", got, "LayoutView")
	}
}

func TestQualify(t *testing.T) {
	tests := []struct {
		ref  Ref
		base Ref
		want Ref
	}{
		{"ArticleLive.Index", "Demo.Web", "Demo.Web.ArticleLive.Index"},
		{"Demo.Web.ArticleLive", "Demo.Web", "Demo.Web.ArticleLive"},
		{"ArticleLive", "", "ArticleLive"},
		{"Demo.Web", "Demo.Web", "Demo.Web"},
	}

	for _, tt := range tests {
		if got := tt.ref.Qualify(tt.base); got != tt.want {
			t.Errorf("Qualify(%q, %q) = %q, want %q", tt.ref, tt.base, got, tt.want)
		}
	}
}

func TestIsLive(t *testing.T) {
	tests := []struct {
		segment string
		want    bool
	}{
		{"ArticleLive", true},
		{"Article", false},
		{"Live", false}, // suffix alone does not qualify
		{"Alive", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsLive(tt.segment); got != tt.want {
			t.Errorf("IsLive(%q) = %v, want %v", tt.segment, got, tt.want)
		}
	}
}

func TestStripLive(t *testing.T) {
	if got := StripLive("ArticleLive"); got != "Article" {
		t.Errorf("StripLive(ArticleLive) = %q, want %q", got, "Article")
	}
	if got := StripLive("Index"); got != "Index" {
		t.Errorf("StripLive(Index) = %q, want %q", got, "Index")
	}
}

func TestUnderscore(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Article", "article"},
		{"ArticleIndex", "article_index"},
		{"APIToken", "api_token"},
		{"Index", "index"},
		{"already_snake", "already_snake"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Underscore(tt.in); got != tt.want {
			t.Errorf("Underscore(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
