package routepath

import (
	"errors"
	"reflect"
	"testing"
)

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "/"},
		{"/", "/"},
		{"/articles", "/articles"},
		{"articles", "/articles"},
		{"/articles/", "/articles"},
		{"/articles//:id", "/articles/:id"},
		{"/articles/./edit", "/articles/edit"},
		{"/articles/draft/../:id", "/articles/:id"},
		{"/files/*rest", "/files/*rest"},
		{"/articles/%41", "/articles/%41"}, // well-formed escapes pass through undecoded
	}

	for _, tt := range tests {
		got, err := Canonicalize(tt.in)
		if err != nil {
			t.Errorf("Canonicalize(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Canonicalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCanonicalizeRejects(t *testing.T) {
	tests := []struct {
		in      string
		wantErr error
	}{
		{"/a\\b", ErrBackslashInPath},
		{"/a\x00b", ErrNullByteInPath},
		{"/a%00b", ErrNullByteInPath},
		{"/articles/%GG", ErrInvalidPercentEscape},
		{"/articles/%2", ErrInvalidPercentEscape},
		{"/articles/%", ErrInvalidPercentEscape},
		{"/../secret", ErrPathEscapesRoot},
		{"/articles/:", ErrEmptyParamName},
		{"/files/*/more", ErrCatchAllPosition},
	}

	for _, tt := range tests {
		_, err := Canonicalize(tt.in)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("Canonicalize(%q) error = %v, want %v", tt.in, err, tt.wantErr)
		}
	}
}

func TestJoin(t *testing.T) {
	tests := []struct {
		prefix, path, want string
	}{
		{"", "", "/"},
		{"/", "/", "/"},
		{"/admin", "/articles", "/admin/articles"},
		{"admin", "articles/:id", "/admin/articles/:id"},
		{"/admin", "", "/admin"},
		{"", "/articles", "/articles"},
	}

	for _, tt := range tests {
		if got := Join(tt.prefix, tt.path); got != tt.want {
			t.Errorf("Join(%q, %q) = %q, want %q", tt.prefix, tt.path, got, tt.want)
		}
	}
}

func TestSplit(t *testing.T) {
	if got := Split("/"); got != nil {
		t.Errorf("Split(/) = %v, want nil", got)
	}
	want := []string{"articles", ":id", "edit"}
	if got := Split("/articles/:id/edit"); !reflect.DeepEqual(got, want) {
		t.Errorf("Split = %v, want %v", got, want)
	}
}
