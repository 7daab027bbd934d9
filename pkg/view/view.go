// Package view defines hierarchical view references.
//
// A view reference is a dotted identifier naming a routable view, e.g.
// "Admin.ArticleLive.Index". References are opaque to the route table;
// the compiler derives helper names and layouts from their segments.
package view

import "strings"

// LiveSuffix marks a segment as a live-routable view by convention.
// Helper-name inference starts at the first segment carrying this suffix.
const LiveSuffix = "Live"

// Ref is a hierarchical view reference.
type Ref string

// Segments returns the dot-separated parts of the reference.
func (r Ref) Segments() []string {
	if r == "" {
		return nil
	}
	return strings.Split(string(r), ".")
}

// Namespace returns the reference with its final segment dropped.
// Namespace of a single-segment reference is empty.
func (r Ref) Namespace() Ref {
	segs := r.Segments()
	if len(segs) <= 1 {
		return ""
	}
	return Ref(strings.Join(segs[:len(segs)-1], "."))
}

// Base returns the final segment of the reference.
func (r Ref) Base() string {
	segs := r.Segments()
	if len(segs) == 0 {
		return ""
	}
	return segs[len(segs)-1]
}

// Child returns the reference extended by one segment.
func (r Ref) Child(segment string) Ref {
	if r == "" {
		return Ref(segment)
	}
	if segment == "" {
		return r
	}
	return Ref(string(r) + "." + segment)
}

// Qualify resolves r against a base namespace. An empty base leaves r
// unchanged; a reference already rooted at base is not re-qualified.
func (r Ref) Qualify(base Ref) Ref {
	if base == "" || r == "" {
		return r
	}
	if r == base || strings.HasPrefix(string(r), string(base)+".") {
		return r
	}
	return Ref(string(base) + "." + string(r))
}

// IsLive reports whether the segment carries the live suffix.
// The suffix alone does not qualify: "Live" is not a live segment.
func IsLive(segment string) bool {
	return len(segment) > len(LiveSuffix) && strings.HasSuffix(segment, LiveSuffix)
}

// StripLive removes the live suffix from a segment if present.
func StripLive(segment string) string {
	if IsLive(segment) {
		return strings.TrimSuffix(segment, LiveSuffix)
	}
	return segment
}

// Underscore converts an identifier segment to a lower-case,
// underscore-delimited token: "ArticleIndex" becomes "article_index",
// "APIToken" becomes "api_token".
func Underscore(segment string) string {
	if segment == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(segment) + 4)

	runes := []rune(segment)
	for i, c := range runes {
		if isUpper(c) {
			prevLower := i > 0 && !isUpper(runes[i-1]) && runes[i-1] != '_'
			nextLower := i+1 < len(runes) && !isUpper(runes[i+1]) && runes[i+1] != '_'
			if i > 0 && (prevLower || (isUpper(runes[i-1]) && nextLower)) {
				b.WriteByte('_')
			}
			b.WriteRune(c - 'A' + 'a')
		} else {
			b.WriteRune(c)
		}
	}
	return b.String()
}

func isUpper(c rune) bool {
	return c >= 'A' && c <= 'Z'
}
