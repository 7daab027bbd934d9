package server

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
)

// renderPage writes the HTML shell for one dispatch: the layout wrapper,
// the route's container element, and the view placeholder inside it.
func (s *Server) renderPage(ctx context.Context, w io.Writer, d *Dispatch) error {
	layout := d.Config.Layout
	if _, err := fmt.Fprintf(w,
		"<!doctype html>\n<html>\n<head><meta charset=\"utf-8\"></head>\n"+
			"<body data-glint-layout=%q data-glint-template=%q>\n",
		htmlEscape(string(layout.View)), htmlEscape(layout.Template)); err != nil {
		return err
	}

	if err := s.renderContainer(ctx, w, d); err != nil {
		return err
	}

	_, err := io.WriteString(w, "\n</body>\n</html>\n")
	return err
}

// renderContainer writes the route's container element around the view
// output. The container spec comes through the descriptor untouched.
func (s *Server) renderContainer(ctx context.Context, w io.Writer, d *Dispatch) error {
	c := d.Config.Container

	var b strings.Builder
	fmt.Fprintf(&b, "<%s data-glint-view=%q", c.Tag, htmlEscape(string(d.Config.View)))
	if d.Config.Action != "" {
		fmt.Fprintf(&b, " data-glint-action=%q", htmlEscape(string(d.Config.Action)))
	}
	for _, k := range sortedKeys(c.Attrs) {
		fmt.Fprintf(&b, " %s=%q", k, htmlEscape(c.Attrs[k]))
	}
	b.WriteString(">")
	if _, err := io.WriteString(w, b.String()); err != nil {
		return err
	}

	if err := s.config.renderer(ctx, w, d); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "</%s>", c.Tag)
	return err
}

func sortedKeys(m map[string]string) []string {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func htmlEscape(s string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&#34;",
	)
	return replacer.Replace(s)
}
