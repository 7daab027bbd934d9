// Package routepath normalizes route path patterns before they enter the
// route table. Declaration paths are trusted input, but canonicalizing them
// at definition time keeps the table free of duplicate-slash and
// dot-segment variants of the same route.
package routepath

import (
	"errors"
	"strings"
)

// Path canonicalization errors.
var (
	ErrBackslashInPath      = errors.New("path contains backslash")
	ErrNullByteInPath       = errors.New("path contains null byte")
	ErrInvalidPercentEscape = errors.New("invalid percent escape sequence")
	ErrPathEscapesRoot      = errors.New("path escapes root via ..")
	ErrEmptyParamName       = errors.New("path parameter has no name")
	ErrCatchAllPosition     = errors.New("catch-all segment must be last")
)

// Canonicalize normalizes a route path pattern:
//   - ensures a leading slash
//   - collapses duplicate slashes
//   - removes "." segments and resolves ".."
//   - strips a trailing slash (except for root)
//
// Paths containing backslashes, NUL bytes (literal or %00-encoded), or
// malformed percent escapes are rejected, as are ".." sequences that
// would climb above root. Match-time callers feed raw request and
// socket-join paths through here, so these are wire-input checks, not
// just declaration hygiene. Pattern segments (":param", "*catchall")
// are validated: parameters must be named and a catch-all must be the
// final segment.
func Canonicalize(input string) (string, error) {
	if input == "" {
		return "/", nil
	}
	if strings.Contains(input, "\\") {
		return "", ErrBackslashInPath
	}
	if strings.Contains(input, "\x00") || strings.Contains(strings.ToUpper(input), "%00") {
		return "", ErrNullByteInPath
	}
	if strings.Contains(input, "%") {
		if err := validatePercentEscapes(input); err != nil {
			return "", err
		}
	}

	var out []string
	for _, seg := range strings.Split(input, "/") {
		switch seg {
		case "", ".":
			continue
		case "..":
			if len(out) == 0 {
				return "", ErrPathEscapesRoot
			}
			out = out[:len(out)-1]
		default:
			out = append(out, seg)
		}
	}

	for i, seg := range out {
		if (seg == ":" || seg == "*") && len(seg) == 1 {
			return "", ErrEmptyParamName
		}
		if strings.HasPrefix(seg, "*") && i != len(out)-1 {
			return "", ErrCatchAllPosition
		}
	}

	return "/" + strings.Join(out, "/"), nil
}

// validatePercentEscapes checks that every "%" starts a %XX escape with
// two hex digits.
func validatePercentEscapes(path string) error {
	for i := 0; i < len(path); i++ {
		if path[i] != '%' {
			continue
		}
		if i+2 >= len(path) {
			return ErrInvalidPercentEscape
		}
		if !isHexDigit(path[i+1]) || !isHexDigit(path[i+2]) {
			return ErrInvalidPercentEscape
		}
		i += 2
	}
	return nil
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// Join concatenates a scope prefix and a declared path into one pattern.
// Either side may be empty or "/".
func Join(prefix, path string) string {
	prefix = strings.Trim(prefix, "/")
	path = strings.Trim(path, "/")
	switch {
	case prefix == "" && path == "":
		return "/"
	case prefix == "":
		return "/" + path
	case path == "":
		return "/" + prefix
	default:
		return "/" + prefix + "/" + path
	}
}

// Split returns the slash-separated segments of a canonical path.
// The root path has no segments.
func Split(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}
