package server

// Session is the per-request session bag. Route-compiled session
// additions are merged over the server's base session; values are opaque
// to the server and handed to the render layer untouched.
type Session map[string]any

// Merge copies values into the session, overwriting existing keys.
func (s Session) Merge(values map[string]any) {
	for k, v := range values {
		s[k] = v
	}
}

// newSession builds the session for one request from the server's base
// values and the matched route's additions.
func newSession(base, additions map[string]any) Session {
	s := make(Session, len(base)+len(additions))
	s.Merge(base)
	s.Merge(additions)
	return s
}
