package router

import (
	"strings"

	"github.com/glint-dev/glint/pkg/routepath"
)

// node is a node in the route tree.
type node struct {
	// segment is the static path segment this node matches
	segment string

	// isParam indicates this is a parameter segment (:id)
	isParam bool

	// isCatchAll indicates this is a catch-all segment (*rest)
	isCatchAll bool

	// paramName is the parameter name (without : or *)
	paramName string

	// route is the registered route terminating at this node.
	// Re-registering the same path replaces it; collision policy
	// between identical paths is owned by the table, not the compiler.
	route *Route

	// children are static segment children
	children []*node

	// paramChild is the dynamic parameter child (:id)
	paramChild *node

	// catchAllChild is the catch-all child (*rest)
	catchAllChild *node
}

func newNode(segment string) *node {
	return &node{segment: segment}
}

// findChild finds a static child with an exact segment match.
func (n *node) findChild(segment string) *node {
	for _, child := range n.children {
		if child.segment == segment {
			return child
		}
	}
	return nil
}

// addChild adds or retrieves a static child for the given segment.
func (n *node) addChild(segment string) *node {
	if child := n.findChild(segment); child != nil {
		return child
	}
	child := newNode(segment)
	n.children = append(n.children, child)
	return child
}

func (n *node) addParamChild(name string) *node {
	if n.paramChild != nil {
		return n.paramChild
	}
	child := newNode("")
	child.isParam = true
	child.paramName = name
	n.paramChild = child
	return child
}

func (n *node) addCatchAllChild(name string) *node {
	if n.catchAllChild != nil {
		return n.catchAllChild
	}
	child := newNode("")
	child.isCatchAll = true
	child.paramName = name
	n.catchAllChild = child
	return child
}

// insert walks the pattern segments and returns the terminal node.
func (n *node) insert(path string) *node {
	current := n
	for _, seg := range routepath.Split(path) {
		switch {
		case strings.HasPrefix(seg, "*"):
			// Catch-all consumes the rest of the path.
			return current.addCatchAllChild(seg[1:])
		case strings.HasPrefix(seg, ":"):
			current = current.addParamChild(seg[1:])
		default:
			current = current.addChild(seg)
		}
	}
	return current
}

// match finds a route for the given path segments. Static children are
// tried first, then the parameter child with backtracking, then catch-all.
func (n *node) match(segments []string, params map[string]string) (*Route, bool) {
	if len(segments) == 0 {
		if n.route != nil {
			return n.route, true
		}
		return nil, false
	}

	segment := segments[0]
	remaining := segments[1:]

	if child := n.findChild(segment); child != nil {
		if route, ok := child.match(remaining, params); ok {
			return route, true
		}
	}

	if n.paramChild != nil {
		params[n.paramChild.paramName] = segment
		if route, ok := n.paramChild.match(remaining, params); ok {
			return route, true
		}
		// Backtrack on failure
		delete(params, n.paramChild.paramName)
	}

	if n.catchAllChild != nil && n.catchAllChild.route != nil {
		params[n.catchAllChild.paramName] = strings.Join(segments, "/")
		return n.catchAllChild.route, true
	}

	return nil, false
}
