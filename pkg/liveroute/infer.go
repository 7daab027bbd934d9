package liveroute

import (
	"fmt"
	"strings"

	"github.com/glint-dev/glint/pkg/view"
)

// DefaultHelperName is the helper name implied when a route declares no
// action.
const DefaultHelperName = "live"

// InferenceError is the definition-time failure raised when an action is
// declared but no helper name can be derived from the view reference.
type InferenceError struct {
	View   view.Ref
	Action Action
}

func (e *InferenceError) Error() string {
	return fmt.Sprintf(
		"cannot infer helper name for view %q with action %q: no segment ends with %q; "+
			"rename the view to follow the *%s convention or pass an explicit name with WithHelperName",
		e.View, e.Action, view.LiveSuffix, view.LiveSuffix)
}

// InferHelperName derives the helper name for a (view, action) pair.
//
// With no action the result is the implied default name and the action
// stays absent. With an action, leading segments of the view reference
// are discarded until one carries the "Live" suffix; every segment from
// that point on is suffix-stripped, underscored, and joined:
//
//	InferHelperName("Demo.Web.ArticleLive.Index", "edit")
//	// "article_index", "edit"
//
// A view with no qualifying segment fails with *InferenceError. The
// function is pure: identical inputs always yield identical results.
func InferHelperName(ref view.Ref, action Action) (string, Action, error) {
	if action == NoAction {
		return DefaultHelperName, NoAction, nil
	}

	segments := ref.Segments()
	start := -1
	for i, seg := range segments {
		if view.IsLive(seg) {
			start = i
			break
		}
	}
	if start < 0 {
		return "", action, &InferenceError{View: ref, Action: action}
	}

	tokens := make([]string, 0, len(segments)-start)
	for _, seg := range segments[start:] {
		tokens = append(tokens, view.Underscore(view.StripLive(seg)))
	}
	return strings.Join(tokens, "_"), action, nil
}
