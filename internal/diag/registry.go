package diag

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Router Definition Errors (G001-G099)
	// ============================================

	"G002": {
		Category: CategoryConfig,
		Message:  "Duplicate route helper name",
		Detail:   "Two routes resolved to the same helper name and action. Helper names must be unique per action within one route table.",
		DocURL:   "https://glint.dev/docs/errors/G002",
	},
	"G003": {
		Category: CategoryConfig,
		Message:  "Invalid route path",
		Detail:   "The declared path failed canonicalization and cannot be registered.",
		DocURL:   "https://glint.dev/docs/errors/G003",
	},
	"G004": {
		Category: CategoryConfig,
		Message:  "Route table already built",
		Detail:   "Routes cannot be added after Build() has sealed the table.",
		DocURL:   "https://glint.dev/docs/errors/G004",
	},

	// ============================================
	// Dispatch Errors (G100-G199)
	// ============================================

	"G101": {
		Category: CategoryDispatch,
		Message:  "Unknown helper name",
		Detail:   "No registered route exposes the requested helper name.",
		DocURL:   "https://glint.dev/docs/errors/G101",
	},
	"G102": {
		Category: CategoryDispatch,
		Message:  "Missing path parameter",
		Detail:   "A route pattern parameter was not supplied when building a path.",
		DocURL:   "https://glint.dev/docs/errors/G102",
	},
}
