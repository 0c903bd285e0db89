package hooks

// HookType represents the type of hooks.
type HookType string

// Supported hook types.
const (
	PreAcquire  HookType = "pre-acquire"
	PostAcquire HookType = "post-acquire"
	PostNatives HookType = "post-natives"
)

// Hook represents a hook script with its type and content.
type Hook struct {
	Type    HookType
	Content string
}

// HookContext contains information passed to hooks.
type HookContext struct {
	VersionID  string
	MainClass  string
	Classpath  string
	NativesDir string
	Vars       map[string]interface{}
}

// HookManager defines the interface for managing hooks.
type HookManager interface {
	// Execute runs the specified hook type with the given context
	Execute(hookType HookType, ctx HookContext) error

	// AddHook adds a new hooks
	AddHook(hook Hook) error

	// RemoveHook removes a hook of the specified type
	RemoveHook(hookType HookType) error

	// HasHook checks if a hook of the specified type exists
	HasHook(hookType HookType) bool
}
