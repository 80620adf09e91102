// Package hooks runs optional Tengo scripts around corpus lifecycle events.
// Scripts live in the hooks directory under the data dir, one file per event
// (e.g. post-download.tengo), and are entirely optional.
package hooks

// HookType represents a corpus lifecycle event.
type HookType string

// Supported hook types.
const (
	PreDownload  HookType = "pre-download"
	PostDownload HookType = "post-download"
	PreRemove    HookType = "pre-remove"
	PostRemove   HookType = "post-remove"
)

// Hook is a script bound to a lifecycle event.
type Hook struct {
	Type    HookType
	Content string
}

// HookContext carries the corpus details passed into a script.
type HookContext struct {
	CorpusName    string
	CorpusVersion string
	CorpusPath    string
	DataDir       string
	Vars          map[string]interface{}
}

// Manager defines the interface for managing hooks.
type Manager interface {
	// Execute runs the script for the given event, if any.
	Execute(hookType HookType, ctx HookContext) error

	// AddHook registers a script for its event.
	AddHook(hook Hook) error

	// RemoveHook unregisters the script for an event.
	RemoveHook(hookType HookType) error

	// HasHook reports whether a script is registered for an event.
	HasHook(hookType HookType) bool
}
