// Package observability provides hooks for instrumenting the editor.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register hooks
// at startup to receive events about saves, loads and edges lost on save.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetEditorHooks(&myEditorHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Editor().OnSave(ctx, path, nodes, edges, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// EditorHooks receives events from an editor session.
type EditorHooks interface {
	// OnSave records a save attempt and how much of the graph was written.
	OnSave(ctx context.Context, path string, nodes, edges int, duration time.Duration, err error)

	// OnLoad records a load attempt and how much of the graph was read.
	OnLoad(ctx context.Context, path string, nodes, edges int, duration time.Duration, err error)

	// OnEdgeDropped records an edge left out of a save because its
	// endpoints could not be resolved.
	OnEdgeDropped(ctx context.Context, path, edgeID string)
}

// NoopEditorHooks is a no-op implementation of EditorHooks.
type NoopEditorHooks struct{}

func (NoopEditorHooks) OnSave(context.Context, string, int, int, time.Duration, error) {}
func (NoopEditorHooks) OnLoad(context.Context, string, int, int, time.Duration, error) {}
func (NoopEditorHooks) OnEdgeDropped(context.Context, string, string)                   {}

var (
	editorHooks EditorHooks = NoopEditorHooks{}
	hooksMu     sync.RWMutex
)

// SetEditorHooks registers custom editor hooks.
// This should be called once at application startup before any session is created.
func SetEditorHooks(h EditorHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		editorHooks = h
	}
}

// Editor returns the registered editor hooks.
func Editor() EditorHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return editorHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	editorHooks = NoopEditorHooks{}
}
