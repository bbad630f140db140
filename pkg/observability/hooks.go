// Package observability provides hooks for metrics and logging of game events.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers can register
// hooks at startup to receive events about engine activity and play
// sessions.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Engine hooks take no context: every engine operation runs to completion
// synchronously and never blocks. Session hooks belong to the driver and
// receive the driver's context.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetEngineHooks(&myEngineHooks{})
//	    observability.SetSessionHooks(&mySessionHooks{})
//	    // ... run application
//	}
//
// The engine calls hooks to emit events:
//
//	observability.Engine().OnLock(color, lines, points)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Engine Hooks
// =============================================================================

// EngineHooks receives events from the game engine.
type EngineHooks interface {
	// OnSpawn records a new active piece. color is the piece's tag,
	// x and y its origin.
	OnSpawn(color uint8, x, y int)

	// OnLock records a piece locking onto the board together with the
	// outcome of the line clear that followed it.
	OnLock(color uint8, linesCleared, points int)

	// OnGameOver records the end of a game.
	OnGameOver(score, clearedLines int)
}

// =============================================================================
// Session Hooks
// =============================================================================

// SessionHooks receives events from the driver running a game session.
type SessionHooks interface {
	// OnSessionStart records the start of a session.
	OnSessionStart(ctx context.Context, id string, width, height int)

	// OnSessionEnd records the end of a session. gameOver is false when the
	// player quit before the board filled.
	OnSessionEnd(ctx context.Context, id string, score, clearedLines int, gameOver bool, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopEngineHooks is a no-op implementation of EngineHooks.
type NoopEngineHooks struct{}

func (NoopEngineHooks) OnSpawn(uint8, int, int) {}
func (NoopEngineHooks) OnLock(uint8, int, int)  {}
func (NoopEngineHooks) OnGameOver(int, int)     {}

// NoopSessionHooks is a no-op implementation of SessionHooks.
type NoopSessionHooks struct{}

func (NoopSessionHooks) OnSessionStart(context.Context, string, int, int) {}
func (NoopSessionHooks) OnSessionEnd(context.Context, string, int, int, bool, time.Duration) {
}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	engineHooks  EngineHooks  = NoopEngineHooks{}
	sessionHooks SessionHooks = NoopSessionHooks{}
	hooksMu      sync.RWMutex
)

// SetEngineHooks registers custom engine hooks.
// This should be called once at application startup before any engine is created.
func SetEngineHooks(h EngineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		engineHooks = h
	}
}

// SetSessionHooks registers custom session hooks.
// This should be called once at application startup before any session starts.
func SetSessionHooks(h SessionHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		sessionHooks = h
	}
}

// Engine returns the registered engine hooks.
func Engine() EngineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return engineHooks
}

// Session returns the registered session hooks.
func Session() SessionHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return sessionHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	engineHooks = NoopEngineHooks{}
	sessionHooks = NoopSessionHooks{}
}
