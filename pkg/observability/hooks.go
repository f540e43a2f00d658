// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers register hooks at startup
// to receive events about draws, history store operations, and HTTP requests.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by commands at startup (the serve command installs
// the logging hooks below), never by the circle, history or server
// packages, which only emit events.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetDrawHooks(&myDrawHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Draw().OnDrawStart(ctx, len(people), useGroups)
//	// ... search ...
//	observability.Draw().OnDrawComplete(ctx, len(people), useGroups, attempts, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Draw Hooks
// =============================================================================

// DrawHooks receives events from the gift circle search.
type DrawHooks interface {
	// OnDrawStart records the start of a search over participants people.
	OnDrawStart(ctx context.Context, participants int, useGroups bool)

	// OnDrawComplete records the end of a search. attempts is zero when the
	// input was rejected before the first attempt.
	OnDrawComplete(ctx context.Context, participants int, useGroups bool, attempts int, duration time.Duration, err error)
}

// =============================================================================
// Store Hooks
// =============================================================================

// StoreHooks receives events from the draw history store.
type StoreHooks interface {
	// OnQuery records a store operation such as "record", "list" or "get".
	OnQuery(ctx context.Context, op string, duration time.Duration, err error)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from the HTTP server.
type HTTPHooks interface {
	// OnRequest records an incoming HTTP request.
	OnRequest(ctx context.Context, method, path string)

	// OnResponse records the response written for a request.
	OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopDrawHooks is a no-op implementation of DrawHooks.
type NoopDrawHooks struct{}

func (NoopDrawHooks) OnDrawStart(context.Context, int, bool) {}
func (NoopDrawHooks) OnDrawComplete(context.Context, int, bool, int, time.Duration, error) {
}

// NoopStoreHooks is a no-op implementation of StoreHooks.
type NoopStoreHooks struct{}

func (NoopStoreHooks) OnQuery(context.Context, string, time.Duration, error) {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                    {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	drawHooks  DrawHooks  = NoopDrawHooks{}
	storeHooks StoreHooks = NoopStoreHooks{}
	httpHooks  HTTPHooks  = NoopHTTPHooks{}
	hooksMu    sync.RWMutex
)

// SetDrawHooks registers custom draw hooks.
// This should be called once at application startup before any draw.
func SetDrawHooks(h DrawHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		drawHooks = h
	}
}

// SetStoreHooks registers custom store hooks.
// This should be called once at application startup before any store operations.
func SetStoreHooks(h StoreHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		storeHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
// This should be called once at application startup before serving.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Draw returns the registered draw hooks.
func Draw() DrawHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return drawHooks
}

// Store returns the registered store hooks.
func Store() StoreHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return storeHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	drawHooks = NoopDrawHooks{}
	storeHooks = NoopStoreHooks{}
	httpHooks = NoopHTTPHooks{}
}

// =============================================================================
// Logging Hooks
// =============================================================================

// Logger is the subset of a structured logger used by LogDrawHooks.
// *log.Logger from charmbracelet/log satisfies it.
type Logger interface {
	Debug(msg any, keyvals ...any)
	Warn(msg any, keyvals ...any)
}

// LogDrawHooks reports draw events through a structured logger.
type LogDrawHooks struct {
	Logger Logger
}

// OnDrawStart logs the start of a search at debug level.
func (h LogDrawHooks) OnDrawStart(_ context.Context, participants int, useGroups bool) {
	h.Logger.Debug("drawing gift circle", "participants", participants, "groups", useGroups)
}

// OnDrawComplete logs failed searches as warnings and successful ones at debug level.
func (h LogDrawHooks) OnDrawComplete(_ context.Context, participants int, useGroups bool, attempts int, duration time.Duration, err error) {
	if err != nil {
		h.Logger.Warn("draw failed", "participants", participants, "groups", useGroups, "attempts", attempts, "err", err)
		return
	}
	h.Logger.Debug("draw complete", "participants", participants, "groups", useGroups, "attempts", attempts, "duration", duration)
}

// LogStoreHooks reports history store operations through a structured logger.
type LogStoreHooks struct {
	Logger Logger
}

// OnQuery logs failed operations as warnings and the rest at debug level.
func (h LogStoreHooks) OnQuery(_ context.Context, op string, duration time.Duration, err error) {
	if err != nil {
		h.Logger.Warn("history query failed", "op", op, "duration", duration, "err", err)
		return
	}
	h.Logger.Debug("history query", "op", op, "duration", duration)
}

// LogHTTPHooks traces requests at debug level. The server already logs one
// summary line per request; these lines mark when handling starts and ends.
type LogHTTPHooks struct {
	Logger Logger
}

// OnRequest logs the start of a request.
func (h LogHTTPHooks) OnRequest(_ context.Context, method, path string) {
	h.Logger.Debug("request started", "method", method, "path", path)
}

// OnResponse logs the end of a request.
func (h LogHTTPHooks) OnResponse(_ context.Context, method, path string, statusCode int, duration time.Duration) {
	h.Logger.Debug("request finished", "method", method, "path", path, "status", statusCode, "duration", duration)
}
