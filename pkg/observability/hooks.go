// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register
// hooks at startup to receive events about pipeline stages, cache
// operations, and template registry changes.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Pipeline().OnLayoutStart(ctx, templateID, imageCount)
//	// ... compute layout ...
//	observability.Pipeline().OnLayoutComplete(ctx, templateID, pageCount, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from the layout pipeline.
type PipelineHooks interface {
	// Scan events
	OnScanStart(ctx context.Context, source string)
	OnScanComplete(ctx context.Context, source string, imageCount int, duration time.Duration, err error)

	// Layout events
	OnLayoutStart(ctx context.Context, templateID string, imageCount int)
	OnLayoutComplete(ctx context.Context, templateID string, pageCount int, duration time.Duration, err error)

	// Render events
	OnRenderStart(ctx context.Context, format string, pageCount int)
	OnRenderComplete(ctx context.Context, format string, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// Registry Hooks
// =============================================================================

// RegistryHooks receives events from the template registry.
type RegistryHooks interface {
	// OnTemplateRegistered records an upsert.
	OnTemplateRegistered(ctx context.Context, id string)

	// OnTemplateRemoved records a removal.
	OnTemplateRemoved(ctx context.Context, id string)
}

// =============================================================================
// No-op Defaults
// =============================================================================

type noopPipelineHooks struct{}

func (noopPipelineHooks) OnScanStart(context.Context, string)                                 {}
func (noopPipelineHooks) OnScanComplete(context.Context, string, int, time.Duration, error)   {}
func (noopPipelineHooks) OnLayoutStart(context.Context, string, int)                          {}
func (noopPipelineHooks) OnLayoutComplete(context.Context, string, int, time.Duration, error) {}
func (noopPipelineHooks) OnRenderStart(context.Context, string, int)                          {}
func (noopPipelineHooks) OnRenderComplete(context.Context, string, time.Duration, error)      {}

type noopCacheHooks struct{}

func (noopCacheHooks) OnCacheHit(context.Context, string)      {}
func (noopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (noopCacheHooks) OnCacheSet(context.Context, string, int) {}

type noopRegistryHooks struct{}

func (noopRegistryHooks) OnTemplateRegistered(context.Context, string) {}
func (noopRegistryHooks) OnTemplateRemoved(context.Context, string)    {}

// =============================================================================
// Registration
// =============================================================================

var (
	mu            sync.RWMutex
	pipelineHooks PipelineHooks = noopPipelineHooks{}
	cacheHooks    CacheHooks    = noopCacheHooks{}
	registryHooks RegistryHooks = noopRegistryHooks{}
)

// SetPipelineHooks registers pipeline instrumentation. Pass nil to restore
// the no-op default.
func SetPipelineHooks(h PipelineHooks) {
	mu.Lock()
	defer mu.Unlock()
	if h == nil {
		pipelineHooks = noopPipelineHooks{}
		return
	}
	pipelineHooks = h
}

// SetCacheHooks registers cache instrumentation. Pass nil to restore the
// no-op default.
func SetCacheHooks(h CacheHooks) {
	mu.Lock()
	defer mu.Unlock()
	if h == nil {
		cacheHooks = noopCacheHooks{}
		return
	}
	cacheHooks = h
}

// SetRegistryHooks registers template registry instrumentation. Pass nil
// to restore the no-op default.
func SetRegistryHooks(h RegistryHooks) {
	mu.Lock()
	defer mu.Unlock()
	if h == nil {
		registryHooks = noopRegistryHooks{}
		return
	}
	registryHooks = h
}

// Pipeline returns the current pipeline hooks.
func Pipeline() PipelineHooks {
	mu.RLock()
	defer mu.RUnlock()
	return pipelineHooks
}

// Cache returns the current cache hooks.
func Cache() CacheHooks {
	mu.RLock()
	defer mu.RUnlock()
	return cacheHooks
}

// Registry returns the current registry hooks.
func Registry() RegistryHooks {
	mu.RLock()
	defer mu.RUnlock()
	return registryHooks
}
