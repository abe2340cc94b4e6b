// Package gc implements the managed-pointer and handle layer: Local and
// Root handles, their array-shaped counterparts, and the local-handle
// scope that bounds a Local's lifetime.
//
// Go's own collector already keeps anything reachable alive and never
// needs cooperative rooting, so this package does not exist to prevent
// collection. It exists so the rest of the core — pkg/store, pkg/object,
// pkg/jserr — is written against the same Local/Root contract the
// original object model is written against (see SPEC_FULL.md §4.A): cheap
// copyable short-lived handles inside a scope, promotable to long-lived
// reference-counted roots that cross scope boundaries. That contract is
// worth keeping even without a moving collector underneath it, because it
// is what every call site in the spec's algorithms is written in terms of.
package gc

import (
	"sync"
	"sync/atomic"

	"github.com/zeebo/errs"
	"go.uber.org/zap"
)

// ErrClass is the error class for internal (non-JS-visible) gc failures.
// No function in this package currently returns an ErrClass error: handle
// misuse (no open scope, use of a released Root, out-of-order scope close)
// panics instead.
var ErrClass = errs.Class("gc")

// Heap owns the stack of open scopes and the registry of live roots. A
// Heap is not safe for concurrent use by multiple goroutines, mirroring
// the single-threaded mutator assumption in SPEC_FULL.md §5.
type Heap struct {
	log *zap.Logger

	scopes []*Scope

	mu       sync.Mutex
	roots    map[uint64]*rootEntry
	nextRoot uint64

	localCount int64
}

type rootEntry struct {
	ptr      any
	refcount int
}

// Option configures a Heap at construction time.
type Option func(*Heap)

// WithLogger attaches a zap logger used for debug-level diagnostics; the
// only event logged is a double release of a Root. A nil logger (the default) disables logging
// entirely; logging never changes behavior.
func WithLogger(log *zap.Logger) Option {
	return func(h *Heap) { h.log = log }
}

// NewHeap creates an empty heap with no open scopes and no live roots.
func NewHeap(opts ...Option) *Heap {
	h := &Heap{roots: make(map[uint64]*rootEntry)}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Stats summarizes a Heap's live bookkeeping, useful for diagnosing
// forgotten Root.Release calls.
type Stats struct {
	OpenScopes int
	LiveLocals int64
	LiveRoots  int
}

func (h *Heap) Stats() Stats {
	h.mu.Lock()
	defer h.mu.Unlock()
	return Stats{
		OpenScopes: len(h.scopes),
		LiveLocals: h.localCount,
		LiveRoots:  len(h.roots),
	}
}

func (h *Heap) logDebug(msg string, fields ...zap.Field) {
	if h.log != nil {
		h.log.Debug(msg, fields...)
	}
}

func (h *Heap) trackLocal() {
	atomic.AddInt64(&h.localCount, 1)
}

func (h *Heap) untrackLocalsTo(count int64) {
	atomic.StoreInt64(&h.localCount, count)
}

func (h *Heap) registerRoot(ptr any) uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.nextRoot++
	id := h.nextRoot
	h.roots[id] = &rootEntry{ptr: ptr, refcount: 1}
	return id
}

func (h *Heap) rootPtr(id uint64) any {
	h.mu.Lock()
	defer h.mu.Unlock()
	e, ok := h.roots[id]
	if !ok {
		panic("gc: use of a Root after its last Release")
	}
	return e.ptr
}

func (h *Heap) incref(id uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	e, ok := h.roots[id]
	if !ok {
		panic("gc: clone of a Root after its last Release")
	}
	e.refcount++
}

func (h *Heap) release(id uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	e, ok := h.roots[id]
	if !ok {
		h.logDebug("gc: double release of root", zap.Uint64("id", id))
		return
	}
	e.refcount--
	if e.refcount <= 0 {
		delete(h.roots, id)
	}
}
