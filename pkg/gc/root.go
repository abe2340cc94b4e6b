package gc

// Root is a long-lived handle registered with a Heap. While any clone of a
// Root exists, the referent is treated as reachable independent of any
// Scope; the registration is released when the last clone calls Release.
type Root[T any] struct {
	heap *Heap
	id   uint64
}

// RootFromLocal registers l's referent with h and returns a Root owning
// one reference to that registration.
func RootFromLocal[T any](h *Heap, l Local[T]) Root[T] {
	id := h.registerRoot(l.ptr)
	return Root[T]{heap: h, id: id}
}

// AsLocal produces a Local view of r's referent inside the currently open
// scope of r's heap. The Local is only valid while that scope remains
// open, same as any other Local.
func (r Root[T]) AsLocal() Local[T] {
	ptr := r.heap.rootPtr(r.id).(*T)
	r.heap.trackLocal()
	return Local[T]{ptr: ptr}
}

// Get returns the mutable pointer to the referent directly, without
// pushing a Local bookkeeping entry. Useful for long-lived code (e.g. the
// error subsystem) that already holds the Root for its whole lifetime.
func (r Root[T]) Get() *T {
	return r.heap.rootPtr(r.id).(*T)
}

// Clone increments the registration's refcount and returns a handle to the
// same registration. Mirrors the original's "cloneable reference-count
// style" Root.
func (r Root[T]) Clone() Root[T] {
	r.heap.incref(r.id)
	return r
}

// Release decrements the registration's refcount, freeing it at zero.
// Releasing an already-freed Root is a logged no-op rather than a panic,
// since double-release is a bookkeeping bug, not a memory-safety one here.
func (r Root[T]) Release() {
	r.heap.release(r.id)
}

// Heap returns the Heap a Root is registered with.
func (r Root[T]) Heap() *Heap { return r.heap }
