// Package store implements the two interchangeable property-storage
// backends (SPEC_FULL.md §4.B): a hash store and an array store, behind a
// common five-operation contract. The object model (package object)
// dispatches to whichever backend an object was constructed with through
// a tagged union, never through a Go interface type switch at the call
// site — see TaggedStore below — so a new backend is added by extending
// the Kind enum and the dispatch table, exactly as SPEC_FULL.md §9
// prescribes.
package store

import "github.com/nooga/jsobjectcore/pkg/jsvalue"

// Store is the uniform contract both backends implement.
type Store interface {
	// Add inserts a new entry for name. Callers (the object model) must
	// ensure name is not already present; Add does not check.
	Add(name jsvalue.Name, desc jsvalue.Descriptor)

	// Remove deletes the entry for name unconditionally, returning
	// whether it existed beforehand. Callers are responsible for the
	// configurable check before calling Remove.
	Remove(name jsvalue.Name) bool

	// GetValue returns the descriptor stored for name, if any.
	GetValue(name jsvalue.Name) (jsvalue.Descriptor, bool)

	// Replace overwrites the entry for name in place, preserving its
	// enumeration position, returning whether it existed beforehand.
	Replace(name jsvalue.Name, desc jsvalue.Descriptor) bool

	// GetKey exposes the opaque, offset-indexed iteration surface
	// described in SPEC_FULL.md §4.B.
	GetKey(offset int) Key
}

// KeyStatus tags the three outcomes GetKey can report for a given offset.
type KeyStatus uint8

const (
	// KeyFound means offset names a live entry.
	KeyFound KeyStatus = iota
	// KeyMissing means offset is a tombstone; the caller should advance.
	KeyMissing
	// KeyEnd means no more offsets follow.
	KeyEnd
)

// Key is the result of a GetKey call.
type Key struct {
	Status     KeyStatus
	Name       jsvalue.Name
	Enumerable bool
}

// Kind tags which concrete backend a TaggedStore wraps.
type Kind uint8

const (
	KindHash Kind = iota
	KindArray
)

// TaggedStore is the tagged-pointer dispatch the object model embeds
// directly in JsObject, grounded on the original object model's StorePtr
// (tag + raw address, dispatched through a delegate! macro). Go cannot
// union two pointer types into one machine word without unsafe, and
// unsafe would not buy anything here (no ABI boundary, no relocating
// collector to dodge), so TaggedStore is a small struct with an explicit
// Kind and two nil-able fields instead — still a tagged union, just a
// safe one. Exactly one of Hash/Array is non-nil, matching Kind.
type TaggedStore struct {
	Kind  Kind
	Hash  *HashStore
	Array *ArrayStore
}

// NewHashTaggedStore wraps a fresh HashStore.
func NewHashTaggedStore() TaggedStore {
	return TaggedStore{Kind: KindHash, Hash: NewHashStore()}
}

// NewArrayTaggedStore wraps a fresh ArrayStore whose "length" property is
// keyed by lengthName.
func NewArrayTaggedStore(lengthName jsvalue.Name) TaggedStore {
	return TaggedStore{Kind: KindArray, Array: NewArrayStore(lengthName)}
}

func (t TaggedStore) backend() Store {
	switch t.Kind {
	case KindHash:
		return t.Hash
	case KindArray:
		return t.Array
	default:
		panic("store: TaggedStore has neither Hash nor Array backend set")
	}
}

func (t TaggedStore) Add(name jsvalue.Name, desc jsvalue.Descriptor) {
	t.backend().Add(name, desc)
}

func (t TaggedStore) Remove(name jsvalue.Name) bool {
	return t.backend().Remove(name)
}

func (t TaggedStore) GetValue(name jsvalue.Name) (jsvalue.Descriptor, bool) {
	return t.backend().GetValue(name)
}

func (t TaggedStore) Replace(name jsvalue.Name, desc jsvalue.Descriptor) bool {
	return t.backend().Replace(name, desc)
}

func (t TaggedStore) GetKey(offset int) Key {
	return t.backend().GetKey(offset)
}
