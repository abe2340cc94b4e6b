package store

import "github.com/nooga/jsobjectcore/pkg/jsvalue"

// HashStore is the general-purpose, insertion-order-preserving backend.
// Entries live in a flat, append-only slice (entries), so GetKey's offset
// parameter is simply an index into that slice and enumeration order
// falls out of insertion order for free, matching SPEC_FULL.md §4.B's
// ordering invariant. buckets maps a Name's hash to the head of a chain
// threaded through Entry.Next; removal clears FlagValid rather than
// unlinking, so offsets already handed out by GetKey never shift.
//
// Grounded on the original model's Hash store: chained buckets keyed on
// Name, entries addressed by a stable index used as the public key.
type HashStore struct {
	buckets []int32 // bucket head -> index into entries, -1 for empty
	entries []Entry
	live    int
}

// NewHashStore returns an empty HashStore.
func NewHashStore() *HashStore {
	return &HashStore{buckets: newBuckets(8)}
}

func newBuckets(n int) []int32 {
	b := make([]int32, n)
	for i := range b {
		b[i] = -1
	}
	return b
}

func (s *HashStore) bucketFor(name jsvalue.Name) int {
	return int(uint32(name) % uint32(len(s.buckets)))
}

func (s *HashStore) findIndex(name jsvalue.Name) int {
	idx := s.buckets[s.bucketFor(name)]
	for idx != -1 {
		e := &s.entries[idx]
		if e.isValid() && e.Name == name {
			return int(idx)
		}
		idx = e.Next
	}
	return -1
}

// Add grounds store.Store.Add: names are assumed not already present.
func (s *HashStore) Add(name jsvalue.Name, desc jsvalue.Descriptor) {
	if s.live >= len(s.buckets) {
		s.rehash(len(s.buckets) * 2)
	}
	b := s.bucketFor(name)
	entry := EntryFromDescriptor(name, desc)
	entry.Next = s.buckets[b]
	s.entries = append(s.entries, entry)
	s.buckets[b] = int32(len(s.entries) - 1)
	s.live++
}

// Remove tombstones the entry for name by clearing FlagValid, preserving
// the chain and every previously observed GetKey offset.
func (s *HashStore) Remove(name jsvalue.Name) bool {
	idx := s.findIndex(name)
	if idx == -1 {
		return false
	}
	s.entries[idx].Flags &^= FlagValid
	s.live--
	return true
}

func (s *HashStore) GetValue(name jsvalue.Name) (jsvalue.Descriptor, bool) {
	idx := s.findIndex(name)
	if idx == -1 {
		return jsvalue.Descriptor{}, false
	}
	return s.entries[idx].AsDescriptor(), true
}

func (s *HashStore) Replace(name jsvalue.Name, desc jsvalue.Descriptor) bool {
	idx := s.findIndex(name)
	if idx == -1 {
		return false
	}
	s.entries[idx].MergeDescriptor(desc)
	return true
}

// GetKey exposes entries in insertion order; tombstoned slots report
// KeyMissing rather than being skipped, so callers (object enumeration)
// control their own skip-and-advance loop.
func (s *HashStore) GetKey(offset int) Key {
	if offset < 0 || offset >= len(s.entries) {
		return Key{Status: KeyEnd}
	}
	e := s.entries[offset]
	if !e.isValid() {
		return Key{Status: KeyMissing}
	}
	return Key{Status: KeyFound, Name: e.Name, Enumerable: e.Flags&FlagEnumerable != 0}
}

// rehash grows the bucket array and relinks every live-or-tombstoned
// entry (tombstones are relinked too, since their slice position, and
// therefore their GetKey offset, must not move).
func (s *HashStore) rehash(newSize int) {
	s.buckets = newBuckets(newSize)
	for i := range s.entries {
		e := &s.entries[i]
		b := s.bucketFor(e.Name)
		e.Next = s.buckets[b]
		s.buckets[b] = int32(i)
	}
}
