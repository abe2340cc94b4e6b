package jsvalue

import (
	"strconv"
	"sync"
)

// Name is a 32-bit interned identifier. A Name can either carry a
// pre-parsed non-negative array index (the top bit is set, the remaining
// 31 bits hold the index) or an id handed out by an Interner for an
// arbitrary string. This mirrors the split the original object model
// makes between Name::from_index and interned identifiers, so that array
// index checks never have to touch the interner at all.
type Name uint32

const indexFlag Name = 1 << 31

// MaxIndex is the largest array index a Name can carry inline. ES5 array
// indices are uint32 values strictly less than 2^32-1; we additionally cap
// at 2^31-1 to leave the tag bit free.
const MaxIndex = uint32(indexFlag) - 1

// NameFromIndex returns a Name that carries index inline, with no interner
// involvement. Panics if index exceeds MaxIndex.
func NameFromIndex(index uint32) Name {
	if index > MaxIndex {
		panic("jsvalue: array index out of range for inline Name encoding")
	}
	return Name(index) | indexFlag
}

// Index returns the inline array index carried by n, if any.
func (n Name) Index() (uint32, bool) {
	if n&indexFlag != 0 {
		return uint32(n &^ indexFlag), true
	}
	return 0, false
}

// IsIndex reports whether n carries an inline array index.
func (n Name) IsIndex() bool {
	return n&indexFlag != 0
}

// Interner assigns dense ids to strings and recovers strings from ids.
// Guarded by a RWMutex: lookups are far more common than new interning, the
// same tradeoff the object model's shape-transition tables make.
type Interner struct {
	mu      sync.RWMutex
	strings []string
	ids     map[string]Name
}

// NewInterner creates an empty interner.
func NewInterner() *Interner {
	return &Interner{ids: make(map[string]Name)}
}

// Intern returns the Name for s, assigning a fresh one if s has not been
// seen before. If s parses as a canonical array index (no leading zeros,
// strictly less than 2^32-1) no greater than MaxIndex, the returned Name
// carries the index inline instead of allocating an interner slot. A
// canonical index above MaxIndex is interned as an ordinary string name,
// so IsIndex reports false for it.
func (in *Interner) Intern(s string) Name {
	if idx, ok := parseCanonicalIndex(s); ok && idx <= MaxIndex {
		return NameFromIndex(idx)
	}

	in.mu.RLock()
	if n, ok := in.ids[s]; ok {
		in.mu.RUnlock()
		return n
	}
	in.mu.RUnlock()

	in.mu.Lock()
	defer in.mu.Unlock()
	if n, ok := in.ids[s]; ok {
		return n
	}
	n := Name(len(in.strings))
	in.strings = append(in.strings, s)
	in.ids[s] = n
	return n
}

// Get recovers the string an interned (non-index) Name stands for. For an
// index-carrying Name it returns the canonical decimal string for the
// index, matching ToString(ToUint32(name)).
func (in *Interner) Get(n Name) string {
	if idx, ok := n.Index(); ok {
		return strconv.FormatUint(uint64(idx), 10)
	}
	in.mu.RLock()
	defer in.mu.RUnlock()
	if int(n) < 0 || int(n) >= len(in.strings) {
		return ""
	}
	return in.strings[n]
}

// parseCanonicalIndex parses s as ToString(ToUint32(s)) would produce it:
// digits only, no leading zeros unless the whole string is "0", and the
// value must not equal 2^32-1 (which is never a valid array index).
func parseCanonicalIndex(s string) (uint32, bool) {
	if s == "" {
		return 0, false
	}
	if s == "0" {
		return 0, true
	}
	if s[0] == '0' {
		return 0, false
	}
	var v uint64
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		v = v*10 + uint64(c-'0')
		if v > 0xFFFFFFFF {
			return 0, false
		}
	}
	if v == 0xFFFFFFFF {
		return 0, false
	}
	return uint32(v), true
}
