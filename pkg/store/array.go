package store

import "github.com/nooga/jsobjectcore/pkg/jsvalue"

// ArrayStore is the backend used by Array exotic objects: a dense region
// indexed directly by array index, backed by an overflow HashStore for
// everything else (non-index names, and indices too sparse to justify
// growing the dense region). Grounded on the original model's Array
// store, which keeps a contiguous run of entries plus a fallback hash for
// the rest, and on the length-truncation algorithm of ES5 15.4.5.1 step
// 3.l, which this package — not the object model above it — implements,
// per SPEC_FULL.md's resolution of that Open Question.
type ArrayStore struct {
	lengthName jsvalue.Name
	length     uint32
	dense      []Entry // dense[i] holds the entry for array index i, if valid
	overflow   *HashStore
}

// NewArrayStore returns an empty ArrayStore whose length property is
// keyed by lengthName.
func NewArrayStore(lengthName jsvalue.Name) *ArrayStore {
	return &ArrayStore{lengthName: lengthName, overflow: NewHashStore()}
}

// shouldGrowDenseFor decides whether index idx is close enough to the
// current dense region to extend it in place, rather than spilling into
// overflow. A generous but bounded slack (double the current size, plus a
// constant) avoids allocating a huge dense array for one stray high
// index while still keeping small, mostly-contiguous arrays fast.
func (s *ArrayStore) shouldGrowDenseFor(idx uint32) bool {
	return idx <= uint32(len(s.dense))*2+8
}

func (s *ArrayStore) growDenseTo(n int) {
	if n <= len(s.dense) {
		return
	}
	next := make([]Entry, n)
	copy(next, s.dense)
	s.dense = next
}

func (s *ArrayStore) Add(name jsvalue.Name, desc jsvalue.Descriptor) {
	if name == s.lengthName {
		entry := EntryFromDescriptor(name, desc)
		if n, ok := jsvalue.ToNumber(desc.GetValue()); ok {
			s.length = jsvalue.ToUint32(n)
		}
		s.overflow.Add(name, entry.AsDescriptor())
		return
	}
	idx, isIndex := name.Index()
	if !isIndex {
		s.overflow.Add(name, desc)
		return
	}
	if s.shouldGrowDenseFor(idx) {
		s.growDenseTo(int(idx) + 1)
		s.dense[idx] = EntryFromDescriptor(name, desc)
	} else {
		s.overflow.Add(name, desc)
	}
	if idx >= s.length {
		s.length = idx + 1
		v := jsvalue.NewNumber(float64(s.length))
		s.overflow.Replace(s.lengthName, jsvalue.Descriptor{Value: &v})
	}
}

func (s *ArrayStore) Remove(name jsvalue.Name) bool {
	if idx, isIndex := name.Index(); isIndex {
		if int(idx) < len(s.dense) && s.dense[idx].isValid() {
			s.dense[idx] = Entry{}
			return true
		}
		return s.overflow.Remove(name)
	}
	return s.overflow.Remove(name)
}

func (s *ArrayStore) GetValue(name jsvalue.Name) (jsvalue.Descriptor, bool) {
	if name == s.lengthName {
		return s.overflow.GetValue(name)
	}
	if idx, isIndex := name.Index(); isIndex {
		if int(idx) < len(s.dense) && s.dense[idx].isValid() {
			return s.dense[idx].AsDescriptor(), true
		}
		return s.overflow.GetValue(name)
	}
	return s.overflow.GetValue(name)
}

func (s *ArrayStore) Replace(name jsvalue.Name, desc jsvalue.Descriptor) bool {
	if name == s.lengthName {
		return s.replaceLength(desc)
	}
	if idx, isIndex := name.Index(); isIndex {
		if int(idx) < len(s.dense) && s.dense[idx].isValid() {
			s.dense[idx].MergeDescriptor(desc)
			if idx >= s.length {
				s.length = idx + 1
			}
			return true
		}
		if s.overflow.Replace(name, desc) {
			return true
		}
		return false
	}
	return s.overflow.Replace(name, desc)
}

// replaceLength implements ES5 15.4.5.1 step 3.l: when the new length is
// smaller than the old one, indices are deleted from the top down, one at
// a time, stopping at (and keeping) the first non-configurable index
// encountered; the final stored length is one past that survivor, not
// necessarily the caller's requested value.
func (s *ArrayStore) replaceLength(desc jsvalue.Descriptor) bool {
	oldLen := s.length
	newLen := oldLen
	if n, ok := jsvalue.ToNumber(desc.GetValue()); desc.Value != nil && ok {
		newLen = jsvalue.ToUint32(n)
	}

	if newLen < oldLen {
		newLen = s.truncateTo(newLen, oldLen)
	}
	s.length = newLen

	final := desc
	v := jsvalue.NewNumber(float64(newLen))
	final.Value = &v
	return s.overflow.Replace(s.lengthName, final)
}

// truncateTo removes indices in [newLen, oldLen) from high to low,
// stopping at the first non-configurable index found. It returns the
// length that must actually be published: newLen if every removal
// succeeded, or stuckIndex+1 if a non-configurable survivor was hit.
func (s *ArrayStore) truncateTo(newLen, oldLen uint32) uint32 {
	for idx := oldLen; idx > newLen; idx-- {
		cur := idx - 1
		configurable, exists := s.indexConfigurable(cur)
		if !exists {
			continue
		}
		if !configurable {
			return cur + 1
		}
		s.removeIndex(cur)
	}
	return newLen
}

func (s *ArrayStore) indexConfigurable(idx uint32) (configurable, exists bool) {
	if int(idx) < len(s.dense) && s.dense[idx].isValid() {
		e := s.dense[idx]
		return e.Flags&FlagConfigurable != 0, true
	}
	name := jsvalue.NameFromIndex(idx)
	if d, ok := s.overflow.GetValue(name); ok {
		return d.IsConfigurable(), true
	}
	return false, false
}

func (s *ArrayStore) removeIndex(idx uint32) {
	if int(idx) < len(s.dense) && s.dense[idx].isValid() {
		s.dense[idx] = Entry{}
		return
	}
	s.overflow.Remove(jsvalue.NameFromIndex(idx))
}

func (s *ArrayStore) GetKey(offset int) Key {
	if offset < len(s.dense) {
		e := s.dense[offset]
		if e.isValid() {
			return Key{Status: KeyFound, Name: e.Name, Enumerable: e.Flags&FlagEnumerable != 0}
		}
		return Key{Status: KeyMissing}
	}
	return s.overflow.GetKey(offset - len(s.dense))
}

// Length returns the array's current length, the value the object model
// reads when servicing a "length" property access directly rather than
// going through GetValue.
func (s *ArrayStore) Length() uint32 { return s.length }

// LengthName returns the interned name this store treats specially for
// length-driven truncation, so the object model can recognize a
// define/replace targeting "length" without hardcoding the string.
func (s *ArrayStore) LengthName() jsvalue.Name { return s.lengthName }
