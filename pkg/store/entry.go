package store

import "github.com/nooga/jsobjectcore/pkg/jsvalue"

// Flag is the attribute bitset carried inline on every Entry, grounded on
// the original model's Entry.flags (VALID/WRITABLE/ENUMERABLE/
// CONFIGURABLE/ACCESSOR bits on a single u32).
type Flag uint8

const (
	FlagValid Flag = 1 << iota
	FlagWritable
	FlagEnumerable
	FlagConfigurable
	FlagAccessor
)

// Entry is one slot in either backend. For a data property, Value1 holds
// the value and Value2 is unused; for an accessor property, Value1 holds
// the getter and Value2 the setter. Next chains same-bucket entries in
// HashStore and is unused (left at zero) in ArrayStore's dense region.
type Entry struct {
	Name  jsvalue.Name
	Flags Flag
	Next  int32
	Value1 jsvalue.Value
	Value2 jsvalue.Value
}

func (e Entry) isValid() bool { return e.Flags&FlagValid != 0 }

// EntryFromDescriptor builds a fully-populated Entry for name from desc,
// applying ES5's "absent field defaults to false/undefined" rule (8.12.9,
// step 4), used when a descriptor is written for the first time via Add.
func EntryFromDescriptor(name jsvalue.Name, desc jsvalue.Descriptor) Entry {
	e := Entry{Name: name, Flags: FlagValid}
	if desc.IsEnumerable() {
		e.Flags |= FlagEnumerable
	}
	if desc.IsConfigurable() {
		e.Flags |= FlagConfigurable
	}
	if desc.IsAccessor() {
		e.Flags |= FlagAccessor
		e.Value1 = desc.GetGetter()
		e.Value2 = desc.GetSetter()
		return e
	}
	if desc.IsWritable() {
		e.Flags |= FlagWritable
	}
	e.Value1 = desc.GetValue()
	return e
}

// MergeDescriptor applies the fields set in desc onto e in place, leaving
// fields desc does not mention untouched. Used by Replace, which must
// preserve whatever the caller did not explicitly overwrite.
func (e *Entry) MergeDescriptor(desc jsvalue.Descriptor) {
	if desc.Writable != nil {
		if *desc.Writable {
			e.Flags |= FlagWritable
		} else {
			e.Flags &^= FlagWritable
		}
	}
	if desc.Enumerable != nil {
		if *desc.Enumerable {
			e.Flags |= FlagEnumerable
		} else {
			e.Flags &^= FlagEnumerable
		}
	}
	if desc.Configurable != nil {
		if *desc.Configurable {
			e.Flags |= FlagConfigurable
		} else {
			e.Flags &^= FlagConfigurable
		}
	}
	if desc.Get != nil || desc.Set != nil {
		e.Flags |= FlagAccessor
		if desc.Get != nil {
			e.Value1 = *desc.Get
		}
		if desc.Set != nil {
			e.Value2 = *desc.Set
		}
		return
	}
	if desc.Value != nil {
		e.Flags &^= FlagAccessor
		e.Value1 = *desc.Value
		e.Value2 = jsvalue.Undefined
	}
}

// AsDescriptor materializes e's full descriptor for reads.
func (e Entry) AsDescriptor() jsvalue.Descriptor {
	writable := e.Flags&FlagWritable != 0
	enumerable := e.Flags&FlagEnumerable != 0
	configurable := e.Flags&FlagConfigurable != 0
	if e.Flags&FlagAccessor != 0 {
		get, set := e.Value1, e.Value2
		return jsvalue.Descriptor{
			Get: &get, Set: &set,
			Enumerable:   &enumerable,
			Configurable: &configurable,
		}
	}
	value := e.Value1
	return jsvalue.Descriptor{
		Value:        &value,
		Writable:     &writable,
		Enumerable:   &enumerable,
		Configurable: &configurable,
	}
}
