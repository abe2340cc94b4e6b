package jsvalue

// Descriptor is a property-descriptor update/query record with optional
// fields. Pointer fields distinguish "unset" (nil) from "explicitly set to
// the zero value". It lives in this package, rather than the object
// package, because the storage backends (package store) need to consume
// and produce Descriptors without importing the object model that sits
// above them.
type Descriptor struct {
	Value        *Value
	Get          *Value
	Set          *Value
	Writable     *bool
	Enumerable   *bool
	Configurable *bool
}

// IsEmpty reports whether every field is unset.
func (d Descriptor) IsEmpty() bool {
	return d.Value == nil && d.Get == nil && d.Set == nil &&
		d.Writable == nil && d.Enumerable == nil && d.Configurable == nil
}

// IsData reports whether d describes (at least in part) a data property.
func (d Descriptor) IsData() bool {
	return d.Value != nil || d.Writable != nil
}

// IsAccessor reports whether d describes (at least in part) an accessor
// property.
func (d Descriptor) IsAccessor() bool {
	return d.Get != nil || d.Set != nil
}

// IsGeneric reports whether d is neither a data nor an accessor
// descriptor (only enumerable/configurable set, or nothing at all).
func (d Descriptor) IsGeneric() bool {
	return !d.IsData() && !d.IsAccessor()
}

// GetValue returns the descriptor's value field, or Undefined if unset.
func (d Descriptor) GetValue() Value {
	if d.Value == nil {
		return Undefined
	}
	return *d.Value
}

// GetGetter returns the descriptor's get field, or Undefined if unset.
func (d Descriptor) GetGetter() Value {
	if d.Get == nil {
		return Undefined
	}
	return *d.Get
}

// GetSetter returns the descriptor's set field, or Undefined if unset.
func (d Descriptor) GetSetter() Value {
	if d.Set == nil {
		return Undefined
	}
	return *d.Set
}

// IsWritable returns the writable field, defaulting to false if unset.
func (d Descriptor) IsWritable() bool { return d.Writable != nil && *d.Writable }

// IsEnumerable returns the enumerable field, defaulting to false if unset.
func (d Descriptor) IsEnumerable() bool { return d.Enumerable != nil && *d.Enumerable }

// IsConfigurable returns the configurable field, defaulting to false if
// unset.
func (d Descriptor) IsConfigurable() bool { return d.Configurable != nil && *d.Configurable }

// SameAsCurrent implements the "identical under SameValue for each field"
// check from ES5 8.12.9 step 6: every field set in d must match the
// corresponding value current actually has; fields d leaves unset are
// vacuously equal.
func (d Descriptor) SameAsCurrent(current Descriptor) bool {
	if d.Value != nil && !SameValue(*d.Value, current.GetValue()) {
		return false
	}
	if d.Get != nil && !SameValue(*d.Get, current.GetGetter()) {
		return false
	}
	if d.Set != nil && !SameValue(*d.Set, current.GetSetter()) {
		return false
	}
	if d.Writable != nil && *d.Writable != current.IsWritable() {
		return false
	}
	if d.Enumerable != nil && *d.Enumerable != current.IsEnumerable() {
		return false
	}
	if d.Configurable != nil && *d.Configurable != current.IsConfigurable() {
		return false
	}
	return true
}

// BoolPtr is a small convenience for building Descriptor literals without
// a local variable at every call site.
func BoolPtr(b bool) *bool { return &b }

// ValuePtr is BoolPtr's counterpart for Value fields.
func ValuePtr(v Value) *Value { return &v }
