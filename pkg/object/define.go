package object

import (
	"github.com/nooga/jsobjectcore/pkg/jserr"
	"github.com/nooga/jsobjectcore/pkg/jsvalue"
)

// DefineOwnProperty implements ES5 §8.12.9 for a generic (non-array)
// object, dispatching to the array overlay (§15.4.5.1) when obj is
// array-backed. Grounded on original_source/src/rt/object/mod.rs's
// define_own_object_property / define_own_array_property / JsItem's
// define_own_property dispatch-by-class.
func (obj *JsObject) DefineOwnProperty(host jserr.HostFactory, name jsvalue.Name, desc jsvalue.Descriptor, throwFlag bool) (bool, *jserr.JsError) {
	if obj.IsArray() {
		return obj.defineOwnArrayProperty(host, name, desc, throwFlag)
	}
	return obj.defineOwnGenericProperty(host, name, desc, throwFlag)
}

func fail(host jserr.HostFactory, throwFlag bool, message string) (bool, *jserr.JsError) {
	if throwFlag {
		return false, jserr.NewType(host, message)
	}
	return false, nil
}

// defineOwnGenericProperty is ES5 §8.12.9's algorithm, steps 1-4 of
// SPEC_FULL.md §4.C's prose restatement.
func (obj *JsObject) defineOwnGenericProperty(host jserr.HostFactory, name jsvalue.Name, desc jsvalue.Descriptor, throwFlag bool) (bool, *jserr.JsError) {
	current, exists := obj.propStore.GetValue(name)

	if !exists {
		if !obj.extensible {
			return fail(host, throwFlag, "object is not extensible")
		}
		obj.propStore.Add(name, desc)
		return true, nil
	}

	if desc.IsEmpty() {
		return true, nil
	}
	if desc.SameAsCurrent(current) {
		return true, nil
	}

	if ok, message := canWrite(current, desc); !ok {
		return fail(host, throwFlag, message)
	}

	merged := mergeDescriptor(current, desc)
	obj.propStore.Replace(name, merged)
	return true, nil
}

// canWrite implements the can-write predicate from SPEC_FULL.md §4.C
// exactly: non-configurable current rejects configurable->true and any
// enumerable toggle; a kind change (data<->accessor) requires current
// configurable; same-kind changes apply their own narrower rules.
func canWrite(current, desc jsvalue.Descriptor) (ok bool, failureMessage string) {
	currentConfigurable := current.IsConfigurable()

	if !currentConfigurable {
		if desc.Configurable != nil && *desc.Configurable {
			return false, "cannot redefine non-configurable property as configurable"
		}
		if desc.Enumerable != nil && *desc.Enumerable != current.IsEnumerable() {
			return false, "cannot toggle enumerable on a non-configurable property"
		}
	}

	if desc.IsGeneric() {
		return true, ""
	}

	currentIsData := current.IsData() || current.IsGeneric()
	descIsData := desc.IsData()
	if currentIsData != descIsData {
		if !currentConfigurable {
			return false, "cannot change property between data and accessor kind"
		}
		return true, ""
	}

	if descIsData {
		if !currentConfigurable {
			if desc.Writable != nil && *desc.Writable != current.IsWritable() {
				return false, "cannot toggle writable on a non-configurable data property"
			}
			if !current.IsWritable() {
				if desc.Value != nil && !jsvalue.SameValue(*desc.Value, current.GetValue()) {
					return false, "cannot change the value of a non-configurable, non-writable property"
				}
			}
		}
		return true, ""
	}

	// Both accessor.
	if !currentConfigurable {
		if desc.Get != nil && !jsvalue.SameValue(*desc.Get, current.GetGetter()) {
			return false, "cannot change the getter of a non-configurable accessor property"
		}
		if desc.Set != nil && !jsvalue.SameValue(*desc.Set, current.GetSetter()) {
			return false, "cannot change the setter of a non-configurable accessor property"
		}
	}
	return true, ""
}

// mergeDescriptor produces the fully-populated descriptor that will be
// written to the store: fields desc sets win, fields it leaves unset
// inherit from current. A data<->accessor kind switch drops the other
// kind's fields rather than carrying them over; a field of the new kind
// that neither desc nor current supplies defaults to undefined (value,
// get, set) or false (writable).
func mergeDescriptor(current, desc jsvalue.Descriptor) jsvalue.Descriptor {
	writable := current.Writable
	enumerable := current.Enumerable
	configurable := current.Configurable
	if desc.Writable != nil {
		writable = desc.Writable
	}
	if desc.Enumerable != nil {
		enumerable = desc.Enumerable
	}
	if desc.Configurable != nil {
		configurable = desc.Configurable
	}

	if desc.IsAccessor() || (current.IsAccessor() && !desc.IsData()) {
		get := current.Get
		set := current.Set
		if desc.Get != nil {
			get = desc.Get
		}
		if desc.Set != nil {
			set = desc.Set
		}
		if get == nil {
			get = jsvalue.ValuePtr(jsvalue.Undefined)
		}
		if set == nil {
			set = jsvalue.ValuePtr(jsvalue.Undefined)
		}
		return jsvalue.Descriptor{Get: get, Set: set, Enumerable: enumerable, Configurable: configurable}
	}

	value := current.Value
	if desc.Value != nil {
		value = desc.Value
	}
	if value == nil {
		value = jsvalue.ValuePtr(jsvalue.Undefined)
	}
	if writable == nil {
		writable = jsvalue.BoolPtr(false)
	}
	return jsvalue.Descriptor{Value: value, Writable: writable, Enumerable: enumerable, Configurable: configurable}
}
