package object

import (
	"github.com/nooga/jsobjectcore/pkg/jserr"
	"github.com/nooga/jsobjectcore/pkg/jsvalue"
)

// HasProperty implements ES5 §8.12.6: true if name is an own or
// inherited property.
func (obj *JsObject) HasProperty(name jsvalue.Name) bool {
	for cur := obj; cur != nil; cur = cur.Prototype() {
		if cur.HasOwnProperty(name) {
			return true
		}
	}
	return false
}

// Get implements ES5 §8.12.3: walk the prototype chain for the first own
// property named name; a data property returns its value directly, an
// accessor property invokes its getter (via caller) or returns undefined
// if no getter is set; an absent property anywhere in the chain returns
// undefined. caller may be nil only when the lookup is known not to hit
// an accessor (e.g. inspecting plain data objects in tests).
func (obj *JsObject) Get(caller Caller, name jsvalue.Name) (jsvalue.Value, *jserr.JsError) {
	for cur := obj; cur != nil; cur = cur.Prototype() {
		desc, ok := cur.propStore.GetValue(name)
		if !ok {
			continue
		}
		if desc.IsAccessor() {
			getter := desc.GetGetter()
			if !getter.IsObject() {
				return jsvalue.Undefined, nil
			}
			if caller == nil {
				panic("object: Get hit an accessor property with no Caller supplied")
			}
			return caller.Call(FromValue(getter), obj.AsValue(), nil)
		}
		return desc.GetValue(), nil
	}
	return jsvalue.Undefined, nil
}

// canPut implements ES5 §8.12.4: whether a [[Put]] for name would
// succeed, without performing it.
func (obj *JsObject) canPut(name jsvalue.Name) (writable bool, setter *JsObject, isAccessor bool) {
	if desc, ok := obj.propStore.GetValue(name); ok {
		if desc.IsAccessor() {
			setterValue := desc.GetSetter()
			if setterValue.IsObject() {
				return false, FromValue(setterValue), true
			}
			return false, nil, true
		}
		return desc.IsWritable(), nil, false
	}
	if !obj.HasPrototype() {
		return obj.extensible, nil, false
	}
	inherited, inheritedSetter, inheritedIsAccessor := obj.Prototype().canPut(name)
	if inheritedIsAccessor {
		return inherited, inheritedSetter, true
	}
	if !inherited {
		return false, nil, false
	}
	return obj.extensible, nil, false
}

// Put implements ES5 §8.12.5: invoke an inherited or own setter if one
// applies, otherwise define/overwrite an own data property, subject to
// extensibility and writability. Failures funnel through throwFlag
// exactly like DefineOwnProperty.
func (obj *JsObject) Put(host jserr.HostFactory, caller Caller, name jsvalue.Name, value jsvalue.Value, throwFlag bool) *jserr.JsError {
	writable, setter, isAccessor := obj.canPut(name)
	if isAccessor {
		if setter == nil {
			if throwFlag {
				return jserr.NewType(host, "cannot set property with no setter")
			}
			return nil
		}
		if caller == nil {
			panic("object: Put hit an accessor property with no Caller supplied")
		}
		_, err := caller.Call(setter, obj.AsValue(), []jsvalue.Value{value})
		return err
	}
	if !writable {
		if throwFlag {
			return jserr.NewType(host, "cannot assign to read only property")
		}
		return nil
	}

	desc := jsvalue.Descriptor{Value: &value}
	if !obj.HasOwnProperty(name) {
		// ES5 8.12.5 step 6: a new own property created by [[Put]] is
		// {[[Value]]: V, [[Writable]]: true, [[Enumerable]]: true,
		// [[Configurable]]: true}, not DefineOwnProperty's
		// unset-fields-default-to-false shape.
		desc.Writable = jsvalue.BoolPtr(true)
		desc.Enumerable = jsvalue.BoolPtr(true)
		desc.Configurable = jsvalue.BoolPtr(true)
	}
	ok, err := obj.DefineOwnProperty(host, name, desc, throwFlag)
	if !ok && err == nil && throwFlag {
		return jserr.NewType(host, "cannot assign property")
	}
	return err
}
