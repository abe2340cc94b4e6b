package object

import (
	"github.com/nooga/jsobjectcore/pkg/jserr"
	"github.com/nooga/jsobjectcore/pkg/jsvalue"
)

// HasInstance implements ES5 §15.3.5.3: obj must be callable; v must be
// an object whose prototype chain is walked looking for pointer equality
// with obj's own "prototype" property. Grounded on
// original_source/src/rt/object/mod.rs's has_instance, which asserts the
// language's prototype chains are finite (cycles cannot be constructed by
// well-formed programs), so no cycle guard is needed here either, per
// SPEC_FULL.md §9.
func (obj *JsObject) HasInstance(host jserr.HostFactory, prototypeName jsvalue.Name, v jsvalue.Value) (bool, *jserr.JsError) {
	if !obj.IsCallable() {
		return false, jserr.NewType(host, "has_instance called on a non-callable object")
	}
	if !v.IsObject() {
		return false, nil
	}

	protoDesc, ok := obj.propStore.GetValue(prototypeName)
	if !ok {
		return false, jserr.NewType(host, "function has no prototype property")
	}
	protoValue := protoDesc.GetValue()
	if !protoValue.IsObject() {
		return false, jserr.NewType(host, "prototype is not an object")
	}
	target := FromValue(protoValue)

	current := FromValue(v).Prototype()
	for current != nil {
		if current == target {
			return true, nil
		}
		current = current.Prototype()
	}
	return false, nil
}
