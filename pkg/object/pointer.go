package object

import (
	"unsafe"

	"github.com/nooga/jsobjectcore/pkg/jsvalue"
)

// objectPointer and FromValue are the one place this package crosses
// into unsafe.Pointer: jsvalue.Value carries object payloads as raw
// pointers specifically so that package (a leaf) does not need to import
// object (which sits above store and gc). This package is the only
// intended caller of NewObjectPointer/ObjectPointer for that reason.
func objectPointer(obj *JsObject) unsafe.Pointer {
	return unsafe.Pointer(obj)
}

// FromValue recovers the JsObject a Value wraps. Panics if v is not an
// object value — callers are expected to check jsvalue.Value.IsObject()
// first, matching the original model's assumption that object-typed
// values always carry a live JsObject.
func FromValue(v jsvalue.Value) *JsObject {
	ptr := v.ObjectPointer()
	if ptr == nil {
		panic("object: FromValue called on a non-object Value")
	}
	return (*JsObject)(ptr)
}
