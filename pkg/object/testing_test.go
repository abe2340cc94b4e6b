package object

import (
	"errors"

	"github.com/nooga/jsobjectcore/pkg/gc"
	"github.com/nooga/jsobjectcore/pkg/jserr"
	"github.com/nooga/jsobjectcore/pkg/jsvalue"
)

// fakeHost is a minimal jserr.HostFactory: it "constructs" an error
// object by rooting a plain object whose "message" property carries the
// text, which is enough for the tests in this package to assert on
// without needing the real Error-constructor wiring internal/env
// provides.
type fakeHost struct {
	heap     *gc.Heap
	interner *jsvalue.Interner
	proto    *JsObject
	failOn   string
}

func newFakeHost() *fakeHost {
	h := gc.NewHeap()
	interner := jsvalue.NewInterner()
	return &fakeHost{heap: h, interner: interner, proto: NewObject(interner, nil)}
}

func (h *fakeHost) ConstructError(ctor string, args ...jsvalue.Value) (gc.Root[jsvalue.Value], error) {
	if ctor == h.failOn {
		return gc.Root[jsvalue.Value]{}, errors.New("constructor " + ctor + " failed")
	}
	scope := h.heap.OpenScope()
	defer scope.Close()

	errObj := NewObject(h.interner, h.proto)
	errObj.SetClass(h.interner.Intern(ctor))
	if len(args) > 0 {
		nameField := h.interner.Intern("message")
		errObj.propStore.Add(nameField, jsvalue.Descriptor{
			Value:        jsvalue.ValuePtr(args[0]),
			Writable:     jsvalue.BoolPtr(true),
			Enumerable:   jsvalue.BoolPtr(false),
			Configurable: jsvalue.BoolPtr(true),
		})
	}

	local := gc.AllocLocal[jsvalue.Value](h.heap)
	*local.Get() = errObj.AsValue()
	return local.AsRoot(h.heap), nil
}

func (h *fakeHost) RootValue(v jsvalue.Value) gc.Root[jsvalue.Value] {
	scope := h.heap.OpenScope()
	defer scope.Close()
	local := gc.AllocLocal[jsvalue.Value](h.heap)
	*local.Get() = v
	return local.AsRoot(h.heap)
}

// nopCaller never actually calls anything; used where a test's property
// graph is known not to contain accessors.
type nopCaller struct{}

func (nopCaller) Call(fn *JsObject, this jsvalue.Value, args []jsvalue.Value) (jsvalue.Value, *jserr.JsError) {
	panic("object: test Caller invoked unexpectedly")
}

// nativeCaller is a minimal Caller that actually runs a function's
// native slot, enough to exercise accessor and bound-function plumbing
// in tests without a real interpreter.
type nativeCaller struct{}

func (nativeCaller) Call(fn *JsObject, this jsvalue.Value, args []jsvalue.Value) (jsvalue.Value, *jserr.JsError) {
	if fn.Function() == nil || fn.Function().Native == nil {
		panic("object: nativeCaller invoked on a non-native function")
	}
	return fn.Function().Native(nativeCaller{}, this, args)
}

func dataDesc(v jsvalue.Value, writable, enumerable, configurable bool) jsvalue.Descriptor {
	return jsvalue.Descriptor{
		Value:        jsvalue.ValuePtr(v),
		Writable:     jsvalue.BoolPtr(writable),
		Enumerable:   jsvalue.BoolPtr(enumerable),
		Configurable: jsvalue.BoolPtr(configurable),
	}
}
