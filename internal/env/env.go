// Package env wires the five leaf/mid packages (gc, jsvalue, store,
// object, jserr) into one owning composition type. It is not one of
// SPEC_FULL.md's four components — see SPEC_FULL.md §2 — it exists only
// because every real consumer needs a heap, an interner, and a set of
// well-known prototypes threaded through every call, and something has
// to own them. Grounded on nooga-paserati's own top-level VM struct,
// shrunk to only what the JsItem contract actually needs.
package env

import (
	"go.uber.org/zap"

	"github.com/nooga/jsobjectcore/pkg/gc"
	"github.com/nooga/jsobjectcore/pkg/jserr"
	"github.com/nooga/jsobjectcore/pkg/jsvalue"
	"github.com/nooga/jsobjectcore/pkg/object"
)

// Env owns the one heap, one interner, and well-known prototype chain
// this demo engine needs. "The engine is single-instance per env" per
// spec.md §9 — callers construct exactly one Env per running program.
type Env struct {
	Heap     *gc.Heap
	Interner *jsvalue.Interner
	log      *zap.Logger

	ObjectPrototype *object.JsObject
	FunctionPrototype *object.JsObject
	ArrayPrototype  *object.JsObject
	ErrorPrototype  *object.JsObject

	errorCtorProto map[string]*object.JsObject

	prototypeName jsvalue.Name
	messageName   jsvalue.Name
	nameName      jsvalue.Name
}

// Option configures an Env at construction.
type Option func(*Env)

// WithLogger injects a zap logger, following storj-storj's
// injected-nil-safe-logger idiom.
func WithLogger(log *zap.Logger) Option {
	return func(e *Env) { e.log = log }
}

// New constructs an Env with its object/function/array/error prototype
// chain fully wired, ready to allocate user objects against.
func New(opts ...Option) *Env {
	e := &Env{
		Interner:       jsvalue.NewInterner(),
		errorCtorProto: make(map[string]*object.JsObject),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.log == nil {
		e.log = zap.NewNop()
	}
	e.Heap = gc.NewHeap(gc.WithLogger(e.log))

	e.prototypeName = e.Interner.Intern("prototype")
	e.messageName = e.Interner.Intern("message")
	e.nameName = e.Interner.Intern("name")

	e.ObjectPrototype = object.NewObject(e.Interner, nil)
	e.FunctionPrototype = object.NewObject(e.Interner, e.ObjectPrototype)
	e.ArrayPrototype = object.NewArrayObject(e.Interner, e.ObjectPrototype)
	e.ErrorPrototype = object.NewObject(e.Interner, e.ObjectPrototype)

	for _, ctor := range []string{"Error", "TypeError", "RangeError", "URIError", "ReferenceError", "SyntaxError"} {
		proto := e.ErrorPrototype
		if ctor != "Error" {
			proto = object.NewObject(e.Interner, e.ErrorPrototype)
		}
		e.errorCtorProto[ctor] = proto
	}

	e.log.Debug("env initialized", zap.Int("wellKnownPrototypes", 4))
	return e
}

// NewObject allocates a plain object whose prototype is Object.prototype.
func (e *Env) NewObject() *object.JsObject {
	return object.NewObject(e.Interner, e.ObjectPrototype)
}

// NewArray allocates an array exotic object.
func (e *Env) NewArray() *object.JsObject {
	return object.NewArrayObject(e.Interner, e.ArrayPrototype)
}

// NewFunction allocates a function object with Function.prototype as its
// prototype.
func (e *Env) NewFunction(fn object.FunctionDesc) *object.JsObject {
	return object.NewFunction(e.Interner, e.FunctionPrototype, fn)
}

// ConstructError implements jserr.HostFactory: builds a host-visible
// Error instance of the named kind, carrying a "message" property and a
// "name" property naming the constructor. Grounded on
// original_source/src/rt/result.rs's new_error, which invokes the actual
// constructor function; this module has no interpreter to run a
// constructor body through, so it builds the instance directly against
// the matching prototype instead — the observable shape (an object whose
// prototype chain reaches Error.prototype, carrying message/name) is the
// same.
func (e *Env) ConstructError(ctor string, args ...jsvalue.Value) (gc.Root[jsvalue.Value], error) {
	proto, ok := e.errorCtorProto[ctor]
	if !ok {
		proto = e.ErrorPrototype
	}

	scope := e.Heap.OpenScope()
	defer scope.Close()

	instance := object.NewObject(e.Interner, proto)
	instance.SetClass(e.Interner.Intern(ctor))

	if len(args) > 0 {
		instance.DefineOwnProperty(e, e.messageName, jsvalue.Descriptor{
			Value:        jsvalue.ValuePtr(args[0]),
			Writable:     jsvalue.BoolPtr(true),
			Enumerable:   jsvalue.BoolPtr(false),
			Configurable: jsvalue.BoolPtr(true),
		}, false)
	}
	instance.DefineOwnProperty(e, e.nameName, jsvalue.Descriptor{
		Value:        jsvalue.ValuePtr(jsvalue.NewString(ctor)),
		Writable:     jsvalue.BoolPtr(true),
		Enumerable:   jsvalue.BoolPtr(false),
		Configurable: jsvalue.BoolPtr(true),
	}, false)

	local := gc.AllocLocal[jsvalue.Value](e.Heap)
	*local.Get() = instance.AsValue()
	return local.AsRoot(e.Heap), nil
}

// RootValue implements jserr.HostFactory's plain-value rooting hook: it
// roots v with no host object construction involved, used by
// jserr.AsRuntime to materialize the best-effort string-valued Io error.
func (e *Env) RootValue(v jsvalue.Value) gc.Root[jsvalue.Value] {
	scope := e.Heap.OpenScope()
	defer scope.Close()

	local := gc.AllocLocal[jsvalue.Value](e.Heap)
	*local.Get() = v
	return local.AsRoot(e.Heap)
}

// Call implements object.Caller by invoking a function object's native
// slot directly; IR-backed functions have no compiler to run them, so
// calling one reports a runtime error rather than panicking — a real
// engine would dispatch into the bytecode interpreter here instead.
func (e *Env) Call(fn *object.JsObject, this jsvalue.Value, args []jsvalue.Value) (jsvalue.Value, *jserr.JsError) {
	slot := fn.Function()
	if slot == nil {
		return jsvalue.Undefined, jserr.NewType(e, "value is not callable")
	}
	if slot.Kind != object.FunctionNative || slot.Native == nil {
		return jsvalue.Undefined, jserr.NewType(e, "function has no native implementation in this core")
	}
	return slot.Native(e, this, args)
}

// AsRuntime materializes a JsError into a rooted thrown value using this
// Env's error prototypes.
func (e *Env) AsRuntime(err *jserr.JsError) (gc.Root[jsvalue.Value], error) {
	return jserr.AsRuntime(e, err)
}
