// Package object implements the normative ECMAScript 5.1 object-model
// algorithms: JsObject, the JsItem capability set the interpreter
// consumes, and the two property-storage-backed flavors (generic
// objects and array exotic objects) described in SPEC_FULL.md §4.C.
// Grounded throughout on original_source/src/rt/object/mod.rs.
package object

import (
	"github.com/nooga/jsobjectcore/pkg/gc"
	"github.com/nooga/jsobjectcore/pkg/jserr"
	"github.com/nooga/jsobjectcore/pkg/jsvalue"
	"github.com/nooga/jsobjectcore/pkg/store"
)

// Caller is the capability to invoke a callable JsObject — something the
// object model itself cannot do (that is the interpreter's job), but
// which Get/Put need in order to run accessor getters/setters and
// HasInstance needs for nothing, and NewFunction's native slot needs
// directly. Supplied by whichever layer owns an actual call stack
// (internal/env in this module, ultimately the interpreter in a full
// engine). A nil Caller is valid wherever the caller knows no accessor
// will be hit.
type Caller interface {
	Call(fn *JsObject, this jsvalue.Value, args []jsvalue.Value) (jsvalue.Value, *jserr.JsError)
}

// FunctionKind tags which of the two function representations a
// FunctionSlot carries, mirroring SPEC_FULL.md §4.C's "native slot or IR
// function reference".
type FunctionKind uint8

const (
	FunctionNative FunctionKind = iota
	FunctionIR
)

// NativeFunc is a function slot implemented directly in Go, used for
// host-provided callables (constructors the error subsystem invokes,
// test doubles, cmd/jsobjsh's demo callables).
type NativeFunc func(caller Caller, this jsvalue.Value, args []jsvalue.Value) (jsvalue.Value, *jserr.JsError)

// IRRef is an opaque reference to a compiled function body. The IR
// compiler that would resolve it is out of scope for this module; the
// reference is carried so the object model's shape is complete and a
// future compiler has somewhere to plug in, per SPEC_FULL.md §6's
// "ir.get_function(ref) -> FunctionInfo" contract.
type IRRef uint32

// FunctionSlot is the callable descriptor an object carries when it is a
// Function.
type FunctionSlot struct {
	Kind     FunctionKind
	ArgCount int
	Native   NativeFunc
	IR       IRRef
	// Bound-function introspection, populated only when this slot backs
	// a Function.prototype.bind result (ES5 §15.3.4.5). Target is nil for
	// an ordinary (non-bound) function.
	Target    *JsObject
	BoundThis jsvalue.Value
	BoundArgs []jsvalue.Value
}

// JsObject is the mutable entity the whole object model revolves around.
// Field-for-field grounded on original_source/src/rt/object/mod.rs's
// JsObject: class, value, function, prototype, scope, store, extensible.
type JsObject struct {
	interner *jsvalue.Interner

	hasClass bool
	class    jsvalue.Name

	hasValue bool
	value    jsvalue.Value

	function *FunctionSlot

	prototype *JsObject

	hasScope bool
	scope    jsvalue.Value

	propStore store.TaggedStore

	extensible bool
}

// NewObject allocates a hash-backed, extensible object with the given
// prototype (nil for none). Grounded on JsObject::new.
func NewObject(interner *jsvalue.Interner, prototype *JsObject) *JsObject {
	return &JsObject{
		interner:   interner,
		prototype:  prototype,
		propStore:  store.NewHashTaggedStore(),
		extensible: true,
	}
}

// NewArrayObject allocates an array-backed, extensible object whose
// "length" property is immediately materialized as the data model
// requires ("if class == Array, a property named length ... always
// exists"). Grounded on JsObject::new plus §3's Array invariant.
func NewArrayObject(interner *jsvalue.Interner, prototype *JsObject) *JsObject {
	lengthName := interner.Intern("length")
	obj := &JsObject{
		interner:   interner,
		prototype:  prototype,
		propStore:  store.NewArrayTaggedStore(lengthName),
		extensible: true,
	}
	obj.SetClass(interner.Intern("Array"))
	obj.propStore.Add(lengthName, jsvalue.Descriptor{
		Value:        jsvalue.ValuePtr(jsvalue.NewNumber(0)),
		Writable:     jsvalue.BoolPtr(true),
		Enumerable:   jsvalue.BoolPtr(false),
		Configurable: jsvalue.BoolPtr(false),
	})
	return obj
}

// NewLocalObject is the gc-handle-flavored constructor interpreter code
// is expected to call: it allocates the JsObject inside h's current
// local-handle scope the way SPEC_FULL.md §4.A's alloc_local contract
// describes, then runs NewObject to populate it. Go's own collector
// never relocates the result, but routing allocation through gc.Heap
// keeps the handle-scope bookkeeping (and therefore the API contract)
// faithful to SPEC_FULL.md regardless.
func NewLocalObject(h *gc.Heap, interner *jsvalue.Interner, prototype *JsObject) gc.Local[JsObject] {
	local := gc.AllocLocal[JsObject](h)
	*local.Get() = *NewObject(interner, prototype)
	return local
}

// IsArray reports whether obj's property store is array-backed.
func (obj *JsObject) IsArray() bool {
	return obj.propStore.Kind == store.KindArray
}

// Class returns the object's class name and whether one is set.
func (obj *JsObject) Class() (jsvalue.Name, bool) { return obj.class, obj.hasClass }

// SetClass sets the object's class name.
func (obj *JsObject) SetClass(name jsvalue.Name) {
	obj.hasClass = true
	obj.class = name
}

// HasClass reports whether obj's class matches the interned name in s,
// a convenience for the common "is this an Array/Function/Error" check.
func (obj *JsObject) HasClass(s string) bool {
	if !obj.hasClass || obj.interner == nil {
		return false
	}
	return obj.interner.Get(obj.class) == s
}

// Value returns the boxed primitive value, if any.
func (obj *JsObject) Value() (jsvalue.Value, bool) { return obj.value, obj.hasValue }

// SetValue sets the boxed primitive value.
func (obj *JsObject) SetValue(v jsvalue.Value) {
	obj.hasValue = true
	obj.value = v
}

// Function returns the callable descriptor, if any.
func (obj *JsObject) Function() *FunctionSlot { return obj.function }

// IsCallable reports whether the function slot is present.
func (obj *JsObject) IsCallable() bool { return obj.function != nil }

// CanConstruct mirrors IsCallable at this layer: whether a function can
// be invoked with `new` is a semantic the interpreter layers on top, but
// the precondition (a function slot must be present) lives here.
func (obj *JsObject) CanConstruct() bool { return obj.function != nil }

// Prototype returns the prototype pointer, or nil.
func (obj *JsObject) Prototype() *JsObject { return obj.prototype }

// SetPrototype sets the prototype pointer.
func (obj *JsObject) SetPrototype(proto *JsObject) { obj.prototype = proto }

// HasPrototype reports whether a prototype is set.
func (obj *JsObject) HasPrototype() bool { return obj.prototype != nil }

// Scope returns the lexical scope value and whether one is set. Scope
// chains themselves are the interpreter's concern; the object model only
// carries the slot.
func (obj *JsObject) Scope() (jsvalue.Value, bool) { return obj.scope, obj.hasScope }

// SetScope sets the lexical scope value.
func (obj *JsObject) SetScope(v jsvalue.Value) {
	obj.hasScope = true
	obj.scope = v
}

// IsExtensible reports whether new own properties may be added.
func (obj *JsObject) IsExtensible() bool { return obj.extensible }

// SetExtensible sets the extensible flag. ES5 only ever allows
// true->false transitions via Object.preventExtensions, but the object
// model itself does not enforce monotonicity; that policy belongs to the
// builtin that calls this.
func (obj *JsObject) SetExtensible(extensible bool) { obj.extensible = extensible }

// AsValue wraps obj as a tagged Value the rest of the engine can carry
// around.
func (obj *JsObject) AsValue() jsvalue.Value {
	return jsvalue.NewObjectPointer(objectPointer(obj))
}

// Interner returns the interner obj was constructed with, needed by
// callers (Get/Put/enumeration) that must resolve Name to string or
// intern well-known property names like "prototype".
func (obj *JsObject) Interner() *jsvalue.Interner { return obj.interner }

// GetOwnProperty returns the own-property descriptor for name, if any.
func (obj *JsObject) GetOwnProperty(name jsvalue.Name) (jsvalue.Descriptor, bool) {
	return obj.propStore.GetValue(name)
}

// HasOwnProperty reports whether name is an own property.
func (obj *JsObject) HasOwnProperty(name jsvalue.Name) bool {
	_, ok := obj.propStore.GetValue(name)
	return ok
}

// OwnPropertyNames returns every own property name (enumerable or not)
// in store order: insertion order for a hash store, ascending index
// order followed by insertion order for an array store's overflow, per
// SPEC_FULL.md §5's ordering rule.
func (obj *JsObject) OwnPropertyNames() []jsvalue.Name {
	var names []jsvalue.Name
	for offset := 0; ; offset++ {
		k := obj.propStore.GetKey(offset)
		switch k.Status {
		case store.KeyEnd:
			return names
		case store.KeyMissing:
			continue
		default:
			names = append(names, k.Name)
		}
	}
}
