package object

import (
	"github.com/nooga/jsobjectcore/pkg/jserr"
	"github.com/nooga/jsobjectcore/pkg/jsvalue"
)

// FunctionDesc is the input to NewFunction: everything the caller
// already knows about the callable before the object wrapping it exists.
type FunctionDesc struct {
	Kind     FunctionKind
	ArgCount int
	Native   NativeFunc
	IR       IRRef
}

// NewFunction allocates a hash-backed Function object, grounded on
// original_source/src/rt/object/mod.rs's JsObject::new_function: sets
// prototype, class="Function", the function slot, and a "length" data
// property holding the declared argument count.
//
// Per SPEC_FULL.md §4.C's explicit instruction to prefer the spec over
// the source's own noted deviation, "length" is defined
// writable=false, enumerable=false, configurable=false — not
// configurable=true as original_source does.
func NewFunction(interner *jsvalue.Interner, prototype *JsObject, fn FunctionDesc) *JsObject {
	obj := NewObject(interner, prototype)
	obj.SetClass(interner.Intern("Function"))
	obj.function = &FunctionSlot{Kind: fn.Kind, ArgCount: fn.ArgCount, Native: fn.Native, IR: fn.IR}

	lengthName := interner.Intern("length")
	lengthValue := jsvalue.NewNumber(float64(fn.ArgCount))
	obj.propStore.Add(lengthName, jsvalue.Descriptor{
		Value:        &lengthValue,
		Writable:     jsvalue.BoolPtr(false),
		Enumerable:   jsvalue.BoolPtr(false),
		Configurable: jsvalue.BoolPtr(false),
	})
	return obj
}

// NewBoundFunction builds the object ES5 §15.3.4.5's Function.prototype.
// bind produces: a callable whose own invocation always supplies
// boundThis and prepends boundArgs ahead of whatever the caller passes.
// This introspection surface (FormalParameters/Code/TargetFunction/
// BoundThis/BoundArguments) is new relative to
// original_source/src/rt/object/mod.rs, which left these as
// unimplemented!() stubs; SPEC_FULL.md §9 resolves that Open Question by
// asking for a real implementation, grounded on the general shape of
// a bound-function value existing as a distinct kind in the domain (the
// teacher codebase's own TypeBoundFunction confirms bound functions are
// a first-class concept here, even though its body was bytecode-VM
// specific and out of scope).
func NewBoundFunction(interner *jsvalue.Interner, prototype *JsObject, target *JsObject, boundThis jsvalue.Value, boundArgs []jsvalue.Value) *JsObject {
	targetArgCount := 0
	if target.function != nil {
		targetArgCount = target.function.ArgCount
	}
	remaining := targetArgCount - len(boundArgs)
	if remaining < 0 {
		remaining = 0
	}

	obj := NewFunction(interner, prototype, FunctionDesc{
		Kind:     FunctionNative,
		ArgCount: remaining,
		Native: func(caller Caller, _ jsvalue.Value, args []jsvalue.Value) (jsvalue.Value, *jserr.JsError) {
			full := append(append([]jsvalue.Value{}, boundArgs...), args...)
			if caller == nil {
				panic("object: bound function invoked with no Caller supplied")
			}
			return caller.Call(target, boundThis, full)
		},
	})
	obj.function.Target = target
	obj.function.BoundThis = boundThis
	obj.function.BoundArgs = boundArgs
	return obj
}

// IsBound reports whether obj is a bound function, i.e. its function
// slot carries a Target.
func (obj *JsObject) IsBound() bool {
	return obj.function != nil && obj.function.Target != nil
}

// TargetFunction returns the function a bound function delegates to, per
// ES5 §15.3.4.5's [[TargetFunction]] internal property.
func (obj *JsObject) TargetFunction() *JsObject {
	if obj.function == nil {
		return nil
	}
	return obj.function.Target
}

// BoundThis returns the this value a bound function was created with,
// [[BoundThis]].
func (obj *JsObject) BoundThis() jsvalue.Value {
	if obj.function == nil {
		return jsvalue.Undefined
	}
	return obj.function.BoundThis
}

// BoundArguments returns the leading argument list a bound function
// prepends to every call, [[BoundArguments]].
func (obj *JsObject) BoundArguments() []jsvalue.Value {
	if obj.function == nil {
		return nil
	}
	return obj.function.BoundArgs
}

// FormalParameters returns the declared argument count for obj's
// function slot, the one piece of [[FormalParameters]] this module can
// express without an IR compiler.
func (obj *JsObject) FormalParameters() int {
	if obj.function == nil {
		return 0
	}
	return obj.function.ArgCount
}

// Code returns the IR reference backing obj's function slot, or false if
// obj is native or not a function at all.
func (obj *JsObject) Code() (IRRef, bool) {
	if obj.function == nil || obj.function.Kind != FunctionIR {
		return 0, false
	}
	return obj.function.IR, true
}
