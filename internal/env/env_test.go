package env

import (
	"testing"

	"github.com/nooga/jsobjectcore/pkg/jserr"
	"github.com/nooga/jsobjectcore/pkg/jsvalue"
	"github.com/nooga/jsobjectcore/pkg/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func objectFunctionDescEchoingFirstArg() object.FunctionDesc {
	return object.FunctionDesc{
		Kind:     object.FunctionNative,
		ArgCount: 1,
		Native: func(caller object.Caller, this jsvalue.Value, args []jsvalue.Value) (jsvalue.Value, *jserr.JsError) {
			if len(args) == 0 {
				return jsvalue.Undefined, nil
			}
			return args[0], nil
		},
	}
}

func TestNewWiresPrototypeChain(t *testing.T) {
	e := New()
	assert.True(t, e.FunctionPrototype.Prototype() == e.ObjectPrototype)
	assert.True(t, e.ArrayPrototype.Prototype() == e.ObjectPrototype)
	assert.True(t, e.ErrorPrototype.Prototype() == e.ObjectPrototype)
}

func TestConstructErrorSetsMessageAndName(t *testing.T) {
	e := New()
	root, err := e.ConstructError("TypeError", jsvalue.NewString("boom"))
	require.NoError(t, err)

	val := root.Get()
	require.True(t, val.IsObject())

	instance := object.FromValue(*val)
	msg, jerr := instance.Get(e, e.Interner.Intern("message"))
	require.Nil(t, jerr)
	assert.Equal(t, "boom", msg.AsString())
	name, jerr := instance.Get(e, e.Interner.Intern("name"))
	require.Nil(t, jerr)
	assert.Equal(t, "TypeError", name.AsString())
	root.Release()
}

func TestNewObjectUsesObjectPrototype(t *testing.T) {
	e := New()
	obj := e.NewObject()
	assert.True(t, obj.Prototype() == e.ObjectPrototype)
	assert.True(t, obj.IsExtensible())
}

func TestCallInvokesNativeFunction(t *testing.T) {
	e := New()
	fn := e.NewFunction(objectFunctionDescEchoingFirstArg())

	v, jerr := e.Call(fn, jsvalue.Undefined, []jsvalue.Value{jsvalue.NewNumber(7)})
	require.Nil(t, jerr)
	n, _ := jsvalue.ToNumber(v)
	assert.Equal(t, float64(7), n)
}
