package object

import (
	"testing"

	"github.com/nooga/jsobjectcore/pkg/jserr"
	"github.com/nooga/jsobjectcore/pkg/jsvalue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefineOwnPropertyOnNonExtensibleRejectsNewProperty(t *testing.T) {
	host := newFakeHost()
	obj := NewObject(host.interner, nil)
	obj.SetExtensible(false)

	x := host.interner.Intern("x")
	ok, err := obj.DefineOwnProperty(host, x, dataDesc(jsvalue.NewNumber(1), true, true, true), true)
	assert.False(t, ok)
	require.NotNil(t, err)
	assert.Equal(t, jserr.KindRuntime, err.Kind())
}

func TestDefineOwnPropertyAddsToExtensibleObject(t *testing.T) {
	host := newFakeHost()
	obj := NewObject(host.interner, nil)
	x := host.interner.Intern("x")

	ok, err := obj.DefineOwnProperty(host, x, dataDesc(jsvalue.NewNumber(1), true, true, true), true)
	require.Nil(t, err)
	require.True(t, ok)

	desc, exists := obj.GetOwnProperty(x)
	require.True(t, exists)
	n, _ := jsvalue.ToNumber(desc.GetValue())
	assert.Equal(t, float64(1), n)
}

func TestDefineOwnPropertyRejectsAccessorDataSwapOnNonConfigurable(t *testing.T) {
	host := newFakeHost()
	obj := NewObject(host.interner, nil)
	p := host.interner.Intern("p")

	ok, err := obj.DefineOwnProperty(host, p, dataDesc(jsvalue.NewNumber(1), true, true, false), true)
	require.True(t, ok)
	require.Nil(t, err)

	getter := NewFunction(host.interner, nil, FunctionDesc{Kind: FunctionNative, ArgCount: 0})
	setter := NewFunction(host.interner, nil, FunctionDesc{Kind: FunctionNative, ArgCount: 1})
	accessor := jsvalue.Descriptor{Get: jsvalue.ValuePtr(getter.AsValue()), Set: jsvalue.ValuePtr(setter.AsValue())}

	ok, err = obj.DefineOwnProperty(host, p, accessor, true)
	assert.False(t, ok)
	require.NotNil(t, err)
}

func TestDefineOwnPropertySameDescriptorIsNoop(t *testing.T) {
	host := newFakeHost()
	obj := NewObject(host.interner, nil)
	p := host.interner.Intern("p")
	desc := dataDesc(jsvalue.NewNumber(1), true, true, false)

	ok, err := obj.DefineOwnProperty(host, p, desc, true)
	require.True(t, ok)
	require.Nil(t, err)

	ok, err = obj.DefineOwnProperty(host, p, desc, true)
	assert.True(t, ok)
	assert.Nil(t, err)
}

func TestDefineOwnPropertyRejectsValueChangeOnNonWritableNonConfigurable(t *testing.T) {
	host := newFakeHost()
	obj := NewObject(host.interner, nil)
	p := host.interner.Intern("p")
	ok, err := obj.DefineOwnProperty(host, p, dataDesc(jsvalue.NewNumber(1), false, true, false), true)
	require.True(t, ok)
	require.Nil(t, err)

	ok, err = obj.DefineOwnProperty(host, p, jsvalue.Descriptor{Value: jsvalue.ValuePtr(jsvalue.NewNumber(2))}, true)
	assert.False(t, ok)
	require.NotNil(t, err)
}

func TestDefineOwnPropertyRejectsWritableToggleOnNonConfigurable(t *testing.T) {
	host := newFakeHost()
	obj := NewObject(host.interner, nil)
	p := host.interner.Intern("p")
	ok, err := obj.DefineOwnProperty(host, p, dataDesc(jsvalue.NewNumber(1), true, true, false), true)
	require.True(t, ok)
	require.Nil(t, err)

	ok, err = obj.DefineOwnProperty(host, p, jsvalue.Descriptor{Writable: jsvalue.BoolPtr(false)}, true)
	assert.False(t, ok, "a non-configurable data property must reject writable:true->false too")
	require.NotNil(t, err)

	desc, _ := obj.GetOwnProperty(p)
	assert.True(t, desc.IsWritable(), "the failed redefine must not have changed writable")
}

func TestDeleteAbsentPropertyReturnsTrue(t *testing.T) {
	host := newFakeHost()
	obj := NewObject(host.interner, nil)
	ghost := host.interner.Intern("ghost")
	ok, err := obj.Delete(host, ghost, true)
	assert.True(t, ok)
	assert.Nil(t, err)
}

func TestDeleteNonConfigurableFails(t *testing.T) {
	host := newFakeHost()
	obj := NewObject(host.interner, nil)
	p := host.interner.Intern("p")
	obj.DefineOwnProperty(host, p, dataDesc(jsvalue.NewNumber(1), true, true, false), true)

	ok, err := obj.Delete(host, p, true)
	assert.False(t, ok)
	require.NotNil(t, err)
}

func TestDeleteConfigurableRemoves(t *testing.T) {
	host := newFakeHost()
	obj := NewObject(host.interner, nil)
	p := host.interner.Intern("p")
	obj.DefineOwnProperty(host, p, dataDesc(jsvalue.NewNumber(1), true, true, true), true)

	ok, err := obj.Delete(host, p, true)
	require.True(t, ok)
	require.Nil(t, err)
	_, exists := obj.GetOwnProperty(p)
	assert.False(t, exists)
}
