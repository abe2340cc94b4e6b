package object

import (
	"testing"

	"github.com/nooga/jsobjectcore/pkg/jsvalue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasInstanceChain(t *testing.T) {
	host := newFakeHost()
	p := NewObject(host.interner, nil)
	f := NewFunction(host.interner, nil, FunctionDesc{Kind: FunctionNative, ArgCount: 0})
	prototypeName := host.interner.Intern("prototype")
	ok, err := f.DefineOwnProperty(host, prototypeName, dataDesc(p.AsValue(), true, false, false), true)
	require.True(t, ok)
	require.Nil(t, err)

	grand := NewObject(host.interner, p)
	child := NewObject(host.interner, grand)

	result, err := f.HasInstance(host, prototypeName, child.AsValue())
	require.Nil(t, err)
	assert.True(t, result)
}

func TestHasInstanceFalseWhenNotInChain(t *testing.T) {
	host := newFakeHost()
	p := NewObject(host.interner, nil)
	f := NewFunction(host.interner, nil, FunctionDesc{Kind: FunctionNative, ArgCount: 0})
	prototypeName := host.interner.Intern("prototype")
	f.DefineOwnProperty(host, prototypeName, dataDesc(p.AsValue(), true, false, false), true)

	unrelated := NewObject(host.interner, nil)
	result, err := f.HasInstance(host, prototypeName, unrelated.AsValue())
	require.Nil(t, err)
	assert.False(t, result)
}

func TestHasInstanceOnNonCallableFails(t *testing.T) {
	host := newFakeHost()
	notAFunction := NewObject(host.interner, nil)
	prototypeName := host.interner.Intern("prototype")

	_, err := notAFunction.HasInstance(host, prototypeName, jsvalue.Undefined)
	require.NotNil(t, err)
}

func TestHasInstanceOnNonObjectValueReturnsFalse(t *testing.T) {
	host := newFakeHost()
	f := NewFunction(host.interner, nil, FunctionDesc{Kind: FunctionNative, ArgCount: 0})
	prototypeName := host.interner.Intern("prototype")
	p := NewObject(host.interner, nil)
	f.DefineOwnProperty(host, prototypeName, dataDesc(p.AsValue(), true, false, false), true)

	result, err := f.HasInstance(host, prototypeName, jsvalue.NewNumber(3))
	require.Nil(t, err)
	assert.False(t, result)
}
