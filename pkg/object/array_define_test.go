package object

import (
	"testing"

	"github.com/nooga/jsobjectcore/pkg/jsvalue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lengthOf(t *testing.T, arr *JsObject, host *fakeHost) float64 {
	t.Helper()
	desc, ok := arr.GetOwnProperty(host.interner.Intern("length"))
	require.True(t, ok)
	n, _ := jsvalue.ToNumber(desc.GetValue())
	return n
}

func TestArrayLengthTruncationScenario(t *testing.T) {
	host := newFakeHost()
	arr := NewArrayObject(host.interner, nil)
	for i := 0; i < 5; i++ {
		idx := jsvalue.NameFromIndex(uint32(i))
		ok, err := arr.DefineOwnProperty(host, idx, dataDesc(jsvalue.NewNumber(float64(i)), true, true, true), true)
		require.True(t, ok)
		require.Nil(t, err)
	}
	require.Equal(t, float64(5), lengthOf(t, arr, host))

	lengthName := host.interner.Intern("length")
	ok, err := arr.DefineOwnProperty(host, lengthName, jsvalue.Descriptor{Value: jsvalue.ValuePtr(jsvalue.NewNumber(2))}, true)
	require.True(t, ok)
	require.Nil(t, err)

	assert.Equal(t, float64(2), lengthOf(t, arr, host))
	_, exists := arr.GetOwnProperty(jsvalue.NameFromIndex(3))
	assert.False(t, exists)
	_, exists = arr.GetOwnProperty(jsvalue.NameFromIndex(0))
	assert.True(t, exists)
}

func TestArrayNonWritableLengthRejectsNewIndex(t *testing.T) {
	host := newFakeHost()
	arr := NewArrayObject(host.interner, nil)
	lengthName := host.interner.Intern("length")

	ok, err := arr.DefineOwnProperty(host, lengthName, jsvalue.Descriptor{
		Value:    jsvalue.ValuePtr(jsvalue.NewNumber(3)),
		Writable: jsvalue.BoolPtr(false),
	}, true)
	require.True(t, ok)
	require.Nil(t, err)

	ok, err = arr.DefineOwnProperty(host, jsvalue.NameFromIndex(5), dataDesc(jsvalue.NewString("z"), true, true, true), true)
	assert.False(t, ok)
	require.NotNil(t, err)
}

func TestArrayNonIntegerLengthRejected(t *testing.T) {
	host := newFakeHost()
	arr := NewArrayObject(host.interner, nil)
	lengthName := host.interner.Intern("length")

	ok, err := arr.DefineOwnProperty(host, lengthName, jsvalue.Descriptor{Value: jsvalue.ValuePtr(jsvalue.NewNumber(1.5))}, true)
	assert.False(t, ok)
	require.NotNil(t, err)
}

func TestArrayWritingIndexBeyondLengthGrowsLength(t *testing.T) {
	host := newFakeHost()
	arr := NewArrayObject(host.interner, nil)

	ok, err := arr.DefineOwnProperty(host, jsvalue.NameFromIndex(9), dataDesc(jsvalue.NewNumber(9), true, true, true), true)
	require.True(t, ok)
	require.Nil(t, err)
	assert.Equal(t, float64(10), lengthOf(t, arr, host))
}

func TestArrayTruncationStopsAtNonConfigurableIndex(t *testing.T) {
	host := newFakeHost()
	arr := NewArrayObject(host.interner, nil)
	for i := 0; i < 5; i++ {
		configurable := i != 2
		idx := jsvalue.NameFromIndex(uint32(i))
		ok, err := arr.DefineOwnProperty(host, idx, dataDesc(jsvalue.NewNumber(float64(i)), true, true, configurable), true)
		require.True(t, ok)
		require.Nil(t, err)
	}

	lengthName := host.interner.Intern("length")
	arr.DefineOwnProperty(host, lengthName, jsvalue.Descriptor{Value: jsvalue.ValuePtr(jsvalue.NewNumber(0))}, true)

	assert.Equal(t, float64(3), lengthOf(t, arr, host))
	_, exists := arr.GetOwnProperty(jsvalue.NameFromIndex(2))
	assert.True(t, exists)
}
