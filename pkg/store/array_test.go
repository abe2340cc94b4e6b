package store

import (
	"testing"

	"github.com/nooga/jsobjectcore/pkg/jsvalue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestArrayStore() (*ArrayStore, jsvalue.Name) {
	interner := jsvalue.NewInterner()
	lengthName := interner.Intern("length")
	s := NewArrayStore(lengthName)
	s.Add(lengthName, dataDesc(jsvalue.NewNumber(0), true, false, false))
	return s, lengthName
}

func TestArrayStoreAddGrowsLength(t *testing.T) {
	s, lengthName := newTestArrayStore()
	s.Add(jsvalue.NameFromIndex(0), dataDesc(jsvalue.NewString("a"), true, true, true))
	s.Add(jsvalue.NameFromIndex(2), dataDesc(jsvalue.NewString("c"), true, true, true))

	assert.EqualValues(t, 3, s.Length())

	d, ok := s.GetValue(lengthName)
	require.True(t, ok)
	n, _ := jsvalue.ToNumber(d.GetValue())
	assert.Equal(t, float64(3), n)

	v, ok := s.GetValue(jsvalue.NameFromIndex(1))
	assert.False(t, ok, "unset hole must not be present")
	_ = v
}

func TestArrayStoreNonIndexGoesToOverflow(t *testing.T) {
	s, _ := newTestArrayStore()
	interner := jsvalue.NewInterner()
	// Intern "length" first so foo gets a Name distinct from the store's
	// length key (both interners hand out ids from 0).
	interner.Intern("length")
	foo := interner.Intern("foo")
	s.Add(foo, dataDesc(jsvalue.NewNumber(9), true, true, true))

	d, ok := s.GetValue(foo)
	require.True(t, ok)
	n, _ := jsvalue.ToNumber(d.GetValue())
	assert.Equal(t, float64(9), n)
}

func TestArrayStoreLengthTruncationDeletesConfigurableTail(t *testing.T) {
	s, lengthName := newTestArrayStore()
	for i := uint32(0); i < 5; i++ {
		s.Add(jsvalue.NameFromIndex(i), dataDesc(jsvalue.NewNumber(float64(i)), true, true, true))
	}
	require.EqualValues(t, 5, s.Length())

	ok := s.Replace(lengthName, jsvalue.Descriptor{Value: jsvalue.ValuePtr(jsvalue.NewNumber(2))})
	require.True(t, ok)

	assert.EqualValues(t, 2, s.Length())
	_, ok0 := s.GetValue(jsvalue.NameFromIndex(0))
	_, ok1 := s.GetValue(jsvalue.NameFromIndex(1))
	_, ok3 := s.GetValue(jsvalue.NameFromIndex(3))
	assert.True(t, ok0)
	assert.True(t, ok1)
	assert.False(t, ok3)
}

func TestArrayStoreLengthTruncationStopsAtNonConfigurable(t *testing.T) {
	s, lengthName := newTestArrayStore()
	for i := uint32(0); i < 5; i++ {
		configurable := i != 2
		s.Add(jsvalue.NameFromIndex(i), dataDesc(jsvalue.NewNumber(float64(i)), true, true, configurable))
	}

	ok := s.Replace(lengthName, jsvalue.Descriptor{Value: jsvalue.ValuePtr(jsvalue.NewNumber(0))})
	require.True(t, ok)

	// index 2 is non-configurable, so truncation must stop there and
	// publish length 3, not the requested 0.
	assert.EqualValues(t, 3, s.Length())
	_, ok2 := s.GetValue(jsvalue.NameFromIndex(2))
	assert.True(t, ok2)
	_, ok4 := s.GetValue(jsvalue.NameFromIndex(4))
	assert.False(t, ok4)
}

func TestArrayStoreReplaceExistingIndex(t *testing.T) {
	s, _ := newTestArrayStore()
	s.Add(jsvalue.NameFromIndex(0), dataDesc(jsvalue.NewNumber(1), true, true, true))

	ok := s.Replace(jsvalue.NameFromIndex(0), jsvalue.Descriptor{Value: jsvalue.ValuePtr(jsvalue.NewNumber(42))})
	require.True(t, ok)

	d, _ := s.GetValue(jsvalue.NameFromIndex(0))
	n, _ := jsvalue.ToNumber(d.GetValue())
	assert.Equal(t, float64(42), n)
}

func TestArrayStoreRemoveIndex(t *testing.T) {
	s, _ := newTestArrayStore()
	s.Add(jsvalue.NameFromIndex(0), dataDesc(jsvalue.NewNumber(1), true, true, true))
	assert.True(t, s.Remove(jsvalue.NameFromIndex(0)))
	_, ok := s.GetValue(jsvalue.NameFromIndex(0))
	assert.False(t, ok)
	assert.False(t, s.Remove(jsvalue.NameFromIndex(0)))
}
