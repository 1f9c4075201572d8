package engines

import (
	"testing"

	"github.com/ValentinKolb/oarr/lib/array"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseImplementation(t *testing.T) {
	impl, err := ParseImplementation(" Stamp ")
	require.NoError(t, err)
	assert.Equal(t, array.ImplStamp, impl)

	impl, err = ParseImplementation("overlay")
	require.NoError(t, err)
	assert.Equal(t, array.ImplOverlay, impl)

	_, err = ParseImplementation("maple")
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	for _, impl := range Implementations {
		arr, err := New(impl, 10)
		require.NoError(t, err)
		assert.Equal(t, 10, arr.Len())
		assert.Equal(t, impl, arr.GetInfo().Engine)
	}

	_, err := New("unknown", 10)
	assert.Error(t, err)

	_, err = New(array.ImplStamp, -1)
	assert.Error(t, err)
}

func TestFactory(t *testing.T) {
	factory, err := Factory(array.ImplOverlay, 5)
	require.NoError(t, err)

	a, b := factory(), factory()
	require.NoError(t, a.SetOne(0, 1))

	v, err := b.Get(0)
	require.NoError(t, err)
	assert.Equal(t, byte(0), v, "factory must return independent arrays")

	_, err = Factory("unknown", 5)
	assert.Error(t, err)

	_, err = Factory(array.ImplStamp, -1)
	assert.Error(t, err)
}

func TestFactoryDoesNotAllocate(t *testing.T) {
	// far too large to allocate, only the returned constructor may build it
	for _, impl := range Implementations {
		factory, err := Factory(impl, 1<<40)
		require.NoError(t, err)
		assert.NotNil(t, factory)
	}
}
