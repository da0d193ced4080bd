package states_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sivanandz/luminila-ERP-sub002/internal/states"
)

func TestNameForCode(t *testing.T) {
	name, ok := states.NameForCode("27")
	require.True(t, ok)
	assert.Equal(t, "Maharashtra", name)

	name, ok = states.NameForCode("29")
	require.True(t, ok)
	assert.Equal(t, "Karnataka", name)

	_, ok = states.NameForCode("99")
	assert.False(t, ok)

	// single-digit form without the leading zero is not a code
	_, ok = states.NameForCode("7")
	assert.False(t, ok)
}

func TestCodeForName(t *testing.T) {
	code, ok := states.CodeForName("Delhi")
	require.True(t, ok)
	assert.Equal(t, "07", code)

	_, ok = states.CodeForName("Atlantis")
	assert.False(t, ok)
}

func TestRoundTrip(t *testing.T) {
	for _, e := range states.All() {
		name, ok := states.NameForCode(e.Code)
		require.True(t, ok)
		code, ok := states.CodeForName(name)
		require.True(t, ok)
		assert.Equal(t, e.Code, code)
	}
}

func TestAll_SortedAndComplete(t *testing.T) {
	all := states.All()
	assert.Len(t, all, 37)
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].Code, all[i].Code)
	}
	// 28 was retired with the Andhra Pradesh split
	assert.False(t, states.IsValidCode("28"))
	assert.True(t, states.IsValidCode("38"))
}
