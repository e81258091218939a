package couponcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackageLevelAPI(t *testing.T) {
	code, err := GenerateFromSeed([]byte("1234567890"))
	require.NoError(t, err)
	assert.Equal(t, "1K7Q-CTFM-LMTC", code)
	assert.True(t, Validate(code))
	assert.True(t, Validate("i9od-v467-8d52"))
	assert.False(t, Validate("190D-V467"))
	assert.Equal(t, "190D-V467-8D52", Normalize("I9oD-V467-8D52"))

	first, err := Generate()
	require.NoError(t, err)
	second, err := Generate()
	require.NoError(t, err)
	assert.True(t, Validate(first))
	assert.True(t, Validate(second))
	assert.NotEqual(t, first, second)
}
