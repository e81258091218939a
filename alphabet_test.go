package couponcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlphabet_ShapeAndExclusions(t *testing.T) {
	assert.Len(t, alphabet, 32)
	assert.Equal(t, 31, checksumModulus)

	seen := make(map[byte]bool, len(alphabet))
	for i := 0; i < len(alphabet); i++ {
		assert.False(t, seen[alphabet[i]], "duplicate symbol %q", alphabet[i])
		seen[alphabet[i]] = true
	}
	for _, c := range "IOSZ" {
		assert.NotContains(t, alphabet, string(c))
	}
}

func TestSymbolIndex_Lookup(t *testing.T) {
	for i := 0; i < len(alphabet); i++ {
		assert.Equal(t, int8(i), symbolIndex[alphabet[i]], "symbol %q", alphabet[i])
	}

	// Spot values other implementations agree on.
	assert.EqualValues(t, 0, symbolIndex['0'])
	assert.EqualValues(t, 10, symbolIndex['A'])
	assert.EqualValues(t, 18, symbolIndex['J'])
	assert.EqualValues(t, 23, symbolIndex['P'])
	assert.EqualValues(t, 26, symbolIndex['T'])
	assert.EqualValues(t, 31, symbolIndex['Y'])

	// Lookup is strict: confusables, lowercase and punctuation are not
	// alphabet members.
	for _, c := range []byte{'I', 'O', 'S', 'Z', 'a', 'y', '-', ' ', '!'} {
		assert.EqualValues(t, -1, symbolIndex[c], "byte %q", c)
	}
}

func TestConfusables_Mapping(t *testing.T) {
	want := map[byte]byte{
		'I': '1', 'i': '1',
		'O': '0', 'o': '0',
		'S': '5', 's': '5',
		'Z': '2', 'z': '2',
	}
	for in, out := range want {
		assert.Equal(t, out, confusables[in], "confusable %q", in)
	}
	for i := 0; i < len(alphabet); i++ {
		assert.Zero(t, confusables[alphabet[i]], "alphabet symbol %q must not be remapped", alphabet[i])
	}
}
