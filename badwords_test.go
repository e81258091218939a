package couponcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRot13(t *testing.T) {
	assert.Equal(t, "ABCR", rot13("NOPE"))
	assert.Equal(t, "N1-o2", rot13("A1-b2"), "non-letters pass through")
	assert.Equal(t, "whatever", rot13(rot13("whatever")), "applying twice restores the input")
	assert.Equal(t, "", rot13(""))
}

func TestBadWords_DecodedSet(t *testing.T) {
	words := badWords()
	assert.Len(t, words, len(badWordsRot13))
	for w := range words {
		assert.Len(t, w, 4, "entry %q", w)
		assert.Equal(t, w, normalizeText(w, true, true), "entry %q must be stored normalized", w)
	}
}

func TestIsBadWord(t *testing.T) {
	assert.True(t, isBadWord("PHAT"))
	assert.True(t, isBadWord("J122"))
	assert.False(t, isBadWord("phat"), "membership is exact, callers normalize first")
	assert.False(t, isBadWord("1K7Q"))
	assert.False(t, isBadWord(""))
}
