package couponcode

import (
	"strings"
	"sync"
)

// The denylist ships ROT13-obfuscated so the plain words never appear
// in source control. Every entry decodes and normalizes to exactly one
// part of the default shape; candidate parts are screened whole, check
// character included.
var badWordsRot13 = []string{
	"SHPX", "PHAG", "JNAX", "JNAT", "CVFF", "PBPX", "FUVG",
	"GJNG", "GVGF", "SNEG", "URYY", "ZHSS", "QVPX", "XABO",
	"NEFR", "FUNT", "GBFF", "FYHG", "GHEQ", "FYNT", "PENC",
	"CBBC", "OHGG", "SRPX", "OBBO", "WVFZ", "WVMM", "CUNG",
}

// badWords decodes and normalizes the denylist on first use. The set is
// read-only afterwards and shared by all generators.
var badWords = sync.OnceValue(func() map[string]struct{} {
	set := make(map[string]struct{}, len(badWordsRot13))
	for _, w := range badWordsRot13 {
		set[normalizeText(rot13(w), true, true)] = struct{}{}
	}
	return set
})

// rot13 shifts every Latin letter 13 places and leaves other bytes
// alone. Applying it twice returns the input.
func rot13(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'A' && c <= 'Z':
			c = 'A' + (c-'A'+13)%26
		case c >= 'a' && c <= 'z':
			c = 'a' + (c-'a'+13)%26
		}
		b.WriteByte(c)
	}
	return b.String()
}

// isBadWord reports whether a normalized candidate part is denylisted.
func isBadWord(candidate string) bool {
	_, ok := badWords()[candidate]
	return ok
}
