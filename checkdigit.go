package couponcode

import "fmt"

// CheckCharacter derives the check character for one part of a code.
// partNumber is the part's 1-based position and data is the part's
// symbols without the trailing check character. The position seeds the
// accumulator, so a part moved to another slot fails its check even
// though its symbols are untouched.
//
// data must already be normalized: any byte outside the alphabet
// returns ErrInvalidSymbol. Swapping two characters within a part is
// not guaranteed to change the result; that weakness is part of the
// checksum contract and is kept for compatibility.
func CheckCharacter(partNumber int, data string) (byte, error) {
	acc := partNumber
	for i := 0; i < len(data); i++ {
		c := data[i]
		if c >= 128 || symbolIndex[c] < 0 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidSymbol, c)
		}
		// Reducing every step keeps the accumulator small; the final
		// check character is identical to reducing once at the end.
		acc = (acc*19 + int(symbolIndex[c])) % checksumModulus
	}
	return alphabet[acc%checksumModulus], nil
}
