package couponcode

// Symbol alphabet shared by every conforming implementation. I, O, S and
// Z are excluded: they read as 1, 0, 5 and 2. Order is load-bearing: a
// symbol's index feeds the checksum, and digest bytes are projected onto
// the alphabet by masking with len(alphabet)-1.
const alphabet = "0123456789ABCDEFGHJKLMNPQRTUVWXY"

// checksumModulus is one less than the alphabet size, so the final
// symbol Y can appear in data but never as a check character. Part of
// the historical checksum contract; changing it invalidates every
// issued code.
const checksumModulus = len(alphabet) - 1

// symbolIndex maps an ASCII byte to its alphabet index, -1 for
// non-members. Lookup is strict: confusables are not folded in here,
// normalization substitutes them before any index is taken.
var symbolIndex [128]int8

// confusables maps bytes commonly misread for an alphabet symbol to
// that symbol, 0 for no substitution. Both cases are mapped, so
// substitution works even when case folding is off.
var confusables [128]byte

func init() {
	for i := range symbolIndex {
		symbolIndex[i] = -1
	}
	for i := 0; i < len(alphabet); i++ {
		c := alphabet[i]
		if symbolIndex[c] != -1 {
			panic("couponcode: duplicate alphabet symbol " + string(c))
		}
		symbolIndex[c] = int8(i)
	}

	confusables['I'], confusables['i'] = '1', '1'
	confusables['O'], confusables['o'] = '0', '0'
	confusables['S'], confusables['s'] = '5', '5'
	confusables['Z'], confusables['z'] = '2', '2'
}
