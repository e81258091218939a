// Package couponcode generates and validates short, human-typable codes
// of the form XXXX-XXXX-XXXX, where every group ends in a check character.
//
// Codes are designed to be:
//   - Easy to read aloud and retype (no ambiguous symbols)
//   - Self-checking (one check character per group)
//   - Forgiving of common typos (case and confusable folding)
//   - Clean (generated codes never contain denylisted words)
//   - Reproducible (the same seed always yields the same code)
//
// # Alphabet
//
// Codes use a fixed 32-symbol alphabet:
//
//	0123456789ABCDEFGHJKLMNPQRTUVWXY
//
// The letters I, O, S and Z are excluded because they read as 1, 0, 5
// and 2. Validation and normalization fold them back onto those digits,
// so a user who types "I9oD" is understood to mean "190D".
//
// # Code shape
//
// A code is a fixed number of parts joined by a separator. Each part is
// partLength-1 data symbols followed by one check character derived from
// the data and the part's position, so parts cannot be reordered:
//
//	1K7Q-CTFM-LMTC        3 parts x 4 symbols (default)
//	5AVE-1K7Q-CTFM-LMTC   the same code with a configured prefix
//
// # Usage
//
// The package-level functions use the default shape:
//
//	code, err := couponcode.Generate()
//	ok := couponcode.Validate("i9od-v467-8d52")
//
// Other shapes are configured once on a Generator:
//
//	g, err := couponcode.New(
//		couponcode.WithParts(4),
//		couponcode.WithPrefix("SAVE"),
//	)
//	code, err = g.Generate()
//
// Generation is deterministic when seeded via GenerateFromSeed, which is
// how the golden vectors shared with other implementations are produced.
// Unseeded generation draws 8 bytes from crypto/rand.
package couponcode
