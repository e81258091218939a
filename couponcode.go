package couponcode

import "sync"

// std is the shared default-shape generator behind the package-level
// functions. Built lazily: the symbol tables are filled by package init,
// which runs after package-level variables are initialized.
var std = sync.OnceValue(func() *Generator {
	return MustNew()
})

// Generate returns a new random code in the default shape.
func Generate() (string, error) { return std().Generate() }

// GenerateFromSeed returns the default-shape code derived from seed.
// The same seed always yields the same code.
func GenerateFromSeed(seed []byte) (string, error) { return std().GenerateFromSeed(seed) }

// Validate reports whether code is a valid default-shape code.
func Validate(code string) bool { return std().Validate(code) }

// Normalize returns the canonical display form of code in the default
// shape.
func Normalize(code string) string { return std().Normalize(code) }
