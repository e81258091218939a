package couponcode

import "errors"

// Generation and configuration errors
var (
	// ErrInsufficientEntropy is returned when the digest-derived symbol
	// stream runs out before every part has been filled. The configured
	// shape needs more symbols than one digest provides, either outright
	// or after denylist retries consumed the surplus.
	ErrInsufficientEntropy = errors.New("couponcode: insufficient entropy for configured code shape")

	// ErrRandomSource is returned by Generate when reading from the
	// random source fails. Seeded generation never returns it.
	ErrRandomSource = errors.New("couponcode: random source unavailable")

	// ErrInvalidSymbol is returned by CheckCharacter when the data
	// contains a character outside the alphabet. Normalize input first.
	ErrInvalidSymbol = errors.New("couponcode: symbol not in alphabet")

	// ErrInvalidConfig is returned by New for option values that do not
	// describe a usable code shape.
	ErrInvalidConfig = errors.New("couponcode: invalid configuration")
)
