package couponcode

import "io"

// Default code shape. Three parts of four symbols joined by dashes is
// the shape shared with other implementations of this algorithm.
const (
	DefaultParts      = 3
	DefaultPartLength = 4
	DefaultSeparator  = '-'
)

// Option adjusts one configuration value on a Generator under
// construction. The assembled configuration is validated by New after
// all options have been applied.
type Option func(*Generator)

// WithParts sets the number of parts in a code. Must be at least 1.
func WithParts(n int) Option {
	return func(g *Generator) { g.parts = n }
}

// WithPartLength sets the number of symbols per part, check character
// included. Must be at least 2.
func WithPartLength(n int) Option {
	return func(g *Generator) { g.partLength = n }
}

// WithSeparator sets the byte that joins the parts of a code. It must
// be printable ASCII and must not read as an alphabet symbol in any
// case, or separators could not be told apart from code symbols.
func WithSeparator(sep byte) Option {
	return func(g *Generator) { g.separator = sep }
}

// WithPrefix sets a literal token emitted ahead of every generated code
// and recognized ahead of validated ones. The prefix is stored in its
// normalized form, so a generated code passes through Normalize
// unchanged. A non-empty prefix that normalizes to nothing is rejected
// by New.
func WithPrefix(prefix string) Option {
	return func(g *Generator) { g.prefix = prefix }
}

// WithRandom sets the entropy source for unseeded Generate calls. It
// defaults to crypto/rand's reader; tests substitute deterministic
// readers to pin generated codes.
func WithRandom(r io.Reader) Option {
	return func(g *Generator) { g.random = r }
}
