package couponcode

import (
	"crypto/rand"
	"crypto/sha1"
	"fmt"
	"io"
	"strings"
)

// seedBytes is the entropy drawn from the random source for one
// unseeded code.
const seedBytes = 8

// Generator produces, validates and normalizes codes of one configured
// shape. It is immutable after New and safe for concurrent use.
type Generator struct {
	prefix     string    // normalized, "" for none
	separator  byte      // joins prefix and parts
	parts      int       // groups per code
	partLength int       // symbols per group, check character included
	random     io.Reader // entropy source for unseeded generation
}

// New builds a Generator from the default shape adjusted by the given
// options. Option values that do not describe a usable shape are
// reported as ErrInvalidConfig.
func New(opts ...Option) (*Generator, error) {
	g := &Generator{
		separator:  DefaultSeparator,
		parts:      DefaultParts,
		partLength: DefaultPartLength,
		random:     rand.Reader,
	}
	for _, opt := range opts {
		opt(g)
	}
	if err := g.checkConfig(); err != nil {
		return nil, err
	}
	return g, nil
}

// MustNew is New panicking instead of returning an error, for
// package-level generators built from known-good options.
func MustNew(opts ...Option) *Generator {
	g, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return g
}

func (g *Generator) checkConfig() error {
	if g.parts < 1 {
		return fmt.Errorf("%w: parts %d, need at least 1", ErrInvalidConfig, g.parts)
	}
	if g.partLength < 2 {
		return fmt.Errorf("%w: part length %d, need at least 2", ErrInvalidConfig, g.partLength)
	}
	if g.separator < ' ' || g.separator > '~' {
		return fmt.Errorf("%w: separator %q is not printable ASCII", ErrInvalidConfig, g.separator)
	}
	// Case folding runs before separators are stripped, so the folded
	// form of the separator must not land in the alphabet either.
	sep := g.separator
	if sep >= 'a' && sep <= 'z' {
		sep -= 'a' - 'A'
	}
	if symbolIndex[sep] >= 0 || confusables[sep] != 0 {
		return fmt.Errorf("%w: separator %q reads as a code symbol", ErrInvalidConfig, g.separator)
	}
	if g.random == nil {
		return fmt.Errorf("%w: nil random source", ErrInvalidConfig)
	}
	if g.prefix != "" {
		p := normalizeText(g.prefix, true, true)
		if p == "" {
			return fmt.Errorf("%w: prefix %q has no alphabet symbols", ErrInvalidConfig, g.prefix)
		}
		g.prefix = p
	}
	return nil
}

// Generate returns a new code derived from the configured random
// source. A failed entropy read reports ErrRandomSource; shapes too
// large for one digest report ErrInsufficientEntropy.
func (g *Generator) Generate() (string, error) {
	seed := make([]byte, seedBytes)
	if _, err := io.ReadFull(g.random, seed); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRandomSource, err)
	}
	return g.GenerateFromSeed(seed)
}

// GenerateFromSeed derives a code from seed alone: the same seed and
// configuration produce the same code across runs and across
// implementations. The seed is hashed, every digest byte is projected
// onto the alphabet, and parts are cut from the resulting symbol
// stream in order. A part that spells a denylisted word is discarded
// and its symbols stay consumed, so the next part is cut further into
// the stream. Shapes that need more symbols than the stream holds fail
// with ErrInsufficientEntropy; the caller may retry with a fresh seed.
func (g *Generator) GenerateFromSeed(seed []byte) (string, error) {
	digest := sha1.Sum(seed)

	var stream [sha1.Size]byte
	for i, b := range digest {
		stream[i] = alphabet[b&31]
	}

	dataLen := g.partLength - 1
	accepted := make([]string, 0, g.parts)
	for off := 0; len(accepted) < g.parts; off += dataLen {
		if dataLen > len(stream)-off {
			return "", fmt.Errorf("%w: filled %d of %d parts from a %d-symbol stream",
				ErrInsufficientEntropy, len(accepted), g.parts, len(stream))
		}
		data := string(stream[off : off+dataLen])
		check, err := CheckCharacter(len(accepted)+1, data)
		if err != nil {
			return "", err
		}
		candidate := data + string(rune(check))
		if isBadWord(candidate) {
			continue
		}
		accepted = append(accepted, candidate)
	}

	var b strings.Builder
	b.Grow(len(g.prefix) + g.parts*(g.partLength+1))
	if g.prefix != "" {
		b.WriteString(g.prefix)
		b.WriteByte(g.separator)
	}
	for i, part := range accepted {
		if i > 0 {
			b.WriteByte(g.separator)
		}
		b.WriteString(part)
	}
	return b.String(), nil
}

// Parts returns the number of parts in codes of this shape.
func (g *Generator) Parts() int { return g.parts }

// PartLength returns the symbols per part, check character included.
func (g *Generator) PartLength() int { return g.partLength }

// Separator returns the byte joining prefix and parts.
func (g *Generator) Separator() byte { return g.separator }

// Prefix returns the normalized prefix, or "" when none is configured.
func (g *Generator) Prefix() string { return g.prefix }
