package couponcode

import "strings"

// normalizeText canonicalizes user-entered text toward the alphabet.
// With caseFold, ASCII letters are uppercased first. Confusables are
// substituted in either case. With stripInvalid, every remaining byte
// that is not an alphabet symbol is dropped, non-ASCII included.
// Always returns a string, possibly empty.
func normalizeText(text string, caseFold, stripInvalid bool) string {
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		if caseFold && c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		if c < 128 {
			if sub := confusables[c]; sub != 0 {
				c = sub
			}
		}
		if stripInvalid && (c >= 128 || symbolIndex[c] < 0) {
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// cutPrefix removes a leading prefix token from raw input. A token is
// recognized by count alone: with a prefix configured, input with
// exactly parts+1 separator-delimited tokens is treated as prefixed.
// mismatch reports that the token was there but did not normalize to
// the configured prefix; body is then the unmodified input.
func (g *Generator) cutPrefix(code string) (body string, mismatch bool) {
	if g.prefix == "" {
		return code, false
	}
	sep := string(g.separator)
	if strings.Count(code, sep) != g.parts {
		return code, false
	}
	head, rest, _ := strings.Cut(code, sep)
	if normalizeText(head, true, true) != g.prefix {
		return code, true
	}
	return rest, false
}

// Normalize returns the canonical display form of code: case folded,
// confusables substituted, foreign characters dropped, separators
// re-inserted at part boundaries and the configured prefix reapplied.
// Input whose symbols do not fill the configured shape exactly comes
// back cleaned but ungrouped. Normalize never fails and never checks
// checksums; a normalized string is not necessarily a valid code.
func (g *Generator) Normalize(code string) string {
	body, _ := g.cutPrefix(code)
	clean := normalizeText(body, true, true)
	if len(clean) != g.parts*g.partLength {
		return clean
	}

	var b strings.Builder
	b.Grow(len(g.prefix) + len(clean) + g.parts)
	if g.prefix != "" {
		b.WriteString(g.prefix)
		b.WriteByte(g.separator)
	}
	for i := 0; i < g.parts; i++ {
		if i > 0 {
			b.WriteByte(g.separator)
		}
		b.WriteString(clean[i*g.partLength : (i+1)*g.partLength])
	}
	return b.String()
}
