package couponcode

// Validate reports whether code is a well-formed, checksum-correct code
// of this generator's shape. Input is forgiven everything normalization
// forgives: case, confusables, stray separators, foreign characters.
// With a prefix configured, input carrying a prefix token is checked
// against it and input without one is judged on its body alone.
// Malformed input of any kind is false, never an error.
func (g *Generator) Validate(code string) bool {
	body, mismatch := g.cutPrefix(code)
	if mismatch {
		return false
	}
	clean := normalizeText(body, true, true)
	if len(clean) != g.parts*g.partLength {
		return false
	}
	for i := 0; i < g.parts; i++ {
		part := clean[i*g.partLength : (i+1)*g.partLength]
		check, err := CheckCharacter(i+1, part[:len(part)-1])
		if err != nil || check != part[len(part)-1] {
			return false
		}
	}
	return true
}
