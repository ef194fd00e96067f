package alphabet

// Class identifies one fixed, immutable set of candidate characters.
type Class int

const (
	// Alphanumeric is the always-on baseline class (A-Z, a-z, 0-9).
	Alphanumeric Class = iota
	// Symbols is the default-on punctuation class.
	Symbols
	// ExtendedSymbols holds quoting and escaping characters that tend to
	// upset shells and config files, so it is opt-in.
	ExtendedSymbols
	// Space is a single space character, opt-in.
	Space
)

var classChars = map[Class][]byte{
	Alphanumeric:    []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"),
	Symbols:         []byte("!@#$%^&*()-_=+[]{}|;:,.<>?"),
	ExtendedSymbols: []byte("`\"'/\\"),
	Space:           []byte(" "),
}

// Chars returns a copy of the character set backing a class. Unknown classes
// yield an empty slice.
func (c Class) Chars() []byte {
	chars, ok := classChars[c]
	if !ok {
		return nil
	}

	out := make([]byte, len(chars))
	copy(out, chars)

	return out
}

// Build returns the sampling alphabet for the given optional classes: the
// alphanumeric baseline followed by each listed class, in order, with
// duplicates removed on first occurrence. Dedup keeps selection probability
// uniform per distinct character should class sets ever overlap. The result
// is never empty.
func Build(classes ...Class) []byte {
	var (
		seen [256]bool
		out  []byte
	)

	for _, class := range append([]Class{Alphanumeric}, classes...) {
		for _, ch := range classChars[class] {
			if seen[ch] {
				continue
			}

			seen[ch] = true

			out = append(out, ch)
		}
	}

	return out
}
