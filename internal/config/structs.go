package config

import (
	"github.com/pwkit/pwkit/internal/alphabet"
)

// DefaultLength is the password length used when --length is not given.
const DefaultLength = 36

// Config is the fully resolved configuration for one invocation. All values
// come from command line flags; no files or environment variables are read
// and nothing is persisted across invocations.
type Config struct {
	Length          int  `validate:"min=1,max=512"` // number of characters to generate
	NoSymbols       bool // disable the symbol class
	ExtendedSymbols bool // enable backtick, quotes and slashes
	AllowSpace      bool // enable the space character
	Debug           bool // debug logging on stderr
}

// Classes returns the optional character classes this configuration enables.
// The alphanumeric baseline is always on and is not listed here.
func (c Config) Classes() []alphabet.Class {
	var classes []alphabet.Class

	if !c.NoSymbols {
		classes = append(classes, alphabet.Symbols)
	}

	if c.ExtendedSymbols {
		classes = append(classes, alphabet.ExtendedSymbols)
	}

	if c.AllowSpace {
		classes = append(classes, alphabet.Space)
	}

	return classes
}
