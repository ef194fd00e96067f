// Package config holds the resolved invocation configuration.
package config

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var validate = validator.New()

// Validate checks the resolved configuration before any generation happens.
// The only failure mode is a length outside [1,512]; character class flags
// cannot produce an invalid combination because the alphanumeric baseline is
// unconditional.
func Validate(c Config) error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrapf(ErrLengthOutOfRange, "got %d", c.Length)
	}

	return nil
}
