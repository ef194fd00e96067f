package password

import (
	"errors"
)

var (
	// ErrInvalidLength is returned if the requested length is outside [MinLength, MaxLength].
	ErrInvalidLength = errors.New("password length out of range")

	// ErrBadAlphabet is returned for alphabets the byte sampler cannot draw from.
	ErrBadAlphabet = errors.New("alphabet must contain between 2 and 256 characters")

	// ErrRandomSource is returned when the secure random source cannot supply
	// entropy. Fatal: the host is broken and a retry is pointless.
	ErrRandomSource = errors.New("secure random source unavailable")
)
