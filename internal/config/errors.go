package config

import (
	"errors"
)

// ErrLengthOutOfRange is returned if the requested password length is not in [1,512].
var ErrLengthOutOfRange = errors.New("length must be between 1 and 512")
