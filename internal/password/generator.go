package password

import (
	"crypto/rand"
	"math"

	"github.com/pkg/errors"
)

const (
	// MinLength is the smallest accepted password length.
	MinLength = 1
	// MaxLength is the hard cap on password length.
	MaxLength = 512
)

const (
	// maxBufLen is the maximum length of a temporary buffer for random bytes.
	maxBufLen = 2048

	// minRegenBufLen is the minimum length of temporary buffer for random bytes
	// to fill after the first rand.Read request didn't produce the full result.
	// If the initial buffer is smaller, this value is ignored.
	// Rationale: for performance, assume it's pointless to request fewer bytes from rand.Read.
	minRegenBufLen = 16

	// maxByteValue is the maximum value of a byte (2^8 - 1).
	maxByteValue = 255

	// byteRange is the total number of possible byte values (2^8).
	byteRange = 256
)

// estimatedBufLen returns the estimated number of random bytes to request
// given that byte values greater than maxByte will be rejected.
func estimatedBufLen(need, maxByte int) int {
	return int(math.Ceil(float64(need) * (maxByteValue / float64(maxByte))))
}

// Generate returns one random string of exactly length characters, each
// drawn independently and uniformly from the provided alphabet (sampling
// with replacement, so repeats are expected).
//
// Each draw takes a byte from crypto/rand and rejects values greater than
// the largest multiple of len(alphabet) minus one before reducing modulo the
// alphabet size. A plain value%len would skew toward the low end of the
// alphabet whenever 256 is not a multiple of its size.
//
// Validation happens before any entropy is consumed; on failure no partial
// result is produced. Neither the password nor intermediate random values
// are ever logged.
func Generate(alphabet []byte, length int) (string, error) {
	if length < MinLength || length > MaxLength {
		return "", errors.Wrapf(ErrInvalidLength, "got %d, want %d-%d", length, MinLength, MaxLength)
	}

	clen := len(alphabet)
	if clen < 2 || clen > byteRange {
		return "", errors.Wrapf(ErrBadAlphabet, "got %d", clen)
	}

	maxRb := maxByteValue - (byteRange % clen)

	bufLen := estimatedBufLen(length, maxRb)
	if bufLen < length {
		bufLen = length
	}

	if bufLen > maxBufLen {
		bufLen = maxBufLen
	}

	buf := make([]byte, bufLen) // storage for random bytes
	out := make([]byte, length) // storage for result

	var i int // index in out
	for {
		if _, err := rand.Read(buf[:bufLen]); err != nil {
			return "", errors.Wrap(ErrRandomSource, err.Error())
		}

		for _, rb := range buf[:bufLen] {
			c := int(rb)
			if c > maxRb {
				// Skip this number to avoid modulo bias.
				continue
			}

			out[i] = alphabet[c%clen]
			i++

			if i == length {
				return string(out), nil
			}
		}

		// Adjust new requested length, but no smaller than minRegenBufLen.
		bufLen = estimatedBufLen(length-i, maxRb)
		if bufLen < minRegenBufLen && minRegenBufLen < cap(buf) {
			bufLen = minRegenBufLen
		}

		if bufLen > maxBufLen {
			bufLen = maxBufLen
		}
	}
}
