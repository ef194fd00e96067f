// Package password generates one cryptographically secure random password by
// independent uniform sampling from a caller-supplied alphabet. Sampling uses
// rejection of out-of-range random bytes so every alphabet character has
// exactly equal selection probability.
package password
