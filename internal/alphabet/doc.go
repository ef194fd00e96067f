// Package alphabet defines the fixed character classes a password may draw
// from and builds the effective sampling alphabet for an invocation.
package alphabet
