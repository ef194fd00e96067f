// Package main provides the entry point for the pwkit password generator.
// It wires a cobra based command line interface that builds a sampling
// alphabet from the enabled character classes and prints a single randomly
// generated password to standard output, drawing every character from the
// operating system's cryptographically secure random source.
package main
