// Package app implements the main application command.
package app

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// version is injected at build time via -ldflags "-X github.com/pwkit/pwkit/app.version=...".
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "pwkit",
	Short: "pwkit generates a single random password",
	Long: `pwkit prints one random password built from alphanumeric characters and a
configurable set of symbol classes, drawing every character from the operating
system's cryptographically secure random source.`,
	Version:       version,
	Args:          cobra.NoArgs,
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		log.Error().Err(err).Msg("password generation failed")
	}

	return err
}
