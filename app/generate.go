package app

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pwkit/pwkit/internal/alphabet"
	"github.com/pwkit/pwkit/internal/config"
	"github.com/pwkit/pwkit/internal/logger"
	"github.com/pwkit/pwkit/internal/password"
)

func init() { //nolint: gochecknoinits
	rootCmd.Flags().IntP("length", "l", config.DefaultLength, "number of characters (1-512)")
	rootCmd.Flags().BoolP("no-symbols", "n", false, "exclude symbol characters")
	rootCmd.Flags().BoolP("extended-symbols", "e", false, "include backtick, quotes and slashes")
	rootCmd.Flags().BoolP("allow-space", "s", false, "include the space character")
	rootCmd.Flags().Bool("debug", false, "enable debug logging on stderr")
	rootCmd.Flags().BoolP("version", "V", false, "print version information")

	// All configuration flows through viper; no file or environment sources
	// are attached, the tool is configured by flags alone.
	if err := viper.BindPFlags(rootCmd.Flags()); err != nil {
		panic(err)
	}
}

// resolveConfig collects the bound flag values into a Config.
func resolveConfig() config.Config {
	return config.Config{
		Length:          viper.GetInt("length"),
		NoSymbols:       viper.GetBool("no-symbols"),
		ExtendedSymbols: viper.GetBool("extended-symbols"),
		AllowSpace:      viper.GetBool("allow-space"),
		Debug:           viper.GetBool("debug"),
	}
}

func run(cmd *cobra.Command, _ []string) error {
	cfg := resolveConfig()

	logger.Init(cfg.Debug)

	if err := config.Validate(cfg); err != nil {
		return err
	}

	chars := alphabet.Build(cfg.Classes()...)

	log.Debug().
		Int("alphabet_size", len(chars)).
		Int("length", cfg.Length).
		Msg("generating password")

	pw, err := password.Generate(chars, cfg.Length)
	if err != nil {
		return err
	}

	// The password is the only thing ever written to stdout.
	_, err = fmt.Fprintln(cmd.OutOrStdout(), pw)

	return err
}
