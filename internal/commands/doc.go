// Package commands provides the command-line interface for the govig tool.
//
// It implements commands for:
//   - encryption
//   - decryption
//   - key recovery
//
// The package handles command-line parsing, configuration validation,
// and environment variable binding through cobra and viper.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/gogen/pkg/cobraext"
	"github.com/idelchi/govig/internal/config"
)

// preRun returns a PreRunE handler that stores positional args in cfg.Files
// and validates the configuration. No args means standard input.
func preRun(cfg *config.Config) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, args []string) error {
		cfg.Files = args

		return cobraext.Validate(cfg, cfg)
	}
}
