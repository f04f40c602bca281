package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/govig/internal/config"
	"github.com/idelchi/govig/internal/logic"
)

// NewDecryptCommand creates a new cobra command for the decrypt subcommand.
func NewDecryptCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:     "decrypt [flags] [files...]",
		Aliases: []string{"dec"},
		Short:   "Decrypt files, or standard input when no files are given",
		Args:    cobra.ArbitraryArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Mode = config.ModeDecrypt

			return preRun(cfg)(cmd, args)
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return logic.Run(cfg)
		},
	}
}
