package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/govig/internal/config"
	"github.com/idelchi/govig/internal/logic"
)

// NewEncryptCommand creates a new cobra command for the encrypt subcommand.
func NewEncryptCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:     "encrypt [flags] [files...]",
		Aliases: []string{"enc"},
		Short:   "Encrypt files, or standard input when no files are given",
		Args:    cobra.ArbitraryArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Mode = config.ModeEncrypt

			return preRun(cfg)(cmd, args)
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return logic.Run(cfg)
		},
	}
}
