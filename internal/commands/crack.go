package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/govig/internal/config"
	"github.com/idelchi/govig/internal/logic"
	"github.com/idelchi/govig/pkg/analysis"
)

// NewCrackCommand creates a new cobra command for the crack subcommand.
func NewCrackCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "crack [flags] [files...]",
		Short: "Recover the repeating key of English ciphertext",
		Long: `Estimates the key length with the index of coincidence and recovers each key symbol
by chi-squared comparison against English letter frequencies.
Prints the key and, unless quiet, the recovered plaintext.`,
		Args: cobra.ArbitraryArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Mode = config.ModeCrack

			return preRun(cfg)(cmd, args)
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return logic.Run(cfg)
		},
	}

	cmd.Flags().Int("max-key-length", analysis.DefaultMaxKeyLength, "Longest key length to consider")

	return cmd
}
