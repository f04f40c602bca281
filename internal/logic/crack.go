package logic

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/idelchi/govig/internal/config"
	"github.com/idelchi/govig/pkg/analysis"
	"github.com/idelchi/govig/pkg/polyalpha"
)

// runCrack recovers the repeating key of every input and prints it with the plaintext.
// Inputs are analyzed concurrently; reports are printed in argument order.
func runCrack(cfg *config.Config, logger *zap.Logger, stdin io.Reader, stdout io.Writer) error {
	if cfg.Alphabet != "" && cfg.Alphabet != polyalpha.DefaultSymbols {
		return fmt.Errorf("%w: cracking uses English letter frequencies over %q",
			analysis.ErrUnsupportedAlphabet, polyalpha.DefaultSymbols)
	}

	analyzer := analysis.English()

	if len(cfg.Files) == 0 {
		input, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}

		res, err := analyzer.Crack(string(input), cfg.MaxKeyLength)
		if err != nil {
			return fmt.Errorf("cracking: %w", err)
		}

		printReport(stdout, "", res, cfg.Quiet)

		return nil
	}

	reports := make([]analysis.Result, len(cfg.Files))

	group := errgroup.Group{}
	group.SetLimit(cfg.Parallel)

	for i, file := range cfg.Files {
		group.Go(func() error {
			logger.Debug("cracking", zap.String("file", file))

			input, err := os.ReadFile(filepath.Clean(file))
			if err != nil {
				return fmt.Errorf("reading %q: %w", file, err)
			}

			res, err := analyzer.Crack(string(input), cfg.MaxKeyLength)
			if err != nil {
				return fmt.Errorf("cracking %q: %w", file, err)
			}

			reports[i] = res

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err //nolint:wrapcheck
	}

	for i, file := range cfg.Files {
		printReport(stdout, file, reports[i], cfg.Quiet)
	}

	return nil
}

func printReport(w io.Writer, name string, res analysis.Result, quiet bool) {
	if name != "" {
		fmt.Fprintf(w, "%s: ", name)
	}

	fmt.Fprintf(w, "key %q (length %d)\n", res.Key, res.KeyLength)

	if !quiet {
		fmt.Fprintln(w, res.Plaintext)
	}
}
