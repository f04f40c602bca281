// Package logic implements the encrypt, decrypt and crack pipelines of govig.
package logic

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"github.com/idelchi/govig/internal/config"
)

// Run is the main logic of the application.
func Run(cfg *config.Config) error {
	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		return err
	}

	defer logger.Sync() //nolint:errcheck // stderr sync fails on some terminals

	return run(cfg, logger, os.Stdin, os.Stdout, os.Stderr)
}

func run(cfg *config.Config, logger *zap.Logger, stdin io.Reader, stdout, stderr io.Writer) error {
	if err := cfg.ApplyProfile(); err != nil {
		return fmt.Errorf("applying profile: %w", err)
	}

	if cfg.Mode == config.ModeCrack {
		return runCrack(cfg, logger, stdin, stdout)
	}

	job, err := newJob(cfg)
	if err != nil {
		return fmt.Errorf("preparing cipher: %w", err)
	}

	logger.Debug("cipher ready",
		zap.String("alphabet", job.cipher.Alphabet().String()),
		zap.Stringer("strategy", job.cipher.Strategy()),
		zap.Bool("decrypt", job.decrypt),
		zap.Int("files", len(cfg.Files)))

	if len(cfg.Files) == 0 {
		return job.stream(stdin, stdout)
	}

	if err := checkOutputs(cfg); err != nil {
		return err
	}

	start := time.Now()

	proc := newProcessor(cfg, job, logger, stdout)

	processed, errored, totalSize, err := proc.processFiles()

	if cfg.Stats {
		printStats(stderr, len(cfg.Files), processed, errored, totalSize, time.Since(start))
	}

	if err != nil {
		return fmt.Errorf("running logic: %w", err)
	}

	return nil
}

// outputPath derives the output file name from the input and the configured suffixes.
func outputPath(filename string, cfg *config.Config) string {
	ext := cfg.Suffixes.Encrypt

	if cfg.Mode == config.ModeDecrypt {
		filename = strings.TrimSuffix(filename, cfg.Suffixes.Encrypt)
		ext = cfg.Suffixes.Decrypt
	}

	return filepath.Join(filepath.Dir(filename), filepath.Base(filename)+ext)
}

// checkOutputs refuses inputs that would be overwritten by their own output.
// Decrypt inputs must carry the encrypt suffix.
func checkOutputs(cfg *config.Config) error {
	for _, file := range cfg.Files {
		if cfg.Mode == config.ModeDecrypt && !strings.HasSuffix(file, cfg.Suffixes.Encrypt) {
			return fmt.Errorf("%w: %q does not end in %q", config.ErrUsage, file, cfg.Suffixes.Encrypt)
		}

		if filepath.Clean(outputPath(file, cfg)) == filepath.Clean(file) {
			return fmt.Errorf("%w: output for %q would overwrite its input", config.ErrUsage, file)
		}
	}

	return nil
}

func printStats(w io.Writer, total, processed, errored int, totalSize int64, duration time.Duration) {
	fmt.Fprintf(w, "\nStats\n")
	fmt.Fprintf(w, "  Files:     %d\n", total)
	fmt.Fprintf(w, "  Processed: %d\n", processed)
	fmt.Fprintf(w, "  Errors:    %d\n", errored)
	//nolint:gosec // totalSize is always non-negative (sum of file sizes)
	fmt.Fprintf(w, "  Size:      %s\n", humanize.IBytes(uint64(max(0, totalSize))))
	fmt.Fprintf(w, "  Duration:  %s\n", duration.Round(time.Millisecond))
}
