package logic

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/idelchi/govig/internal/config"
	"github.com/idelchi/govig/internal/fileutil"
)

// Result represents the outcome of processing a single file.
type Result struct {
	// Input file path
	Input string

	// Output file path
	Output string

	// Output file size in bytes
	OutputSize int64

	// Any error that occurred during processing
	Error error
}

// processor enciphers or deciphers files concurrently.
type processor struct {
	cfg    *config.Config
	job    job
	logger *zap.Logger

	// stdout receives the per-file progress lines
	stdout io.Writer

	// results channels processing outcomes to the printer goroutine
	results chan Result
}

func newProcessor(cfg *config.Config, job job, logger *zap.Logger, stdout io.Writer) *processor {
	return &processor{
		cfg:     cfg,
		job:     job,
		logger:  logger,
		stdout:  stdout,
		results: make(chan Result, len(cfg.Files)),
	}
}

// processFiles runs every configured file through the job with at most cfg.Parallel workers.
// Returns the number of successfully processed files, the number of errors and the total output size.
//
//nolint:cyclop,gocognit
func (p *processor) processFiles() (processed, errored int, totalSize int64, err error) {
	group := errgroup.Group{}
	group.SetLimit(p.cfg.Parallel)

	done := make(chan struct{})

	go func() {
		defer close(done)

		for result := range p.results {
			if result.Error != nil {
				errored++

				p.logger.Error("processing failed", zap.String("file", result.Input), zap.Error(result.Error))

				continue
			}

			processed++

			totalSize += result.OutputSize

			if !p.cfg.Quiet {
				fmt.Fprintf(p.stdout, "Processed %q -> %q\n", result.Input, result.Output)
			}

			if !p.cfg.Delete {
				continue
			}

			if err := os.Remove(result.Input); err != nil {
				p.logger.Error("deleting input", zap.String("file", result.Input), zap.Error(err))
			} else if !p.cfg.Quiet {
				fmt.Fprintf(p.stdout, "Deleted %q\n", result.Input)
			}
		}
	}()

	for _, file := range p.cfg.Files {
		group.Go(func() error {
			outPath := outputPath(file, p.cfg)

			size, err := p.processFile(file, outPath)
			if err != nil {
				p.results <- Result{Input: file, Error: err}

				return err
			}

			p.results <- Result{Input: file, Output: outPath, OutputSize: size}

			return nil
		})
	}

	err = group.Wait()

	close(p.results)

	<-done // Wait for printer to finish

	if err != nil {
		return processed, errored, totalSize, fmt.Errorf("processing files: %w", err)
	}

	return processed, errored, totalSize, nil
}

// processFile transforms a single file into outPath through an atomic temp-file write.
func (p *processor) processFile(filename, outPath string) (size int64, err error) {
	p.logger.Debug("processing", zap.String("file", filename), zap.String("output", outPath))

	input, err := os.ReadFile(filepath.Clean(filename))
	if err != nil {
		return 0, fmt.Errorf("reading input file: %w", err)
	}

	output, err := p.job.transform(string(input))
	if err != nil {
		return 0, err
	}

	out, err := fileutil.Create(filename, outPath)
	if err != nil {
		return 0, fmt.Errorf("preparing atomic write: %w", err)
	}

	defer out.Discard(&err)

	if _, err = io.WriteString(out, output); err != nil {
		return 0, fmt.Errorf("writing output: %w", err)
	}

	size, err = out.Commit(p.cfg.PreserveTimestamps)
	if err != nil {
		return 0, fmt.Errorf("finalizing output: %w", err)
	}

	return size, nil
}
