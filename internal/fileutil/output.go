// Package fileutil writes output files atomically next to their destination.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	ownerReadWrite = 0o600
	executableBits = 0o111
)

// Output is a pending atomic write of target, derived from a source file.
// Data goes to a hidden temp file in the target directory and is renamed into place on Commit.
type Output struct {
	source  os.FileInfo
	tmp     *os.File
	tmpName string
	target  string
}

// Create stats source and opens a temp file beside target.
// Callers must defer Discard.
func Create(source, target string) (*Output, error) {
	info, err := os.Stat(source)
	if err != nil {
		return nil, fmt.Errorf("getting file info for %q: %w", source, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), ".tmp-*")
	if err != nil {
		return nil, fmt.Errorf("creating temporary file: %w", err)
	}

	return &Output{
		source:  info,
		tmp:     tmp,
		tmpName: tmp.Name(),
		target:  target,
	}, nil
}

// Write implements io.Writer on the temp file.
func (o *Output) Write(p []byte) (int, error) {
	return o.tmp.Write(p) //nolint:wrapcheck
}

// Commit closes the temp file, copies the source's executable bits, renames it over target
// and optionally copies the source modification time. It returns the final size.
func (o *Output) Commit(preserveTimestamps bool) (int64, error) {
	perm := os.FileMode(ownerReadWrite)
	if o.source.Mode()&executableBits != 0 {
		perm |= executableBits
	}

	if err := o.tmp.Chmod(perm); err != nil {
		return 0, fmt.Errorf("setting file permissions: %w", err)
	}

	if err := o.tmp.Close(); err != nil {
		return 0, fmt.Errorf("closing temporary file: %w", err)
	}

	if err := os.Rename(o.tmpName, o.target); err != nil {
		return 0, fmt.Errorf("renaming output file: %w", err)
	}

	if preserveTimestamps {
		modTime := o.source.ModTime()
		if err := os.Chtimes(o.target, modTime, modTime); err != nil {
			return 0, fmt.Errorf("preserving timestamps: %w", err)
		}
	}

	info, err := os.Stat(o.target)
	if err != nil {
		return 0, fmt.Errorf("stat output %q: %w", o.target, err)
	}

	return info.Size(), nil
}

// Discard closes the temp file and removes it if *errp is set.
func (o *Output) Discard(errp *error) {
	o.tmp.Close() //nolint:errcheck,gosec // best-effort cleanup

	if *errp != nil {
		os.Remove(o.tmpName) //nolint:errcheck,gosec // best-effort cleanup
	}
}
