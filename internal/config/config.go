// Package config holds the command-line configuration of govig.
package config

import (
	"errors"
	"fmt"

	"github.com/idelchi/gogen/pkg/validator"

	"github.com/idelchi/govig/pkg/polyalpha"
)

// ErrUsage indicates an error in command-line usage or configuration.
var ErrUsage = errors.New("usage error")

// Mode is the operation a command runs.
type Mode int

const (
	// ModeEncrypt enciphers inputs.
	ModeEncrypt Mode = iota
	// ModeDecrypt deciphers inputs.
	ModeDecrypt
	// ModeCrack recovers the key of repeating-key ciphertext.
	ModeCrack
)

// Key holds the key material, given directly or read from a file.
type Key struct {
	// String is the key itself
	String string `label:"--key" mapstructure:"key" mask:"fixed" validate:"exclusive=File"`

	// File is a path to a file containing the key
	File string `label:"--key-file" mapstructure:"key-file"`
}

// Suffixes are the file extensions appended to outputs.
type Suffixes struct {
	// Encrypt is appended to encrypted files and stripped before decrypting
	Encrypt string `mapstructure:"encrypt-ext" validate:"required"`

	// Decrypt is appended to decrypted files
	Decrypt string `mapstructure:"decrypt-ext"`
}

// Config holds the application's configuration parameters.
type Config struct {
	// Show prints the configuration and exits
	Show bool

	// Parallel is the number of files processed concurrently
	Parallel int `validate:"min=1"`

	// Quiet suppresses non-error output
	Quiet bool

	// Verbose enables debug logging
	Verbose bool

	// Delete removes inputs after successful processing
	Delete bool

	// Stats prints a summary after processing
	Stats bool

	// PreserveTimestamps copies the input modification time to the output
	PreserveTimestamps bool `mapstructure:"preserve-timestamps"`

	// Profile is an optional JSONC file with default settings
	Profile string

	// Alphabet is the ordered symbol set
	Alphabet string

	// Strategy selects the key stream: repeating, autokey or running
	Strategy string `validate:"omitempty,oneof=repeating autokey running"`

	// OnInvalid selects the handling of characters outside the alphabet: drop, reject or keep
	OnInvalid string `mapstructure:"on-invalid" validate:"omitempty,oneof=drop reject keep"`

	// MaxKeyLength bounds the key-length search when cracking
	MaxKeyLength int `mapstructure:"max-key-length" validate:"min=0"`

	Key      `mapstructure:",squash"`
	Suffixes `mapstructure:",squash"`

	// Mode is set by the subcommand
	Mode Mode `mapstructure:"-"`

	// Files are the positional arguments; empty means stdin
	Files []string `mapstructure:"-"`
}

// Display returns the value of the Show field.
func (c Config) Display() bool {
	return c.Show
}

// Validate performs configuration validation using the validator package.
// It returns a wrapped ErrUsage if any validation rules are violated.
func (c Config) Validate(config any) error {
	validator := validator.NewValidator()

	if err := registerExclusive(validator); err != nil {
		return fmt.Errorf("registering exclusive: %w", err)
	}

	errs := validator.Validate(config)

	switch {
	case errs == nil:
	case len(errs) == 1:
		return fmt.Errorf("%w: %w", ErrUsage, errs[0])
	default:
		return fmt.Errorf("%ws:\n%w", ErrUsage, errors.Join(errs...))
	}

	// A profile may still supply the key file.
	if c.Profile == "" {
		if err := c.requireKey(); err != nil {
			return err
		}
	}

	if c.Alphabet != "" {
		if _, err := polyalpha.NewAlphabet(c.Alphabet); err != nil {
			return fmt.Errorf("%w: alphabet: %w", ErrUsage, err)
		}
	}

	return nil
}

func (c Config) requireKey() error {
	if c.Mode != ModeCrack && c.Key.String == "" && c.Key.File == "" {
		return fmt.Errorf("%w: one of --key or --key-file is required", ErrUsage)
	}

	return nil
}
