package analysis

import "errors"

var (
	// ErrTextTooShort is returned when the ciphertext has too few symbols for the analysis.
	ErrTextTooShort = errors.New("text too short for analysis")
	// ErrUnsupportedAlphabet is returned when a frequency table names symbols outside the alphabet.
	ErrUnsupportedAlphabet = errors.New("frequency table does not match alphabet")
)
