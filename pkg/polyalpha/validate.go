package polyalpha

import "fmt"

// ValidateKey checks key against the alphabet and returns its symbol indices.
//
// Repeating and Autokey keys must consist of alphabet members only.
// A RunningKey key is a companion text and is normalized like plaintext, dropping non-members.
// Any key without a single member fails with ErrEmptyKey.
func ValidateKey(key string, alphabet Alphabet, strategy Strategy) ([]int, error) {
	indices := make([]int, 0, len(key))

	var (
		invalid rune
		at      = -1
	)

	pos := 0

	for _, r := range key {
		idx, ok := alphabet.lookup(r)

		switch {
		case ok:
			indices = append(indices, idx)
		case at < 0 && strategy != RunningKey:
			invalid, at = r, pos
		}

		pos++
	}

	if len(indices) == 0 {
		return nil, ErrEmptyKey
	}

	if at >= 0 {
		return nil, fmt.Errorf("%w: key character %q at position %d", ErrNotInAlphabet, invalid, at)
	}

	return indices, nil
}

// validateRunningKey ensures a running key covers textLen symbols.
func validateRunningKey(key []int, textLen int) error {
	if len(key) < textLen {
		return fmt.Errorf("%w: need %d symbols, have %d", ErrKeyTooShort, textLen, len(key))
	}

	return nil
}
