package polyalpha

import (
	"fmt"
	"unicode"
)

// DefaultSymbols are the 26 lowercase ASCII letters.
const DefaultSymbols = "abcdefghijklmnopqrstuvwxyz"

// Alphabet is an ordered set of distinct symbols.
// The zero value is not usable; construct with NewAlphabet or DefaultAlphabet.
type Alphabet struct {
	symbols []rune
	index   map[rune]int
}

//nolint:gochecknoglobals // immutable after init
var defaultAlphabet = mustAlphabet(DefaultSymbols)

// NewAlphabet builds an alphabet from the runes of symbols, in order.
func NewAlphabet(symbols string) (Alphabet, error) {
	runes := []rune(symbols)
	if len(runes) == 0 {
		return Alphabet{}, ErrEmptyAlphabet
	}

	index := make(map[rune]int, len(runes))

	for i, r := range runes {
		if _, ok := index[r]; ok {
			return Alphabet{}, fmt.Errorf("%w: %q", ErrDuplicateSymbol, r)
		}

		index[r] = i
	}

	return Alphabet{symbols: runes, index: index}, nil
}

func mustAlphabet(symbols string) Alphabet {
	a, err := NewAlphabet(symbols)
	if err != nil {
		panic(err)
	}

	return a
}

// DefaultAlphabet returns the a..z alphabet (modulus 26).
func DefaultAlphabet() Alphabet {
	return defaultAlphabet
}

// Size is the number of symbols, which is also the arithmetic modulus.
func (a Alphabet) Size() int {
	return len(a.symbols)
}

// IndexOf returns the position of r, trying r itself and then its lowercase form.
func (a Alphabet) IndexOf(r rune) (int, error) {
	if i, ok := a.lookup(r); ok {
		return i, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrNotInAlphabet, r)
}

// Contains reports whether r is a member after case folding.
func (a Alphabet) Contains(r rune) bool {
	_, ok := a.lookup(r)

	return ok
}

// SymbolAt returns the symbol at i modulo the alphabet size. Negative indices wrap.
func (a Alphabet) SymbolAt(i int) rune {
	return a.symbols[mod(i, len(a.symbols))]
}

// String returns the symbols in order.
func (a Alphabet) String() string {
	return string(a.symbols)
}

func (a Alphabet) lookup(r rune) (int, bool) {
	if i, ok := a.index[r]; ok {
		return i, true
	}

	if lower := unicode.ToLower(r); lower != r {
		i, ok := a.index[lower]

		return i, ok
	}

	return 0, false
}

func mod(i, n int) int {
	m := i % n
	if m < 0 {
		m += n
	}

	return m
}
