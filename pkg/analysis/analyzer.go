package analysis

import (
	"fmt"

	"github.com/idelchi/govig/pkg/polyalpha"
)

// threshold places the key-length cut-off this far from uniform towards the language IoC.
const threshold = 0.9

// DefaultMaxKeyLength bounds the key-length search when the caller gives no limit.
const DefaultMaxKeyLength = 20

// floor replaces zero expected frequencies so chi-squared stays finite.
const floor = 1e-4

// English letter frequencies in percent.
//
//nolint:gochecknoglobals // read-only table
var englishFrequencies = map[rune]float64{
	'a': 8.167, 'b': 1.492, 'c': 2.782, 'd': 4.253, 'e': 12.702, 'f': 2.228, 'g': 2.015,
	'h': 6.094, 'i': 6.966, 'j': 0.153, 'k': 0.772, 'l': 4.025, 'm': 2.406, 'n': 6.749,
	'o': 7.507, 'p': 1.929, 'q': 0.095, 'r': 5.987, 's': 6.327, 't': 9.056, 'u': 2.758,
	'v': 0.978, 'w': 2.360, 'x': 0.150, 'y': 1.974, 'z': 0.074,
}

// Analyzer scores ciphertext over an alphabet against expected symbol frequencies.
type Analyzer struct {
	alphabet polyalpha.Alphabet
	expected []float64
	language float64
}

// Result is the outcome of Crack.
type Result struct {
	KeyLength int
	Key       string
	Plaintext string
}

// NewAnalyzer builds an analyzer from relative symbol frequencies (any scale).
// Symbols absent from freqs are expected with a negligible frequency.
func NewAnalyzer(alphabet polyalpha.Alphabet, freqs map[rune]float64) (*Analyzer, error) {
	expected := make([]float64, alphabet.Size())

	var total float64

	for r, f := range freqs {
		idx, err := alphabet.IndexOf(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUnsupportedAlphabet, err)
		}

		expected[idx] = f
		total += f
	}

	if total <= 0 {
		return nil, fmt.Errorf("%w: frequencies sum to zero", ErrUnsupportedAlphabet)
	}

	var language float64

	for i, f := range expected {
		expected[i] = max(f/total, floor)
		language += expected[i] * expected[i]
	}

	return &Analyzer{alphabet: alphabet, expected: expected, language: language}, nil
}

// English returns an analyzer for a..z English text.
func English() *Analyzer {
	a, err := NewAnalyzer(polyalpha.DefaultAlphabet(), englishFrequencies)
	if err != nil {
		panic(err)
	}

	return a
}

// KeyLength estimates the period of a repeating key.
// It returns the smallest length up to maxLen whose mean column IoC lies close to the
// language IoC, or the best scoring length when none does.
func (a *Analyzer) KeyLength(ciphertext string, maxLen int) (int, error) {
	indices, err := a.indices(ciphertext)
	if err != nil {
		return 0, err
	}

	return a.keyLength(indices, maxLen)
}

func (a *Analyzer) keyLength(indices []int, maxLen int) (int, error) {
	if len(indices) < 2 {
		return 0, fmt.Errorf("%w: %d symbols", ErrTextTooShort, len(indices))
	}

	if maxLen < 1 {
		maxLen = DefaultMaxKeyLength
	}

	// Every column needs at least two symbols for an IoC.
	maxLen = min(maxLen, len(indices)/2)

	uniform := 1 / float64(a.alphabet.Size())
	cutoff := uniform + threshold*(a.language-uniform)

	best, bestScore := 1, -1.0

	for keyLen := 1; keyLen <= maxLen; keyLen++ {
		var score float64

		for _, col := range columns(indices, keyLen) {
			score += IndexOfCoincidence(col, a.alphabet.Size())
		}

		score /= float64(keyLen)

		if score >= cutoff {
			return keyLen, nil
		}

		if score > bestScore {
			best, bestScore = keyLen, score
		}
	}

	return best, nil
}

// RecoverKey finds the key of the given length that best explains ciphertext.
func (a *Analyzer) RecoverKey(ciphertext string, keyLen int) (string, error) {
	indices, err := a.indices(ciphertext)
	if err != nil {
		return "", err
	}

	return a.recoverKey(indices, keyLen)
}

func (a *Analyzer) recoverKey(indices []int, keyLen int) (string, error) {
	if keyLen < 1 || len(indices) < keyLen {
		return "", fmt.Errorf("%w: %d symbols for key length %d", ErrTextTooShort, len(indices), keyLen)
	}

	key := make([]rune, keyLen)

	for i, col := range columns(indices, keyLen) {
		key[i] = a.alphabet.SymbolAt(a.bestShift(col))
	}

	return string(key), nil
}

// bestShift returns the shift minimizing chi-squared between the unshifted column and
// the expected frequencies.
func (a *Analyzer) bestShift(col []int) int {
	size := a.alphabet.Size()

	observed := make([]float64, size)
	for _, v := range col {
		observed[v]++
	}

	n := float64(len(col))
	best, bestChi := 0, -1.0

	for shift := range size {
		var chi float64

		for sym, p := range a.expected {
			want := p * n
			diff := observed[(sym+shift)%size] - want
			chi += diff * diff / want
		}

		if bestChi < 0 || chi < bestChi {
			best, bestChi = shift, chi
		}
	}

	return best
}

// Crack estimates the key length, recovers the key and decrypts ciphertext with it.
func (a *Analyzer) Crack(ciphertext string, maxLen int) (Result, error) {
	indices, err := a.indices(ciphertext)
	if err != nil {
		return Result{}, err
	}

	keyLen, err := a.keyLength(indices, maxLen)
	if err != nil {
		return Result{}, fmt.Errorf("estimating key length: %w", err)
	}

	key, err := a.recoverKey(indices, keyLen)
	if err != nil {
		return Result{}, fmt.Errorf("recovering key: %w", err)
	}

	plaintext, err := polyalpha.Decrypt(ciphertext, key, polyalpha.WithAlphabet(a.alphabet))
	if err != nil {
		return Result{}, fmt.Errorf("decrypting: %w", err)
	}

	return Result{KeyLength: keyLen, Key: key, Plaintext: plaintext}, nil
}

func (a *Analyzer) indices(text string) ([]int, error) {
	normalized, err := polyalpha.NewNormalizer(a.alphabet, polyalpha.Drop).Normalize(text)
	if err != nil {
		return nil, fmt.Errorf("normalizing ciphertext: %w", err)
	}

	return normalized.Indices(), nil
}
