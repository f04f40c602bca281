package analysis_test

import (
	"errors"
	"math"
	"os"
	"testing"

	"github.com/idelchi/govig/pkg/analysis"
	"github.com/idelchi/govig/pkg/polyalpha"
)

func loadPlaintext(t *testing.T) string {
	t.Helper()

	data, err := os.ReadFile("testdata/plaintext.txt")
	if err != nil {
		t.Fatalf("reading plaintext: %v", err)
	}

	return string(data)
}

func TestCrack(t *testing.T) {
	t.Parallel()

	plaintext := loadPlaintext(t)

	for _, key := range []string{"lemon", "secret", "crypt", "lighthouse", "vigenere", "k"} {
		t.Run(key, func(t *testing.T) {
			t.Parallel()

			ciphertext, err := polyalpha.Encrypt(plaintext, key)
			if err != nil {
				t.Fatalf("Encrypt error: %v", err)
			}

			res, err := analysis.English().Crack(ciphertext, analysis.DefaultMaxKeyLength)
			if err != nil {
				t.Fatalf("Crack error: %v", err)
			}

			if res.KeyLength != len(key) {
				t.Errorf("KeyLength = %d, want %d", res.KeyLength, len(key))
			}

			if res.Key != key {
				t.Errorf("Key = %q, want %q", res.Key, key)
			}

			if res.Plaintext != polyalpha.Normalize(plaintext) {
				t.Errorf("Plaintext mismatch")
			}
		})
	}
}

func TestRecoverKeyWithKnownLength(t *testing.T) {
	t.Parallel()

	ciphertext, err := polyalpha.Encrypt(loadPlaintext(t), "secret")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	key, err := analysis.English().RecoverKey(ciphertext, 6)
	if err != nil {
		t.Fatalf("RecoverKey error: %v", err)
	}

	if key != "secret" {
		t.Errorf("RecoverKey = %q, want %q", key, "secret")
	}
}

func TestTooShort(t *testing.T) {
	t.Parallel()

	a := analysis.English()

	if _, err := a.KeyLength("a", 5); !errors.Is(err, analysis.ErrTextTooShort) {
		t.Errorf("KeyLength error = %v, want %v", err, analysis.ErrTextTooShort)
	}

	if _, err := a.RecoverKey("abc", 4); !errors.Is(err, analysis.ErrTextTooShort) {
		t.Errorf("RecoverKey error = %v, want %v", err, analysis.ErrTextTooShort)
	}

	if _, err := a.RecoverKey("abc", 0); !errors.Is(err, analysis.ErrTextTooShort) {
		t.Errorf("RecoverKey error = %v, want %v", err, analysis.ErrTextTooShort)
	}

	if _, err := a.Crack("!!!", 5); !errors.Is(err, analysis.ErrTextTooShort) {
		t.Errorf("Crack error = %v, want %v", err, analysis.ErrTextTooShort)
	}
}

func TestNewAnalyzerRejectsForeignSymbols(t *testing.T) {
	t.Parallel()

	alphabet, err := polyalpha.NewAlphabet("01")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := analysis.NewAnalyzer(alphabet, map[rune]float64{'0': 1, 'x': 1}); !errors.Is(err, analysis.ErrUnsupportedAlphabet) {
		t.Errorf("NewAnalyzer error = %v, want %v", err, analysis.ErrUnsupportedAlphabet)
	}

	if _, err := analysis.NewAnalyzer(alphabet, nil); !errors.Is(err, analysis.ErrUnsupportedAlphabet) {
		t.Errorf("NewAnalyzer(nil) error = %v, want %v", err, analysis.ErrUnsupportedAlphabet)
	}
}

func TestCoincidences(t *testing.T) {
	t.Parallel()

	// abcabc shifted by its period matches everywhere.
	indices := []int{0, 1, 2, 0, 1, 2}

	if got := analysis.Coincidences(indices, 3); got != 6 {
		t.Errorf("Coincidences(shift 3) = %d, want 6", got)
	}

	if got := analysis.Coincidences(indices, 1); got != 0 {
		t.Errorf("Coincidences(shift 1) = %d, want 0", got)
	}

	if got := analysis.Coincidences(indices, -3); got != 6 {
		t.Errorf("Coincidences(shift -3) = %d, want 6", got)
	}

	if got, want := analysis.Coincidences([]int{0, 1, 2}, -1), analysis.Coincidences([]int{0, 1, 2}, 2); got != want {
		t.Errorf("Coincidences(shift -1) = %d, want %d", got, want)
	}

	if got := analysis.Coincidences(nil, 1); got != 0 {
		t.Errorf("Coincidences(nil) = %d, want 0", got)
	}
}

func TestIndexOfCoincidence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		indices []int
		want    float64
	}{
		{indices: []int{0, 0, 0, 0}, want: 1},
		{indices: []int{0, 1, 2, 3}, want: 0},
		{indices: []int{0, 0, 1, 1}, want: 4.0 / 12.0},
		{indices: []int{5}, want: 0},
	}

	for _, tc := range tests {
		if got := analysis.IndexOfCoincidence(tc.indices, 26); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("IndexOfCoincidence(%v) = %v, want %v", tc.indices, got, tc.want)
		}
	}
}
