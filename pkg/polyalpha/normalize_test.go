package polyalpha_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/idelchi/govig/pkg/polyalpha"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"Hello, World! 123": "helloworld",
		"ATTACK AT DAWN":    "attackatdawn",
		"":                  "",
		"1234 !?":           "",
		"naïve café":        "navecaf",
	}

	for in, want := range tests {
		if got := polyalpha.Normalize(in); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"Hello, World! 123", "MiXeD cAsE", "..."} {
		once := polyalpha.Normalize(in)
		if twice := polyalpha.Normalize(once); twice != once {
			t.Errorf("Normalize(Normalize(%q)) = %q, want %q", in, twice, once)
		}
	}
}

func TestNormalizerPolicies(t *testing.T) {
	t.Parallel()

	alphabet := polyalpha.DefaultAlphabet()

	tests := []struct {
		name    string
		policy  polyalpha.Policy
		in      string
		want    string
		indices []int
		err     error
	}{
		{name: "drop", policy: polyalpha.Drop, in: "Hi, Bob", want: "hibob", indices: []int{7, 8, 1, 14, 1}},
		{name: "keep", policy: polyalpha.PassThrough, in: "Hi, Bob!", want: "hi, bob!", indices: []int{7, 8, 1, 14, 1}},
		{name: "keep leading", policy: polyalpha.PassThrough, in: "  ab", want: "  ab", indices: []int{0, 1}},
		{name: "reject clean", policy: polyalpha.Reject, in: "Clean", want: "clean", indices: []int{2, 11, 4, 0, 13}},
		{name: "reject dirty", policy: polyalpha.Reject, in: "not clean", err: polyalpha.ErrInvalidCharacter},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			n := polyalpha.NewNormalizer(alphabet, tc.policy)

			text, err := n.Normalize(tc.in)
			if !errors.Is(err, tc.err) {
				t.Fatalf("Normalize(%q) error = %v, want %v", tc.in, err, tc.err)
			}

			if err != nil {
				return
			}

			if got := n.String(text); got != tc.want {
				t.Errorf("String = %q, want %q", got, tc.want)
			}

			if diff := cmp.Diff(tc.indices, text.Indices()); diff != "" {
				t.Errorf("Indices mismatch (-want +got):\n%s", diff)
			}

			if text.Len() != len(tc.indices) {
				t.Errorf("Len = %d, want %d", text.Len(), len(tc.indices))
			}
		})
	}
}

func TestParsePolicy(t *testing.T) {
	t.Parallel()

	for name, want := range map[string]polyalpha.Policy{
		"":       polyalpha.Drop,
		"drop":   polyalpha.Drop,
		"Reject": polyalpha.Reject,
		"keep":   polyalpha.PassThrough,
	} {
		got, err := polyalpha.ParsePolicy(name)
		if err != nil || got != want {
			t.Errorf("ParsePolicy(%q) = %v, %v; want %v", name, got, err, want)
		}
	}

	if _, err := polyalpha.ParsePolicy("ignore"); !errors.Is(err, polyalpha.ErrUnknownPolicy) {
		t.Errorf("ParsePolicy(ignore) error = %v, want %v", err, polyalpha.ErrUnknownPolicy)
	}
}
