package polyalpha_test

import (
	"strings"
	"testing"

	"github.com/idelchi/govig/pkg/polyalpha"
)

func FuzzRoundTrip(f *testing.F) {
	f.Add("ATTACK AT DAWN", "lemon")
	f.Add("Hello, World! 123", "key")
	f.Add("", "a")

	f.Fuzz(func(t *testing.T, text, key string) {
		key = polyalpha.Normalize(key)
		if key == "" {
			t.Skip()
		}

		want := polyalpha.Normalize(text)

		for _, strategy := range []polyalpha.Strategy{polyalpha.Repeating, polyalpha.Autokey} {
			enc, err := polyalpha.Encrypt(text, key, polyalpha.WithStrategy(strategy))
			if err != nil {
				t.Fatalf("%v: Encrypt error: %v", strategy, err)
			}

			if len(enc) != len(want) {
				t.Fatalf("%v: len(Encrypt) = %d, want %d", strategy, len(enc), len(want))
			}

			dec, err := polyalpha.Decrypt(enc, key, polyalpha.WithStrategy(strategy))
			if err != nil {
				t.Fatalf("%v: Decrypt error: %v", strategy, err)
			}

			if dec != want {
				t.Fatalf("%v: Decrypt(Encrypt(%q)) = %q, want %q", strategy, text, dec, want)
			}
		}

		running := strings.Repeat(key, len(want)/len(key)+1)

		enc, err := polyalpha.Encrypt(text, running, polyalpha.WithStrategy(polyalpha.RunningKey))
		if err != nil {
			t.Fatalf("running: Encrypt error: %v", err)
		}

		dec, err := polyalpha.Decrypt(enc, running, polyalpha.WithStrategy(polyalpha.RunningKey))
		if err != nil {
			t.Fatalf("running: Decrypt error: %v", err)
		}

		if dec != want {
			t.Fatalf("running: Decrypt(Encrypt(%q)) = %q, want %q", text, dec, want)
		}
	})
}

func FuzzNormalizeIdempotent(f *testing.F) {
	f.Add("Hello, World! 123")

	f.Fuzz(func(t *testing.T, s string) {
		once := polyalpha.Normalize(s)
		if twice := polyalpha.Normalize(once); twice != once {
			t.Fatalf("Normalize not idempotent for %q: %q then %q", s, once, twice)
		}
	})
}
