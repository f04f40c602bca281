package polyalpha

import "fmt"

// direction of the modular combine step.
type direction int

const (
	forward direction = iota
	backward
)

// Cipher combines an alphabet, a key-stream strategy and a normalization policy.
// It holds no per-call state and is safe for concurrent use.
type Cipher struct {
	alphabet Alphabet
	strategy Strategy
	policy   Policy
}

// Option configures a Cipher.
type Option func(*Cipher)

// WithAlphabet substitutes the working symbol set.
func WithAlphabet(alphabet Alphabet) Option {
	return func(c *Cipher) {
		c.alphabet = alphabet
	}
}

// WithStrategy selects the key-stream generation mode.
func WithStrategy(strategy Strategy) Option {
	return func(c *Cipher) {
		c.strategy = strategy
	}
}

// WithPolicy selects how characters outside the alphabet are handled.
func WithPolicy(policy Policy) Option {
	return func(c *Cipher) {
		c.policy = policy
	}
}

// New returns a Cipher. Defaults: a..z, Repeating, Drop.
func New(opts ...Option) *Cipher {
	c := &Cipher{
		alphabet: DefaultAlphabet(),
		strategy: Repeating,
		policy:   Drop,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Alphabet returns the working alphabet.
func (c *Cipher) Alphabet() Alphabet {
	return c.alphabet
}

// Strategy returns the configured key-stream strategy.
func (c *Cipher) Strategy() Strategy {
	return c.strategy
}

// Encrypt computes (text[i] + key[i]) mod size for every normalized symbol.
// For RunningKey, key is the running text.
func (c *Cipher) Encrypt(plaintext, key string) (string, error) {
	return c.apply(plaintext, key, forward)
}

// Decrypt computes (text[i] - key[i] + size) mod size for every normalized symbol.
// Autokey decryption feeds each recovered symbol back into the key stream.
func (c *Cipher) Decrypt(ciphertext, key string) (string, error) {
	return c.apply(ciphertext, key, backward)
}

func (c *Cipher) apply(input, key string, dir direction) (string, error) {
	keyIndices, err := ValidateKey(key, c.alphabet, c.strategy)
	if err != nil {
		return "", fmt.Errorf("validating key: %w", err)
	}

	text, err := NewNormalizer(c.alphabet, c.policy).Normalize(input)
	if err != nil {
		return "", fmt.Errorf("normalizing text: %w", err)
	}

	var (
		stream KeyStream
		auto   *AutokeyStream
	)

	switch c.strategy {
	case Repeating:
		stream = NewRepeating(keyIndices)
	case Autokey:
		auto = NewAutokey(keyIndices)
		if dir == forward {
			auto.Extend(text.indices...)
		}

		stream = auto
	case RunningKey:
		if err := validateRunningKey(keyIndices, text.Len()); err != nil {
			return "", err
		}

		stream = NewRunning(keyIndices)
	default:
		return "", fmt.Errorf("%w: %v", ErrUnknownStrategy, c.strategy)
	}

	size := c.alphabet.Size()
	out := make([]int, text.Len())

	for i, symbol := range text.indices {
		k, err := stream.Next()
		if err != nil {
			return "", fmt.Errorf("symbol %d: %w", i, err)
		}

		if dir == forward {
			out[i] = (symbol + k) % size

			continue
		}

		out[i] = (symbol - k + size) % size

		if auto != nil {
			auto.Extend(out[i])
		}
	}

	return assemble(c.alphabet, text, out), nil
}

// Encrypt enciphers plaintext with key using the defaults unless overridden by opts.
func Encrypt(plaintext, key string, opts ...Option) (string, error) {
	return New(opts...).Encrypt(plaintext, key)
}

// Decrypt deciphers ciphertext with key using the defaults unless overridden by opts.
func Decrypt(ciphertext, key string, opts ...Option) (string, error) {
	return New(opts...).Decrypt(ciphertext, key)
}
