package polyalpha

import (
	"fmt"
	"strings"
)

// KeyStream yields key symbol indices one at a time.
type KeyStream interface {
	// Next returns the next index, or ErrKeyStreamExhausted if a bounded stream has run out.
	Next() (int, error)
}

// Strategy selects how a key stream is derived from the key.
type Strategy int

const (
	// Repeating cycles the key indefinitely.
	Repeating Strategy = iota
	// Autokey follows the key with the plaintext itself.
	Autokey
	// RunningKey draws symbols from a long companion text.
	RunningKey
)

// String returns the strategy name as accepted by ParseStrategy.
func (s Strategy) String() string {
	switch s {
	case Repeating:
		return "repeating"
	case Autokey:
		return "autokey"
	case RunningKey:
		return "running"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// ParseStrategy converts "repeating", "autokey" or "running" into a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "repeating", "vigenere":
		return Repeating, nil
	case "autokey", "auto":
		return Autokey, nil
	case "running", "runningkey", "running-key":
		return RunningKey, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// RepeatingStream cycles over a fixed key. It never exhausts.
type RepeatingStream struct {
	key []int
	pos int
}

// NewRepeating returns a stream cycling over key, which must be non-empty.
func NewRepeating(key []int) *RepeatingStream {
	return &RepeatingStream{key: key}
}

// Next implements KeyStream.
func (s *RepeatingStream) Next() (int, error) {
	if len(s.key) == 0 {
		return 0, ErrKeyStreamExhausted
	}

	k := s.key[s.pos]
	s.pos = (s.pos + 1) % len(s.key)

	return k, nil
}

// AutokeyStream yields the primer and then the plaintext log.
// The log is append-only: encryption extends it with the whole plaintext up front,
// decryption extends it one recovered symbol at a time.
type AutokeyStream struct {
	primer []int
	log    []int
	pos    int
}

// NewAutokey returns an autokey stream seeded with primer.
func NewAutokey(primer []int) *AutokeyStream {
	return &AutokeyStream{primer: primer}
}

// Extend appends plaintext indices to the tail of the stream.
func (s *AutokeyStream) Extend(indices ...int) {
	s.log = append(s.log, indices...)
}

// Next implements KeyStream.
func (s *AutokeyStream) Next() (int, error) {
	var k int

	switch j := s.pos - len(s.primer); {
	case j < 0:
		k = s.primer[s.pos]
	case j < len(s.log):
		k = s.log[j]
	default:
		return 0, fmt.Errorf("%w: autokey position %d", ErrKeyStreamExhausted, s.pos)
	}

	s.pos++

	return k, nil
}

// RunningStream yields the symbols of a companion text once, in order.
type RunningStream struct {
	text []int
	pos  int
}

// NewRunning returns a stream over the normalized indices of a running text.
func NewRunning(text []int) *RunningStream {
	return &RunningStream{text: text}
}

// Next implements KeyStream.
func (s *RunningStream) Next() (int, error) {
	if s.pos >= len(s.text) {
		return 0, fmt.Errorf("%w: running key position %d", ErrKeyStreamExhausted, s.pos)
	}

	k := s.text[s.pos]
	s.pos++

	return k, nil
}

// Take collects the next n values of ks.
func Take(ks KeyStream, n int) ([]int, error) {
	out := make([]int, 0, n)

	for range n {
		k, err := ks.Next()
		if err != nil {
			return nil, err
		}

		out = append(out, k)
	}

	return out, nil
}
