package polyalpha

import (
	"fmt"
	"strings"
)

// Policy decides what normalization does with characters outside the alphabet.
type Policy int

const (
	// Drop silently removes non-member characters.
	Drop Policy = iota
	// Reject fails normalization on the first non-member character.
	Reject
	// PassThrough keeps non-member characters in place without consuming key symbols.
	PassThrough
)

// String returns the policy name as accepted by ParsePolicy.
func (p Policy) String() string {
	switch p {
	case Drop:
		return "drop"
	case Reject:
		return "reject"
	case PassThrough:
		return "keep"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// ParsePolicy converts "drop", "reject" or "keep" into a Policy.
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "drop":
		return Drop, nil
	case "reject", "strict":
		return Reject, nil
	case "keep", "passthrough":
		return PassThrough, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
	}
}
