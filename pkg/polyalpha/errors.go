package polyalpha

import "errors"

var (
	// ErrEmptyKey is returned when the key has no alphabet members.
	ErrEmptyKey = errors.New("empty key")
	// ErrNotInAlphabet is returned when a required symbol has no index in the alphabet.
	ErrNotInAlphabet = errors.New("symbol not in alphabet")
	// ErrKeyTooShort is returned when a running key is shorter than the text.
	ErrKeyTooShort = errors.New("running key shorter than text")
	// ErrKeyStreamExhausted is returned when a bounded key stream runs out of symbols.
	ErrKeyStreamExhausted = errors.New("key stream exhausted")
	// ErrInvalidCharacter is returned by strict normalization for a non-member character.
	ErrInvalidCharacter = errors.New("invalid character")
	// ErrEmptyAlphabet is returned when constructing an alphabet without symbols.
	ErrEmptyAlphabet = errors.New("empty alphabet")
	// ErrDuplicateSymbol is returned when an alphabet lists a symbol twice.
	ErrDuplicateSymbol = errors.New("duplicate alphabet symbol")
	// ErrUnknownStrategy is returned when parsing an unrecognized key-stream strategy name.
	ErrUnknownStrategy = errors.New("unknown key stream strategy")
	// ErrUnknownPolicy is returned when parsing an unrecognized normalization policy name.
	ErrUnknownPolicy = errors.New("unknown normalization policy")
)
