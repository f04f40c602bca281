package polyalpha

import (
	"fmt"
	"strings"
)

// Text is normalized input: indices into an alphabet plus, under PassThrough,
// the non-member runes that sit between them.
type Text struct {
	indices  []int
	literals []literal
}

// literal is a rune emitted verbatim before the symbol at position before.
type literal struct {
	before int
	r      rune
}

// Len is the number of alphabet symbols, which is the key-stream length the text consumes.
func (t Text) Len() int {
	return len(t.indices)
}

// Indices returns a copy of the symbol indices.
func (t Text) Indices() []int {
	out := make([]int, len(t.indices))
	copy(out, t.indices)

	return out
}

// Normalizer case-folds and filters raw text against an alphabet.
type Normalizer struct {
	alphabet Alphabet
	policy   Policy
}

// NewNormalizer returns a normalizer for the given alphabet and policy.
func NewNormalizer(alphabet Alphabet, policy Policy) Normalizer {
	return Normalizer{alphabet: alphabet, policy: policy}
}

// Normalize converts s into a Text. Under Reject it fails with ErrInvalidCharacter
// on the first character that is not an alphabet member.
func (n Normalizer) Normalize(s string) (Text, error) {
	switch n.policy {
	case Drop, Reject, PassThrough:
	default:
		return Text{}, fmt.Errorf("%w: %v", ErrUnknownPolicy, n.policy)
	}

	text := Text{indices: make([]int, 0, len(s))}

	pos := 0

	for _, r := range s {
		idx, ok := n.alphabet.lookup(r)

		switch {
		case ok:
			text.indices = append(text.indices, idx)
		case n.policy == Reject:
			return Text{}, fmt.Errorf("%w: %q at position %d", ErrInvalidCharacter, r, pos)
		case n.policy == PassThrough:
			text.literals = append(text.literals, literal{before: len(text.indices), r: r})
		}

		pos++
	}

	return text, nil
}

// String renders the text back through the alphabet, literals included.
func (n Normalizer) String(t Text) string {
	return assemble(n.alphabet, t, t.indices)
}

// Normalize lowercases s and strips everything outside a..z.
func Normalize(s string) string {
	n := NewNormalizer(DefaultAlphabet(), Drop)

	//nolint:errcheck // Drop never fails
	text, _ := n.Normalize(s)

	return n.String(text)
}

// assemble renders indices (which replace t's own) interleaved with t's literals.
func assemble(alphabet Alphabet, t Text, indices []int) string {
	var buf strings.Builder

	buf.Grow(len(indices) + len(t.literals))

	lit := 0

	for i, idx := range indices {
		for lit < len(t.literals) && t.literals[lit].before == i {
			buf.WriteRune(t.literals[lit].r)
			lit++
		}

		buf.WriteRune(alphabet.SymbolAt(idx))
	}

	for ; lit < len(t.literals); lit++ {
		buf.WriteRune(t.literals[lit].r)
	}

	return buf.String()
}
