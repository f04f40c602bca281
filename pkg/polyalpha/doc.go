// Package polyalpha implements a generalized polyalphabetic (Vigenère family) cipher.
//
// Text is normalized against an Alphabet, paired element-wise with a lazily generated
// key stream and combined by modular addition (encrypt) or subtraction (decrypt).
// Three key-stream strategies are supported: a repeating key, an autokey that extends
// itself with the plaintext, and a running key drawn from a long companion text.
//
// The package performs no I/O and keeps no state between calls.
package polyalpha
