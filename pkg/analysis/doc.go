// Package analysis breaks repeating-key polyalphabetic ciphertext.
//
// The key length is estimated from the index of coincidence of the ciphertext columns,
// and each key symbol is recovered by choosing the shift whose column best matches the
// expected letter frequencies (chi-squared).
package analysis
