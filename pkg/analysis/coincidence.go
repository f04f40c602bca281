package analysis

// Coincidences counts the positions i where indices[i] equals indices[(i+shift) mod n].
// Negative shifts wrap around.
func Coincidences(indices []int, shift int) int {
	n := len(indices)
	if n == 0 {
		return 0
	}

	var count int

	for i, v := range indices {
		if v == indices[((i+shift)%n+n)%n] {
			count++
		}
	}

	return count
}

// IndexOfCoincidence is the probability that two symbols drawn without replacement match.
// It is zero for fewer than two symbols.
func IndexOfCoincidence(indices []int, size int) float64 {
	n := len(indices)
	if n < 2 || size < 1 {
		return 0
	}

	counts := make([]int, size)
	for _, v := range indices {
		counts[v]++
	}

	var sum int
	for _, c := range counts {
		sum += c * (c - 1)
	}

	return float64(sum) / float64(n*(n-1))
}

// columns splits indices into keyLen interleaved columns.
func columns(indices []int, keyLen int) [][]int {
	cols := make([][]int, keyLen)

	for i, v := range indices {
		cols[i%keyLen] = append(cols[i%keyLen], v)
	}

	return cols
}
