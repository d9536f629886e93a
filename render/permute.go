package render

// Permutation returns a permutation of 0, …, n-1 that scatters neighboring
// indices far apart. Drawing tangents in this order spreads overlap artifacts
// evenly over the curve, instead of having later tangents cover earlier ones
// systematically.
//
// The permutation steps through the integers modulo the smallest Fibonacci
// number a ≥ n by its predecessor b, which is coprime to a, and drops
// everything ≥ n. It is deterministic.
func Permutation(n int) []int {
	if n <= 0 {
		return []int{}
	}
	a, b := 1, 1
	for a < n {
		a, b = a+b, a
	}
	out := make([]int, 0, n)
	for i := range a {
		if v := i * b % a; v < n {
			out = append(out, v)
		}
	}
	return out
}

func permute(xs []float64, perm []int) []float64 {
	out := make([]float64, len(perm))
	for i, j := range perm {
		out[i] = xs[j]
	}
	return out
}
