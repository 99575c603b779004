package playlist

import "math/rand"

// permutation returns a uniformly random permutation of [0, n) using
// the Fisher-Yates shuffle.
func permutation(n int, rng *rand.Rand) []int {
	order := identity(n)
	for i := n - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		order[i], order[j] = order[j], order[i]
	}
	return order
}

// identity returns the identity permutation of [0, n).
func identity(n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	return order
}
