package Trees

import "golang.org/x/exp/constraints"

// quickSort s in ascending order of key. Lomuto partitioning with the last
// element as pivot; recurses into the smaller side only so the stack depth is
// O(log n) even on sorted input.
func quickSort[T any, K constraints.Ordered](s []T, key func(T) K) {
	for len(s) > 1 {
		if p := partition(s, key); p < len(s)-1-p {
			quickSort(s[:p], key)
			s = s[p+1:]
		} else {
			quickSort(s[p+1:], key)
			s = s[:p]
		}
	}
}

// partition s around its last element and returns the element's final index.
// Everything before the index has key<=pivot, everything after has key>pivot.
func partition[T any, K constraints.Ordered](s []T, key func(T) K) int {
	hi := len(s) - 1
	pv, x := key(s[hi]), 0
	for i := 0; i < hi; i++ {
		if key(s[i]) <= pv {
			s[i], s[x] = s[x], s[i]
			x++
		}
	}
	s[x], s[hi] = s[hi], s[x]
	return x
}
