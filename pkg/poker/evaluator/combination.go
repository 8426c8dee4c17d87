package evaluator

// forEachCombination calls fn with the indexes of every k-element subset of
// [0, n), in lexicographic order. fn must not keep idx between calls.
func forEachCombination(n, k int, fn func(idx []int)) {
	if k < 0 || k > n {
		return
	}

	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}

	for {
		fn(idx)

		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}

		if i < 0 {
			return
		}

		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// choose returns the binomial coefficient C(n, k)
func choose(n, k int) uint32 {
	if k < 0 || k > n {
		return 0
	}

	result := uint32(1)
	for i := 1; i <= k; i++ {
		result = result * uint32(n-k+i) / uint32(i)
	}

	return result
}
