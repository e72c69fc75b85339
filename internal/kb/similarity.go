// ABOUTME: Approximate string similarity via a matching-blocks sequence ratio
// ABOUTME: Returns 2*M/(len(a)+len(b)) in [0,1], where M sums longest common blocks

package kb

// Ratio computes a sequence similarity ratio between a and b in [0, 1].
// It recursively finds the longest common substring, then matches the
// pieces to its left and right, and returns twice the matched length over
// the combined length. Two empty strings score 0, not 1, so an empty
// query can never clear a positive threshold.
func Ratio(a, b string) float64 {
	if len(a)+len(b) == 0 {
		return 0
	}
	matched := matchingBlockSize([]rune(a), []rune(b))
	return 2 * float64(matched) / float64(len([]rune(a))+len([]rune(b)))
}

// matchingBlockSize returns the total length of the matching blocks found
// by repeatedly taking the longest common substring and recursing on the
// unmatched regions on either side of it.
func matchingBlockSize(a, b []rune) int {
	aStart, bStart, size := longestCommonSubstring(a, b)
	if size == 0 {
		return 0
	}
	total := size
	total += matchingBlockSize(a[:aStart], b[:bStart])
	total += matchingBlockSize(a[aStart+size:], b[bStart+size:])
	return total
}

// longestCommonSubstring finds the longest run of runes common to a and b.
// Among equally long runs, the earliest in a (then in b) wins, which keeps
// the overall ratio deterministic.
func longestCommonSubstring(a, b []rune) (aStart, bStart, size int) {
	if len(a) == 0 || len(b) == 0 {
		return 0, 0, 0
	}

	// positions of each rune in b, so candidate extensions are O(occurrences)
	positions := make(map[rune][]int, len(b))
	for j, r := range b {
		positions[r] = append(positions[r], j)
	}

	// lengths[j] is the length of the common run ending at a[i-1], b[j-1]
	// from the previous row.
	lengths := make(map[int]int)
	for i, r := range a {
		next := make(map[int]int, len(lengths))
		for _, j := range positions[r] {
			run := lengths[j-1] + 1
			next[j] = run
			if run > size {
				aStart = i - run + 1
				bStart = j - run + 1
				size = run
			}
		}
		lengths = next
	}
	return aStart, bStart, size
}
