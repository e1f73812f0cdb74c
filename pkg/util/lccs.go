package util

// LongestCommonRun finds the longest common contiguous run of a and b.
// It returns the start index in a, the start index in b and the run length.
// When several runs share the maximum length the one with the smallest start
// in a (then in b) wins. (0, 0, 0) means a and b have no element in common.
func LongestCommonRun[T comparable](a, b []T) (int, int, int) {
	previous := make([]int, len(b)+1)
	current := make([]int, len(b)+1)

	bestLength := 0
	bestEndA := 0
	bestEndB := 0

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				current[j] = previous[j-1] + 1
				if current[j] > bestLength {
					bestLength = current[j]
					bestEndA = i
					bestEndB = j
				}
			} else {
				current[j] = 0
			}
		}
		previous, current = current, previous
	}

	if bestLength == 0 {
		return 0, 0, 0
	}

	return bestEndA - bestLength, bestEndB - bestLength, bestLength
}
