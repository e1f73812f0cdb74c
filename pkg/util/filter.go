package util

// FilterIndices returns the indices of all elements of s matching p, in order.
func FilterIndices[T any](s []T, p func(*T) bool) []int {
	var indices []int
	for i := range s {
		if p(&s[i]) {
			indices = append(indices, i)
		}
	}
	return indices
}

func Map[T any, R any](s []T, f func(T) R) []R {
	out := make([]R, 0, len(s))
	for _, e := range s {
		out = append(out, f(e))
	}
	return out
}
