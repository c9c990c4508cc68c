// Package floatutils provides utilities for working with floats
package floatutils

// Where returns the indices of the elements of values for which
// predicate returns true
func Where(values []float64, predicate func(float64) bool) []int {
	var indices []int
	for i, value := range values {
		if predicate(value) {
			indices = append(indices, i)
		}
	}
	return indices
}
