// Package intutils provides utilities for working with ints
package intutils

// Min calculates and returns the minimum integer in a list
func Min(ints ...int) int {
	min := ints[0]
	for _, val := range ints {
		if val < min {
			min = val
		}
	}
	return min
}

// Max calculates and returns the maximum integer in a list
func Max(ints ...int) int {
	max := ints[0]
	for _, val := range ints {
		if val > max {
			max = val
		}
	}
	return max
}

// Clamp clamps value to within [min, max]
func Clamp(value, min, max int) int {
	return Max(Min(value, max), min)
}

// Abs returns the absolute value of an integer
func Abs(value int) int {
	if value < 0 {
		return -value
	}
	return value
}
