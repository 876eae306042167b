// Package tsp - tour utilities shared by all solvers.
//
// This file contains compact utilities that operate purely on tour structure
// (index sequences), without depending on distance matrices:
//   - ValidateTour: verify a permutation over {0..n-1}.
//   - RotateTourToStart: cyclic shift so the tour begins at a given city.
//   - closeTour: append the first city to obtain the closed representation.
//   - reverseInPlace: in-place segment reversal (2-opt core).
//   - CopyTour: independent copy of a tour slice.
//   - EqualToursModuloRotation: cyclic equality in either direction.
//   - DebugString: compact printable representation for tests/debug.
//
// Design:
//   - No logging, no panics on user input; only sentinel errors from types.go.
//   - O(n) time for every helper; in-place mutations avoid extra allocations.
package tsp

import (
	"strconv"
	"strings"
)

// ValidateTour checks that tour is a permutation of {0..n-1}: every city
// exactly once, no closing duplicate.
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int) error {
	if n <= 0 || len(tour) != n {
		return ErrDimensionMismatch
	}

	return validateCities(tour, n, false)
}

// RotateTourToStart returns a fresh copy of the tour shifted so that
// out[0] == start. The cyclic order (and so the closed cost) is unchanged.
//
// Complexity: O(n) time, O(n) space.
func RotateTourToStart(tour []int, start int) ([]int, error) {
	var (
		n     = len(tour)
		i     int
		pivot = -1
	)
	for i = 0; i < n; i++ {
		if tour[i] == start {
			pivot = i
			break
		}
	}
	if pivot == -1 {
		return nil, ErrCityNotInSet
	}

	out := make([]int, n)
	for i = 0; i < n; i++ {
		out[i] = tour[(pivot+i)%n]
	}

	return out, nil
}

// closeTour returns tour ++ [tour[0]] in a fresh slice.
//
// Complexity: O(n).
func closeTour(tour []int) []int {
	out := make([]int, len(tour)+1)
	copy(out, tour)
	out[len(tour)] = tour[0]

	return out
}

// reverseInPlace reverses the inclusive segment s[i..k] in place.
// This is the primitive used by 2-opt.
//
// Complexity: O(k-i) time, O(1) space.
func reverseInPlace(s []int, i, k int) {
	for i < k {
		s[i], s[k] = s[k], s[i]
		i++
		k--
	}
}

// CopyTour returns an independent copy of the input tour slice.
//
// Complexity: O(n) time, O(n) space.
func CopyTour(tour []int) []int {
	if tour == nil {
		return nil
	}
	out := make([]int, len(tour))
	copy(out, tour)

	return out
}

// EqualToursModuloRotation reports whether a and b describe the same cycle,
// allowing any rotation and either direction.
//
// Complexity: O(n) time.
func EqualToursModuloRotation(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	var n = len(a)
	if n == 0 {
		return true
	}

	// Find a[0] in b.
	var (
		i, p = 0, -1
	)
	for i = 0; i < n; i++ {
		if b[i] == a[0] {
			p = i
			break
		}
	}
	if p == -1 {
		return false
	}

	forward, backward := true, true
	for i = 0; i < n && (forward || backward); i++ {
		if a[i] != b[(p+i)%n] {
			forward = false
		}
		if a[i] != b[(p-i+n)%n] {
			backward = false
		}
	}

	return forward || backward
}

// DebugString returns a compact printable representation for tests/debug,
// e.g. "[0 3 1 2 | 0]" where the vertical bar marks the implicit closure.
//
// Complexity: O(n) time, O(n) space for formatting.
func DebugString(tour []int) string {
	if len(tour) == 0 {
		return "[]"
	}

	var (
		b strings.Builder
		i int
	)
	b.WriteByte('[')
	for i = 0; i < len(tour); i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(tour[i]))
	}
	b.WriteString(" | ")
	b.WriteString(strconv.Itoa(tour[0]))
	b.WriteByte(']')

	return b.String()
}
