// Package tsp - RNG utilities for start-city sampling.
//
// Goals:
//   - Determinism: same seed ⇒ identical samples across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Samples are drawn before workers start.
package tsp

import (
	"math/rand"
	"sort"
)

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	var s = seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// sampleStarts returns k distinct start cities out of 0..n-1.
// k ≥ n returns every city in order; otherwise a seeded partial Fisher–Yates
// draw is sorted ascending so that tie-breaking by start stays stable.
//
// Complexity: O(n) time, O(n) space.
func sampleStarts(n, k int, seed int64) []int {
	p := make([]int, n)

	var i, j int
	for i = 0; i < n; i++ {
		p[i] = i
	}
	if k <= 0 || k >= n {
		return p
	}

	r := rngFromSeed(seed)
	for i = 0; i < k; i++ {
		j = i + r.Intn(n-i)
		p[i], p[j] = p[j], p[i]
	}
	out := p[:k]
	sort.Ints(out)

	return out
}
