// Package permute derives deterministic pixel-visitation orders from seed
// strings.
package permute

import (
	"crypto/md5"
	"encoding/binary"
	"math/rand"
)

// Order returns the visitation order for n pixels. The empty seed keeps the
// identity order; a non-empty seed shuffles it, and the same seed always
// yields the same permutation.
func Order(n int, seed string) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	if seed == "" {
		return idx
	}
	rd := rand.New(rand.NewSource(Seed(seed)))
	rd.Shuffle(len(idx), func(i, j int) {
		idx[i], idx[j] = idx[j], idx[i]
	})
	return idx
}

// Seed hashes a seed string into a PRNG seed.
func Seed(s string) int64 {
	sum := md5.Sum([]byte(s))
	return int64(binary.BigEndian.Uint64(sum[:8]))
}
