package permute

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderIdentity(t *testing.T) {
	order := Order(5, "")
	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestOrderDeterminism(t *testing.T) {
	a := Order(1000, "my seed")
	b := Order(1000, "my seed")
	assert.Equal(t, a, b)

	c := Order(1000, "other seed")
	assert.NotEqual(t, a, c)
}

func TestOrderIsPermutation(t *testing.T) {
	for _, seed := range []string{"a", "b", "a longer seed value"} {
		order := Order(257, seed)
		require.Len(t, order, 257)
		sorted := append([]int(nil), order...)
		sort.Ints(sorted)
		for i, v := range sorted {
			require.Equal(t, i, v, "seed %q does not yield a permutation", seed)
		}
	}
}

func TestOrderShuffles(t *testing.T) {
	// A seeded order must actually differ from the identity.
	order := Order(100, "seed")
	assert.NotEqual(t, Order(100, ""), order)
}

func TestSeedStability(t *testing.T) {
	assert.Equal(t, Seed("x"), Seed("x"))
	assert.NotEqual(t, Seed("x"), Seed("y"))
}

func TestOrderZeroPixels(t *testing.T) {
	assert.Empty(t, Order(0, "seed"))
}
