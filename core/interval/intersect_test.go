package interval

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntersectChains(t *testing.T) {
	a := chainOf(t, 0, 10, 20, 30, 40, 50)
	b := chainOf(t, 5, 25, 45, 100)
	got := IntersectChains(a, b)
	assert.True(t, got.Equal(chainOf(t, 5, 10, 20, 25, 45, 50)), "got %s", got)

	assert.True(t, IntersectChains(a, NewChain[NoData]()).IsEmpty())
	assert.True(t, IntersectChains(a, chainOf(t, 10, 20)).IsEmpty())
}

func TestIntersectChainsKeepsLeftPayload(t *testing.T) {
	left := NewChain[string]()
	l1, _ := NewWithData(0, 10, "first")
	l2, _ := NewWithData(20, 30, "second")
	require.True(t, left.TryPushBack(l1))
	require.True(t, left.TryPushBack(l2))

	right := NewChain[int]()
	r1, _ := NewWithData(5, 25, 7)
	require.True(t, right.TryPushBack(r1))

	got := IntersectChains(left, right)
	require.Equal(t, 2, got.Len())
	assert.Equal(t, "first", got.At(0).Data)
	assert.Equal(t, "second", got.At(1).Data)
	assert.Equal(t, Time(5), got.At(0).Start())
	assert.Equal(t, Time(25), got.At(1).End())
}

// Every piece of the intersection lies inside an interval of both inputs.
func TestIntersectChainsContainedInBoth(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 5))
	covered := func(c *Chain[NoData], iv Interval) bool {
		for _, x := range c.All() {
			if x.Covers(iv) {
				return true
			}
		}
		return false
	}
	for round := 0; round < 200; round++ {
		a := randomChain(r, 0, 500)
		b := randomChain(r, 0, 500)
		ab := IntersectChains(a, b)
		ba := IntersectChains(b, a)
		require.True(t, ab.Equal(ba), "round %d: %s vs %s", round, ab, ba)
		for _, iv := range ab.All() {
			require.True(t, covered(a, iv))
			require.True(t, covered(b, iv))
		}
		// Result must itself be a valid chain.
		_, err := FromIntervals(ab.Intervals()...)
		require.NoError(t, err)
	}
}

func TestIntersectAll(t *testing.T) {
	got := IntersectAll(chainOf(t, 0, 100), chainOf(t, 10, 50, 60, 90), chainOf(t, 40, 70))
	assert.True(t, got.Equal(chainOf(t, 40, 50, 60, 70)), "got %s", got)
	assert.True(t, IntersectAll[NoData]().IsEmpty())
}

func TestIntersectWith(t *testing.T) {
	got := chainOf(t, 20, 50).IntersectWith(MustNew(10, 70))
	assert.True(t, got.Equal(chainOf(t, 20, 50)))
}

func TestShift(t *testing.T) {
	c := chainOf(t, 5, 10, 20, 40)
	assert.True(t, c.Shift(10).Equal(chainOf(t, 15, 20, 30, 50)))
	assert.True(t, c.Shift(-8).Equal(chainOf(t, 0, 2, 12, 32)))
	assert.True(t, c.Shift(-10).Equal(chainOf(t, 10, 30)))
}
