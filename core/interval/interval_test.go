package interval

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidity(t *testing.T) {
	for start := Time(0); start < 6; start++ {
		for end := Time(0); end < 6; end++ {
			iv, err := New(start, end)
			if end > start {
				require.NoError(t, err)
				assert.Equal(t, start, iv.Start())
				assert.Equal(t, end, iv.End())
				assert.Equal(t, TimeDelta(end-start), iv.Duration())
			} else if !errors.Is(err, ErrInvalidInterval) {
				t.Fatalf("[%d,%d): expected ErrInvalidInterval got %v", start, end, err)
			}
		}
	}
}

func TestReschedule(t *testing.T) {
	iv := MustNew(100, 200)
	tests := []struct {
		name       string
		d1, d2     TimeDelta
		start, end Time
		ok         bool
	}{
		{"shift right", 10, 10, 110, 210, true},
		{"pad", 10, -30, 110, 170, true},
		{"shrink to nothing", 50, -50, 0, 0, false},
		{"cross over", 80, -30, 0, 0, false},
		{"underflow", -101, 0, 0, 0, false},
		{"to zero", -100, -100, 0, 100, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := iv.Reschedule(tt.d1, tt.d2)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.start, got.Start())
				assert.Equal(t, tt.end, got.End())
			}
		})
	}
}

func TestReschedulePreservesData(t *testing.T) {
	iv, err := NewWithData(0, 10, "leg")
	require.NoError(t, err)
	got, ok := iv.Reschedule(1, 1)
	require.True(t, ok)
	assert.Equal(t, "leg", got.Data)
}

func TestIntersect(t *testing.T) {
	got, ok := Intersect(MustNew(0, 10), MustNew(5, 20))
	require.True(t, ok)
	assert.True(t, got.Equal(MustNew(5, 10)))

	_, ok = Intersect(MustNew(0, 10), MustNew(10, 20))
	assert.False(t, ok, "touching intervals do not overlap")

	got, ok = Intersect(MustNew(0, 100), MustNew(20, 30))
	require.True(t, ok)
	assert.True(t, got.Equal(MustNew(20, 30)))
}

func TestEqualIgnoresData(t *testing.T) {
	a, _ := NewWithData(1, 2, "a")
	b, _ := NewWithData(1, 2, "b")
	c, _ := NewWithData(1, 3, "a")
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestTimeAdd(t *testing.T) {
	v, ok := Time(10).Add(-10)
	assert.True(t, ok)
	assert.Equal(t, Time(0), v)
	_, ok = Time(10).Add(-11)
	assert.False(t, ok)
	_, ok = Time(0).Add(math.MinInt64)
	assert.False(t, ok)
	_, ok = Time(math.MaxUint64).Add(1)
	assert.False(t, ok)
}

func TestMustNewPanics(t *testing.T) {
	assert.Panics(t, func() { MustNew(5, 5) })
}
