package tracking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrailBufferDistanceFilter(t *testing.T) {
	b := NewTrailBuffer(50, 5.0)

	require.True(t, b.Append(0, 0, 1000))

	// One degree of longitude at the equator is ~111 km; a hundredth of a
	// thousandth of a degree (~1.1 m) is under the 5 m filter.
	assert.False(t, b.Append(0, 0.00001, 2000))
	assert.Equal(t, 1, b.Len())

	// ~111 m away passes the filter.
	assert.True(t, b.Append(0, 0.001, 3000))
	assert.Equal(t, 2, b.Len())
}

func TestTrailBufferCapacityDropsOldest(t *testing.T) {
	b := NewTrailBuffer(3, 0)
	for i := 0; i < 5; i++ {
		require.True(t, b.Append(float64(i), 0, int64(i+1)))
	}

	points := b.Points()
	require.Len(t, points, 3)
	assert.Equal(t, 2.0, points[0].Lat)
	assert.Equal(t, 4.0, points[2].Lat)
}

func TestTrailBufferConfigureTrims(t *testing.T) {
	b := NewTrailBuffer(10, 0)
	for i := 0; i < 6; i++ {
		b.Append(float64(i), 0, int64(i+1))
	}

	b.Configure(2, 5.0)
	points := b.Points()
	require.Len(t, points, 2)
	assert.Equal(t, 4.0, points[0].Lat)
	assert.Equal(t, 5.0, points[1].Lat)
}

func TestTrailBufferClear(t *testing.T) {
	b := NewTrailBuffer(10, 0)
	b.Append(1, 1, 1000)
	b.Clear()
	assert.Equal(t, 0, b.Len())
}

func TestGradientOpacity(t *testing.T) {
	assert.Equal(t, 0.0, GradientOpacity(0, 5))
	assert.Equal(t, 1.0, GradientOpacity(4, 5))
	assert.InDelta(t, 0.5, GradientOpacity(2, 5), 1e-9)

	// A single point renders fully opaque.
	assert.Equal(t, 1.0, GradientOpacity(0, 1))
}
