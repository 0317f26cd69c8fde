package markertrack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseViewportQuery(t *testing.T) {
	vp, err := parseViewportQuery(map[string]string{
		"centerLat": "51.5",
		"centerLon": "-0.12",
		"zoom":      "14",
		"widthPx":   "1024",
		"heightPx":  "768",
		"bearing":   "45",
		"tilt":      "30",
	})
	require.NoError(t, err)
	assert.Equal(t, 51.5, vp.CenterLat)
	assert.Equal(t, -0.12, vp.CenterLon)
	assert.Equal(t, 14.0, vp.Zoom)
	assert.Equal(t, 1024.0, vp.WidthPx)
	assert.Equal(t, 768.0, vp.HeightPx)
	assert.Equal(t, 45.0, vp.Bearing)
	assert.Equal(t, 30.0, vp.Tilt)
}

func TestParseViewportQueryDefaultsWindow(t *testing.T) {
	vp, err := parseViewportQuery(map[string]string{
		"centerLat": "0",
		"centerLon": "0",
		"zoom":      "12",
	})
	require.NoError(t, err)
	assert.Equal(t, float64(defaultViewportWidthPx), vp.WidthPx)
	assert.Equal(t, float64(defaultViewportHeightPx), vp.HeightPx)
}

func TestParseViewportQueryErrors(t *testing.T) {
	cases := []struct {
		name   string
		params map[string]string
	}{
		{"missing zoom", map[string]string{"centerLat": "0", "centerLon": "0"}},
		{"non-numeric centerLat", map[string]string{"centerLat": "a", "centerLon": "0", "zoom": "12"}},
		{"centerLat out of range", map[string]string{"centerLat": "95", "centerLon": "0", "zoom": "12"}},
		{"zero widthPx", map[string]string{"centerLat": "0", "centerLon": "0", "zoom": "12", "widthPx": "0"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseViewportQuery(tc.params)
			assert.Error(t, err)
		})
	}
}
