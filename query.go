package markertrack

import (
	"strconv"
	"strings"

	"github.com/neildunlop/marker-tracking/geo"
	"github.com/neildunlop/marker-tracking/utils"
)

type QueryError struct{ Msg string }

func (e *QueryError) Error() string { return e.Msg }

const (
	defaultViewportWidthPx  = 800
	defaultViewportHeightPx = 600
)

func parseFloatParam(params map[string]string, key string) (float64, bool, error) {
	s, ok := params[key]
	if !ok || strings.TrimSpace(s) == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false, &QueryError{Msg: "Parameter " + key + " must be a number."}
	}
	return v, true, nil
}

// parseViewportQuery assembles a viewport from query parameters. centerLat,
// centerLon and zoom are required; widthPx and heightPx fall back to a
// default window.
func parseViewportQuery(params map[string]string) (geo.Viewport, error) {
	vp := geo.Viewport{WidthPx: defaultViewportWidthPx, HeightPx: defaultViewportHeightPx}

	required := []struct {
		key string
		dst *float64
	}{
		{"centerLat", &vp.CenterLat},
		{"centerLon", &vp.CenterLon},
		{"zoom", &vp.Zoom},
	}
	for _, r := range required {
		v, ok, err := parseFloatParam(params, r.key)
		if err != nil {
			return geo.Viewport{}, err
		}
		if !ok {
			return geo.Viewport{}, &QueryError{Msg: "You must provide " + r.key + "."}
		}
		*r.dst = v
	}
	if vp.CenterLat < -90 || vp.CenterLat > 90 {
		return geo.Viewport{}, &QueryError{Msg: "centerLat out of range."}
	}

	if v, ok, err := parseFloatParam(params, "widthPx"); err != nil {
		return geo.Viewport{}, err
	} else if ok {
		vp.WidthPx = v
	}
	if v, ok, err := parseFloatParam(params, "heightPx"); err != nil {
		return geo.Viewport{}, err
	} else if ok {
		vp.HeightPx = v
	}
	if vp.WidthPx <= 0 || vp.HeightPx <= 0 {
		return geo.Viewport{}, &QueryError{Msg: "widthPx and heightPx must be positive."}
	}

	if v, ok, err := parseFloatParam(params, "bearing"); err != nil {
		return geo.Viewport{}, err
	} else if ok {
		vp.Bearing = v
	}
	if v, ok, err := parseFloatParam(params, "tilt"); err != nil {
		return geo.Viewport{}, err
	} else if ok {
		vp.Tilt = v
	}
	return vp, nil
}

// parseRenderTime reads the optional "at" parameter (Unix milliseconds);
// absent means the wall clock.
func parseRenderTime(params map[string]string) (int64, error) {
	s, ok := params["at"]
	if !ok || strings.TrimSpace(s) == "" {
		return utils.NowUnixMillis(), nil
	}
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || v <= 0 {
		return 0, &QueryError{Msg: "Parameter at must be a positive Unix millisecond timestamp."}
	}
	return v, nil
}
