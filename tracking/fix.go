package tracking

import (
	"errors"
	"fmt"
	"math"
)

// ErrMalformedFix is returned by ApplyFix for a fix with a missing id or
// non-finite/out-of-range values. The entity, if any, is left unchanged.
var ErrMalformedFix = errors.New("malformed fix")

// Fix is one reported observation for a tracked entity. Heading and speed
// are optional; they are nil when the transport did not supply them.
// A Fix is immutable once created.
type Fix struct {
	ID          string   `json:"id"`
	Lat         float64  `json:"lat"`
	Lon         float64  `json:"lon"`
	Heading     *float64 `json:"heading,omitempty"` // degrees, 0 = north, clockwise
	Speed       *float64 `json:"speed,omitempty"`   // m/s
	TimestampMs int64    `json:"timestampMs"`
}

// Validate reports whether the fix is safe to apply. Out-of-order delivery
// is not a validation concern; that is handled per-entity in ApplyFix.
func (f Fix) Validate() error {
	if f.ID == "" {
		return fmt.Errorf("%w: empty id", ErrMalformedFix)
	}
	if !finite(f.Lat) || f.Lat < -90 || f.Lat > 90 {
		return fmt.Errorf("%w: latitude %v out of range", ErrMalformedFix, f.Lat)
	}
	if !finite(f.Lon) || f.Lon < -180 || f.Lon > 180 {
		return fmt.Errorf("%w: longitude %v out of range", ErrMalformedFix, f.Lon)
	}
	if f.Heading != nil && !finite(*f.Heading) {
		return fmt.Errorf("%w: non-finite heading", ErrMalformedFix)
	}
	if f.Speed != nil && (!finite(*f.Speed) || *f.Speed < 0) {
		return fmt.Errorf("%w: invalid speed %v", ErrMalformedFix, f.Speed)
	}
	if f.TimestampMs <= 0 {
		return fmt.Errorf("%w: timestamp %d", ErrMalformedFix, f.TimestampMs)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
