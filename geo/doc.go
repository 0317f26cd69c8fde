// Package geo provides the coordinate math used by the marker tracking core.
//
// It contains:
//   - Spherical Web-Mercator projection from (lat, lon) to screen space,
//     parameterized by a renderer-supplied Viewport
//   - Great-circle (haversine) distance
//   - Flat-earth destination-point computation for short-range dead-reckoning
//   - Compass heading helpers (normalization, shortest-arc interpolation)
//
// Everything in this package is stateless and safe for concurrent use.
package geo
