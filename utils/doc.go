// Package utils provides internal utility functions for the marker tracking
// bridge. This package is not intended to be imported by external code.
//
// It contains:
//   - Time formatting and conversion utilities
//   - Shared constants
package utils
