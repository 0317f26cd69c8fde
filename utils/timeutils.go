package utils

import (
	"time"
)

// Iso8601FromUnixMillis converts a Unix millisecond timestamp to ISO8601 format
func Iso8601FromUnixMillis(ms int64) string {
	return time.UnixMilli(ms).UTC().Format(time.RFC3339)
}

// NowUnixMillis returns the current wall clock as Unix milliseconds
func NowUnixMillis() int64 {
	return time.Now().UnixMilli()
}
