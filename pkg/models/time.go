package models

import "time"

// Timestamps are persisted as epoch milliseconds (BIGINT). Conversion to
// time.Time happens once, at the decode boundary; the raw storage
// representation never reaches the API surface.

// TimeFromMillis converts an epoch-millisecond timestamp to a UTC time.Time.
func TimeFromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

// MillisFromTime converts a time.Time to its epoch-millisecond representation.
func MillisFromTime(t time.Time) int64 {
	return t.UnixMilli()
}
