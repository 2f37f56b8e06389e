package domain

import (
	"strconv"
	"time"
)

// TimestampLayout renders UTC times with millisecond precision, e.g. 2023-11-20T10:00:00.000Z.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Timestamp formats t the way records store it.
func Timestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseTimestamp accepts stored timestamps with or without fractional seconds.
func ParseTimestamp(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}

// NewID derives a record id from the wall clock in milliseconds.
// Two creates within the same millisecond collide.
func NewID(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 10)
}
