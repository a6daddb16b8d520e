package utils

import (
	"errors"
	"time"
)

// TimestampLayout is how timestamps are rendered in responses: wall clock,
// no offset, fractional seconds down to microseconds only when non-zero.
const TimestampLayout = "2006-01-02T15:04:05.999999"

var acceptedLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

var ErrInvalidTimestamp = errors.New("invalid timestamp")

// FormatEpoch renders epoch microseconds produced by FromTimestamp.
func FormatEpoch(micros int64) string {
	return time.UnixMicro(micros).
		UTC().
		Format(TimestampLayout)
}

// FromTimestamp parses an ISO 8601 timestamp into epoch microseconds of its
// wall clock. An offset, if any, is dropped rather than applied, so
// "10:00:00+02:00" is kept as 10:00:00.
func FromTimestamp(s string) (int64, error) {
	for _, layout := range acceptedLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return wallClock(t).UnixMicro(), nil
		}
	}
	return 0, ErrInvalidTimestamp
}

func wallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(),
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}
