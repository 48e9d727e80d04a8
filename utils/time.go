// Package utils provides time helpers shared by the mapping layer and the client.
package utils //nolint:revive // utils is a common and acceptable package name

import (
	"fmt"
	"strconv"
	"time"
)

// FixedZone returns a zone named after its UTC offset, e.g. "UTC+03:00"
func FixedZone(offsetSeconds int) *time.Location {
	return time.FixedZone(ZoneName(offsetSeconds), offsetSeconds)
}

// ZoneName formats an offset in seconds as "UTC+hh:mm"
func ZoneName(offsetSeconds int) string {
	sign := '+'
	if offsetSeconds < 0 {
		sign = '-'
		offsetSeconds = -offsetSeconds
	}
	return fmt.Sprintf("UTC%c%02d:%02d", sign, offsetSeconds/3600, offsetSeconds%3600/60)
}

// FromUnix converts Unix epoch seconds to a time in zone; a nil zone means UTC
func FromUnix(seconds int64, zone *time.Location) time.Time {
	if zone == nil {
		zone = time.UTC
	}
	return time.Unix(seconds, 0).In(zone)
}

// GetUnixString formats t as Unix epoch seconds, the format of the API's start/end parameters
func GetUnixString(t time.Time) string {
	return strconv.FormatInt(t.Unix(), 10)
}
