// Package timeutil converts between epoch timestamps, time.Time values and
// the display formats used in log and archive file names.
//
// Timestamps are float64 epoch seconds and may carry a fractional part.
// Formatted times are always rendered and parsed in the local zone.
package timeutil

import (
	"math"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// DisplayLayout renders times as "2012-01-27 02:29:33".
const DisplayLayout = "2006-01-02 15:04:05"

var now = time.Now

// Number is any numeric type an epoch timestamp may be held in.
type Number interface {
	~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64 | ~float32 | ~float64
}

// IsValidTimestamp reports whether ts falls between 1900-01-01 00:00:00
// local time and now, inclusive.
func IsValidTimestamp[T Number](ts T) bool {
	f := float64(ts)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return false
	}
	t := TimestampToDateTime(f)
	lower := time.Date(1900, time.January, 1, 0, 0, 0, 0, time.Local)
	return !t.Before(lower) && !t.After(now())
}

// DateTimeToTimestamp converts t to epoch seconds.
func DateTimeToTimestamp(t time.Time) float64 {
	return float64(t.Unix()) + float64(t.Nanosecond())/1e9
}

// TimestampToDateTime converts epoch seconds to a local time.Time.
func TimestampToDateTime(ts float64) time.Time {
	sec, frac := math.Modf(ts)
	return time.Unix(int64(sec), int64(math.Round(frac*1e9))).Local()
}

// FormatDatetimeForDisplay renders t in DisplayLayout.
func FormatDatetimeForDisplay(t time.Time) string {
	return t.Format(DisplayLayout)
}

// ParseFormattedTime is the inverse of FormatDatetimeForDisplay.
func ParseFormattedTime(s string) (time.Time, error) {
	return time.ParseInLocation(DisplayLayout, strings.TrimSpace(s), time.Local)
}

// ApplyDeltaYearsToTimestamp moves ts by a whole number of calendar years.
// Negative years move backwards.
func ApplyDeltaYearsToTimestamp(ts float64, years int) float64 {
	return DateTimeToTimestamp(TimestampToDateTime(ts).AddDate(years, 0, 0))
}

// ApplyDeltaSecondsToTimestamp moves ts by seconds, which may be negative or
// fractional.
func ApplyDeltaSecondsToTimestamp(ts, seconds float64) float64 {
	return DateTimeToTimestamp(TimestampToDateTime(ts).Add(secondsToDuration(seconds)))
}

// DurationToTimestamp expresses a duration in seconds as an epoch delta.
func DurationToTimestamp(seconds float64) float64 {
	return secondsToDuration(seconds).Seconds()
}

func secondsToDuration(seconds float64) time.Duration {
	return time.Duration(math.Round(seconds * float64(time.Second)))
}

func CurrentYear() int {
	return now().Year()
}

func CurrentTimestamp() float64 {
	return DateTimeToTimestamp(now())
}

func CurrentFormattedTime() string {
	return FormatDatetimeForDisplay(now())
}

// CurrentTimestampForFilename is CurrentFormattedTime with ':' replaced by
// '.', e.g. "2012-01-27 02.29.33", so it can appear in file names.
func CurrentTimestampForFilename() string {
	return strings.ReplaceAll(CurrentFormattedTime(), ":", ".")
}

// FormatRelative describes t relative to now, e.g. "3 minutes ago".
func FormatRelative(t time.Time) string {
	return humanize.RelTime(t, now(), "ago", "from now")
}
