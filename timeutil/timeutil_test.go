package timeutil

import (
	"errors"
	"math"
	"testing"
	"time"
)

// freeze pins now to t for the duration of the test.
func freeze(t *testing.T, at time.Time) {
	t.Helper()
	prev := now
	now = func() time.Time { return at }
	t.Cleanup(func() { now = prev })
}

func TestIsValidTimestamp(t *testing.T) {
	freeze(t, time.Date(2024, 6, 1, 12, 0, 0, 0, time.Local))
	lower := time.Date(1900, 1, 1, 0, 0, 0, 0, time.Local).Unix()

	tests := []struct {
		name string
		ts   float64
		want bool
	}{
		{"epoch", 0, true},
		{"lower bound", float64(lower), true},
		{"before 1900", float64(lower - 1), false},
		{"now", DateTimeToTimestamp(now()), true},
		{"future", DateTimeToTimestamp(now().Add(time.Second)), false},
		{"fractional", 1327631373.25, true},
		{"nan", math.NaN(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidTimestamp(tt.ts); got != tt.want {
				t.Errorf("IsValidTimestamp(%v) = %v, want %v", tt.ts, got, tt.want)
			}
		})
	}
	if !IsValidTimestamp(int64(1327631373)) {
		t.Error("IsValidTimestamp(int64) = false, want true")
	}
}

func TestTimestampRoundTrip(t *testing.T) {
	in := time.Date(2012, 1, 27, 2, 29, 33, 500_000_000, time.Local)
	ts := DateTimeToTimestamp(in)
	if math.Abs(ts-float64(in.Unix())-0.5) > 1e-6 {
		t.Errorf("DateTimeToTimestamp() = %v", ts)
	}
	if got := TimestampToDateTime(ts); !got.Equal(in) {
		t.Errorf("TimestampToDateTime(%v) = %v, want %v", ts, got, in)
	}
}

func TestFormatAndParse(t *testing.T) {
	in := time.Date(2012, 1, 27, 2, 29, 33, 0, time.Local)
	s := FormatDatetimeForDisplay(in)
	if s != "2012-01-27 02:29:33" {
		t.Errorf("FormatDatetimeForDisplay() = %q", s)
	}
	got, err := ParseFormattedTime(s)
	if err != nil {
		t.Fatalf("ParseFormattedTime() error = %v", err)
	}
	if !got.Equal(in) {
		t.Errorf("ParseFormattedTime() = %v, want %v", got, in)
	}
	if _, err := ParseFormattedTime("2012-01-27 02-29-33"); err == nil {
		t.Error("ParseFormattedTime() should reject dashes in the clock")
	}
}

func TestApplyDeltas(t *testing.T) {
	start := time.Date(2020, 2, 29, 10, 0, 0, 0, time.Local)
	ts := DateTimeToTimestamp(start)

	got := TimestampToDateTime(ApplyDeltaYearsToTimestamp(ts, -1))
	if want := time.Date(2019, 3, 1, 10, 0, 0, 0, time.Local); !got.Equal(want) {
		t.Errorf("ApplyDeltaYearsToTimestamp(-1) = %v, want %v", got, want)
	}
	got = TimestampToDateTime(ApplyDeltaYearsToTimestamp(ts, 4))
	if want := time.Date(2024, 2, 29, 10, 0, 0, 0, time.Local); !got.Equal(want) {
		t.Errorf("ApplyDeltaYearsToTimestamp(4) = %v, want %v", got, want)
	}

	if got := ApplyDeltaSecondsToTimestamp(ts, 90.5); math.Abs(got-ts-90.5) > 1e-3 {
		t.Errorf("ApplyDeltaSecondsToTimestamp(90.5) moved by %v", got-ts)
	}
	if got := ApplyDeltaSecondsToTimestamp(ts, -60); math.Abs(got-ts+60) > 1e-3 {
		t.Errorf("ApplyDeltaSecondsToTimestamp(-60) moved by %v", got-ts)
	}
	if got := DurationToTimestamp(181); got != 181 {
		t.Errorf("DurationToTimestamp(181) = %v", got)
	}
}

func TestCurrent(t *testing.T) {
	freeze(t, time.Date(2012, 1, 27, 2, 29, 33, 0, time.Local))

	if got := CurrentYear(); got != 2012 {
		t.Errorf("CurrentYear() = %d", got)
	}
	if got := CurrentFormattedTime(); got != "2012-01-27 02:29:33" {
		t.Errorf("CurrentFormattedTime() = %q", got)
	}
	if got := CurrentTimestampForFilename(); got != "2012-01-27 02.29.33" {
		t.Errorf("CurrentTimestampForFilename() = %q", got)
	}
	if got := CurrentTimestamp(); got != float64(now().Unix()) {
		t.Errorf("CurrentTimestamp() = %v", got)
	}
}

func TestFormatRelative(t *testing.T) {
	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	freeze(t, at)

	tests := []struct {
		t    time.Time
		want string
	}{
		{at.Add(-3 * time.Minute), "3 minutes ago"},
		{at.Add(-2 * time.Hour), "2 hours ago"},
		{at.Add(3 * 24 * time.Hour), "3 days from now"},
	}
	for _, tt := range tests {
		if got := FormatRelative(tt.t); got != tt.want {
			t.Errorf("FormatRelative(%v) = %q, want %q", tt.t, got, tt.want)
		}
	}
}

func TestDurationFromFormatted(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{"0:03:01", 181 * time.Second},
		{"3:01", 181 * time.Second},
		{"1:02:03", time.Hour + 2*time.Minute + 3*time.Second},
		{"0:00:01.5", 1500 * time.Millisecond},
		{"25:00:00", 25 * time.Hour},
		{"181", 181 * time.Second},
		{"2.5", 2500 * time.Millisecond},
		{"1h3m", time.Hour + 3*time.Minute},
		{"90s", 90 * time.Second},
		{"3 min 1 sec", 181 * time.Second},
		{"2 days, 4 hours", 52 * time.Hour},
		{"1 week and 1 day", 8 * 24 * time.Hour},
		{"1.5 hours", 90 * time.Minute},
		{"  3 MINUTES ", 3 * time.Minute},
		{"-0:01:00", -time.Minute},
	}
	for _, tt := range tests {
		got, err := DurationFromFormatted(tt.in)
		if err != nil {
			t.Errorf("DurationFromFormatted(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("DurationFromFormatted(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDurationFromFormatted_Invalid(t *testing.T) {
	for _, in := range []string{"", "-", "abc", "1:60", "1:2:3:4", "3 fortnights", "1:nan", "nan", "1e3", "1:-5"} {
		if _, err := DurationFromFormatted(in); !errors.Is(err, ErrInvalidDuration) {
			t.Errorf("DurationFromFormatted(%q) error = %v, want ErrInvalidDuration", in, err)
		}
	}
}
