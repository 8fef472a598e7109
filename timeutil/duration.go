package timeutil

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidDuration = errors.New("invalid duration")

const (
	day  = 24 * time.Hour
	week = 7 * day
)

var units = map[string]time.Duration{
	"w": week, "wk": week, "wks": week, "week": week, "weeks": week,
	"d": day, "dy": day, "dys": day, "day": day, "days": day,
	"h": time.Hour, "hr": time.Hour, "hrs": time.Hour, "hour": time.Hour, "hours": time.Hour,
	"m": time.Minute, "min": time.Minute, "mins": time.Minute, "minute": time.Minute, "minutes": time.Minute,
	"s": time.Second, "sec": time.Second, "secs": time.Second, "second": time.Second, "seconds": time.Second,
	"ms": time.Millisecond, "msec": time.Millisecond, "millisecond": time.Millisecond, "milliseconds": time.Millisecond,
}

var (
	plainNumber = regexp.MustCompile(`^\d+(?:\.\d+)?$`)
	wordsForm   = regexp.MustCompile(`^(?:\d+(?:\.\d+)?\s*[a-z]+\s*(?:,|and)?\s*)+$`)
	wordTerm    = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*([a-z]+)`)
)

// DurationFromFormatted parses a human written duration. Accepted forms:
//
//	"0:03:01", "3:01"       H:MM:SS and MM:SS, seconds may be fractional
//	"181", "181.5"          plain seconds
//	"1h3m", "90s"           Go durations
//	"3 min 1 sec", "2 days, 4 hours"
//
// A leading '-' negates the result.
func DurationFromFormatted(s string) (time.Duration, error) {
	in := strings.ToLower(strings.TrimSpace(s))
	sign := time.Duration(1)
	switch {
	case strings.HasPrefix(in, "-"):
		sign, in = -1, strings.TrimSpace(in[1:])
	case strings.HasPrefix(in, "+"):
		in = strings.TrimSpace(in[1:])
	}
	if in == "" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
	}

	var d time.Duration
	var err error
	if strings.Contains(in, ":") {
		d, err = parseClock(in)
	} else if plainNumber.MatchString(in) {
		secs, _ := strconv.ParseFloat(in, 64)
		d = secondsToDuration(secs)
	} else if gd, gerr := time.ParseDuration(in); gerr == nil {
		d = gd
	} else {
		d, err = parseWords(in)
	}
	if err != nil || d < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
	}
	return sign * d, nil
}

// parseClock handles [H:]MM:SS[.fff]. Every field after the first must be
// below 60.
func parseClock(s string) (time.Duration, error) {
	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return 0, ErrInvalidDuration
	}
	var total float64
	for i, p := range parts {
		last := i == len(parts)-1
		var v float64
		if last {
			if !plainNumber.MatchString(p) {
				return 0, ErrInvalidDuration
			}
			v, _ = strconv.ParseFloat(p, 64)
		} else {
			n, err := strconv.Atoi(p)
			if err != nil || n < 0 {
				return 0, ErrInvalidDuration
			}
			v = float64(n)
		}
		if i > 0 && v >= 60 {
			return 0, ErrInvalidDuration
		}
		total = total*60 + v
	}
	return secondsToDuration(total), nil
}

func parseWords(s string) (time.Duration, error) {
	if !wordsForm.MatchString(s) {
		return 0, ErrInvalidDuration
	}
	var total time.Duration
	for _, m := range wordTerm.FindAllStringSubmatch(s, -1) {
		unit, ok := units[m[2]]
		if !ok {
			return 0, ErrInvalidDuration
		}
		n, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return 0, ErrInvalidDuration
		}
		total += time.Duration(n * float64(unit))
	}
	return total, nil
}
