// Package strutil holds small string and slice helpers.
package strutil

import (
	"math"
	"strings"

	"github.com/dustin/go-humanize"
)

// StartsWith reports whether s begins with prefix.
func StartsWith(s, prefix string) bool {
	return strings.HasPrefix(s, prefix)
}

// IsNullOrEmpty reports whether s is nil or points at "".
func IsNullOrEmpty(s *string) bool {
	return s == nil || *s == ""
}

// ListIsNullOrEmpty reports whether l is nil or has no elements.
func ListIsNullOrEmpty[T any](l []T) bool {
	return len(l) == 0
}

// BitsToKilobits converts bits to kilobits (1000 bits), rounding halves to
// the nearest even number.
func BitsToKilobits(bits int64) int64 {
	return int64(math.RoundToEven(float64(bits) / 1000))
}

// ListDupes returns every value that occurs more than once in l. Each value is
// reported once, in the order it was first seen.
func ListDupes[T comparable](l []T) []T {
	counts := make(map[T]int, len(l))
	for _, v := range l {
		counts[v]++
	}
	var dupes []T
	for _, v := range l {
		if counts[v] > 1 {
			dupes = append(dupes, v)
			counts[v] = 0
		}
	}
	return dupes
}

// FormatBytes renders n in SI units, e.g. "83 MB".
func FormatBytes(n uint64) string {
	return humanize.Bytes(n)
}
