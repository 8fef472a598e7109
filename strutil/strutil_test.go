package strutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStartsWith(t *testing.T) {
	tests := []struct {
		s, prefix string
		want      bool
	}{
		{"playlist.m3u", "play", true},
		{"playlist.m3u", "", true},
		{"play", "playlist", false},
		{"Playlist", "play", false},
	}
	for _, tt := range tests {
		if got := StartsWith(tt.s, tt.prefix); got != tt.want {
			t.Errorf("StartsWith(%q, %q) = %v, want %v", tt.s, tt.prefix, got, tt.want)
		}
	}
}

func TestIsNullOrEmpty(t *testing.T) {
	empty, space, word := "", " ", "x"
	if !IsNullOrEmpty(nil) || !IsNullOrEmpty(&empty) {
		t.Error("nil and empty should be null-or-empty")
	}
	if IsNullOrEmpty(&space) || IsNullOrEmpty(&word) {
		t.Error("non-empty strings should not be null-or-empty")
	}

	if !ListIsNullOrEmpty[int](nil) || !ListIsNullOrEmpty([]string{}) {
		t.Error("nil and empty lists should be null-or-empty")
	}
	if ListIsNullOrEmpty([]string{""}) {
		t.Error("a list holding one element is not empty")
	}
}

func TestBitsToKilobits(t *testing.T) {
	tests := map[int64]int64{
		0:       0,
		499:     0,
		500:     0,
		501:     1,
		1500:    2,
		2500:    2,
		320_000: 320,
		-1500:   -2,
	}
	for in, want := range tests {
		if got := BitsToKilobits(in); got != want {
			t.Errorf("BitsToKilobits(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestListDupes(t *testing.T) {
	tests := []struct {
		in   []string
		want []string
	}{
		{[]string{"b", "a", "b", "c", "a", "b"}, []string{"b", "a"}},
		{[]string{"a", "b", "b", "a"}, []string{"a", "b"}},
		{[]string{"x", "y", "z", "z", "y", "x", "x"}, []string{"x", "y", "z"}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, ListDupes(tt.in)); diff != "" {
			t.Errorf("ListDupes(%v) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
	if got := ListDupes([]int{1, 2, 3}); got != nil {
		t.Errorf("ListDupes() = %v, want nil", got)
	}
}

func TestFormatBytes(t *testing.T) {
	tests := map[uint64]string{
		0:          "0 B",
		999:        "999 B",
		82_854_982: "83 MB",
	}
	for in, want := range tests {
		if got := FormatBytes(in); got != want {
			t.Errorf("FormatBytes(%d) = %q, want %q", in, got, want)
		}
	}
}
