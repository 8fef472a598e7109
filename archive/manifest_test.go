package archive

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/go-cmp/cmp"
)

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func TestManifest_Sort_PersistsState(t *testing.T) {
	m := &Manifest{}
	m.Add(Entry{Name: "c", Modified: day(3)})
	m.Add(Entry{Name: "a", Modified: day(1)})
	m.Add(Entry{Name: "b", Modified: day(2)})

	if m.sorted {
		t.Error("Manifest should not be marked sorted after Add")
	}
	m.Sort()
	if !m.sorted {
		t.Error("Manifest should be marked sorted after Sort()")
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, m.Names()); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestManifest_Sort_TiesByName(t *testing.T) {
	var m Manifest
	m.Add(Entry{Name: "z", Modified: day(1)})
	m.Add(Entry{Name: "m", Modified: day(1)})
	m.Add(Entry{Name: "a", Modified: day(1)})
	m.Sort()
	if diff := cmp.Diff([]string{"a", "m", "z"}, m.Names()); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestManifest_OldestNewest(t *testing.T) {
	var empty Manifest
	if !empty.Oldest().IsZero() || !empty.Newest().IsZero() {
		t.Error("empty manifest should report zero times")
	}

	var m Manifest
	m.Add(Entry{Name: "mid", Modified: day(15)})
	m.Add(Entry{Name: "late", Modified: day(28)})
	m.Add(Entry{Name: "early", Modified: day(2)})

	if got := m.Oldest(); !got.Equal(day(2)) {
		t.Errorf("Oldest() = %v, want %v", got, day(2))
	}
	if got := m.Newest(); !got.Equal(day(28)) {
		t.Errorf("Newest() = %v, want %v", got, day(28))
	}
}

func TestManifest_Counts(t *testing.T) {
	var m Manifest
	m.Add(Entry{Name: "dir", IsDir: true})
	m.Add(Entry{Name: "dir/a", Size: 10})
	m.Add(Entry{Name: "dir/b", Size: 32})

	if got := m.Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}
	if got := m.FileCount(); got != 2 {
		t.Errorf("FileCount() = %d, want 2", got)
	}
	if got := m.TotalSize(); got != 42 {
		t.Errorf("TotalSize() = %d, want 42", got)
	}
}

func TestManifest_JSON(t *testing.T) {
	var m Manifest
	m.Add(Entry{Name: "b", Size: 2, Modified: day(2)})
	m.Add(Entry{Name: "a", Size: 1, Modified: day(1), IsDir: true})
	m.Sort()

	data, err := sonic.Marshal(m)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var decoded struct {
		Entries []Entry `json:"entries"`
	}
	if err := sonic.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	want := []Entry{
		{Name: "a", Size: 1, Modified: day(1), IsDir: true},
		{Name: "b", Size: 2, Modified: day(2)},
	}
	if diff := cmp.Diff(want, decoded.Entries); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestManifest_Iterate_Break(t *testing.T) {
	var m Manifest
	for _, n := range []string{"a", "b", "c"} {
		m.Add(Entry{Name: n})
	}
	var seen []string
	for e := range m.Iterate {
		seen = append(seen, e.Name)
		if e.Name == "b" {
			break
		}
	}
	if diff := cmp.Diff([]string{"a", "b"}, seen); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestSummary_Save(t *testing.T) {
	var m Manifest
	m.Add(Entry{Name: "a", Size: 5, Modified: day(1)})
	m.Add(Entry{Name: "b", Size: 7, Modified: day(9)})

	s, err := m.Summarize("")
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if s.EntryCount != 2 || s.FileCount != 2 || s.UncompressedSize != 12 {
		t.Errorf("Summarize() = %+v", s)
	}
	if s.Version == "" {
		t.Error("Summarize() should record a version")
	}

	out := filepath.Join(t.TempDir(), "summary.json")
	if err := s.Save(out); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
}
