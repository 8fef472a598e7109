package archive

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/bytedance/sonic"
	"github.com/nwrobel/gocommons/file"
	"github.com/nwrobel/gocommons/version"
)

type (
	// Entry describes one member of an archive.
	Entry struct {
		Name     string    `json:"name"`     // slash separated path inside the archive
		Size     int64     `json:"size"`     // uncompressed size in bytes
		Modified time.Time `json:"modified"` // modification time recorded in the archive
		IsDir    bool      `json:"is_dir"`
	}

	// Manifest is the entry list of an archive. List returns it sorted
	// oldest first; Oldest and Newest sort it on demand after an Add.
	Manifest struct {
		entries []Entry
		sorted  bool
	}
)

// MarshalJSON encodes the manifest as {"entries": [...]}.
func (m Manifest) MarshalJSON() ([]byte, error) {
	return sonic.Marshal(struct {
		Entries []Entry `json:"entries"`
	}{
		Entries: m.entries,
	})
}

// Iterate yields the entries in manifest order. It has the shape of an
// iter.Seq, so callers can range over m.Iterate.
func (m Manifest) Iterate(yield func(Entry) bool) {
	for _, e := range m.entries {
		if !yield(e) {
			return
		}
	}
}

// Add appends e and marks the manifest unsorted.
func (m *Manifest) Add(e Entry) {
	m.sorted = false
	m.entries = append(m.entries, e)
}

// Sort orders entries by modification time, oldest first. Entries with the
// same timestamp keep name order.
func (m *Manifest) Sort() {
	sort.Stable(m)
	m.sorted = true
}

// Len, Swap and Less implement sort.Interface.
func (m Manifest) Len() int {
	return len(m.entries)
}

func (m Manifest) Swap(i, j int) {
	m.entries[i], m.entries[j] = m.entries[j], m.entries[i]
}

func (m Manifest) Less(i, j int) bool {
	a, b := m.entries[i], m.entries[j]
	if !a.Modified.Equal(b.Modified) {
		return a.Modified.Before(b.Modified)
	}
	return a.Name < b.Name
}

// Oldest returns the earliest modification time, or the zero time for an
// empty manifest.
func (m *Manifest) Oldest() time.Time {
	if m.Len() == 0 {
		return time.Time{}
	}
	if !m.sorted {
		m.Sort()
	}
	return m.entries[0].Modified
}

// Newest returns the latest modification time.
func (m *Manifest) Newest() time.Time {
	if m.Len() == 0 {
		return time.Time{}
	}
	if !m.sorted {
		m.Sort()
	}
	return m.entries[m.Len()-1].Modified
}

// FileCount returns the number of non-directory entries.
func (m Manifest) FileCount() int {
	n := 0
	for e := range m.Iterate {
		if !e.IsDir {
			n++
		}
	}
	return n
}

// TotalSize returns the sum of the uncompressed entry sizes.
func (m Manifest) TotalSize() int64 {
	var total int64
	for e := range m.Iterate {
		total += e.Size
	}
	return total
}

// Names returns the entry names in manifest order.
func (m Manifest) Names() []string {
	names := make([]string, 0, m.Len())
	for e := range m.Iterate {
		names = append(names, e.Name)
	}
	return names
}

// Summary aggregates a manifest. "archive create --summary" stores one beside
// the archive and "archive verify" compares against it.
type Summary struct {
	Archive          string    `json:"archive"`
	CompressedSize   int64     `json:"compressed_size"`
	EntryCount       int       `json:"entry_count"`
	FileCount        int       `json:"file_count"`
	NewestFileTS     time.Time `json:"newest_file_ts"`
	OldestFileTS     time.Time `json:"oldest_file_ts"`
	UncompressedSize int64     `json:"uncompressed_size"`
	Version          string    `json:"version"`
}

// Summarize builds a Summary from the manifest. If path is provided the
// compressed size is read from the file at that path.
func (m *Manifest) Summarize(path string) (Summary, error) {
	var s Summary
	if path != "" {
		stat, err := os.Stat(path)
		if err != nil {
			return s, err
		}
		s.Archive = path
		s.CompressedSize = stat.Size()
	}
	s.Version = version.GetVersion()
	s.EntryCount = m.Len()
	s.FileCount = m.FileCount()
	s.NewestFileTS = m.Newest()
	s.OldestFileTS = m.Oldest()
	s.UncompressedSize = m.TotalSize()
	return s, nil
}

// Save writes the summary as JSON to path.
func (s Summary) Save(path string) error {
	if err := file.WriteJSONFile(path, s); err != nil {
		return fmt.Errorf("save summary: %w", err)
	}
	return nil
}
