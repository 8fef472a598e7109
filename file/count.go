package file

import (
	"os"
	"path/filepath"
)

// CountFiles counts the files below path. Counting stops as soon as the total
// exceeds limit, in which case over is true. A limit <= 0 counts everything.
func CountFiles(path string, limit int) (count int, over bool, err error) {
	var info os.FileInfo
	info, err = os.Stat(path)
	if err != nil {
		return
	}
	if !info.IsDir() {
		err = ErrExpectedDirectory
		return
	}
	over, err = countInto(path, limit, &count)
	return
}

func countInto(path string, limit int, count *int) (bool, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return false, err
	}
	for _, e := range entries {
		if e.IsDir() {
			over, err := countInto(filepath.Join(path, e.Name()), limit, count)
			if over || err != nil {
				return over, err
			}
			continue
		}
		*count++
		if limit > 0 && *count > limit {
			return true, nil
		}
	}
	return false, nil
}
