package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Entry describes one previously created backup directory.
type Entry struct {
	Name      string
	Path      string
	CreatedAt time.Time
	Items     int
}

// List returns the backup directories found directly under parent, newest
// first. Directories carrying the backup prefix but a malformed timestamp
// are skipped.
func List(parent string) ([]Entry, error) {
	dirents, err := os.ReadDir(parent)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", parent, err)
	}

	var entries []Entry
	for _, d := range dirents {
		if !d.IsDir() || !strings.HasPrefix(d.Name(), DestPrefix+"_") {
			continue
		}

		stamp := strings.TrimPrefix(d.Name(), DestPrefix+"_")
		created, err := time.ParseInLocation(timeLayout, stamp, time.Local)
		if err != nil {
			continue
		}

		path := filepath.Join(parent, d.Name())
		items, err := os.ReadDir(path)
		if err != nil {
			continue
		}

		entries = append(entries, Entry{
			Name:      d.Name(),
			Path:      path,
			CreatedAt: created,
			Items:     len(items),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})

	return entries, nil
}
