package level

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Entry is a level file discovered on disk
type Entry struct {
	Name string // File name without the .json extension
	Path string
}

// ScanDirectory lists the level files in dir, sorted by name.
// Hidden files and subdirectories are skipped.
func ScanDirectory(dir string) ([]Entry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read level directory: %w", err)
	}

	var levels []Entry
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if strings.HasPrefix(name, ".") || !strings.EqualFold(filepath.Ext(name), ".json") {
			continue
		}

		levels = append(levels, Entry{
			Name: strings.TrimSuffix(name, filepath.Ext(name)),
			Path: filepath.Join(dir, name),
		})
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].Name < levels[j].Name
	})
	return levels, nil
}

// Resolve turns a level argument into a file path. An existing path is
// returned as is; otherwise name is looked up among the levels in dir.
func Resolve(dir, name string) (string, error) {
	if _, err := os.Stat(name); err == nil {
		return name, nil
	}

	levels, err := ScanDirectory(dir)
	if err != nil {
		return "", err
	}
	for _, entry := range levels {
		if entry.Name == name {
			return entry.Path, nil
		}
	}
	return "", fmt.Errorf("level %q not found in %s", name, dir)
}
