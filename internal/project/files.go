package project

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FileEntry describes one file found inside a project
type FileEntry struct {
	Name    string // base name
	RelPath string // path relative to the project root
	Path    string // absolute path
}

// Directories that are never interesting to open
var skippedDirs = map[string]bool{
	".git":         true,
	"__pycache__":  true,
	".venv":        true,
	"node_modules": true,
}

// ListFiles enumerates all regular files under the project root, skipping
// hidden paths and dependency/build directories. Results are sorted by
// file name.
func (p Project) ListFiles() ([]FileEntry, error) {
	var files []FileEntry

	err := filepath.Walk(p.Path, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // Skip files that cause errors
		}

		name := info.Name()

		if info.IsDir() {
			if path != p.Path && (strings.HasPrefix(name, ".") || skippedDirs[name]) {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasPrefix(name, ".") || skippedDirs[name] {
			return nil
		}
		if !info.Mode().IsRegular() {
			return nil
		}

		relPath, _ := filepath.Rel(p.Path, path)
		files = append(files, FileEntry{
			Name:    name,
			RelPath: relPath,
			Path:    path,
		})

		return nil
	})

	if err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Name < files[j].Name
	})

	return files, nil
}
