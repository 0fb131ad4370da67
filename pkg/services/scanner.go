package services

import (
	"io/fs"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"
)

// ContentExtensions are the file suffixes treated as content.
var ContentExtensions = []string{".md", ".mdx"}

// hasContentExtension reports whether name ends in one of exts.
func hasContentExtension(name string, exts []string) bool {
	for _, ext := range exts {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// ListContentFiles walks root recursively and returns every file matching
// exts, sorted. Dot-directories and dependency caches are skipped. Unreadable
// subtrees are counted and logged rather than failing the whole walk.
func ListContentFiles(root string, exts []string) ([]string, int, error) {
	var files []string
	skipped := 0

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			skipped++
			slog.Warn("skipping unreadable directory", "path", path, "error", err)
			return fs.SkipDir
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (strings.HasPrefix(name, ".") || name == "node_modules") {
				return fs.SkipDir
			}
			return nil
		}
		if hasContentExtension(d.Name(), exts) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, skipped, err
	}

	sort.Strings(files)
	return files, skipped, nil
}

// ListSiblingFiles lists content files in dir only, non-recursive, sorted.
func ListSiblingFiles(dir string, exts []string) ([]string, error) {
	entries, err := readDirSorted(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if hasContentExtension(entry.Name(), exts) {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	return files, nil
}
