package services

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/natefinch/atomic"
)

// SafeJoin joins target under root/sub, rejecting traversal outside the tree.
func SafeJoin(root, sub, target string) string {
	cleanTarget := filepath.Clean(target)
	if cleanTarget == ".." || strings.HasPrefix(cleanTarget, ".."+string(filepath.Separator)) || strings.Contains(cleanTarget, string(filepath.Separator)+".."+string(filepath.Separator)) {
		return ""
	}
	return filepath.Join(root, sub, cleanTarget)
}

// readDirSorted lists dir entries in name order regardless of what the
// filesystem returns.
func readDirSorted(dir string) ([]os.DirEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	return entries, nil
}

// writeFileAtomic replaces path via a temp file and rename so readers never
// observe a partial write.
func writeFileAtomic(path string, data []byte) error {
	return atomic.WriteFile(path, bytes.NewReader(data))
}
