package services

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// SiteStats are the dashboard's top-line counts.
type SiteStats struct {
	Blogs   int `json:"blogs"`
	Docs    int `json:"docs"`
	Authors int `json:"authors"`
	Media   int `json:"media"`
}

// QuickStats summarizes recent activity and media footprint.
type QuickStats struct {
	NewBlogs  int    `json:"newBlogs"`
	NewDocs   int    `json:"newDocs"`
	MediaSize string `json:"mediaSize"`
}

// ActivityEntry is one row of the recent-activity feed.
type ActivityEntry struct {
	Type    string    `json:"type"` // blog or doc
	File    string    `json:"file"`
	Message string    `json:"message"`
	Time    time.Time `json:"time"`
}

// CollectStats counts content, authors, and media.
func CollectStats(docsDir, blogDir, uploadsDir, authorsPath string) (SiteStats, error) {
	var stats SiteStats

	docs, _, err := ListContentFiles(docsDir, ContentExtensions)
	if err != nil && !os.IsNotExist(err) {
		return stats, err
	}
	stats.Docs = len(docs)

	blogs, _, err := ListContentFiles(blogDir, ContentExtensions)
	if err != nil && !os.IsNotExist(err) {
		return stats, err
	}
	stats.Blogs = len(blogs)

	authors, err := LoadAuthors(authorsPath)
	if err == nil {
		stats.Authors = len(authors)
	}

	media, err := ListMediaFiles(uploadsDir)
	if err == nil {
		stats.Media = len(media)
	}

	return stats, nil
}

// CollectQuickStats counts content modified in the last week and the total
// upload size.
func CollectQuickStats(docsDir, blogDir, uploadsDir string) (QuickStats, error) {
	stats := QuickStats{MediaSize: "0.0 MB"}
	weekAgo := time.Now().AddDate(0, 0, -7)

	countRecent := func(root string) int {
		files, _, err := ListContentFiles(root, ContentExtensions)
		if err != nil {
			return 0
		}
		n := 0
		for _, path := range files {
			if info, err := os.Stat(path); err == nil && info.ModTime().After(weekAgo) {
				n++
			}
		}
		return n
	}
	stats.NewDocs = countRecent(docsDir)
	stats.NewBlogs = countRecent(blogDir)

	media, err := ListMediaFiles(uploadsDir)
	if err == nil {
		var total int64
		for _, m := range media {
			total += m.Size
		}
		stats.MediaSize = fmt.Sprintf("%.1f MB", float64(total)/(1024*1024))
	}

	return stats, nil
}

// CollectRecentActivity returns the most recently modified content files,
// newest first, capped at limit.
func CollectRecentActivity(docsDir, blogDir string, limit int) ([]ActivityEntry, error) {
	var entries []ActivityEntry

	collect := func(root, kind, label string) {
		files, _, err := ListContentFiles(root, ContentExtensions)
		if err != nil {
			return
		}
		for _, path := range files {
			info, err := os.Stat(path)
			if err != nil {
				continue
			}
			relPath, err := filepath.Rel(root, path)
			if err != nil {
				continue
			}
			relPath = filepath.ToSlash(relPath)
			entries = append(entries, ActivityEntry{
				Type:    kind,
				File:    relPath,
				Message: fmt.Sprintf("%s %q was updated", label, relPath),
				Time:    info.ModTime(),
			})
		}
	}
	collect(blogDir, "blog", "Blog post")
	collect(docsDir, "doc", "Documentation")

	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Time.After(entries[j].Time) })
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}
