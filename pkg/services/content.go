package services

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"docs-admin/pkg/models"
)

var nonAlnumRuns = regexp.MustCompile(`[^a-z0-9]+`)

// Slug derives a URL- and filename-safe identifier from a title.
func Slug(title string) string {
	slug := nonAlnumRuns.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}

// contentID maps a relative file path to its stable API identifier.
func contentID(relPath string) string {
	id := filepath.ToSlash(relPath)
	id = strings.ReplaceAll(id, "/", "-")
	id = strings.TrimSuffix(id, filepath.Ext(id))
	return id
}

// stripExtension removes a content extension from a filename.
func stripExtension(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// ListDocuments returns every doc under docsDir sorted by category then
// position. A document with corrupt frontmatter still lists, with defaults
// and a logged warning.
func ListDocuments(docsDir string) ([]models.Document, error) {
	files, skipped, err := ListContentFiles(docsDir, ContentExtensions)
	if err != nil {
		return nil, err
	}
	if skipped > 0 {
		slog.Warn("document scan skipped directories", "root", docsDir, "count", skipped)
	}

	docs := make([]models.Document, 0, len(files))
	for _, path := range files {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		relPath, err := filepath.Rel(docsDir, path)
		if err != nil {
			return nil, err
		}
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}

		matter, body, _, decodeErr := DecodeFrontMatter(content)
		if decodeErr != nil {
			slog.Warn("document has malformed frontmatter", "path", relPath, "error", decodeErr)
		}

		title := stripExtension(filepath.Base(path))
		if t, ok := matter["title"].(string); ok && t != "" {
			title = t
		}
		category := ""
		if dir := filepath.Dir(relPath); dir != "." {
			category = filepath.ToSlash(dir)
		}

		docs = append(docs, models.Document{
			ID:           contentID(relPath),
			Title:        title,
			Category:     category,
			Position:     positionFrom(matter, 1),
			FilePath:     filepath.ToSlash(relPath),
			LastModified: info.ModTime(),
			Content:      body,
		})
	}

	sort.SliceStable(docs, func(i, j int) bool {
		if docs[i].Category != docs[j].Category {
			return docs[i].Category < docs[j].Category
		}
		return docs[i].Position < docs[j].Position
	})
	return docs, nil
}

// CreateDocument writes a new doc file derived from the title, optionally
// inside a category directory created on demand.
func CreateDocument(docsDir, title, content, category string, position int) (string, error) {
	if title == "" {
		return "", fmt.Errorf("%w: title is required", ErrValidation)
	}
	if content == "" {
		return "", fmt.Errorf("%w: content is required", ErrValidation)
	}
	slug := Slug(title)
	if slug == "" {
		return "", fmt.Errorf("%w: title yields an empty filename", ErrValidation)
	}
	if position <= 0 {
		position = 1
	}

	dir := docsDir
	if category = strings.TrimSpace(category); category != "" {
		dir = SafeJoin(docsDir, "", category)
		if dir == "" {
			return "", fmt.Errorf("%w: invalid category path", ErrValidation)
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", err
		}
	}

	matter := map[string]interface{}{
		"title":            title,
		"sidebar_position": position,
	}
	data, err := EncodeFrontMatter(matter, content, FormatYAML)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, slug+".md")
	if err := writeFileAtomic(path, data); err != nil {
		return "", err
	}
	relPath, _ := filepath.Rel(docsDir, path)
	return filepath.ToSlash(relPath), nil
}

// resolveContentFile locates a content file by its filePath hint first, then
// by scanning the tree for a matching identifier.
func resolveContentFile(root, id, filePath string) (string, error) {
	if filePath != "" {
		full := SafeJoin(root, "", filePath)
		if full != "" {
			if _, err := os.Stat(full); err == nil {
				return full, nil
			}
		}
	}

	files, _, err := ListContentFiles(root, ContentExtensions)
	if err != nil {
		return "", err
	}
	for _, path := range files {
		relPath, err := filepath.Rel(root, path)
		if err != nil {
			continue
		}
		slashed := strings.TrimSuffix(filepath.ToSlash(relPath), filepath.Ext(relPath))
		if contentID(relPath) == id || slashed == id {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: content file", ErrNotFound)
}

// UpdateDocument rewrites a doc's frontmatter and body in place.
func UpdateDocument(docsDir, id, filePath, title, content string, position int) error {
	path, err := resolveContentFile(docsDir, id, filePath)
	if err != nil {
		return err
	}
	if position <= 0 {
		position = 1
	}

	matter := map[string]interface{}{
		"title":            title,
		"position":         position,
		"sidebar_position": position,
	}
	data, err := EncodeFrontMatter(matter, content, FormatYAML)
	if err != nil {
		return err
	}
	return writeFileAtomic(path, data)
}

// DeleteDocument unlinks a doc located by filePath hint or id.
func DeleteDocument(docsDir, id, filePath string) error {
	path, err := resolveContentFile(docsDir, id, filePath)
	if err != nil {
		return err
	}
	return os.Remove(path)
}

// ListBlogPosts returns every post under blogDir sorted newest first.
func ListBlogPosts(blogDir string) ([]models.BlogPost, error) {
	files, skipped, err := ListContentFiles(blogDir, ContentExtensions)
	if err != nil {
		return nil, err
	}
	if skipped > 0 {
		slog.Warn("blog scan skipped directories", "root", blogDir, "count", skipped)
	}

	posts := make([]models.BlogPost, 0, len(files))
	for _, path := range files {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		relPath, err := filepath.Rel(blogDir, path)
		if err != nil {
			return nil, err
		}
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}

		matter, body, _, decodeErr := DecodeFrontMatter(content)
		if decodeErr != nil {
			slog.Warn("blog post has malformed frontmatter", "path", relPath, "error", decodeErr)
		}

		post := models.BlogPost{
			ID:           contentID(relPath),
			Title:        "Untitled",
			Slug:         stripExtension(filepath.Base(path)),
			Author:       "Unknown",
			Tags:         []string{},
			Published:    true,
			FilePath:     filepath.ToSlash(relPath),
			LastModified: info.ModTime(),
			Content:      body,
		}
		if t, ok := matter["title"].(string); ok && t != "" {
			post.Title = t
		}
		if s, ok := matter["slug"].(string); ok && s != "" {
			post.Slug = s
		}
		if a, ok := matter["author"].(string); ok && a != "" {
			post.Author = a
		}
		if d, ok := matter["date"].(string); ok {
			post.Date = d
		} else if d, ok := matter["date"].(time.Time); ok {
			post.Date = d.Format("2006-01-02")
		}
		if tags, ok := matter["tags"].([]interface{}); ok {
			for _, tag := range tags {
				if s, ok := tag.(string); ok {
					post.Tags = append(post.Tags, s)
				}
			}
		}
		if draft, ok := matter["draft"].(bool); ok {
			post.Published = !draft
		}
		posts = append(posts, post)
	}

	sort.SliceStable(posts, func(i, j int) bool {
		if posts[i].Date != posts[j].Date {
			return posts[i].Date > posts[j].Date
		}
		return posts[i].LastModified.After(posts[j].LastModified)
	})
	return posts, nil
}

// CreateBlogPost writes a date-prefixed post file.
func CreateBlogPost(blogDir, title, content, author string, tags []string, published bool) (string, error) {
	if title == "" {
		return "", fmt.Errorf("%w: title is required", ErrValidation)
	}
	if content == "" {
		return "", fmt.Errorf("%w: content is required", ErrValidation)
	}
	slug := Slug(title)
	if slug == "" {
		return "", fmt.Errorf("%w: title yields an empty filename", ErrValidation)
	}
	if tags == nil {
		tags = []string{}
	}
	date := time.Now().Format("2006-01-02")

	matter := map[string]interface{}{
		"title": title,
		"slug":  slug,
		"author": author,
		"date":  date,
		"tags":  tags,
		"draft": !published,
	}
	data, err := EncodeFrontMatter(matter, content, FormatYAML)
	if err != nil {
		return "", err
	}

	filename := fmt.Sprintf("%s-%s.md", date, slug)
	if err := writeFileAtomic(filepath.Join(blogDir, filename), data); err != nil {
		return "", err
	}
	return filename, nil
}

// UpdateBlogPost rewrites a post's frontmatter and body in place.
func UpdateBlogPost(blogDir, id, title, content, author string, tags []string, published bool) error {
	path, err := resolveContentFile(blogDir, id, "")
	if err != nil {
		return err
	}
	if tags == nil {
		tags = []string{}
	}

	matter := map[string]interface{}{
		"title":  title,
		"author": author,
		"tags":   tags,
		"draft":  !published,
	}
	data, err := EncodeFrontMatter(matter, content, FormatYAML)
	if err != nil {
		return err
	}
	return writeFileAtomic(path, data)
}

// DeleteBlogPost unlinks a post by id.
func DeleteBlogPost(blogDir, id string) error {
	path, err := resolveContentFile(blogDir, id, "")
	if err != nil {
		return err
	}
	return os.Remove(path)
}

// ListPages returns the standalone markdown pages directly under pagesDir.
func ListPages(pagesDir string) ([]models.Page, error) {
	entries, err := readDirSorted(pagesDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.Page{}, nil
		}
		return nil, err
	}

	pages := make([]models.Page, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !hasContentExtension(entry.Name(), ContentExtensions) {
			continue
		}
		path := filepath.Join(pagesDir, entry.Name())
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		info, err := entry.Info()
		if err != nil {
			return nil, err
		}

		matter, body, _, decodeErr := DecodeFrontMatter(content)
		if decodeErr != nil {
			slog.Warn("page has malformed frontmatter", "path", entry.Name(), "error", decodeErr)
		}

		id := stripExtension(entry.Name())
		title := id
		if t, ok := matter["title"].(string); ok && t != "" {
			title = t
		}
		pages = append(pages, models.Page{
			ID:           id,
			Title:        title,
			Path:         "/" + id,
			LastModified: info.ModTime(),
			Content:      body,
		})
	}
	return pages, nil
}

// CreatePage writes a new standalone page named after its title.
func CreatePage(pagesDir, title, content string) error {
	if title == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	slug := Slug(title)
	if slug == "" {
		return fmt.Errorf("%w: title yields an empty filename", ErrValidation)
	}
	if err := os.MkdirAll(pagesDir, 0o755); err != nil {
		return err
	}

	data, err := EncodeFrontMatter(map[string]interface{}{"title": title}, content, FormatYAML)
	if err != nil {
		return err
	}
	return writeFileAtomic(filepath.Join(pagesDir, slug+".md"), data)
}
