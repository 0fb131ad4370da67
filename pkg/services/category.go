package services

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"docs-admin/pkg/models"
)

// CategorySidecarName is the metadata file inside each category directory.
const CategorySidecarName = "_category_.json"

// defaultCategories seed the listing when the docs tree is sparse. Directory
// entries with the same normalized key take precedence.
var defaultCategories = []models.Category{
	{ID: "tutorial-basics", Name: "Tutorial - Basics", Description: "Core functionality tutorials"},
	{ID: "tutorial-extras", Name: "Tutorial - Extras", Description: "Advanced features and customization"},
}

var nonSlugChars = regexp.MustCompile(`[^a-z0-9\s-]`)
var whitespaceRuns = regexp.MustCompile(`\s+`)
var dashRuns = regexp.MustCompile(`-+`)

// CategorySlug derives a filesystem-safe directory name from a display name.
func CategorySlug(name string) string {
	slug := strings.ToLower(name)
	slug = nonSlugChars.ReplaceAllString(slug, "")
	slug = whitespaceRuns.ReplaceAllString(slug, "-")
	slug = dashRuns.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// normalizeKey compares category identifiers case-, space-, and
// dash-insensitively.
func normalizeKey(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	return s
}

// readSidecar loads a category's _category_.json, if present.
func readSidecar(categoryDir string) (*models.CategorySidecar, error) {
	data, err := os.ReadFile(filepath.Join(categoryDir, CategorySidecarName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var sidecar models.CategorySidecar
	if err := json.Unmarshal(data, &sidecar); err != nil {
		return nil, err
	}
	return &sidecar, nil
}

func writeSidecar(categoryDir string, sidecar models.CategorySidecar) error {
	data, err := json.MarshalIndent(sidecar, "", "  ")
	if err != nil {
		return err
	}
	return writeFileAtomic(filepath.Join(categoryDir, CategorySidecarName), append(data, '\n'))
}

// countDocuments counts content files directly inside a category directory.
func countDocuments(categoryDir string) (int, error) {
	entries, err := readDirSorted(categoryDir)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, entry := range entries {
		if !entry.IsDir() && hasContentExtension(entry.Name(), ContentExtensions) {
			count++
		}
	}
	return count, nil
}

// ListCategories merges the default set with the directories present under
// docsDir, directory entries winning on key collision, sorted by position.
func ListCategories(docsDir string) ([]models.Category, error) {
	byKey := make(map[string]models.Category)
	var order []string

	for _, cat := range defaultCategories {
		key := normalizeKey(cat.ID)
		byKey[key] = cat
		order = append(order, key)
	}

	entries, err := readDirSorted(docsDir)
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		categoryDir := filepath.Join(docsDir, entry.Name())
		cat := models.Category{ID: entry.Name(), Name: entry.Name()}

		sidecar, err := readSidecar(categoryDir)
		if err != nil {
			slog.Warn("unreadable category sidecar", "category", entry.Name(), "error", err)
		}
		if sidecar != nil {
			if sidecar.Label != "" {
				cat.Name = sidecar.Label
			}
			cat.Description = sidecar.Description
			cat.Position = sidecar.Position
		}

		count, err := countDocuments(categoryDir)
		if err != nil {
			return nil, err
		}
		cat.ItemCount = count

		key := normalizeKey(entry.Name())
		if _, seen := byKey[key]; !seen {
			order = append(order, key)
		}
		byKey[key] = cat
	}

	categories := make([]models.Category, 0, len(order))
	for _, key := range order {
		categories = append(categories, byKey[key])
	}
	sort.SliceStable(categories, func(i, j int) bool {
		pi, pj := categories[i].Position, categories[j].Position
		if pi == 0 {
			pi = defaultPosition
		}
		if pj == 0 {
			pj = defaultPosition
		}
		return pi < pj
	})
	return categories, nil
}

// CreateCategory makes the directory and its sidecar. The name is slugged
// for the directory; the label keeps the original spelling.
func CreateCategory(docsDir, name, description string) (*models.Category, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: category name is required", ErrValidation)
	}
	slug := CategorySlug(name)
	if slug == "" {
		return nil, fmt.Errorf("%w: category name yields an empty directory name", ErrValidation)
	}

	categoryDir := filepath.Join(docsDir, slug)
	if _, err := os.Stat(categoryDir); err == nil {
		return nil, fmt.Errorf("%w: category", ErrConflict)
	}

	if err := os.MkdirAll(categoryDir, 0o755); err != nil {
		return nil, err
	}
	sidecar := models.CategorySidecar{Label: name, Position: 1, Description: description}
	if err := writeSidecar(categoryDir, sidecar); err != nil {
		return nil, err
	}

	return &models.Category{ID: slug, Name: name, Description: description, Position: 1}, nil
}

// UpdateCategory rewrites the provided sidecar fields.
func UpdateCategory(docsDir, id, name, description string) (*models.Category, error) {
	categoryDir := filepath.Join(docsDir, id)
	if info, err := os.Stat(categoryDir); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: category", ErrNotFound)
	}

	sidecar, err := readSidecar(categoryDir)
	if err != nil {
		return nil, err
	}
	if sidecar == nil {
		sidecar = &models.CategorySidecar{}
	}
	if name != "" {
		sidecar.Label = name
	}
	if description != "" {
		sidecar.Description = description
	}
	if sidecar.Position == 0 {
		sidecar.Position = 1
	}
	if err := writeSidecar(categoryDir, *sidecar); err != nil {
		return nil, err
	}

	return &models.Category{ID: id, Name: sidecar.Label, Description: sidecar.Description, Position: sidecar.Position}, nil
}

// DeleteCategory removes an empty category directory. A category holding any
// content file refuses with a NotEmptyError carrying the exact count.
func DeleteCategory(docsDir, id string) error {
	categoryDir := filepath.Join(docsDir, id)
	info, err := os.Stat(categoryDir)
	if err != nil {
		return fmt.Errorf("%w: category", ErrNotFound)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: not a category directory", ErrValidation)
	}

	count, err := countDocuments(categoryDir)
	if err != nil {
		return err
	}
	if count > 0 {
		return &NotEmptyError{CategoryID: id, DocumentCount: count}
	}

	return os.RemoveAll(categoryDir)
}

// CategoryMoveResult reports the two sidecars touched by a category move.
type CategoryMoveResult struct {
	Moved      bool                 `json:"moved"`
	Categories []CategoryNewPosition `json:"categories,omitempty"`
}

// CategoryNewPosition is one rewritten category position.
type CategoryNewPosition struct {
	ID          string `json:"id"`
	NewPosition int    `json:"newPosition"`
}

type categoryEntry struct {
	id       string
	label    string
	dir      string
	sidecar  models.CategorySidecar
	position int
}

// MoveCategory swaps sidecar positions with the neighboring category. The
// target matches by directory name or by sidecar label. A move past either
// edge returns Moved=false without error, mirroring the document engine's
// boundary behavior at the listing level rather than as a failure.
func MoveCategory(docsDir, categoryID, direction string) (*CategoryMoveResult, error) {
	if !ValidDirection(direction) {
		return nil, fmt.Errorf("%w: direction must be %q or %q", ErrValidation, DirectionUp, DirectionDown)
	}
	if categoryID == "" {
		return nil, fmt.Errorf("%w: category ID is required", ErrValidation)
	}

	mu := lockDir(docsDir)
	defer mu.Unlock()

	entries, err := readDirSorted(docsDir)
	if err != nil {
		return nil, err
	}

	var cats []categoryEntry
	current := -1
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(docsDir, entry.Name())
		cat := categoryEntry{
			id:       entry.Name(),
			label:    entry.Name(),
			dir:      dir,
			sidecar:  models.CategorySidecar{Label: entry.Name(), Position: defaultPosition},
			position: defaultPosition,
		}
		if sidecar, err := readSidecar(dir); err != nil {
			slog.Warn("unreadable category sidecar", "category", entry.Name(), "error", err)
		} else if sidecar != nil {
			cat.sidecar = *sidecar
			if sidecar.Label != "" {
				cat.label = sidecar.Label
			}
			if sidecar.Position != 0 {
				cat.position = sidecar.Position
			}
		}
		cats = append(cats, cat)
	}

	sort.SliceStable(cats, func(i, j int) bool {
		if cats[i].position != cats[j].position {
			return cats[i].position < cats[j].position
		}
		return cats[i].id < cats[j].id
	})

	for i, cat := range cats {
		if cat.id == categoryID || cat.label == categoryID {
			current = i
			break
		}
	}
	if current == -1 {
		return nil, fmt.Errorf("%w: category", ErrNotFound)
	}

	neighbor := current - 1
	if direction == DirectionDown {
		neighbor = current + 1
	}
	if neighbor < 0 || neighbor >= len(cats) {
		return &CategoryMoveResult{Moved: false}, nil
	}

	cur, next := cats[current], cats[neighbor]
	cur.sidecar.Position, next.sidecar.Position = next.position, cur.position
	if cur.sidecar.Label == "" {
		cur.sidecar.Label = cur.label
	}
	if next.sidecar.Label == "" {
		next.sidecar.Label = next.label
	}

	if err := writeSidecar(cur.dir, cur.sidecar); err != nil {
		return nil, err
	}
	if err := writeSidecar(next.dir, next.sidecar); err != nil {
		return nil, err
	}

	return &CategoryMoveResult{
		Moved: true,
		Categories: []CategoryNewPosition{
			{ID: cur.id, NewPosition: cur.sidecar.Position},
			{ID: next.id, NewPosition: next.sidecar.Position},
		},
	}, nil
}
