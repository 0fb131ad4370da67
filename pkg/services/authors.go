package services

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"docs-admin/pkg/models"
)

var nonAlnumToUnderscore = regexp.MustCompile(`[^a-z0-9]+`)

// AuthorKey derives the registry key from an author name.
func AuthorKey(name string) string {
	key := nonAlnumToUnderscore.ReplaceAllString(strings.ToLower(name), "_")
	return strings.Trim(key, "_")
}

// LoadAuthors reads the shared authors.yml registry. A missing file is an
// empty registry, not an error.
func LoadAuthors(path string) (map[string]models.Author, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]models.Author{}, nil
		}
		return nil, err
	}

	authors := map[string]models.Author{}
	if err := yaml.Unmarshal(data, &authors); err != nil {
		return nil, err
	}
	return authors, nil
}

func saveAuthors(path string, authors map[string]models.Author) error {
	data, err := yaml.Marshal(authors)
	if err != nil {
		return err
	}
	return writeFileAtomic(path, data)
}

// CreateAuthor adds or replaces the registry entry keyed by the name.
func CreateAuthor(path string, author models.Author) (string, error) {
	if author.Name == "" {
		return "", fmt.Errorf("%w: author name is required", ErrValidation)
	}
	key := AuthorKey(author.Name)
	if key == "" {
		return "", fmt.Errorf("%w: author name yields an empty key", ErrValidation)
	}

	authors, err := LoadAuthors(path)
	if err != nil {
		return "", err
	}
	authors[key] = author
	if err := saveAuthors(path, authors); err != nil {
		return "", err
	}
	return key, nil
}

// UpdateAuthor rewrites an existing registry entry.
func UpdateAuthor(path, key string, author models.Author) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("%w: authors file", ErrNotFound)
	}

	authors, err := LoadAuthors(path)
	if err != nil {
		return err
	}
	if _, ok := authors[key]; !ok {
		return fmt.Errorf("%w: author", ErrNotFound)
	}
	authors[key] = author
	return saveAuthors(path, authors)
}
