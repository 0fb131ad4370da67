package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound reports an absent file, category, or author.
	ErrNotFound = errors.New("not found")

	// ErrValidation reports a missing or malformed request field.
	ErrValidation = errors.New("invalid input")

	// ErrConflict reports a create against an existing resource.
	ErrConflict = errors.New("already exists")

	// ErrBadFrontmatter reports a frontmatter block that exists but does not
	// parse. Distinct from a file with no frontmatter at all, which decodes
	// to a nil map without error.
	ErrBadFrontmatter = errors.New("malformed frontmatter")
)

// NotEmptyError reports a category deletion blocked by its contents.
type NotEmptyError struct {
	CategoryID    string
	DocumentCount int
}

func (e *NotEmptyError) Error() string {
	return fmt.Sprintf("category %q contains %d document(s)", e.CategoryID, e.DocumentCount)
}

// BoundaryError reports a move that would step past the first or last slot.
type BoundaryError struct {
	Direction string
}

func (e *BoundaryError) Error() string {
	edge := "top"
	if e.Direction == DirectionDown {
		edge = "bottom"
	}
	return fmt.Sprintf("cannot move %s - already at %s", e.Direction, edge)
}
