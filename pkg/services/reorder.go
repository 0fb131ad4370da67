package services

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

const (
	DirectionUp   = "up"
	DirectionDown = "down"

	// defaultPosition sorts unpositioned siblings after positioned ones.
	defaultPosition = 999
)

// MoveResult reports the outcome of a position swap.
type MoveResult struct {
	From        string `json:"from"`
	To          string `json:"to"`
	NewPosition int    `json:"newPosition"`
}

// dirLocks serializes mutations per sibling scope so two concurrent reorders
// of the same directory cannot interleave their read-modify-write cycles.
var dirLocks sync.Map // string -> *sync.Mutex

func lockDir(dir string) *sync.Mutex {
	mu, _ := dirLocks.LoadOrStore(filepath.Clean(dir), &sync.Mutex{})
	m := mu.(*sync.Mutex)
	m.Lock()
	return m
}

type siblingDoc struct {
	path      string
	name      string
	matter    map[string]interface{}
	body      string
	format    string
	position  int
	decodeErr error
}

// ValidDirection reports whether direction is up or down.
func ValidDirection(direction string) bool {
	return direction == DirectionUp || direction == DirectionDown
}

// MoveDocument swaps the position of the file at fullPath with its neighbor
// in the given direction. Siblings are the content files of the same
// directory, ordered by position ascending with filename as tie-break. Both
// rewritten files are serialized before either write, and each write is
// atomic; a crash between the two renames leaves a swap that converges when
// re-run.
func MoveDocument(fullPath, direction string) (*MoveResult, error) {
	if !ValidDirection(direction) {
		return nil, fmt.Errorf("%w: direction must be %q or %q", ErrValidation, DirectionUp, DirectionDown)
	}
	if _, err := os.Stat(fullPath); err != nil {
		return nil, fmt.Errorf("%w: document file", ErrNotFound)
	}

	dir := filepath.Dir(fullPath)
	mu := lockDir(dir)
	defer mu.Unlock()

	docs, err := loadSiblings(dir)
	if err != nil {
		return nil, err
	}

	current := -1
	for i, d := range docs {
		if d.path == fullPath {
			current = i
			break
		}
	}
	if current == -1 {
		return nil, fmt.Errorf("%w: document in directory", ErrNotFound)
	}

	neighbor := current - 1
	if direction == DirectionDown {
		neighbor = current + 1
	}
	if neighbor < 0 || neighbor >= len(docs) {
		return nil, &BoundaryError{Direction: direction}
	}

	cur, next := docs[current], docs[neighbor]
	if cur.decodeErr != nil {
		return nil, cur.decodeErr
	}
	if next.decodeErr != nil {
		return nil, next.decodeErr
	}

	// Stage both rewrites before touching either file.
	curContent, err := withPosition(cur, next.position)
	if err != nil {
		return nil, err
	}
	nextContent, err := withPosition(next, cur.position)
	if err != nil {
		return nil, err
	}

	if err := writeFileAtomic(cur.path, curContent); err != nil {
		return nil, err
	}
	if err := writeFileAtomic(next.path, nextContent); err != nil {
		return nil, err
	}

	return &MoveResult{
		From:        cur.name,
		To:          next.name,
		NewPosition: next.position,
	}, nil
}

// loadSiblings reads every content file of dir and returns them sorted by
// position then filename. A sibling whose frontmatter is corrupt keeps the
// default position and carries its decode error; the move only fails if that
// sibling would be rewritten.
func loadSiblings(dir string) ([]siblingDoc, error) {
	paths, err := ListSiblingFiles(dir, ContentExtensions)
	if err != nil {
		return nil, err
	}

	docs := make([]siblingDoc, 0, len(paths))
	for _, p := range paths {
		content, err := os.ReadFile(p)
		if err != nil {
			return nil, err
		}
		matter, body, format, decodeErr := DecodeFrontMatter(content)
		docs = append(docs, siblingDoc{
			path:      p,
			name:      filepath.Base(p),
			matter:    matter,
			body:      body,
			format:    format,
			position:  positionFrom(matter, defaultPosition),
			decodeErr: decodeErr,
		})
	}

	sort.SliceStable(docs, func(i, j int) bool {
		if docs[i].position != docs[j].position {
			return docs[i].position < docs[j].position
		}
		return docs[i].name < docs[j].name
	})
	return docs, nil
}

// withPosition rebuilds a sibling's file content carrying the new sort key in
// both position fields the renderer understands.
func withPosition(doc siblingDoc, position int) ([]byte, error) {
	matter := doc.matter
	if matter == nil {
		matter = map[string]interface{}{}
	}
	matter["position"] = position
	matter["sidebar_position"] = position
	return EncodeFrontMatter(matter, doc.body, doc.format)
}
