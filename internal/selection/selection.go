// Package selection models the user's per-entry include choices over a
// resolved import structure and folds them into a flat, order-preserving
// import list.
package selection

import (
	"strings"

	"github.com/quantmind-br/westconf-go/internal/domain"
)

// DirMode is the selection mode of a directory entry
type DirMode string

const (
	// ModeAll imports the directory itself; expansion is left to whatever
	// consumes the generated manifest
	ModeAll DirMode = "all"

	// ModeNone excludes the directory entirely
	ModeNone DirMode = "none"

	// ModeSelective imports an explicit subset of the directory's files
	ModeSelective DirMode = "selective"
)

// Selection is the user's choice for one import entry. File entries use
// Include; directory entries use Mode, plus Chosen when selective.
type Selection struct {
	Kind    domain.ImportKind
	Include bool
	Mode    DirMode
	Chosen  []string // chosen child full paths, in listing order
}

// File creates a file selection
func File(include bool) Selection {
	return Selection{Kind: domain.KindFile, Include: include}
}

// Directory creates a directory selection
func Directory(mode DirMode, chosen ...string) Selection {
	return Selection{Kind: domain.KindDirectory, Mode: mode, Chosen: chosen}
}

// Set is an ordered collection of selections, keyed by normalized path.
// Iteration order matches the order paths were first added, which callers
// keep aligned with the import structure's declaration order.
type Set struct {
	order  []string
	values map[string]Selection
}

// NewSet creates an empty selection set
func NewSet() *Set {
	return &Set{values: make(map[string]Selection)}
}

// Put stores a selection. A path keeps its original position when updated.
func (s *Set) Put(path string, sel Selection) {
	if _, exists := s.values[path]; !exists {
		s.order = append(s.order, path)
	}
	s.values[path] = sel
}

// Get returns the selection for a path
func (s *Set) Get(path string) (Selection, bool) {
	sel, ok := s.values[path]
	return sel, ok
}

// Paths returns the selected paths in insertion order
func (s *Set) Paths() []string {
	paths := make([]string, len(s.order))
	copy(paths, s.order)
	return paths
}

// Len returns the number of selections
func (s *Set) Len() int {
	return len(s.order)
}

// Flatten folds the set into a flat import list, iterating in insertion
// order. An included file emits its path; a directory in ModeAll emits the
// directory path itself; ModeSelective emits only the chosen children, in
// the order they were chosen; ModeNone emits nothing.
func (s *Set) Flatten() []string {
	imports := make([]string, 0, len(s.order))
	for _, path := range s.order {
		sel := s.values[path]
		switch sel.Kind {
		case domain.KindFile:
			if sel.Include {
				imports = append(imports, path)
			}
		case domain.KindDirectory:
			switch sel.Mode {
			case ModeAll:
				imports = append(imports, path)
			case ModeSelective:
				imports = append(imports, sel.Chosen...)
			}
		}
	}
	return imports
}

// Defaults builds the initial selection set for a resolved structure,
// applying the default guess once per entry in declaration order.
func Defaults(structure *domain.ImportStructure) *Set {
	set := NewSet()
	for _, entry := range structure.Entries() {
		set.Put(entry.Path, Default(entry))
	}
	return set
}

// Default guesses a sensible initial selection for one entry. Base and
// RTOS files are included, device files excluded, middleware directories
// imported whole; everything else starts excluded.
func Default(entry *domain.ImportEntry) Selection {
	if entry.IsDirectory() {
		if strings.Contains(entry.Path, "middleware/") {
			return Directory(ModeAll)
		}
		return Directory(ModeNone)
	}

	p := entry.Path
	switch {
	case strings.Contains(p, "base.yml") || strings.Contains(p, "internal.yml"):
		return File(true)
	case strings.Contains(p, "rtos"):
		return File(true)
	default:
		return File(false)
	}
}
