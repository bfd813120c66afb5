package domain

import (
	"net/url"
	"path"
	"strings"
)

// ImportKind distinguishes file and directory import entries
type ImportKind string

const (
	// KindFile is a single importable manifest file
	KindFile ImportKind = "file"

	// KindDirectory is a directory of importable manifest files
	KindDirectory ImportKind = "directory"
)

// DirEntry is one file inside a directory import entry
type DirEntry struct {
	Name     string // display name, file name without the manifest suffix
	FileName string // file name including the suffix
	Path     string // full path relative to the manifest root
}

// ImportEntry is one resolved entry from a manifest's self-import list
type ImportEntry struct {
	RawPath  string     // path exactly as declared in the source manifest
	Path     string     // normalized path (trailing slash appended for directories)
	Kind     ImportKind // file or directory
	FileName string     // last path segment, set for file entries
	Contents []DirEntry // directory listing, empty if unavailable
}

// IsDirectory reports whether the entry resolved to a directory
func (e *ImportEntry) IsDirectory() bool {
	return e.Kind == KindDirectory
}

// Child looks up a listing entry by its full path
func (e *ImportEntry) Child(fullPath string) (DirEntry, bool) {
	for _, c := range e.Contents {
		if c.Path == fullPath {
			return c, true
		}
	}
	return DirEntry{}, false
}

// ImportStructure is the resolved import map of a manifest, keyed by
// normalized path. Iteration order matches the declaration order of the
// source manifest's self-import list.
type ImportStructure struct {
	order   []string
	entries map[string]*ImportEntry
}

// NewImportStructure creates an empty import structure
func NewImportStructure() *ImportStructure {
	return &ImportStructure{
		entries: make(map[string]*ImportEntry),
	}
}

// Add appends an entry, preserving insertion order. Re-adding a path
// overwrites the entry without changing its position.
func (s *ImportStructure) Add(entry *ImportEntry) {
	if _, exists := s.entries[entry.Path]; !exists {
		s.order = append(s.order, entry.Path)
	}
	s.entries[entry.Path] = entry
}

// Get returns the entry for a normalized path
func (s *ImportStructure) Get(p string) (*ImportEntry, bool) {
	entry, ok := s.entries[p]
	return entry, ok
}

// Paths returns the normalized paths in declaration order
func (s *ImportStructure) Paths() []string {
	paths := make([]string, len(s.order))
	copy(paths, s.order)
	return paths
}

// Entries returns the entries in declaration order
func (s *ImportStructure) Entries() []*ImportEntry {
	entries := make([]*ImportEntry, 0, len(s.order))
	for _, p := range s.order {
		entries = append(entries, s.entries[p])
	}
	return entries
}

// Len returns the number of entries
func (s *ImportStructure) Len() int {
	return len(s.order)
}

// DirectoryCount returns how many entries resolved to directories
func (s *ImportStructure) DirectoryCount() int {
	count := 0
	for _, p := range s.order {
		if s.entries[p].IsDirectory() {
			count++
		}
	}
	return count
}

// Reference identifies a remotely-hosted root manifest. Base is the URL
// with the file name stripped, used to resolve relative import targets.
type Reference struct {
	URL  string
	Base string
}

// ParseReference validates a manifest URL and derives its base directory
func ParseReference(rawURL string) (Reference, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return Reference{}, NewInvalidURLError(rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return Reference{}, NewInvalidURLError(rawURL, nil)
	}
	if u.Path == "" || strings.HasSuffix(u.Path, "/") {
		return Reference{}, NewInvalidURLError(rawURL, nil)
	}

	base := *u
	base.Path = path.Dir(u.Path)

	return Reference{
		URL:  rawURL,
		Base: base.String(),
	}, nil
}

// FileName returns the last path segment of the manifest URL
func (r Reference) FileName() string {
	u, err := url.Parse(r.URL)
	if err != nil {
		return ""
	}
	return path.Base(u.Path)
}
