// Package profile persists a user's manifest selection as a reusable
// settings file, independent of the generated manifest document. A profile
// round-trips losslessly through JSON and can be reloaded without
// re-fetching the remote manifest; applying it to presentation state
// requires an explicit refresh against a freshly resolved structure.
package profile

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/quantmind-br/westconf-go/internal/domain"
	"github.com/quantmind-br/westconf-go/internal/selection"
)

// ImportValue is a profile's flattened selection for one import path:
// a boolean for file entries and all-or-nothing directories, or an
// explicit file list for selective directories. It serializes as a bare
// JSON bool or array.
type ImportValue struct {
	Include bool
	Files   []string
}

// Bool creates a boolean import value
func Bool(include bool) ImportValue {
	return ImportValue{Include: include}
}

// List creates a file-list import value
func List(files []string) ImportValue {
	if files == nil {
		files = []string{}
	}
	return ImportValue{Files: files}
}

// IsList reports whether the value carries an explicit file list
func (v ImportValue) IsList() bool {
	return v.Files != nil
}

// MarshalJSON encodes the value as a bool or a string array
func (v ImportValue) MarshalJSON() ([]byte, error) {
	if v.IsList() {
		return json.Marshal(v.Files)
	}
	return json.Marshal(v.Include)
}

// UnmarshalJSON decodes a bool or a string array
func (v *ImportValue) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*v = ImportValue{Include: b}
		return nil
	}

	var files []string
	if err := json.Unmarshal(data, &files); err == nil {
		*v = List(files)
		return nil
	}

	return fmt.Errorf("import value must be a boolean or a list of paths")
}

// Profile is a saved manifest configuration
type Profile struct {
	Imports          map[string]ImportValue `json:"imports"`
	GroupFilters     []string               `json:"group_filters"`
	UseRemotes       bool                   `json:"use_nxp_remotes"`
	UseDefaults      bool                   `json:"use_nxp_defaults"`
	UseWestCommands  bool                   `json:"use_nxp_west_commands"`
	CreatedAt        string                 `json:"created_at"`
	ManifestRevision string                 `json:"nxp_manifest_revision"`
	ManifestURL      string                 `json:"nxp_manifest_url"`
}

// New creates a profile with default toggles and a creation timestamp
func New() *Profile {
	return &Profile{
		Imports:          make(map[string]ImportValue),
		UseRemotes:       true,
		UseDefaults:      true,
		UseWestCommands:  true,
		CreatedAt:        time.Now().Format(time.RFC3339),
		ManifestRevision: "main",
	}
}

// FromSelections flattens a selection set into a new profile
func FromSelections(set *selection.Set) *Profile {
	p := New()
	for _, path := range set.Paths() {
		sel, _ := set.Get(path)
		p.Imports[path] = fromSelection(sel)
	}
	return p
}

func fromSelection(sel selection.Selection) ImportValue {
	if sel.Kind == domain.KindDirectory {
		switch sel.Mode {
		case selection.ModeAll:
			return Bool(true)
		case selection.ModeSelective:
			return List(sel.Chosen)
		default:
			return Bool(false)
		}
	}
	return Bool(sel.Include)
}

// Selections resolves the profile's flattened import values back into a
// selection set over a freshly resolved structure. Paths unknown to the
// structure are skipped; structure entries absent from the profile stay
// excluded. Insertion order follows the structure, not the profile.
func (p *Profile) Selections(structure *domain.ImportStructure) *selection.Set {
	set := selection.NewSet()
	for _, entry := range structure.Entries() {
		value, ok := p.Imports[entry.Path]
		if !ok {
			if entry.IsDirectory() {
				set.Put(entry.Path, selection.Directory(selection.ModeNone))
			} else {
				set.Put(entry.Path, selection.File(false))
			}
			continue
		}
		set.Put(entry.Path, toSelection(entry, value))
	}
	return set
}

func toSelection(entry *domain.ImportEntry, value ImportValue) selection.Selection {
	if entry.IsDirectory() {
		switch {
		case value.IsList():
			return selection.Directory(selection.ModeSelective, value.Files...)
		case value.Include:
			return selection.Directory(selection.ModeAll)
		default:
			return selection.Directory(selection.ModeNone)
		}
	}
	// A list stored against a file entry means the structure changed shape
	// since the profile was saved; treat any non-empty value as include.
	if value.IsList() {
		return selection.File(len(value.Files) > 0)
	}
	return selection.File(value.Include)
}
