package manifest

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/quantmind-br/westconf-go/internal/domain"
)

// Document is a west manifest document
type Document struct {
	Manifest Manifest `yaml:"manifest"`
}

// Manifest is the top-level manifest block
type Manifest struct {
	Remotes     []Remote  `yaml:"remotes,omitempty"`
	Defaults    *Defaults `yaml:"defaults,omitempty"`
	GroupFilter []string  `yaml:"group-filter,omitempty"`
	Self        *Self     `yaml:"self,omitempty"`
	Projects    []Project `yaml:"projects,omitempty"`
}

// Remote is one remote repository declaration
type Remote struct {
	Name    string `yaml:"name"`
	URLBase string `yaml:"url-base"`
}

// Defaults holds the manifest's default remote and revision
type Defaults struct {
	Remote   string `yaml:"remote,omitempty"`
	Revision string `yaml:"revision,omitempty"`
}

// Self is the manifest repository's own configuration block
type Self struct {
	Path         string   `yaml:"path,omitempty"`
	WestCommands string   `yaml:"west-commands,omitempty"`
	Import       []string `yaml:"import,omitempty"`
}

// Project is one project entry in the generated manifest
type Project struct {
	Name     string   `yaml:"name"`
	Remote   string   `yaml:"remote,omitempty"`
	Revision string   `yaml:"revision,omitempty"`
	Import   []string `yaml:"import,omitempty"`
}

// Passthrough holds the root manifest sections that are copied into the
// generated document unmodified, gated only by toggles.
type Passthrough struct {
	Remotes     []Remote
	Defaults    *Defaults
	GroupFilter []string
	Self        *Self
}

// Parse parses a west manifest document
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidDocument, err)
	}
	return &doc, nil
}

// Imports returns the self-import list in declared order
func (d *Document) Imports() []string {
	if d.Manifest.Self == nil {
		return nil
	}
	return d.Manifest.Self.Import
}

// Passthrough projects the document's passthrough sections
func (d *Document) Passthrough() *Passthrough {
	return &Passthrough{
		Remotes:     d.Manifest.Remotes,
		Defaults:    d.Manifest.Defaults,
		GroupFilter: d.Manifest.GroupFilter,
		Self:        d.Manifest.Self,
	}
}
