package tui

import (
	"strings"

	"github.com/quantmind-br/westconf-go/internal/domain"
	"github.com/quantmind-br/westconf-go/internal/selection"
)

// Values holds form-bound selection state. huh fields bind to pointers, so
// per-entry state lives behind stable pointers keyed by normalized path.
type Values struct {
	Include map[string]*bool     // file entries
	Mode    map[string]*string   // directory entries: "all", "none", "selective"
	Chosen  map[string]*[]string // selective directory children

	UseRemotes      bool
	UseDefaults     bool
	UseWestCommands bool
	GroupFilters    string // one filter token per line
}

// NewValues binds an initial selection set and source group filters to
// form state
func NewValues(structure *domain.ImportStructure, set *selection.Set, groupFilters []string) *Values {
	v := &Values{
		Include:         make(map[string]*bool),
		Mode:            make(map[string]*string),
		Chosen:          make(map[string]*[]string),
		UseRemotes:      true,
		UseDefaults:     true,
		UseWestCommands: true,
		GroupFilters:    strings.Join(groupFilters, "\n"),
	}

	for _, entry := range structure.Entries() {
		sel, _ := set.Get(entry.Path)
		if entry.IsDirectory() {
			mode := string(sel.Mode)
			chosen := append([]string{}, sel.Chosen...)
			v.Mode[entry.Path] = &mode
			v.Chosen[entry.Path] = &chosen
		} else {
			include := sel.Include
			v.Include[entry.Path] = &include
		}
	}

	return v
}

// Selections rebuilds a selection set from the current form state,
// iterating the structure so insertion order matches declaration order.
func (v *Values) Selections(structure *domain.ImportStructure) *selection.Set {
	set := selection.NewSet()
	for _, entry := range structure.Entries() {
		if entry.IsDirectory() {
			mode := selection.ModeNone
			if p, ok := v.Mode[entry.Path]; ok {
				mode = selection.DirMode(*p)
			}
			var chosen []string
			if mode == selection.ModeSelective {
				if p, ok := v.Chosen[entry.Path]; ok {
					chosen = append([]string{}, (*p)...)
				}
			}
			set.Put(entry.Path, selection.Directory(mode, chosen...))
		} else {
			include := false
			if p, ok := v.Include[entry.Path]; ok {
				include = *p
			}
			set.Put(entry.Path, selection.File(include))
		}
	}
	return set
}

// GroupFilterList parses the group-filter editor contents into tokens
func (v *Values) GroupFilterList() []string {
	var filters []string
	for _, line := range strings.Split(v.GroupFilters, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			filters = append(filters, line)
		}
	}
	return filters
}
