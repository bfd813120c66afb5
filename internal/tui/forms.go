package tui

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/quantmind-br/westconf-go/internal/domain"
	"github.com/quantmind-br/westconf-go/internal/manifest"
)

// CreateCategoryForm builds the selection form for one category's entries
func CreateCategoryForm(category manifest.Category, entries []*domain.ImportEntry, values *Values) *huh.Form {
	var fields []huh.Field

	for _, entry := range entries {
		if entry.IsDirectory() {
			fields = append(fields, directoryFields(entry, values)...)
			continue
		}
		fields = append(fields,
			huh.NewConfirm().
				Key(entry.Path).
				Title(fmt.Sprintf("Include %s", entry.FileName)).
				Description(entry.Path).
				Value(values.Include[entry.Path]),
		)
	}

	return huh.NewForm(
		huh.NewGroup(fields...).Title(string(category)),
	).WithTheme(GetTheme())
}

func directoryFields(entry *domain.ImportEntry, values *Values) []huh.Field {
	if len(entry.Contents) == 0 {
		// Listing unavailable or directory empty; nothing to select from.
		return []huh.Field{
			huh.NewNote().
				Title(entry.Path).
				Description("Could not fetch directory contents"),
		}
	}

	options := make([]huh.Option[string], 0, len(entry.Contents))
	for _, child := range entry.Contents {
		options = append(options, huh.NewOption(child.Name, child.Path))
	}

	return []huh.Field{
		huh.NewSelect[string]().
			Key(entry.Path).
			Title(entry.Path).
			Options(
				huh.NewOption("Include all files", "all"),
				huh.NewOption("Select specific files", "selective"),
				huh.NewOption("Exclude all", "none"),
			).
			Value(values.Mode[entry.Path]),

		huh.NewMultiSelect[string]().
			Key(entry.Path + ":files").
			Title(fmt.Sprintf("Files in %s", entry.Path)).
			Description("Applies when mode is 'Select specific files'").
			Options(options...).
			Value(values.Chosen[entry.Path]),
	}
}

// CreateSettingsForm builds the passthrough-toggle and group-filter form
func CreateSettingsForm(values *Values) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Key("use_remotes").
				Title("Use NXP remote repositories").
				Value(&values.UseRemotes),

			huh.NewConfirm().
				Key("use_defaults").
				Title("Use NXP default settings").
				Value(&values.UseDefaults),

			huh.NewConfirm().
				Key("use_west_commands").
				Title("Use NXP west commands").
				Value(&values.UseWestCommands),

			huh.NewText().
				Key("group_filters").
				Title("Group Filters").
				Description("One per line (e.g., -optional, +required)").
				Value(&values.GroupFilters),
		).Title("Settings"),
	).WithTheme(GetTheme())
}
