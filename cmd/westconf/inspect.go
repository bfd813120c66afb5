package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/quantmind-br/westconf-go/internal/domain"
	"github.com/quantmind-br/westconf-go/internal/manifest"
	"github.com/quantmind-br/westconf-go/internal/selection"
	"github.com/quantmind-br/westconf-go/internal/tui"
	"github.com/quantmind-br/westconf-go/internal/utils"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Show the resolved import structure of the manifest",
	Long: `Fetches the root manifest, resolves every entry of its self-import
list, and prints the structure grouped by category. Entries marked with a
star would be included by the default selection.`,
	Args: cobra.NoArgs,
	RunE: runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Listing count is unknown up front, so the bar runs as a spinner.
	bar := utils.NewProgressBar(-1, utils.DescResolving)
	explorer, _, err := buildExplorer(cfg, func(string) {
		_ = bar.Add(1)
	})
	if err != nil {
		return err
	}

	passthrough, structure, err := explorer.LoadAndAnalyze(ctx)
	_ = bar.Finish()
	fmt.Println()
	if err != nil {
		return err
	}

	defaults := selection.Defaults(structure)
	groups := manifest.GroupByCategory(structure)

	fmt.Println(tui.TitleStyle.Render(cfg.Manifest.URL))

	for _, cat := range manifest.Categories() {
		entries := groups[cat]
		if len(entries) == 0 {
			continue
		}
		fmt.Println(tui.SubtitleStyle.Render(string(cat)))
		for _, entry := range entries {
			sel, _ := defaults.Get(entry.Path)
			fmt.Printf("  %s %-40s %s\n", defaultMarker(sel), entry.Path, describeEntry(entry))
		}
	}

	if len(passthrough.GroupFilter) > 0 {
		fmt.Println(tui.SubtitleStyle.Render("Group Filters"))
		for _, f := range passthrough.GroupFilter {
			fmt.Printf("    %s\n", f)
		}
	}

	return nil
}

func defaultMarker(sel selection.Selection) string {
	if sel.Include || sel.Mode == selection.ModeAll {
		return "*"
	}
	return " "
}

func describeEntry(entry *domain.ImportEntry) string {
	if entry.IsDirectory() {
		return fmt.Sprintf("directory, %d files", len(entry.Contents))
	}
	return "file"
}
