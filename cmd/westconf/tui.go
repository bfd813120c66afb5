package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/quantmind-br/westconf-go/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Select manifest components interactively",
	Long: `Opens an interactive session: pick components per category,
adjust passthrough settings and group filters, preview the result, and
write the generated manifest together with a reusable profile.`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().StringP("output", "o", "", "Output path (default from config)")
	tuiCmd.Flags().StringP("profile", "p", "", "Profile path to save selections to")
	tuiCmd.Flags().Bool("accessible", false, "Accessible mode for screen readers")
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}

	outputPath, _ := cmd.Flags().GetString("output")
	if outputPath == "" {
		outputPath = cfg.Output.Path
	}
	profilePath, _ := cmd.Flags().GetString("profile")
	accessible, _ := cmd.Flags().GetBool("accessible")

	explorer, _, err := buildExplorer(cfg, nil)
	if err != nil {
		return err
	}

	model := tui.NewModel(tui.Options{
		Explorer:    explorer,
		ManifestURL: cfg.Manifest.URL,
		OutputPath:  outputPath,
		ProfilePath: profilePath,
		Accessible:  accessible,
	})

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("tui failed: %w", err)
	}
	return nil
}
