package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/quantmind-br/westconf-go/internal/manifest"
	"github.com/quantmind-br/westconf-go/internal/profile"
	"github.com/quantmind-br/westconf-go/internal/utils"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a manifest from a saved profile",
	Long: `Fetches and resolves the root manifest, applies the selections from
a saved profile, and writes the generated manifest document. Use "-" as
the output path to write to stdout.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringP("profile", "p", "", "Profile file to apply (required)")
	generateCmd.Flags().StringP("output", "o", "", "Output path (default from config, \"-\" for stdout)")
	_ = generateCmd.MarkFlagRequired("profile")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}

	profilePath, _ := cmd.Flags().GetString("profile")
	outputPath, _ := cmd.Flags().GetString("output")
	if outputPath == "" {
		outputPath = cfg.Output.Path
	}

	p, err := profile.Load(profilePath)
	if err != nil {
		return err
	}

	// A profile may have been saved against a different manifest URL;
	// the profile wins so selections line up with the structure they
	// were made from.
	if p.ManifestURL != "" {
		cfg.Manifest.URL = p.ManifestURL
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	bar := utils.NewProgressBar(-1, utils.DescResolving)
	explorer, _, err := buildExplorer(cfg, func(string) {
		_ = bar.Add(1)
	})
	if err != nil {
		return err
	}

	passthrough, structure, err := explorer.LoadAndAnalyze(ctx)
	_ = bar.Finish()
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return err
	}

	set := p.Selections(structure)
	doc, err := manifest.Generate(passthrough, set.Flatten(), manifest.GenerateOptions{
		UseRemotes:      p.UseRemotes,
		UseDefaults:     p.UseDefaults,
		UseWestCommands: p.UseWestCommands,
		GroupFilters:    p.GroupFilters,
	})
	if err != nil {
		return err
	}

	out, err := manifest.EncodeWithHeader(doc, time.Now())
	if err != nil {
		return err
	}

	if outputPath == "-" {
		fmt.Print(string(out))
		return nil
	}

	if err := os.WriteFile(outputPath, out, 0644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	log.Info().Str("path", outputPath).Msg("Manifest written")
	return nil
}
