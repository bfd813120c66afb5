package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/quantmind-br/westconf-go/internal/config"
	"github.com/quantmind-br/westconf-go/internal/domain"
	"github.com/quantmind-br/westconf-go/internal/fetcher"
	"github.com/quantmind-br/westconf-go/internal/manifest"
	"github.com/quantmind-br/westconf-go/internal/utils"
	"github.com/quantmind-br/westconf-go/pkg/version"
)

var (
	cfgFile string
	verbose bool
	log     *utils.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "westconf",
	Short: "Configure NXP west manifests interactively",
	Long: `Westconf resolves the import structure of a remotely-hosted west
manifest, lets you select which components to include, and generates a
new manifest document plus a reusable settings profile.

Run 'westconf tui' for interactive selection, 'westconf inspect' to view
the resolved import structure, or 'westconf generate' to produce a
manifest from a saved profile.`,
	Version:       version.Short(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.westconf/config.yaml)")
	rootCmd.PersistentFlags().StringP("manifest-url", "m", config.DefaultManifestURL, "Root manifest URL")
	rootCmd.PersistentFlags().String("suffix", config.DefaultSuffix, "Manifest file suffix")
	rootCmd.PersistentFlags().Duration("timeout", config.DefaultTimeout, "HTTP request timeout")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	_ = viper.BindPFlag("manifest.url", rootCmd.PersistentFlags().Lookup("manifest-url"))
	_ = viper.BindPFlag("manifest.suffix", rootCmd.PersistentFlags().Lookup("suffix"))
	_ = viper.BindPFlag("fetch.timeout", rootCmd.PersistentFlags().Lookup("timeout"))

	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
}

// setup loads configuration and initializes the logger; every subcommand
// starts here.
func setup() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logLevel := cfg.Logging.Level
	if verbose {
		logLevel = "debug"
	}
	log = utils.NewLogger(utils.LoggerOptions{
		Level:   logLevel,
		Format:  cfg.Logging.Format,
		Verbose: verbose,
	})

	return cfg, nil
}

// buildExplorer wires a fetcher and explorer for the configured manifest
func buildExplorer(cfg *config.Config, onListing func(string)) (*manifest.Explorer, domain.Reference, error) {
	ref, err := domain.ParseReference(cfg.Manifest.URL)
	if err != nil {
		return nil, domain.Reference{}, err
	}

	client, err := fetcher.NewClient(fetcher.ClientOptions{
		Timeout:   cfg.Fetch.Timeout,
		UserAgent: cfg.Fetch.UserAgent,
		Suffix:    cfg.Manifest.Suffix,
		Logger:    log,
	})
	if err != nil {
		return nil, domain.Reference{}, err
	}

	explorer := manifest.NewExplorer(manifest.ExplorerOptions{
		Reference: ref,
		Fetcher:   client,
		Suffix:    cfg.Manifest.Suffix,
		Logger:    log,
		OnListing: onListing,
	})
	return explorer, ref, nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Full())
	},
}
