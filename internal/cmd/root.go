package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/cybermura-dev/ReadmeForge/internal/config"
)

var (
	version = "dev"
	commit  = "none"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "readmeforge",
	Short: "Generate README files from project analysis",
	Long: `ReadmeForge inspects a project directory and writes its README.

It detects languages, frameworks, and tools from manifests, marker files,
directory layout, and source imports, infers the architecture and the main
features, and renders everything through one of the built-in templates.

Quick start:
  readmeforge generate .             Analyze and write ./README.md
  readmeforge analyze . --json       Dump the raw inventory
  readmeforge templates              List templates and their sections`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})))
	},
}

func Execute() error {
	return rootCmd.Execute()
}

var versionJSON bool

func init() {
	rootCmd.Version = fmt.Sprintf("%s (%s)", version, commit)
	rootCmd.SetVersionTemplate("readmeforge {{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config overlaying the built-in tables")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Output version information as JSON")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		if versionJSON {
			_ = json.NewEncoder(os.Stdout).Encode(map[string]string{
				"version": version,
				"commit":  commit,
			})
			return
		}
		fmt.Printf("readmeforge %s (%s)\n", version, commit)
	},
}

// loadConfig resolves the --config flag into the effective configuration.
func loadConfig() (*config.Config, error) {
	return config.Load(configPath)
}
