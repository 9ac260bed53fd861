package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cybermura-dev/ReadmeForge/internal/analyze"
	forgefs "github.com/cybermura-dev/ReadmeForge/internal/fs"
	"github.com/cybermura-dev/ReadmeForge/internal/project"
)

var analyzeJSON bool

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Output the full project record as JSON")
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <path>",
	Short: "Analyze a project and print its inventory",
	Long: `Analyzes the project at <path> and prints what was detected without
writing anything.

Examples:
  readmeforge analyze .
  readmeforge analyze ~/src/app --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		if !forgefs.DirExists(path) {
			return fmt.Errorf("project path %s is not a directory", path)
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		p := analyze.New(cfg).Project(path)

		if analyzeJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(p)
		}

		printSummary(p)
		return nil
	},
}

func printSummary(p *project.Project) {
	fmt.Println(header(p.Name))
	if p.Description != "" {
		fmt.Println(p.Description)
	}
	fmt.Println()

	fmt.Println(header("Technologies"))
	for _, cat := range project.AllCategories {
		techs := p.TechnologiesIn(cat)
		if len(techs) == 0 {
			continue
		}
		var names []string
		for _, t := range techs {
			name := t.Name
			if t.Version != "" {
				name += " " + t.Version
			}
			names = append(names, name)
		}
		fmt.Printf("  %-14s %s\n", cat, strings.Join(names, ", "))
	}
	fmt.Println()

	if len(p.Features) > 0 {
		fmt.Println(header("Features"))
		for _, f := range p.Features {
			fmt.Printf("  %s (priority %d)\n", f.Name, f.Priority)
		}
		fmt.Println()
	}

	fmt.Println(header("Architecture"))
	fmt.Println("  " + p.Metadata.ArchitectureDescription)
	fmt.Println()

	stats := p.Structure.Stats
	fmt.Println(header("Structure"))
	fmt.Printf("  %d files in %d directories\n", stats.TotalFiles, stats.TotalDirs)
}
