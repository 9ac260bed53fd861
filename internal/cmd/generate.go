package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cybermura-dev/ReadmeForge/internal/generate"
)

var (
	generateOutput   string
	generateTemplate string
	generateSections []string
)

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Output file path (default <path>/README.md)")
	generateCmd.Flags().StringVarP(&generateTemplate, "template", "t", "standard", "Template: standard, minimal, detailed")
	generateCmd.Flags().StringArrayVarP(&generateSections, "section", "s", nil, "Section to include (repeatable, overrides the template's list)")
}

var generateCmd = &cobra.Command{
	Use:   "generate <path>",
	Short: "Analyze a project and write its README",
	Long: `Analyzes the project at <path> and writes a README rendered with the
selected template.

Examples:
  readmeforge generate .
  readmeforge generate ~/src/app --template detailed
  readmeforge generate . -s description -s technologies -s usage
  readmeforge generate . --output docs/README.md`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		out, err := generate.Execute(cfg, generate.Options{
			Path:     args[0],
			Output:   generateOutput,
			Template: generateTemplate,
			Sections: generateSections,
		})
		if err != nil {
			return err
		}

		fmt.Println(successf("README written to %s", out))
		return nil
	},
}
