package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cybermura-dev/ReadmeForge/internal/render"
)

func init() {
	rootCmd.AddCommand(templatesCmd)
}

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List available templates and their sections",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		renderer, err := render.New(cfg)
		if err != nil {
			return err
		}

		for _, name := range renderer.Templates() {
			fmt.Println(header(name))
			fmt.Printf("  sections: %s\n", strings.Join(renderer.Sections(name), ", "))
		}
		return nil
	},
}
