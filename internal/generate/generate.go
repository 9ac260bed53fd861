// Package generate is the end-to-end README use case: analyze a project,
// render the selected template, write the file.
package generate

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cybermura-dev/ReadmeForge/internal/analyze"
	"github.com/cybermura-dev/ReadmeForge/internal/config"
	forgefs "github.com/cybermura-dev/ReadmeForge/internal/fs"
	"github.com/cybermura-dev/ReadmeForge/internal/render"
)

// Options select what to generate and where to put it.
type Options struct {
	// Path is the project root to analyze.
	Path string
	// Output is the README path to write. Empty means <Path>/README.md.
	Output string
	// Template selects the built-in template; empty means "standard".
	Template string
	// Sections overrides the template's configured section list when
	// non-nil.
	Sections []string
}

// Execute runs the full pipeline and returns the path of the written README.
func Execute(cfg *config.Config, opts Options) (string, error) {
	if !forgefs.DirExists(opts.Path) {
		return "", fmt.Errorf("project path %s is not a directory", opts.Path)
	}

	renderer, err := render.New(cfg)
	if err != nil {
		return "", err
	}

	p := analyze.New(cfg).Project(opts.Path)

	readme, err := renderer.Render(p, opts.Template, opts.Sections)
	if err != nil {
		return "", err
	}

	out := opts.Output
	if out == "" {
		out = filepath.Join(opts.Path, "README.md")
	}
	if err := os.WriteFile(out, []byte(readme), 0644); err != nil {
		return "", fmt.Errorf("write %s: %w", out, err)
	}
	return out, nil
}
