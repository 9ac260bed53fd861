// Package render turns a Project record into README markdown. Three built-in
// templates ship embedded; which sections each one emits comes from the
// configuration unless the caller passes an explicit section list.
package render

import (
	"embed"
	"fmt"
	"sort"
	"strings"
	"text/template"

	"github.com/cybermura-dev/ReadmeForge/internal/config"
	"github.com/cybermura-dev/ReadmeForge/internal/project"
)

//go:embed templates/*.md.tmpl
var templateFS embed.FS

// Renderer renders Project records with the built-in templates.
type Renderer struct {
	cfg  *config.Config
	tmpl *template.Template
}

// New parses the embedded templates. The parse only fails if a shipped
// template is broken, which is a programming error.
func New(cfg *config.Config) (*Renderer, error) {
	tmpl, err := template.New("readme").Funcs(funcs).ParseFS(templateFS, "templates/*.md.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse built-in templates: %w", err)
	}
	return &Renderer{cfg: cfg, tmpl: tmpl}, nil
}

// Templates returns the available template names, sorted.
func (r *Renderer) Templates() []string {
	var names []string
	for _, t := range r.tmpl.Templates() {
		if name, ok := strings.CutSuffix(t.Name(), ".md.tmpl"); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Sections returns the section list a template renders by default.
func (r *Renderer) Sections(name string) []string {
	return r.cfg.SectionsFor(name)
}

// Render produces the README for a project. An empty template name means
// "standard"; a nil section list uses the template's configured sections.
func (r *Renderer) Render(p *project.Project, name string, sections []string) (string, error) {
	if name == "" {
		name = "standard"
	}
	if r.tmpl.Lookup(name+".md.tmpl") == nil {
		return "", fmt.Errorf("unknown template %q (available: %s)",
			name, strings.Join(r.Templates(), ", "))
	}
	if sections == nil {
		sections = r.cfg.SectionsFor(name)
	}

	var buf strings.Builder
	ctx := &Context{Project: p, Sections: sections}
	if err := r.tmpl.ExecuteTemplate(&buf, name+".md.tmpl", ctx); err != nil {
		return "", fmt.Errorf("render template %q: %w", name, err)
	}
	return tidy(buf.String()), nil
}

// Context is the value the templates execute against.
type Context struct {
	*project.Project
	Sections []string
}

// Has reports whether a section is enabled for this rendering.
func (c *Context) Has(section string) bool {
	for _, s := range c.Sections {
		if s == section {
			return true
		}
	}
	return false
}

// TechGroup is one category of technologies with its display heading.
type TechGroup struct {
	Title string
	Techs []project.Technology
}

var categoryTitles = map[project.Category]string{
	project.CategoryLanguage:     "Programming Languages",
	project.CategoryFramework:    "Frameworks",
	project.CategoryDatabase:     "Database",
	project.CategoryFrontend:     "Front-end",
	project.CategoryBackend:      "Back-end",
	project.CategoryDevOps:       "DevOps",
	project.CategoryTesting:      "Testing",
	project.CategoryArchitecture: "Architecture Patterns",
	project.CategoryOther:        "Other",
}

// TechGroups returns the non-empty technology categories in presentation
// order.
func (c *Context) TechGroups() []TechGroup {
	var groups []TechGroup
	for _, cat := range project.AllCategories {
		techs := c.TechnologiesIn(cat)
		if len(techs) == 0 {
			continue
		}
		groups = append(groups, TechGroup{Title: categoryTitles[cat], Techs: techs})
	}
	return groups
}

// FileTypeCount is one row of the extension histogram.
type FileTypeCount struct {
	Ext   string
	Count int
}

// FileTypes returns the extension histogram sorted by count descending,
// alphabetical between equal counts.
func (c *Context) FileTypes() []FileTypeCount {
	types := make([]FileTypeCount, 0, len(c.Structure.Stats.FileTypes))
	for ext, count := range c.Structure.Stats.FileTypes {
		types = append(types, FileTypeCount{Ext: ext, Count: count})
	}
	sort.Slice(types, func(i, j int) bool {
		if types[i].Count != types[j].Count {
			return types[i].Count > types[j].Count
		}
		return types[i].Ext < types[j].Ext
	})
	return types
}

var funcs = template.FuncMap{
	"stars": stars,
	"size":  formatSize,
	"tree":  renderTree,
	"lower": strings.ToLower,
}

// stars renders an importance or priority score as filled and empty stars.
func stars(n int) string {
	if n < 0 {
		n = 0
	}
	if n > 5 {
		n = 5
	}
	return strings.Repeat("★", n) + strings.Repeat("☆", 5-n)
}

func formatSize(size int64) string {
	switch {
	case size >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(size)/(1<<20))
	case size >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(size)/(1<<10))
	default:
		return fmt.Sprintf("%d B", size)
	}
}

// renderTree draws the structure tree with box-drawing connectors.
func renderTree(root project.StructureNode) string {
	var b strings.Builder
	b.WriteString(root.Name + "/\n")
	writeChildren(&b, root.Children, "")
	return strings.TrimRight(b.String(), "\n")
}

func writeChildren(b *strings.Builder, children []project.StructureNode, prefix string) {
	for i, child := range children {
		connector, childPrefix := "├── ", prefix+"│   "
		if i == len(children)-1 {
			connector, childPrefix = "└── ", prefix+"    "
		}

		name := child.Name
		if child.Kind == project.NodeDir {
			name += "/"
		}
		b.WriteString(prefix + connector + name + "\n")

		if child.Kind == project.NodeDir {
			writeChildren(b, child.Children, childPrefix)
		}
	}
}

// tidy collapses runs of blank lines the conditional sections leave behind
// and guarantees a single trailing newline.
func tidy(s string) string {
	lines := strings.Split(s, "\n")
	var out []string
	blank := false
	for _, line := range lines {
		trimmed := strings.TrimRight(line, " \t")
		if trimmed == "" {
			if blank {
				continue
			}
			blank = true
		} else {
			blank = false
		}
		out = append(out, trimmed)
	}
	return strings.TrimRight(strings.Join(out, "\n"), "\n") + "\n"
}
