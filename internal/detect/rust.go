package detect

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"github.com/cybermura-dev/ReadmeForge/internal/project"
)

// CargoManifest is the subset of Cargo.toml this tool reads.
type CargoManifest struct {
	Package struct {
		Name    string `toml:"name"`
		Version string `toml:"version"`
	} `toml:"package"`
	Dependencies    map[string]any `toml:"dependencies"`
	DevDependencies map[string]any `toml:"dev-dependencies"`
}

// ReadCargoManifest parses <dir>/Cargo.toml. A missing or malformed file
// returns ok=false.
func ReadCargoManifest(dir string) (*CargoManifest, bool) {
	data, err := os.ReadFile(filepath.Join(dir, "Cargo.toml"))
	if err != nil {
		return nil, false
	}
	var manifest CargoManifest
	if err := toml.Unmarshal(data, &manifest); err != nil {
		return nil, false
	}
	return &manifest, true
}

type rustCrate struct {
	category   project.Category
	name       string
	importance int
}

var rustCrates = map[string]rustCrate{
	"actix-web": {project.CategoryBackend, "Actix Web", 5},
	"rocket":    {project.CategoryBackend, "Rocket", 5},
	"warp":      {project.CategoryBackend, "Warp", 4},
	"axum":      {project.CategoryBackend, "Axum", 4},
	"tide":      {project.CategoryBackend, "Tide", 4},
	"tokio":     {project.CategoryBackend, "Tokio", 4},
	"async-std": {project.CategoryBackend, "async-std", 4},
	"diesel":    {project.CategoryDatabase, "Diesel ORM", 4},
	"sqlx":      {project.CategoryDatabase, "SQLx", 4},
	"rusqlite":  {project.CategoryDatabase, "Rusqlite", 3},
	"serde":     {project.CategoryOther, "Serde", 3},
	"reqwest":   {project.CategoryBackend, "Reqwest", 3},
	"hyper":     {project.CategoryBackend, "Hyper", 3},
	"clap":      {project.CategoryOther, "Clap CLI", 3},
	"yew":       {project.CategoryFrontend, "Yew", 5},
	"leptos":    {project.CategoryFrontend, "Leptos", 5},
	"dioxus":    {project.CategoryFrontend, "Dioxus", 4},
	"tauri":     {project.CategoryFramework, "Tauri", 5},
	"bevy":      {project.CategoryFramework, "Bevy Engine", 5},
	"amethyst":  {project.CategoryFramework, "Amethyst Engine", 4},
}

// detectRust matches Cargo.toml dependencies (regular and dev) against the
// curated crate table.
func (d *Detector) detectRust(root string, reg *Registry) {
	manifest, ok := ReadCargoManifest(root)
	if !ok {
		return
	}

	reg.Upsert(project.CategoryLanguage, "Rust", 5)

	all := make(map[string]struct{}, len(manifest.Dependencies)+len(manifest.DevDependencies))
	for name := range manifest.Dependencies {
		all[name] = struct{}{}
	}
	for name := range manifest.DevDependencies {
		all[name] = struct{}{}
	}

	names := make([]string, 0, len(all))
	for name := range all {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if crate, ok := rustCrates[name]; ok {
			reg.Upsert(crate.category, crate.name, crate.importance)
		}
	}
}
