package detect

import (
	"io/fs"
	"path/filepath"
	"strings"

	forgefs "github.com/cybermura-dev/ReadmeForge/internal/fs"
	"github.com/cybermura-dev/ReadmeForge/internal/project"
)

// Architecture pattern-matches the directory shape and the detected
// technology list into a prose description. Directory names are gathered at
// depth 1 under src/ when present, else under the project root. Every rule
// is evaluated; all matches are reported.
func (d *Detector) Architecture(root string, techs []project.Technology) string {
	scanBase := root
	srcPath := filepath.Join(root, "src")
	hasSrc := forgefs.DirExists(srcPath)
	if hasSrc {
		scanBase = srcPath
	}

	var scanned []string
	dirNames := make(map[string]bool)
	for _, name := range forgefs.Subdirs(scanBase) {
		if !hasSrc && strings.HasPrefix(name, ".") {
			continue
		}
		scanned = append(scanned, filepath.Join(scanBase, name))
		dirNames[strings.ToLower(name)] = true
	}

	var patterns []string
	addIf := func(cond bool, pattern string) {
		if cond {
			patterns = append(patterns, pattern)
		}
	}

	allOf := func(names ...string) bool {
		for _, n := range names {
			if !dirNames[n] {
				return false
			}
		}
		return true
	}
	anyOf := func(names ...string) bool {
		for _, n := range names {
			if dirNames[n] {
				return true
			}
		}
		return false
	}

	addIf(allOf("models", "views", "controllers"), "MVC (Model-View-Controller)")
	addIf(allOf("models", "views", "viewmodels"), "MVVM (Model-View-ViewModel)")
	addIf(allOf("models", "views", "presenters"), "MVP (Model-View-Presenter)")
	addIf(anyOf("domain", "entities") && anyOf("application", "usecases", "use_cases") &&
		anyOf("infrastructure", "frameworks"), "Clean Architecture")

	layers := 0
	for _, layer := range []string{"data", "domain", "application", "presentation", "ui", "persistence"} {
		if dirNames[layer] {
			layers++
		}
	}
	addIf(layers >= 2, "Layered Architecture")

	if dirNames["services"] {
		servicesPath := filepath.Join(scanBase, "services")
		if len(forgefs.Subdirs(servicesPath)) > 2 {
			patterns = append(patterns, "Service-Oriented Architecture")
		}
	}

	addIf(dirNames["repositories"], "Repository Pattern")
	addIf(containsFactoryFile(scanned), "Factory Pattern")

	techNames := make(map[string]bool, len(techs))
	for _, t := range techs {
		techNames[normalizeTechName(t.Name)] = true
	}
	addIf(techNames["django"], "Django MTV (Model-Template-View)")
	addIf(techNames["flask"] || techNames["fastapi"], "REST API")
	addIf(techNames["express"], "Express.js Middleware Architecture")
	addIf(techNames["react"], "Component-Based Architecture")

	if dirNames["domain"] {
		ddd := false
		for _, name := range forgefs.Subdirs(filepath.Join(scanBase, "domain")) {
			switch strings.ToLower(name) {
			case "aggregates", "entities", "value_objects", "services":
				ddd = true
			}
		}
		addIf(ddd, "Domain-Driven Design (DDD)")
	}

	var description string
	if len(patterns) == 0 {
		var archTechs []string
		for _, t := range techs {
			if t.Category == project.CategoryArchitecture {
				archTechs = append(archTechs, t.Name)
			}
		}
		if len(archTechs) > 0 {
			description = "The project uses the following architectural approaches: " +
				strings.Join(archTechs, ", ") + "."
		} else {
			description = "Standard application architecture."
		}
	} else {
		description = "The project uses the following architectural approaches and patterns: " +
			strings.Join(patterns, ", ") + "."
	}

	if hasSrc {
		if modules := forgefs.Subdirs(srcPath); len(modules) > 0 {
			description += " Main modules: " + strings.Join(modules, ", ") + "."
		}
	}

	return description
}

// containsFactoryFile reports whether any filename under the scanned
// directories contains "factory". The search stops at the first hit.
func containsFactoryFile(dirs []string) bool {
	for _, dir := range dirs {
		found := false
		walkFiles(dir, func(path string, entry fs.DirEntry) bool {
			if strings.Contains(strings.ToLower(entry.Name()), "factory") {
				found = true
				return false
			}
			return true
		})
		if found {
			return true
		}
	}
	return false
}

// normalizeTechName lower-cases a display name and drops a ".js" suffix so
// Express.js and Vue.js match their bare names without letting unrelated
// technologies (React Native, React Testing Library) alias each other.
func normalizeTechName(name string) string {
	return strings.TrimSuffix(strings.ToLower(name), ".js")
}
