package detect

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	forgefs "github.com/cybermura-dev/ReadmeForge/internal/fs"
	"github.com/cybermura-dev/ReadmeForge/internal/ignore"
	"github.com/cybermura-dev/ReadmeForge/internal/project"
)

// Keyword lists backing the marker classifier. A technology display name is
// matched case-insensitively against each list in order; the first hit
// decides the category, anything unmatched falls to "other".
var categoryKeywords = []struct {
	category project.Category
	keywords []string
}{
	{project.CategoryFrontend, []string{
		"angular", "react", "vue.js", "next.js", "gatsby", "svelte", "html",
		"css", "sass", "less", "bootstrap", "tailwind", "blazor webassembly",
	}},
	{project.CategoryBackend, []string{
		"express", "django", "flask", "fastapi", "spring", "asp.net core",
		"laravel", "rails",
	}},
	{project.CategoryDatabase, []string{
		"mongodb", "mysql", "postgresql", "sqlite", "redis",
		"entity framework", "hibernate", "sql server",
	}},
	{project.CategoryDevOps, []string{
		"docker", "kubernetes", "travis ci", "jenkins", "github actions",
		"gitlab ci", "terraform", "ansible", "aws", "azure", "gcp",
	}},
	{project.CategoryTesting, []string{
		"jest", "mocha", "cypress", "selenium", "junit", "xunit", "nunit", "pytest",
	}},
	{project.CategoryFramework, []string{
		"android", "ios", ".net core", "spring boot", "asp.net core",
		"flutter", "react native",
	}},
}

// classifyTechnology assigns a category to a marker-derived technology name.
func classifyTechnology(name string) project.Category {
	lower := strings.ToLower(name)
	for _, group := range categoryKeywords {
		for _, keyword := range group.keywords {
			if strings.Contains(lower, keyword) {
				return group.category
			}
		}
	}
	return project.CategoryOther
}

// scanMarkers applies the configured marker table. Literal names are checked
// at the project root (dotfiles also in their non-dotted form), entries with
// a path separator as a joined subpath, and glob entries by a bounded walk
// that stops at the first match. Every hit is upserted at importance 3.
func (d *Detector) scanMarkers(root string, reg *Registry) {
	patterns := make([]string, 0, len(d.cfg.Analyzers.ProjectFiles))
	for pattern := range d.cfg.Analyzers.ProjectFiles {
		patterns = append(patterns, pattern)
	}
	sort.Strings(patterns)

	for _, pattern := range patterns {
		tech := d.cfg.Analyzers.ProjectFiles[pattern]
		if !d.markerPresent(root, pattern) {
			continue
		}
		reg.Upsert(classifyTechnology(tech), tech, 3)
	}
}

func (d *Detector) markerPresent(root, pattern string) bool {
	if strings.ContainsAny(pattern, "*?") {
		return globMatchAnywhere(root, pattern)
	}

	if strings.Contains(pattern, "/") {
		return forgefs.FileExists(filepath.Join(root, filepath.FromSlash(pattern)))
	}

	if forgefs.FileExistsIn(root, pattern) {
		return true
	}
	// Dotfile markers also match their non-dotted form (e.g. .babelrc and
	// babelrc).
	if strings.HasPrefix(pattern, ".") && forgefs.FileExistsIn(root, pattern[1:]) {
		return true
	}
	return false
}

// globMatchAnywhere walks the non-ignored tree and reports whether any file
// name matches the glob, stopping at the first hit.
func globMatchAnywhere(root, pattern string) bool {
	found := false
	lowerPattern := strings.ToLower(pattern)
	walkFiles(root, func(path string, entry fs.DirEntry) bool {
		if ok, _ := doublestar.Match(lowerPattern, strings.ToLower(entry.Name())); ok {
			found = true
			return false
		}
		return true
	})
	return found
}

// scanDevOpsTools checks the fixed table of well-known DevOps markers:
// container files, CI configs, IaC manifests, and configuration management.
// CI systems are mutually exclusive; the first one found wins.
func (d *Detector) scanDevOpsTools(root string, reg *Registry) {
	anyExists := func(names ...string) bool {
		for _, name := range names {
			if forgefs.FileExistsIn(root, name) {
				return true
			}
		}
		return false
	}

	if anyExists("Dockerfile", "docker-compose.yml", "docker-compose.yaml") {
		reg.Upsert(project.CategoryDevOps, "Docker", 4)
	}

	if anyExists("kubernetes.yaml", "kubernetes.yml", "k8s.yaml", "k8s.yml",
		"deployment.yaml", "service.yaml") {
		reg.Upsert(project.CategoryDevOps, "Kubernetes", 4)
	}

	if forgefs.DirExistsIn(root, "helm") || forgefs.DirExistsIn(root, "charts") {
		reg.Upsert(project.CategoryDevOps, "Helm", 3)
	}

	switch {
	case forgefs.DirExists(filepath.Join(root, ".github", "workflows")):
		reg.Upsert(project.CategoryDevOps, "GitHub Actions", 3)
	case anyExists(".gitlab-ci.yml", ".gitlab-ci.yaml"):
		reg.Upsert(project.CategoryDevOps, "GitLab CI", 3)
	case anyExists(".travis.yml", ".travis.yaml"):
		reg.Upsert(project.CategoryDevOps, "Travis CI", 3)
	case anyExists("Jenkinsfile"):
		reg.Upsert(project.CategoryDevOps, "Jenkins", 3)
	case anyExists("azure-pipelines.yml", "azure-pipelines.yaml"):
		reg.Upsert(project.CategoryDevOps, "Azure Pipelines", 3)
	case anyExists("appveyor.yml", "appveyor.yaml"):
		reg.Upsert(project.CategoryDevOps, "AppVeyor", 3)
	case anyExists("buildspec.yml", "buildspec.yaml"):
		reg.Upsert(project.CategoryDevOps, "AWS CodeBuild", 3)
	}

	if anyExists("main.tf", "variables.tf", "terraform.tf") {
		reg.Upsert(project.CategoryDevOps, "Terraform", 4)
	}

	if anyExists("ansible.cfg", "playbook.yml", "playbook.yaml", "inventory.ini", "hosts") ||
		forgefs.DirExistsIn(root, "roles") {
		reg.Upsert(project.CategoryDevOps, "Ansible", 4)
	}

	if anyExists("pulumi.yaml", "Pulumi.yaml") {
		reg.Upsert(project.CategoryDevOps, "Pulumi", 4)
	}
}

type directoryFact struct {
	category   project.Category
	name       string
	importance int
}

// directoryFacts maps well-known directory names to the technology or
// pattern their presence suggests.
var directoryFacts = map[string]directoryFact{
	"node_modules":  {project.CategoryLanguage, "Node.js", 3},
	"vendor":        {project.CategoryDevOps, "Composer (PHP)", 3},
	"migrations":    {project.CategoryDatabase, "Database Migrations", 3},
	"controllers":   {project.CategoryArchitecture, "MVC Architecture", 3},
	"views":         {project.CategoryArchitecture, "MVC Architecture", 3},
	"models":        {project.CategoryArchitecture, "MVC Architecture", 3},
	"templates":     {project.CategoryFrontend, "Template Engine", 3},
	"components":    {project.CategoryFrontend, "Component-based Framework", 3},
	"pages":         {project.CategoryFrontend, "Page-based Framework", 3},
	"routes":        {project.CategoryBackend, "Routing", 3},
	"middlewares":   {project.CategoryBackend, "Middleware Pattern", 3},
	"middleware":    {project.CategoryBackend, "Middleware Pattern", 3},
	"hooks":         {project.CategoryFramework, "Hook System", 3},
	"services":      {project.CategoryArchitecture, "Service Layer", 3},
	"repositories":  {project.CategoryArchitecture, "Repository Pattern", 3},
	"providers":     {project.CategoryArchitecture, "Provider Pattern", 3},
	"tests":         {project.CategoryTesting, "Automated Tests", 3},
	"test":          {project.CategoryTesting, "Automated Tests", 3},
	"spec":          {project.CategoryTesting, "Automated Tests", 3},
	"scripts":       {project.CategoryDevOps, "Script Collection", 2},
	"docs":          {project.CategoryOther, "Documentation", 2},
	"artifacts":     {project.CategoryDevOps, "Build Artifacts", 2},
	"dist":          {project.CategoryDevOps, "Distribution", 2},
	"build":         {project.CategoryDevOps, "Build Output", 2},
	"bin":           {project.CategoryDevOps, "Binaries", 2},
	"obj":           {project.CategoryDevOps, ".NET Object Files", 2},
	"packages":      {project.CategoryDevOps, "Package Management", 2},
	"modules":       {project.CategoryArchitecture, "Module System", 2},
	"api":           {project.CategoryBackend, "API", 3},
	"public":        {project.CategoryFrontend, "Public Assets", 2},
	"static":        {project.CategoryFrontend, "Static Assets", 2},
	"assets":        {project.CategoryFrontend, "Asset Files", 2},
	"styles":        {project.CategoryFrontend, "CSS Styles", 2},
	"images":        {project.CategoryFrontend, "Image Files", 2},
	"fonts":         {project.CategoryFrontend, "Font Files", 2},
	"config":        {project.CategoryDevOps, "Configuration", 2},
	"configs":       {project.CategoryDevOps, "Configuration", 2},
	"configuration": {project.CategoryDevOps, "Configuration", 2},
	"environments":  {project.CategoryDevOps, "Environment Config", 2},
}

// frameworkDirectories are directory names that name the framework outright.
var frameworkDirectories = map[string]directoryFact{
	"angular":      {project.CategoryFrontend, "Angular", 4},
	"react":        {project.CategoryFrontend, "React", 4},
	"vue":          {project.CategoryFrontend, "Vue.js", 4},
	"django":       {project.CategoryFramework, "Django", 4},
	"flask":        {project.CategoryFramework, "Flask", 4},
	"spring":       {project.CategoryFramework, "Spring", 4},
	"laravel":      {project.CategoryFramework, "Laravel", 4},
	"express":      {project.CategoryBackend, "Express.js", 4},
	"react-native": {project.CategoryFramework, "React Native", 4},
	"flutter":      {project.CategoryFramework, "Flutter", 4},
}

// scanDirectories inspects directory names down to depth 2, contributing
// architecture and framework facts from the curated tables. Dotted and
// ignored directories are skipped.
func (d *Detector) scanDirectories(root string, reg *Registry) {
	var dirNames []string
	_ = filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil || !entry.IsDir() || path == root {
			if err != nil && entry != nil && entry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(entry.Name(), ".") {
			return filepath.SkipDir
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return filepath.SkipDir
		}
		depth := len(strings.Split(rel, string(filepath.Separator)))
		if depth > 2 {
			return filepath.SkipDir
		}

		dirNames = append(dirNames, strings.ToLower(entry.Name()))

		// Ignored directories still contribute their name fact (a
		// node_modules dir is evidence of Node.js) but are never descended.
		if ignore.Dir(entry.Name()) {
			return filepath.SkipDir
		}
		return nil
	})

	for _, name := range dirNames {
		if fact, ok := directoryFacts[name]; ok {
			reg.Upsert(fact.category, fact.name, fact.importance)
		}
		if fact, ok := frameworkDirectories[name]; ok {
			reg.Upsert(fact.category, fact.name, fact.importance)
		}
	}
}
