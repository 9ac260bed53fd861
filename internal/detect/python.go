package detect

import (
	"bufio"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/cybermura-dev/ReadmeForge/internal/fs"
	"github.com/cybermura-dev/ReadmeForge/internal/project"
)

// Requirement is one entry of a requirements-style dependency file.
type Requirement struct {
	Name    string
	Version string
}

// requirement version separators, checked in priority order: the first one
// present in a line splits it.
var requirementSeparators = []string{"==", ">=", "<=", "~="}

// ParseRequirements parses requirements.txt content. Blank lines and
// comments yield nothing; a line without a version separator is a bare name
// with an empty version.
func ParseRequirements(content string) []Requirement {
	var out []Requirement
	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		name, version := line, ""
		for _, sep := range requirementSeparators {
			if idx := strings.Index(line, sep); idx >= 0 {
				name = strings.TrimSpace(line[:idx])
				version = strings.TrimSpace(line[idx+len(sep):])
				break
			}
		}
		out = append(out, Requirement{Name: name, Version: version})
	}
	return out
}

type pythonPackage struct {
	category   project.Category
	name       string
	importance int
}

var pythonPackages = map[string]pythonPackage{
	"django":                {project.CategoryFramework, "Django", 5},
	"flask":                 {project.CategoryFramework, "Flask", 5},
	"fastapi":               {project.CategoryFramework, "FastAPI", 5},
	"tornado":               {project.CategoryFramework, "Tornado", 4},
	"sanic":                 {project.CategoryFramework, "Sanic", 4},
	"pyramid":               {project.CategoryFramework, "Pyramid", 4},
	"aiohttp":               {project.CategoryFramework, "AIOHTTP", 4},
	"sqlalchemy":            {project.CategoryDatabase, "SQLAlchemy", 4},
	"django-rest-framework": {project.CategoryBackend, "Django REST Framework", 4},
	"djangorestframework":   {project.CategoryBackend, "Django REST Framework", 4},
	"alembic":               {project.CategoryDatabase, "Alembic", 3},
	"pytest":                {project.CategoryTesting, "PyTest", 4},
	"unittest":              {project.CategoryTesting, "unittest", 3},
	"selenium":              {project.CategoryTesting, "Selenium", 3},
	"behave":                {project.CategoryTesting, "Behave", 3},
	"celery":                {project.CategoryBackend, "Celery", 4},
	"redis":                 {project.CategoryDatabase, "Redis", 3},
	"pymongo":               {project.CategoryDatabase, "MongoDB (PyMongo)", 3},
	"psycopg2":              {project.CategoryDatabase, "PostgreSQL", 3},
	"psycopg2-binary":       {project.CategoryDatabase, "PostgreSQL", 3},
	"pymysql":               {project.CategoryDatabase, "MySQL", 3},
	"mysqlclient":           {project.CategoryDatabase, "MySQL", 3},
}

// detectPython inspects requirements.txt, setup.py, and pyproject.toml.
func (d *Detector) detectPython(root string, reg *Registry) {
	if fs.FileExistsIn(root, "requirements.txt") {
		reqs := ParseRequirements(fs.ReadFileIn(root, "requirements.txt"))
		reg.Upsert(project.CategoryLanguage, "Python", 5)
		for _, req := range reqs {
			name := strings.ToLower(req.Name)
			if pkg, ok := pythonPackages[name]; ok {
				reg.UpsertVersion(pkg.category, pkg.name, req.Version, pkg.importance)
			}
			// Ecosystem prefixes imply the framework even for plugins.
			if strings.HasPrefix(name, "django") {
				reg.Upsert(project.CategoryFramework, "Django", 5)
			}
			if strings.HasPrefix(name, "flask") {
				reg.Upsert(project.CategoryFramework, "Flask", 5)
			}
			if name == "fastapi" {
				reg.Upsert(project.CategoryFramework, "FastAPI", 5)
			}
		}
	}

	if fs.FileExistsIn(root, "setup.py") {
		reg.Upsert(project.CategoryLanguage, "Python", 5)
	}

	if fs.FileExistsIn(root, "pyproject.toml") {
		reg.Upsert(project.CategoryLanguage, "Python", 5)
		d.detectPyproject(filepath.Join(root, "pyproject.toml"), reg)
	}
}

func (d *Detector) detectPyproject(path string, reg *Registry) {
	var doc struct {
		Tool struct {
			Poetry struct {
				Dependencies map[string]any `toml:"dependencies"`
			} `toml:"poetry"`
		} `toml:"tool"`
	}
	if err := toml.Unmarshal([]byte(fs.ReadFile(path)), &doc); err != nil {
		d.log.Debug("skipping malformed pyproject.toml", "path", path, "error", err)
		return
	}

	deps := doc.Tool.Poetry.Dependencies
	if len(deps) == 0 {
		return
	}
	reg.Upsert(project.CategoryDevOps, "Poetry", 3)

	names := make([]string, 0, len(deps))
	for name := range deps {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		switch strings.ToLower(name) {
		case "django":
			reg.Upsert(project.CategoryFramework, "Django", 5)
		case "flask":
			reg.Upsert(project.CategoryFramework, "Flask", 5)
		case "fastapi":
			reg.Upsert(project.CategoryFramework, "FastAPI", 5)
		}
	}
}
