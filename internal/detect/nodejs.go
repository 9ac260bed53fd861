package detect

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cybermura-dev/ReadmeForge/internal/project"
)

// PackageJSON is the subset of package.json this tool reads. The aggregator
// reuses it for name, description, license, and repository resolution.
type PackageJSON struct {
	Name            string            `json:"name"`
	Description     string            `json:"description"`
	License         string            `json:"license"`
	Repository      json.RawMessage   `json:"repository"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
	Scripts         map[string]string `json:"scripts"`
}

// ReadPackageJSON parses <dir>/package.json. A missing or malformed file
// returns ok=false.
func ReadPackageJSON(dir string) (*PackageJSON, bool) {
	data, err := os.ReadFile(filepath.Join(dir, "package.json"))
	if err != nil {
		return nil, false
	}
	var pkg PackageJSON
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, false
	}
	return &pkg, true
}

// AllDependencies merges dependencies and devDependencies into one lookup.
func (p *PackageJSON) AllDependencies() map[string]string {
	all := make(map[string]string, len(p.Dependencies)+len(p.DevDependencies))
	for name, version := range p.Dependencies {
		all[name] = version
	}
	for name, version := range p.DevDependencies {
		all[name] = version
	}
	return all
}

// RepositoryURL returns the repository field whether it is a bare string or
// a {type, url} object.
func (p *PackageJSON) RepositoryURL() string {
	if len(p.Repository) == 0 {
		return ""
	}
	var asString string
	if err := json.Unmarshal(p.Repository, &asString); err == nil {
		return asString
	}
	var asObject struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(p.Repository, &asObject); err == nil {
		return asObject.URL
	}
	return ""
}

type jsLibrary struct {
	category   project.Category
	name       string
	importance int
}

var jsFrontendLibraries = map[string]jsLibrary{
	"react":         {project.CategoryFrontend, "React", 5},
	"vue":           {project.CategoryFrontend, "Vue.js", 5},
	"angular":       {project.CategoryFrontend, "Angular", 5},
	"svelte":        {project.CategoryFrontend, "Svelte", 5},
	"next":          {project.CategoryFrontend, "Next.js", 5},
	"nuxt":          {project.CategoryFrontend, "Nuxt.js", 5},
	"gatsby":        {project.CategoryFrontend, "Gatsby", 4},
	"@angular/core": {project.CategoryFrontend, "Angular", 5},
	"jquery":        {project.CategoryFrontend, "jQuery", 3},
	"bootstrap":     {project.CategoryFrontend, "Bootstrap", 3},
	"tailwindcss":   {project.CategoryFrontend, "Tailwind CSS", 4},
}

var jsBackendLibraries = map[string]jsLibrary{
	"express":       {project.CategoryBackend, "Express.js", 5},
	"koa":           {project.CategoryBackend, "Koa.js", 5},
	"fastify":       {project.CategoryBackend, "Fastify", 4},
	"nest":          {project.CategoryBackend, "NestJS", 5},
	"@nestjs/core":  {project.CategoryBackend, "NestJS", 5},
	"hapi":          {project.CategoryBackend, "Hapi.js", 4},
	"feathers":      {project.CategoryBackend, "Feathers.js", 4},
	"socket.io":     {project.CategoryBackend, "Socket.IO", 3},
	"apollo-server": {project.CategoryBackend, "Apollo Server", 4},
}

var jsDatabaseLibraries = map[string]jsLibrary{
	"mongoose":  {project.CategoryDatabase, "MongoDB (Mongoose)", 4},
	"mongodb":   {project.CategoryDatabase, "MongoDB", 4},
	"sequelize": {project.CategoryDatabase, "SQL (Sequelize)", 4},
	"typeorm":   {project.CategoryDatabase, "TypeORM", 4},
	"prisma":    {project.CategoryDatabase, "Prisma", 4},
	"pg":        {project.CategoryDatabase, "PostgreSQL", 3},
	"mysql":     {project.CategoryDatabase, "MySQL", 3},
	"sqlite3":   {project.CategoryDatabase, "SQLite", 3},
	"redis":     {project.CategoryDatabase, "Redis", 3},
}

var jsTestingLibraries = map[string]jsLibrary{
	"jest":                   {project.CategoryTesting, "Jest", 4},
	"mocha":                  {project.CategoryTesting, "Mocha", 4},
	"chai":                   {project.CategoryTesting, "Chai", 3},
	"jasmine":                {project.CategoryTesting, "Jasmine", 3},
	"karma":                  {project.CategoryTesting, "Karma", 3},
	"enzyme":                 {project.CategoryTesting, "Enzyme", 3},
	"@testing-library/react": {project.CategoryTesting, "React Testing Library", 3},
	"cypress":                {project.CategoryTesting, "Cypress", 4},
	"selenium-webdriver":     {project.CategoryTesting, "Selenium", 3},
}

var jsDevOpsLibraries = map[string]jsLibrary{
	"webpack":     {project.CategoryDevOps, "Webpack", 4},
	"babel":       {project.CategoryDevOps, "Babel", 3},
	"@babel/core": {project.CategoryDevOps, "Babel", 3},
	"gulp":        {project.CategoryDevOps, "Gulp", 3},
	"grunt":       {project.CategoryDevOps, "Grunt", 3},
	"eslint":      {project.CategoryDevOps, "ESLint", 3},
	"prettier":    {project.CategoryDevOps, "Prettier", 3},
	"typescript":  {project.CategoryLanguage, "TypeScript", 5},
	"ts-node":     {project.CategoryDevOps, "ts-node", 3},
	"vite":        {project.CategoryDevOps, "Vite", 4},
}

// detectNodeJS cross-references package.json dependencies against the
// curated library tables.
func (d *Detector) detectNodeJS(root string, reg *Registry) {
	pkg, ok := ReadPackageJSON(root)
	if !ok {
		return
	}

	allLibraries := make(map[string]jsLibrary)
	for _, table := range []map[string]jsLibrary{
		jsFrontendLibraries, jsBackendLibraries, jsDatabaseLibraries,
		jsTestingLibraries, jsDevOpsLibraries,
	} {
		for name, lib := range table {
			allLibraries[name] = lib
		}
	}

	reg.Upsert(project.CategoryLanguage, "JavaScript", 5)

	deps := pkg.AllDependencies()
	if _, ok := deps["typescript"]; ok {
		reg.Upsert(project.CategoryLanguage, "TypeScript", 5)
	} else if _, ok := deps["ts-node"]; ok {
		reg.Upsert(project.CategoryLanguage, "TypeScript", 5)
	} else if _, ok := pkg.Scripts["tsc"]; ok {
		reg.Upsert(project.CategoryLanguage, "TypeScript", 5)
	}

	names := make([]string, 0, len(deps))
	for name := range deps {
		names = append(names, name)
	}
	sort.Strings(names)

	isFrontend, isBackend := false, false
	for _, name := range names {
		if lib, ok := allLibraries[name]; ok {
			reg.UpsertVersion(lib.category, lib.name, deps[name], lib.importance)
		}

		// Scoped packages also match on their bare name.
		bare := name
		if strings.HasPrefix(name, "@") {
			if idx := strings.LastIndex(name, "/"); idx >= 0 {
				bare = name[idx+1:]
			}
		}
		if _, ok := jsFrontendLibraries[name]; ok {
			isFrontend = true
		} else if _, ok := jsFrontendLibraries[bare]; ok {
			isFrontend = true
		}
		if _, ok := jsBackendLibraries[name]; ok {
			isBackend = true
		} else if _, ok := jsBackendLibraries[bare]; ok {
			isBackend = true
		}
	}

	if isFrontend && isBackend {
		reg.Upsert(project.CategoryOther, "Fullstack JavaScript", 4)
	}

	if _, ok := deps["react"]; ok {
		reg.Upsert(project.CategoryFrontend, "React", 5)
	} else if _, ok := deps["react-dom"]; ok {
		reg.Upsert(project.CategoryFrontend, "React", 5)
	}
	if _, ok := deps["react-native"]; ok {
		reg.Upsert(project.CategoryFramework, "React Native", 5)
	}

	if build, ok := pkg.Scripts["build"]; ok {
		if strings.Contains(build, "react-scripts") || strings.Contains(build, "next") {
			reg.Upsert(project.CategoryFrontend, "React", 5)
		}
	}
	if dev, ok := pkg.Scripts["dev"]; ok {
		if strings.Contains(dev, "next") {
			reg.Upsert(project.CategoryFrontend, "Next.js", 5)
		}
		if strings.Contains(dev, "nuxt") {
			reg.Upsert(project.CategoryFrontend, "Nuxt.js", 5)
		}
	}
	if start, ok := pkg.Scripts["start"]; ok {
		if strings.Contains(start, "electron") {
			reg.Upsert(project.CategoryFramework, "Electron", 4)
		}
	}
}
