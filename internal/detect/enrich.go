package detect

import (
	"io/fs"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	forgefs "github.com/cybermura-dev/ReadmeForge/internal/fs"
	"github.com/cybermura-dev/ReadmeForge/internal/project"
)

// enrichSampleCap bounds how many source files the enricher reads per run.
const enrichSampleCap = 50

// enrichReadCap bounds how much of each sampled file is read.
const enrichReadCap = 100 * 1024

type knownLibrary struct {
	category    string
	description string
}

// Curated import→library tables. The category here is the library's own
// domain; libraryCategories maps it onto a technology category.
var pythonLibraries = map[string]knownLibrary{
	"requests":      {"networking", "Working with HTTP requests"},
	"flask":         {"framework", "Web framework"},
	"django":        {"framework", "Web framework"},
	"fastapi":       {"framework", "Web framework for API"},
	"sqlalchemy":    {"database", "ORM for SQL"},
	"pandas":        {"data-science", "Data analysis"},
	"numpy":         {"data-science", "Scientific computing"},
	"matplotlib":    {"data-science", "Data visualization"},
	"tensorflow":    {"ai", "Machine learning"},
	"pytorch":       {"ai", "Machine learning"},
	"scikit-learn":  {"ai", "Machine learning"},
	"beautifulsoup": {"web-scraping", "HTML parsing"},
	"selenium":      {"web-automation", "Browser automation"},
	"pytest":        {"testing", "Testing"},
	"celery":        {"async", "Asynchronous tasks"},
	"pika":          {"messaging", "Working with RabbitMQ"},
	"pillow":        {"imaging", "Image processing"},
	"boto3":         {"cloud", "AWS SDK"},
	"google-cloud":  {"cloud", "Google Cloud SDK"},
	"azure":         {"cloud", "Azure SDK"},
	"ffmpeg":        {"multimedia", "Video/audio processing"},
	"pytube":        {"youtube", "Download from YouTube"},
	"youtube_dl":    {"youtube", "Download from YouTube"},
}

var jsImportLibraries = map[string]knownLibrary{
	"react":       {"frontend", "UI library"},
	"angular":     {"frontend", "SPA framework"},
	"vue":         {"frontend", "Progressive framework"},
	"express":     {"backend", "Web framework for Node.js"},
	"axios":       {"networking", "HTTP client"},
	"mongoose":    {"database", "ODM for MongoDB"},
	"sequelize":   {"database", "ORM for SQL"},
	"jest":        {"testing", "Testing"},
	"mocha":       {"testing", "Testing"},
	"webpack":     {"build-tool", "Project build"},
	"babel":       {"build-tool", "JavaScript transpilation"},
	"redux":       {"state-management", "State management"},
	"next":        {"framework", "React framework"},
	"gatsby":      {"framework", "React framework for static sites"},
	"youtube-api": {"youtube", "YouTube API"},
	"ytdl-core":   {"youtube", "Download from YouTube"},
}

// libraryCategories maps a library domain to a technology category.
var libraryCategories = map[string]project.Category{
	"framework":        project.CategoryFramework,
	"frontend":         project.CategoryFrontend,
	"backend":          project.CategoryBackend,
	"database":         project.CategoryDatabase,
	"networking":       project.CategoryBackend,
	"data-science":     project.CategoryOther,
	"ai":               project.CategoryOther,
	"web-scraping":     project.CategoryBackend,
	"web-automation":   project.CategoryBackend,
	"testing":          project.CategoryTesting,
	"async":            project.CategoryBackend,
	"messaging":        project.CategoryBackend,
	"imaging":          project.CategoryOther,
	"cloud":            project.CategoryDevOps,
	"build-tool":       project.CategoryDevOps,
	"state-management": project.CategoryFrontend,
	"multimedia":       project.CategoryOther,
	"youtube":          project.CategoryBackend,
}

var (
	pythonImportRe = regexp.MustCompile(`import\s+([a-zA-Z_][a-zA-Z0-9_]*)`)
	pythonFromRe   = regexp.MustCompile(`from\s+([a-zA-Z_][a-zA-Z0-9_]*)\s+import`)
	jsImportRe     = regexp.MustCompile(`import.*from\s+["']([^"']+)["']`)
	jsRequireRe    = regexp.MustCompile(`require\(["']([^"']+)["']\)`)
)

// enrichFromSources samples source files, extracts import targets, and maps
// them through the curated library tables. A match is only recorded when no
// entry with the same name already exists in the target category, so
// manifest-derived facts keep their canonical casing and importance.
func (d *Detector) enrichFromSources(root string, reg *Registry) {
	var sources []string
	walkFiles(root, func(path string, entry fs.DirEntry) bool {
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".py", ".js", ".ts":
			sources = append(sources, path)
		}
		return len(sources) < enrichSampleCap
	})

	found := make(map[string]knownLibrary)
	for _, path := range sources {
		content := strings.ToLower(forgefs.ReadFileCap(path, enrichReadCap))
		if content == "" {
			continue
		}

		switch strings.ToLower(filepath.Ext(path)) {
		case ".py":
			collectPythonImports(content, found)
		case ".js", ".ts":
			collectJSImports(content, found)
		}
	}

	names := make([]string, 0, len(found))
	for name := range found {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		category := libraryCategories[found[name].category]
		if category == "" {
			category = project.CategoryOther
		}
		if reg.Contains(category, name) {
			continue
		}
		reg.Upsert(category, name, 3)
	}
}

func collectPythonImports(content string, found map[string]knownLibrary) {
	for _, re := range []*regexp.Regexp{pythonImportRe, pythonFromRe} {
		for _, match := range re.FindAllStringSubmatch(content, -1) {
			target := match[1]
			for name, lib := range pythonLibraries {
				if target == name || strings.HasPrefix(target, name+".") {
					found[name] = lib
				}
			}
		}
	}
}

func collectJSImports(content string, found map[string]knownLibrary) {
	for _, re := range []*regexp.Regexp{jsImportRe, jsRequireRe} {
		for _, match := range re.FindAllStringSubmatch(content, -1) {
			target := normalizeJSImport(match[1])
			for name, lib := range jsImportLibraries {
				if target == name || strings.Contains(target, name) {
					found[name] = lib
				}
			}
		}
	}
}

// normalizeJSImport strips sub-paths down to the top-level package name,
// keeping both segments of a scoped @scope/name package.
func normalizeJSImport(target string) string {
	if strings.HasPrefix(target, "@") {
		parts := strings.Split(target, "/")
		if len(parts) > 1 {
			return parts[0] + "/" + parts[1]
		}
		return target
	}
	if idx := strings.Index(target, "/"); idx >= 0 {
		return target[:idx]
	}
	return target
}
