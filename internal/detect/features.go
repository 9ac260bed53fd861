package detect

import (
	"io/fs"
	"path/filepath"
	"strings"

	forgefs "github.com/cybermura-dev/ReadmeForge/internal/fs"
	"github.com/cybermura-dev/ReadmeForge/internal/ignore"
	"github.com/cybermura-dev/ReadmeForge/internal/project"
)

// featureSampleCap bounds how many source files the feature scan reads.
const featureSampleCap = 50

// featureFileSizeCap skips pathologically large sources.
const featureFileSizeCap = 100_000

// featureCategory is one keyword-counter bucket. Order in featureCategories
// fixes the order qualifying features appear in.
type featureCategory struct {
	key         string
	name        string
	description string
	threshold   int
	keywords    []string
}

var featureCategories = []featureCategory{
	{"web", "Web Application", "Provides a web interface for user interaction", 8, []string{
		"flask", "django", "express", "fastapi", "router", "route", "templates", "views",
		"controllers", "app.get", "app.post", "render", "request", "response",
	}},
	{"api", "API", "Provides a programming interface for interaction with other systems", 8, []string{
		"api", "rest", "graphql", "endpoint", "controller", "route", "restful",
		"@app.route", "@api", "router", "apicontroller",
	}},
	{"cli", "Command Line Interface", "Allows managing functionality through terminal commands", 8, []string{
		"cli", "command", "argparse", "click", "commander", "yargs", "parser", "flag",
		"argument", "option", "argv",
	}},
	{"database", "Database Operations", "Storage and management of data in databases", 5, []string{
		"database", "db", "mongo", "sql", "postgresql", "mysql", "sqlite", "orm",
		"query", "model", "entity", "repository", "dao",
	}},
	{"ai", "Machine Learning/AI", "Uses machine learning or artificial intelligence algorithms", 5, []string{
		"model", "train", "predict", "machine learning", "tensorflow", "pytorch",
		"keras", "sklearn", "ml", "ai", "neural",
	}},
	{"scraping", "Web Scraping", "Extraction of data from websites", 5, []string{
		"scrape", "crawler", "spider", "beautifulsoup", "selenium", "requests",
		"http", "html", "parse", "extract",
	}},
	{"testing", "Testing", "Contains automated code tests", 5, []string{
		"test", "spec", "assert", "expect", "should", "mock", "stub", "fixture",
	}},
	{"auth", "Authentication and Authorization", "User management, access rights, and authentication", 5, []string{
		"auth", "login", "register", "password", "user", "token", "jwt", "oauth",
		"credential", "permission",
	}},
	{"file_processing", "File Processing", "Working with files of various formats", 5, []string{
		"file", "read", "write", "open", "save", "load", "import", "export",
		"csv", "excel", "json", "yaml", "xml", "parser",
	}},
	{"async", "Asynchronous Processing", "Uses asynchronous programming for parallel operations", 5, []string{
		"async", "await", "promise", "coroutine", "future", "deferred", "callback", "worker",
	}},
}

// featureSourceExts are the extensions the feature scan samples.
var featureSourceExts = map[string]bool{
	".py": true, ".js": true, ".ts": true, ".java": true, ".php": true, ".rb": true,
}

// Features infers capability tags from keyword frequency across sampled
// sources, directory names, and the already-detected technology list.
func (d *Detector) Features(root string, techs []project.Technology) []project.Feature {
	counters := make(map[string]int, len(featureCategories))

	for _, path := range sampleFeatureSources(root) {
		if forgefs.FileSize(path) > featureFileSizeCap {
			continue
		}
		content := strings.ToLower(forgefs.ReadFile(path))
		if content == "" {
			continue
		}
		for _, fc := range featureCategories {
			for _, keyword := range fc.keywords {
				counters[fc.key] += strings.Count(content, keyword)
			}
		}
	}

	for _, dirName := range featureScanDirs(root) {
		for _, fc := range featureCategories {
			for _, keyword := range fc.keywords {
				if strings.Contains(dirName, keyword) {
					counters[fc.key] += 5
					break
				}
			}
		}
	}

	applyTechnologyBonuses(counters, techs)

	var features []project.Feature
	for _, fc := range featureCategories {
		counter := counters[fc.key]
		if counter < fc.threshold {
			continue
		}
		features = append(features, project.Feature{
			Name:        fc.name,
			Description: fc.description,
			Category:    fc.key,
			Priority:    featurePriority(counter),
		})
	}

	// Name-derived rules apply regardless of counters.
	baseName := strings.ToLower(filepath.Base(filepath.Clean(root)))
	if strings.Contains(baseName, "download") {
		features = append(features, project.Feature{
			Name:        "Content Download",
			Description: "Download files or content from external sources",
			Category:    "download",
			Priority:    5,
		})
	}
	if strings.Contains(baseName, "youtube") {
		features = append(features, project.Feature{
			Name:        "YouTube Integration",
			Description: "Working with YouTube API or downloading content from YouTube",
			Category:    "integration",
			Priority:    5,
		})
	}

	if len(features) == 0 {
		features = append(features, genericFeature(baseName))
	}

	return features
}

func featurePriority(counter int) int {
	switch {
	case counter >= 15:
		return 5
	case counter >= 10:
		return 4
	default:
		return 3
	}
}

// sampleFeatureSources returns up to featureSampleCap source files in
// first-encountered walk order.
func sampleFeatureSources(root string) []string {
	var sources []string
	walkFiles(root, func(path string, entry fs.DirEntry) bool {
		if featureSourceExts[strings.ToLower(filepath.Ext(entry.Name()))] {
			sources = append(sources, path)
		}
		return len(sources) < featureSampleCap
	})
	return sources
}

// featureScanDirs gathers lower-cased directory names down to depth 2,
// rooted at src/ when it exists.
func featureScanDirs(root string) []string {
	base := root
	if forgefs.DirExists(filepath.Join(root, "src")) {
		base = filepath.Join(root, "src")
	}

	var names []string
	_ = filepath.WalkDir(base, func(path string, entry fs.DirEntry, err error) error {
		if err != nil || !entry.IsDir() || path == base {
			return nil
		}
		if ignore.Dir(entry.Name()) || strings.HasPrefix(entry.Name(), ".") {
			return filepath.SkipDir
		}
		rel, relErr := filepath.Rel(base, path)
		if relErr != nil {
			return filepath.SkipDir
		}
		if len(strings.Split(rel, string(filepath.Separator))) > 2 {
			return filepath.SkipDir
		}
		names = append(names, strings.ToLower(entry.Name()))
		return nil
	})
	return names
}

func applyTechnologyBonuses(counters map[string]int, techs []project.Technology) {
	for _, tech := range techs {
		name := normalizeTechName(tech.Name)

		switch name {
		case "flask", "django", "express", "fastapi", "vue", "react", "angular":
			counters["web"] += 10
		}
		if strings.Contains(name, "api") || name == "graphql" || name == "rest framework" || name == "restful" {
			counters["api"] += 8
		}
		switch name {
		case "click", "argparse", "commander", "yargs", "cobra":
			counters["cli"] += 10
		}
		for _, db := range []string{"sql", "mongo", "postgres", "mysql", "sqlite", "orm"} {
			if strings.Contains(name, db) {
				counters["database"] += 10
				break
			}
		}
		switch name {
		case "tensorflow", "pytorch", "keras", "sklearn", "pandas", "numpy":
			counters["ai"] += 10
		}
		switch name {
		case "beautifulsoup", "selenium", "requests", "scrapy", "puppeteer":
			counters["scraping"] += 10
		}
		switch name {
		case "pytest", "jest", "mocha", "junit", "phpunit":
			counters["testing"] += 8
		}
		switch name {
		case "jwt", "passport", "oauth", "auth0", "authlib":
			counters["auth"] += 8
		}
	}
}

// genericFeature synthesizes a single capability from the project directory
// name when nothing else qualifies.
func genericFeature(baseName string) project.Feature {
	cleaned := strings.NewReplacer("-", " ", "_", " ").Replace(baseName)
	words := strings.Fields(cleaned)

	name, subject := cleaned, cleaned
	if len(words) > 1 {
		subject = strings.Join(words[1:], " ")
		name = capitalize(words[0]) + " " + subject
	} else if len(words) == 1 {
		name = capitalize(words[0])
	}

	return project.Feature{
		Name:        name,
		Description: "Application for working with " + subject,
		Category:    "general",
		Priority:    3,
	}
}

func capitalize(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}
