// Package ignore holds the fixed ignore-list shared by every walker:
// VCS/IDE metadata, dependency and build output directories, and common
// binary or cache file patterns. The lists are deliberately not
// configurable; they describe noise, not signal.
package ignore

import "github.com/bmatcuk/doublestar/v4"

var dirs = map[string]struct{}{
	".git":          {},
	".github":       {},
	".vscode":       {},
	".idea":         {},
	".vs":           {},
	"node_modules":  {},
	"__pycache__":   {},
	"venv":          {},
	"env":           {},
	"dist":          {},
	"build":         {},
	"target":        {},
	"bin":           {},
	"obj":           {},
	".pytest_cache": {},
	".coverage":     {},
	".next":         {},
	"coverage":      {},
	".nuget":        {},
	"packages":      {},
	".gradle":       {},
}

var files = []string{
	".gitignore", ".gitattributes", ".DS_Store", "Thumbs.db",
	".env", ".env.local", ".env.development", ".env.test", ".env.production",
	"*.pyc", "*.pyo", "*.pyd", "*.so", "*.dll", "*.exe", "*.obj", "*.o",
	"*.a", "*.lib", "*.egg", "*.egg-info", "*.whl", "*.pdb", "*.cache",
	"*.class", "*.jar", "*.war", "*.ear", "*.zip", "*.tar.gz", "*.rar",
}

// Dir reports whether a directory with the given base name is ignored.
func Dir(name string) bool {
	_, ok := dirs[name]
	return ok
}

// File reports whether a file with the given base name is ignored.
func File(name string) bool {
	for _, pattern := range files {
		if ok, _ := doublestar.Match(pattern, name); ok {
			return true
		}
	}
	return false
}
