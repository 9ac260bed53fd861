// Package analyze assembles the full Project record for a path. It runs the
// detection pipeline, the structure walker, and the name/description/metadata
// resolvers, then hands back one immutable value for rendering.
package analyze

import (
	"bufio"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/cybermura-dev/ReadmeForge/internal/config"
	"github.com/cybermura-dev/ReadmeForge/internal/detect"
	forgefs "github.com/cybermura-dev/ReadmeForge/internal/fs"
	"github.com/cybermura-dev/ReadmeForge/internal/project"
	"github.com/cybermura-dev/ReadmeForge/internal/structure"
)

// Analyzer binds the configuration to the detection pipeline.
type Analyzer struct {
	cfg      *config.Config
	detector *detect.Detector
}

// New returns an analyzer over the given configuration.
func New(cfg *config.Config) *Analyzer {
	return &Analyzer{cfg: cfg, detector: detect.New(cfg)}
}

// Project analyzes the project rooted at path and returns the complete
// record. Detection failures narrow the result; they never fail the call.
func (a *Analyzer) Project(path string) *project.Project {
	root := filepath.Clean(path)
	techs := a.detector.Technologies(root)

	p := &project.Project{
		Name:         resolveName(root),
		Path:         root,
		Description:  resolveDescription(root),
		Technologies: techs,
		Features:     a.detector.Features(root, techs),
		Structure:    structure.Analyze(root),
		Metadata: project.Metadata{
			HasTests:                hasTests(root),
			HasDocumentation:        hasDocumentation(root),
			LicenseType:             licenseType(root),
			RepositoryURL:           repositoryURL(root),
			ArchitectureDescription: a.detector.Architecture(root, techs),
		},
	}
	return p
}

var setupNameRe = regexp.MustCompile(`name\s*=\s*["']([^"']+)["']`)

// resolveName walks the ordered name providers and returns the first hit,
// falling back to the directory basename.
func resolveName(root string) string {
	if pkg, ok := detect.ReadPackageJSON(root); ok && pkg.Name != "" {
		return pkg.Name
	}

	if setup := forgefs.ReadFileIn(root, "setup.py"); setup != "" {
		if m := setupNameRe.FindStringSubmatch(setup); m != nil {
			return m[1]
		}
	}

	if manifest, ok := detect.ReadCargoManifest(root); ok && manifest.Package.Name != "" {
		return manifest.Package.Name
	}

	if csprojFiles := detect.FindProjectFiles(root, ".csproj"); len(csprojFiles) > 0 {
		first := csprojFiles[0]
		if proj, ok := detect.ReadMSBuildProject(first); ok {
			if name := proj.AssemblyName(); name != "" {
				return name
			}
		}
		return strings.TrimSuffix(filepath.Base(first), ".csproj")
	}

	return filepath.Base(root)
}

// descriptionLimit caps README-derived descriptions.
const descriptionLimit = 200

// resolveDescription walks the ordered description providers.
func resolveDescription(root string) string {
	if pkg, ok := detect.ReadPackageJSON(root); ok && pkg.Description != "" {
		return pkg.Description
	}

	if desc := readmeDescription(root); desc != "" {
		return desc
	}

	for _, path := range detect.FindProjectFiles(root, ".csproj") {
		if proj, ok := detect.ReadMSBuildProject(path); ok {
			if desc := proj.Description(); desc != "" {
				return desc
			}
		}
	}
	if desc := assemblyInfoDescription(root); desc != "" {
		return desc
	}

	if desc := entryPointDescription(root); desc != "" {
		return desc
	}
	if desc := anySourceDescription(root); desc != "" {
		return desc
	}

	if desc := synthesizedDescription(root); desc != "" {
		return desc
	}
	return "Project without description"
}

// readmeDescription returns the first non-heading, non-empty README line
// after the title, truncated to descriptionLimit characters.
func readmeDescription(root string) string {
	var content string
	for _, name := range []string{"README.md", "README.rst", "README.txt", "README"} {
		if content = forgefs.ReadFileIn(root, name); content != "" {
			break
		}
	}
	if content == "" {
		return ""
	}

	scanner := bufio.NewScanner(strings.NewReader(content))
	index := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		index++
		// The first line is the title even when it is not a heading.
		if index == 1 || line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if len(line) > descriptionLimit {
			return line[:descriptionLimit] + "..."
		}
		return line
	}
	return ""
}

var assemblyDescriptionRe = regexp.MustCompile(`AssemblyDescription\s*\(\s*"([^"]+)"\s*\)`)

func assemblyInfoDescription(root string) string {
	for _, rel := range []string{
		"AssemblyInfo.cs",
		filepath.Join("Properties", "AssemblyInfo.cs"),
	} {
		if content := forgefs.ReadFile(filepath.Join(root, rel)); content != "" {
			if m := assemblyDescriptionRe.FindStringSubmatch(content); m != nil {
				return m[1]
			}
		}
	}
	return ""
}

// entryPointFiles are checked in order for a leading doc comment, at the
// root and under src/.
var entryPointFiles = []string{
	"main.py", "app.py", "index.js", "app.js", "Program.cs", "Main.cs", "App.xaml.cs",
}

func entryPointDescription(root string) string {
	for _, name := range entryPointFiles {
		for _, dir := range []string{root, filepath.Join(root, "src")} {
			if desc := docComment(forgefs.ReadFileIn(dir, name)); desc != "" {
				return desc
			}
		}
	}
	return ""
}

// anySourceDescription scans discovered Python and C# sources for a leading
// doc comment, in walk order.
func anySourceDescription(root string) string {
	desc := ""
	detectSourceScan(root, func(path string) bool {
		desc = docComment(forgefs.ReadFile(path))
		return desc == ""
	})
	return desc
}

func detectSourceScan(root string, visit func(path string) bool) {
	for _, path := range detect.FindProjectFiles(root, ".py") {
		if !visit(path) {
			return
		}
	}
	for _, path := range detect.FindProjectFiles(root, ".cs") {
		if !visit(path) {
			return
		}
	}
}

var (
	tripleQuoteRe = regexp.MustCompile(`(?s)^\s*(?:"""(.*?)"""|'''(.*?)''')`)
	blockRe       = regexp.MustCompile(`(?s)/\*\*?(.*?)\*/`)
	xmlSummaryRe  = regexp.MustCompile(`(?s)///\s*<summary>(.*?)</summary>`)
)

// docComment extracts the first recognized documentation comment from source
// content: a Python module docstring, a JS/C-style block comment, or a C#
// XML summary. The result is whitespace-collapsed.
func docComment(content string) string {
	if content == "" {
		return ""
	}

	if m := tripleQuoteRe.FindStringSubmatch(content); m != nil {
		if text := collapse(m[1] + m[2]); text != "" {
			return text
		}
	}
	if m := xmlSummaryRe.FindStringSubmatch(content); m != nil {
		if text := collapse(m[1]); text != "" {
			return text
		}
	}
	if m := blockRe.FindStringSubmatch(content); m != nil {
		text := m[1]
		var lines []string
		for _, line := range strings.Split(text, "\n") {
			lines = append(lines, strings.TrimLeft(strings.TrimSpace(line), "* "))
		}
		if out := collapse(strings.Join(lines, " ")); out != "" {
			return out
		}
	}
	return ""
}

func collapse(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// synthesizedDescription builds a sentence from the directory name and up to
// three subdirectory names.
func synthesizedDescription(root string) string {
	name := filepath.Base(root)
	subdirs := forgefs.Subdirs(root)

	var kept []string
	for _, dir := range subdirs {
		if strings.HasPrefix(dir, ".") {
			continue
		}
		kept = append(kept, dir)
		if len(kept) == 3 {
			break
		}
	}

	if len(kept) == 0 {
		return ""
	}
	return "Project " + name + " with modules: " + strings.Join(kept, ", ") + "."
}

var testDirNames = []string{"tests", "test", "__tests__", "spec", "specs"}

func hasTests(root string) bool {
	for _, name := range testDirNames {
		if forgefs.DirExistsIn(root, name) {
			return true
		}
	}
	return false
}

var (
	docDirNames  = []string{"docs", "doc", "documentation", "wiki"}
	docFileNames = []string{"README.md", "API.md", "DOCUMENTATION.md"}
)

func hasDocumentation(root string) bool {
	for _, name := range docDirNames {
		if forgefs.DirExistsIn(root, name) {
			return true
		}
	}
	for _, name := range docFileNames {
		if forgefs.FileExistsIn(root, name) {
			return true
		}
	}
	return false
}

var licenseFileNames = []string{
	"LICENSE", "LICENSE.md", "LICENSE.txt", "COPYING", "COPYING.md", "COPYING.txt",
}

// licenseSignatures are checked in order against the license file content.
var licenseSignatures = []struct {
	keyword string
	name    string
}{
	{"mit license", "MIT"},
	{"apache license", "Apache"},
	{"bsd", "BSD"},
	{"gnu general public license", "GPL"},
	{"mozilla public license", "MPL"},
	{"isc license", "ISC"},
	{"creative commons", "Creative Commons"},
	{"unlicense", "Unlicense"},
}

// licenseType sniffs the license file content for a known license, falling
// back to the package manifest's license field.
func licenseType(root string) string {
	for _, name := range licenseFileNames {
		content := forgefs.ReadFileIn(root, name)
		if content == "" {
			continue
		}
		lower := strings.ToLower(content)
		for _, sig := range licenseSignatures {
			if strings.Contains(lower, sig.keyword) {
				return sig.name
			}
		}
		return "Custom"
	}

	if pkg, ok := detect.ReadPackageJSON(root); ok && pkg.License != "" {
		return pkg.License
	}
	return ""
}

// repositoryURL reads the manifest repository field, else the first remote
// url from .git/config.
func repositoryURL(root string) string {
	if pkg, ok := detect.ReadPackageJSON(root); ok {
		if url := pkg.RepositoryURL(); url != "" {
			return url
		}
	}

	gitConfig := forgefs.ReadFile(filepath.Join(root, ".git", "config"))
	scanner := bufio.NewScanner(strings.NewReader(gitConfig))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if rest, ok := strings.CutPrefix(line, "url = "); ok {
			return strings.TrimSpace(rest)
		}
	}
	return ""
}
