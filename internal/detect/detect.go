// Package detect implements the signal extraction and classification engine.
// It walks a project tree, parses whatever manifests it finds, applies
// marker and directory heuristics, samples source files for imports, and
// merges everything into one deduplicated technology list. Detectors are
// best-effort: an unreadable or malformed input contributes nothing and
// never aborts the run.
package detect

import (
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/cybermura-dev/ReadmeForge/internal/config"
	"github.com/cybermura-dev/ReadmeForge/internal/ignore"
	"github.com/cybermura-dev/ReadmeForge/internal/project"
)

// Detector runs the full technology detection pipeline against a project
// root. It holds only the immutable configuration tables; all per-run state
// lives in the registry created for each call.
type Detector struct {
	cfg *config.Config
	log *slog.Logger
}

// New returns a detector using the given configuration tables.
func New(cfg *config.Config) *Detector {
	return &Detector{cfg: cfg, log: slog.Default()}
}

// Technologies detects every technology fact for the project at root and
// returns the merged, deduplicated list. Repeated calls over an unchanged
// tree produce an identical result.
func (d *Detector) Technologies(root string) []project.Technology {
	reg := NewRegistry()

	d.censusLanguages(root, reg)

	d.detectPython(root, reg)
	d.detectNodeJS(root, reg)
	d.detectRust(root, reg)
	d.detectJava(root, reg)

	d.scanMarkers(root, reg)
	d.scanDevOpsTools(root, reg)
	d.scanDirectories(root, reg)

	d.detectDotNet(root, reg)
	d.detectNative(root, reg)
	d.detectAndroid(root, reg)
	d.detectIOS(root, reg)

	d.enrichFromSources(root, reg)

	return reg.Technologies()
}

// walkFiles visits every non-ignored file under root in a deterministic
// order (fs.WalkDir sorts directory entries). Traversal errors skip the
// affected subtree instead of propagating. The visitor returns false to
// stop the walk early.
func walkFiles(root string, visit func(path string, d fs.DirEntry) bool) {
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if path != root && ignore.Dir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if ignore.File(d.Name()) {
			return nil
		}
		if !visit(path, d) {
			return filepath.SkipAll
		}
		return nil
	})
}
