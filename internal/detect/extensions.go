package detect

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cybermura-dev/ReadmeForge/internal/project"
)

// censusLanguages counts every non-ignored file's extension project-wide,
// maps the counts through the extension→language table, and upserts one
// language per rank: the most common language gets importance 5, the
// runner-up 4, ranks two and three get 3, everything after that 2.
func (d *Detector) censusLanguages(root string, reg *Registry) {
	extCounts := make(map[string]int)
	walkFiles(root, func(path string, entry fs.DirEntry) bool {
		ext := strings.TrimPrefix(filepath.Ext(entry.Name()), ".")
		if ext != "" {
			extCounts[ext]++
		}
		return true
	})

	langCounts := make(map[string]int)
	for ext, count := range extCounts {
		if lang, ok := d.cfg.Language(ext); ok {
			langCounts[lang] += count
		}
	}

	type langCount struct {
		name  string
		count int
	}
	ranked := make([]langCount, 0, len(langCounts))
	for name, count := range langCounts {
		ranked = append(ranked, langCount{name, count})
	}
	// Equal counts tie-break alphabetically so repeated runs rank identically.
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].name < ranked[j].name
	})

	for rank, lc := range ranked {
		reg.Upsert(project.CategoryLanguage, lc.name, rankImportance(rank))
	}
}

func rankImportance(rank int) int {
	switch {
	case rank == 0:
		return 5
	case rank == 1:
		return 4
	case rank < 4:
		return 3
	default:
		return 2
	}
}
