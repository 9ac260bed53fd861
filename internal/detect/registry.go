package detect

import (
	"strings"

	"github.com/cybermura-dev/ReadmeForge/internal/project"
)

// Registry is the merge sink for technology facts. Every detector feeds it
// through Upsert; the dedup key is (category, name), compared exactly as the
// detector produced the name. Merging is monotonic: importance only ever
// goes up, and the first non-empty version sticks.
//
// Entries keep discovery order within a category. The one exception lives
// upstream: the extension census sorts languages by count before inserting
// them, so the language bucket arrives pre-ranked.
type Registry struct {
	buckets map[project.Category][]project.Technology
}

// NewRegistry returns a registry with all nine category buckets present,
// each empty. The buckets exist up front so the final snapshot always
// carries every category, matched or not.
func NewRegistry() *Registry {
	buckets := make(map[project.Category][]project.Technology, len(project.AllCategories))
	for _, c := range project.AllCategories {
		buckets[c] = []project.Technology{}
	}
	return &Registry{buckets: buckets}
}

// Upsert records a technology fact with no version information.
func (r *Registry) Upsert(c project.Category, name string, importance int) {
	r.UpsertVersion(c, name, "", importance)
}

// UpsertVersion records a technology fact. If an entry with the same
// (category, name) already exists its importance is raised to the maximum of
// the two and its version is filled in if it was empty; otherwise a new
// entry is appended.
func (r *Registry) UpsertVersion(c project.Category, name, version string, importance int) {
	bucket := r.buckets[c]
	for i := range bucket {
		if bucket[i].Name == name {
			if bucket[i].Importance < importance {
				bucket[i].Importance = importance
			}
			if bucket[i].Version == "" && version != "" {
				bucket[i].Version = version
			}
			return
		}
	}
	r.buckets[c] = append(bucket, project.Technology{
		Name:       name,
		Category:   c,
		Version:    version,
		Importance: importance,
	})
}

// Contains reports whether a technology with the given name exists in the
// category. Unlike Upsert's dedup key, the comparison is case-insensitive;
// the source enricher uses it to avoid shadowing entries a manifest parser
// already produced under canonical casing.
func (r *Registry) Contains(c project.Category, name string) bool {
	for _, t := range r.buckets[c] {
		if strings.EqualFold(t.Name, name) {
			return true
		}
	}
	return false
}

// Technologies returns the merged list, categories in their canonical order,
// entries within a category in discovery order.
func (r *Registry) Technologies() []project.Technology {
	var out []project.Technology
	for _, c := range project.AllCategories {
		out = append(out, r.buckets[c]...)
	}
	return out
}
