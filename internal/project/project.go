// Package project defines the records produced by a project analysis run.
// A Project is built exactly once per run and is read-only afterwards; the
// rendering stage and the MCP server consume it without mutating it.
package project

import "strings"

// Category classifies a detected technology.
type Category string

const (
	CategoryLanguage     Category = "language"
	CategoryFramework    Category = "framework"
	CategoryDatabase     Category = "database"
	CategoryFrontend     Category = "frontend"
	CategoryBackend      Category = "backend"
	CategoryDevOps       Category = "devops"
	CategoryTesting      Category = "testing"
	CategoryArchitecture Category = "architecture"
	CategoryOther        Category = "other"
)

// AllCategories lists every category in presentation order. The registry
// guarantees each of these exists as a bucket, even when empty.
var AllCategories = []Category{
	CategoryLanguage,
	CategoryFramework,
	CategoryDatabase,
	CategoryFrontend,
	CategoryBackend,
	CategoryDevOps,
	CategoryTesting,
	CategoryArchitecture,
	CategoryOther,
}

// Technology is a single detected language/framework/tool fact.
// Importance is 1-5; merges across detectors take the maximum seen.
type Technology struct {
	Name       string   `json:"name" yaml:"name"`
	Category   Category `json:"category" yaml:"category"`
	Version    string   `json:"version,omitempty" yaml:"version,omitempty"`
	Importance int      `json:"importance" yaml:"importance"`
}

// Feature is an inferred project capability, e.g. "Web Application".
// Priority is 1-5 and derives from weighted keyword evidence.
type Feature struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Category    string `json:"category" yaml:"category"`
	Priority    int    `json:"priority" yaml:"priority"`
}

// NodeKind tags a StructureNode as a directory, a file, or the ellipsis
// placeholder emitted at the depth bound.
type NodeKind string

const (
	NodeDir      NodeKind = "directory"
	NodeFile     NodeKind = "file"
	NodeEllipsis NodeKind = "ellipsis"
)

// StructureNode is one entry in the depth-bounded structure tree.
// Children hold directories first, then files, both alphabetical.
// Err records a traversal failure (typically permissions) for the node
// instead of aborting the walk.
type StructureNode struct {
	Name     string          `json:"name" yaml:"name"`
	Kind     NodeKind        `json:"kind" yaml:"kind"`
	Children []StructureNode `json:"children,omitempty" yaml:"children,omitempty"`
	Err      string          `json:"error,omitempty" yaml:"error,omitempty"`
}

// FileSize is a path with its size in bytes, relative to the project root.
type FileSize struct {
	Path string `json:"path" yaml:"path"`
	Size int64  `json:"size" yaml:"size"`
}

// FileStats aggregates flat counts over the non-ignored portion of the tree.
type FileStats struct {
	TotalFiles   int            `json:"total_files" yaml:"total_files"`
	TotalDirs    int            `json:"total_dirs" yaml:"total_dirs"`
	FileTypes    map[string]int `json:"file_types" yaml:"file_types"`
	LargestFiles []FileSize     `json:"largest_files" yaml:"largest_files"`
}

// Structure pairs the rendered tree with its aggregate statistics.
type Structure struct {
	Tree  StructureNode `json:"tree" yaml:"tree"`
	Stats FileStats     `json:"stats" yaml:"stats"`
}

// Metadata carries the remaining project-level findings.
type Metadata struct {
	HasTests                bool   `json:"has_tests" yaml:"has_tests"`
	HasDocumentation        bool   `json:"has_documentation" yaml:"has_documentation"`
	LicenseType             string `json:"license_type,omitempty" yaml:"license_type,omitempty"`
	RepositoryURL           string `json:"repository_url,omitempty" yaml:"repository_url,omitempty"`
	ArchitectureDescription string `json:"architecture_description" yaml:"architecture_description"`
}

// Project is the final analysis artifact.
type Project struct {
	Name         string       `json:"name" yaml:"name"`
	Path         string       `json:"path" yaml:"path"`
	Description  string       `json:"description" yaml:"description"`
	Technologies []Technology `json:"technologies" yaml:"technologies"`
	Features     []Feature    `json:"features" yaml:"features"`
	Structure    Structure    `json:"structure" yaml:"structure"`
	Metadata     Metadata     `json:"metadata" yaml:"metadata"`
}

// TechnologiesIn returns the technologies of a single category in their
// stored order.
func (p *Project) TechnologiesIn(c Category) []Technology {
	var out []Technology
	for _, t := range p.Technologies {
		if t.Category == c {
			out = append(out, t)
		}
	}
	return out
}

// HasTechnology reports whether a technology with the given name exists in
// any category. The comparison is case-insensitive.
func (p *Project) HasTechnology(name string) bool {
	for _, t := range p.Technologies {
		if strings.EqualFold(t.Name, name) {
			return true
		}
	}
	return false
}
