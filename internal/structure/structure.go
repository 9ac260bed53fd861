// Package structure builds the depth-bounded directory tree of a project and
// its flat file statistics. Both traversals share the same ignore rules, so
// the tree a README shows and the counts next to it always agree.
package structure

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cybermura-dev/ReadmeForge/internal/ignore"
	"github.com/cybermura-dev/ReadmeForge/internal/project"
)

// maxTreeDepth bounds tree recursion. Directories at the bound get a single
// ellipsis child instead of their real contents.
const maxTreeDepth = 10

// largestFilesKept is the length of the top-by-size file list.
const largestFilesKept = 5

// Analyze walks the project once for the display tree and once for the flat
// statistics.
func Analyze(root string) project.Structure {
	return project.Structure{
		Tree:  buildTree(root, filepath.Base(filepath.Clean(root)), 0),
		Stats: collectStats(root),
	}
}

func buildTree(path, name string, depth int) project.StructureNode {
	node := project.StructureNode{Name: name, Kind: project.NodeDir}

	if depth >= maxTreeDepth {
		node.Children = []project.StructureNode{{Name: "...", Kind: project.NodeEllipsis}}
		return node
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		node.Err = err.Error()
		return node
	}

	var dirs, files []string
	for _, entry := range entries {
		if entry.IsDir() {
			if !ignore.Dir(entry.Name()) {
				dirs = append(dirs, entry.Name())
			}
		} else if !ignore.File(entry.Name()) {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(dirs)
	sort.Strings(files)

	for _, dir := range dirs {
		node.Children = append(node.Children, buildTree(filepath.Join(path, dir), dir, depth+1))
	}
	for _, file := range files {
		node.Children = append(node.Children, project.StructureNode{Name: file, Kind: project.NodeFile})
	}
	return node
}

func collectStats(root string) project.FileStats {
	stats := project.FileStats{FileTypes: make(map[string]int)}
	var largest []project.FileSize

	_ = filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil || path == root {
			return nil
		}

		if entry.IsDir() {
			if ignore.Dir(entry.Name()) {
				return filepath.SkipDir
			}
			stats.TotalDirs++
			return nil
		}

		if ignore.File(entry.Name()) {
			return nil
		}
		stats.TotalFiles++

		if ext := strings.ToLower(filepath.Ext(entry.Name())); ext != "" {
			stats.FileTypes[ext]++
		}

		info, infoErr := entry.Info()
		if infoErr != nil {
			return nil
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			rel = path
		}
		largest = append(largest, project.FileSize{Path: filepath.ToSlash(rel), Size: info.Size()})
		// Stable sort keeps encounter order between equal sizes.
		sort.SliceStable(largest, func(i, j int) bool {
			return largest[i].Size > largest[j].Size
		})
		if len(largest) > largestFilesKept {
			largest = largest[:largestFilesKept]
		}
		return nil
	})

	stats.LargestFiles = largest
	return stats
}
