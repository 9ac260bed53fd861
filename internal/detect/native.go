package detect

import (
	"strings"

	"github.com/cybermura-dev/ReadmeForge/internal/fs"
	"github.com/cybermura-dev/ReadmeForge/internal/project"
)

// detectNative inspects CMake and Make build files. CMakeLists.txt content
// decides between C and C++ by the presence of CXX/CPP language markers.
func (d *Detector) detectNative(root string, reg *Registry) {
	if fs.FileExistsIn(root, "CMakeLists.txt") {
		reg.Upsert(project.CategoryDevOps, "CMake", 4)

		content := fs.ReadFileIn(root, "CMakeLists.txt")
		if strings.Contains(strings.ToLower(content), "project") {
			hasCxx := strings.Contains(content, "CXX") || strings.Contains(content, "CPP")
			if hasCxx {
				reg.Upsert(project.CategoryLanguage, "C++", 5)
			} else if strings.Contains(content, "C") {
				reg.Upsert(project.CategoryLanguage, "C", 5)
			}
		}
	}

	if fs.FileExistsIn(root, "Makefile") {
		reg.Upsert(project.CategoryDevOps, "Make", 4)
	}
}
