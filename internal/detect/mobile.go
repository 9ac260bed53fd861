package detect

import (
	"io/fs"
	"path/filepath"
	"strings"

	forgefs "github.com/cybermura-dev/ReadmeForge/internal/fs"
	"github.com/cybermura-dev/ReadmeForge/internal/ignore"
	"github.com/cybermura-dev/ReadmeForge/internal/project"
)

// detectAndroid checks the conventional Android layout: an app module with
// a manifest, and its Gradle script to split Kotlin from Java.
func (d *Detector) detectAndroid(root string, reg *Registry) {
	manifest := filepath.Join(root, "app", "src", "main", "AndroidManifest.xml")
	if !forgefs.FileExists(manifest) {
		return
	}

	reg.Upsert(project.CategoryFramework, "Android", 5)

	gradle := filepath.Join(root, "app", "build.gradle")
	if forgefs.FileExists(gradle) {
		if strings.Contains(strings.ToLower(forgefs.ReadFile(gradle)), "kotlin") {
			reg.Upsert(project.CategoryLanguage, "Kotlin", 5)
		} else {
			reg.Upsert(project.CategoryLanguage, "Java", 5)
		}
	}
}

// detectIOS looks for an .xcodeproj bundle anywhere under root, then counts
// Swift against Objective-C sources to decide the language.
func (d *Detector) detectIOS(root string, reg *Registry) {
	hasXcodeProj := false
	_ = filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if entry.IsDir() {
			if path != root && ignore.Dir(entry.Name()) {
				return filepath.SkipDir
			}
			if strings.HasSuffix(entry.Name(), ".xcodeproj") {
				hasXcodeProj = true
				return filepath.SkipAll
			}
		}
		return nil
	})
	if !hasXcodeProj {
		return
	}

	swiftFiles, objcFiles := 0, 0
	walkFiles(root, func(path string, entry fs.DirEntry) bool {
		switch filepath.Ext(entry.Name()) {
		case ".swift":
			swiftFiles++
		case ".m", ".h":
			objcFiles++
		}
		return true
	})

	if swiftFiles > 0 {
		reg.Upsert(project.CategoryLanguage, "Swift", 5)
		reg.Upsert(project.CategoryFramework, "iOS", 5)
	} else if objcFiles > 0 {
		reg.Upsert(project.CategoryLanguage, "Objective-C", 5)
		reg.Upsert(project.CategoryFramework, "iOS", 5)
	}
}
