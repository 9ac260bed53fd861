package detect

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"

	"github.com/cybermura-dev/ReadmeForge/internal/fs"
	"github.com/cybermura-dev/ReadmeForge/internal/project"
)

// pom is the subset of a Maven POM this tool reads.
type pom struct {
	XMLName      xml.Name        `xml:"project"`
	Parent       pomParent       `xml:"parent"`
	Dependencies []pomDependency `xml:"dependencies>dependency"`
}

type pomParent struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
	Version    string `xml:"version"`
}

type pomDependency struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
	Version    string `xml:"version"`
}

type javaLibrary struct {
	groupPrefix string
	category    project.Category
	name        string
	importance  int
}

// javaLibraries maps Maven group prefixes to technologies. Order matters:
// the first matching prefix wins, so the more specific
// org.springframework.boot must precede org.springframework.
var javaLibraries = []javaLibrary{
	{"org.springframework.boot", project.CategoryFramework, "Spring Boot", 5},
	{"org.springframework", project.CategoryFramework, "Spring Framework", 5},
	{"jakarta.servlet", project.CategoryFramework, "Jakarta EE", 4},
	{"javax.servlet", project.CategoryFramework, "Java EE", 4},
	{"org.hibernate", project.CategoryDatabase, "Hibernate", 4},
	{"javax.persistence", project.CategoryDatabase, "JPA", 4},
	{"jakarta.persistence", project.CategoryDatabase, "JPA", 4},
	{"org.mybatis", project.CategoryDatabase, "MyBatis", 4},
	{"mysql", project.CategoryDatabase, "MySQL", 3},
	{"org.postgresql", project.CategoryDatabase, "PostgreSQL", 3},
	{"com.h2database", project.CategoryDatabase, "H2 Database", 3},
	{"org.junit", project.CategoryTesting, "JUnit", 3},
	{"org.mockito", project.CategoryTesting, "Mockito", 3},
	{"org.testng", project.CategoryTesting, "TestNG", 3},
	{"io.cucumber", project.CategoryTesting, "Cucumber", 3},
	{"org.seleniumhq.selenium", project.CategoryTesting, "Selenium", 3},
	{"com.squareup.retrofit2", project.CategoryBackend, "Retrofit", 3},
	{"com.squareup.okhttp3", project.CategoryBackend, "OkHttp", 3},
	{"io.micronaut", project.CategoryFramework, "Micronaut", 5},
	{"io.quarkus", project.CategoryFramework, "Quarkus", 5},
	{"io.vertx", project.CategoryFramework, "Vert.x", 4},
}

var springBootStarters = map[string]struct {
	category   project.Category
	name       string
	importance int
}{
	"spring-boot-starter-web":          {project.CategoryBackend, "Spring MVC", 4},
	"spring-boot-starter-webflux":      {project.CategoryBackend, "Spring WebFlux", 4},
	"spring-boot-starter-data-jpa":     {project.CategoryDatabase, "Spring Data JPA", 4},
	"spring-boot-starter-data-mongodb": {project.CategoryDatabase, "Spring Data MongoDB", 4},
	"spring-boot-starter-data-redis":   {project.CategoryDatabase, "Spring Data Redis", 4},
	"spring-boot-starter-security":     {project.CategoryBackend, "Spring Security", 4},
	"spring-boot-starter-test":         {project.CategoryTesting, "Spring Testing", 3},
	"spring-boot-starter-actuator":     {project.CategoryDevOps, "Spring Actuator", 3},
	"spring-boot-starter-thymeleaf":    {project.CategoryFrontend, "Thymeleaf", 4},
	"spring-boot-starter-freemarker":   {project.CategoryFrontend, "FreeMarker", 4},
}

// detectJava inspects pom.xml and Gradle build scripts.
func (d *Detector) detectJava(root string, reg *Registry) {
	if pomFile, ok := d.readPOM(filepath.Join(root, "pom.xml")); ok {
		reg.Upsert(project.CategoryLanguage, "Java", 5)
		reg.Upsert(project.CategoryDevOps, "Maven", 3)
		d.processPOM(pomFile, reg)
	}

	if fs.FileExistsIn(root, "build.gradle") {
		reg.Upsert(project.CategoryDevOps, "Gradle", 3)

		content := fs.ReadFileIn(root, "build.gradle")
		if strings.Contains(strings.ToLower(content), "kotlin") {
			reg.Upsert(project.CategoryLanguage, "Kotlin", 5)
		} else {
			reg.Upsert(project.CategoryLanguage, "Java", 5)
		}

		if strings.Contains(content, "org.springframework.boot") {
			reg.Upsert(project.CategoryFramework, "Spring Boot", 5)
		} else if strings.Contains(content, "org.springframework") {
			reg.Upsert(project.CategoryFramework, "Spring Framework", 5)
		}
	}

	if fs.FileExistsIn(root, "build.gradle.kts") {
		reg.Upsert(project.CategoryLanguage, "Kotlin", 5)
		reg.Upsert(project.CategoryDevOps, "Gradle", 3)
	}
}

func (d *Detector) readPOM(path string) (*pom, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	var p pom
	if err := xml.Unmarshal(data, &p); err != nil {
		d.log.Debug("skipping malformed pom.xml", "path", path, "error", err)
		return nil, false
	}
	return &p, true
}

func (d *Detector) processPOM(p *pom, reg *Registry) {
	// Inheriting from the Spring Boot starter parent marks the project as a
	// Spring Boot application even without an explicit dependency.
	if strings.Contains(p.Parent.GroupID, "org.springframework.boot") &&
		strings.Contains(p.Parent.ArtifactID, "spring-boot-starter-parent") {
		reg.Upsert(project.CategoryFramework, "Spring Boot", 5)
	}

	for _, dep := range p.Dependencies {
		if dep.GroupID == "org.springframework.boot" && strings.HasPrefix(dep.ArtifactID, "spring-boot-starter") {
			if starter, ok := springBootStarters[dep.ArtifactID]; ok {
				reg.UpsertVersion(starter.category, starter.name, dep.Version, starter.importance)
			}
			continue
		}

		for _, lib := range javaLibraries {
			if strings.HasPrefix(dep.GroupID, lib.groupPrefix) {
				reg.UpsertVersion(lib.category, lib.name, dep.Version, lib.importance)
				break
			}
		}
	}
}
