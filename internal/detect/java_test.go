package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybermura-dev/ReadmeForge/internal/project"
)

const springBootPOM = `<?xml version="1.0" encoding="UTF-8"?>
<project xmlns="http://maven.apache.org/POM/4.0.0">
  <parent>
    <groupId>org.springframework.boot</groupId>
    <artifactId>spring-boot-starter-parent</artifactId>
    <version>3.2.0</version>
  </parent>
  <dependencies>
    <dependency>
      <groupId>org.springframework.boot</groupId>
      <artifactId>spring-boot-starter-web</artifactId>
    </dependency>
    <dependency>
      <groupId>org.postgresql</groupId>
      <artifactId>postgresql</artifactId>
      <version>42.7.1</version>
    </dependency>
  </dependencies>
</project>`

func TestDetectJavaPOM(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "pom.xml", springBootPOM)

	d := newTestDetector(t)
	techs := d.Technologies(dir)

	java, ok := findTech(techs, "Java")
	require.True(t, ok)
	assert.Equal(t, 5, java.Importance)

	_, ok = findTech(techs, "Maven")
	assert.True(t, ok)

	boot, ok := findTech(techs, "Spring Boot")
	require.True(t, ok)
	assert.Equal(t, project.CategoryFramework, boot.Category)
	assert.Equal(t, 5, boot.Importance)

	mvc, ok := findTech(techs, "Spring MVC")
	require.True(t, ok)
	assert.Equal(t, project.CategoryBackend, mvc.Category)

	pg, ok := findTech(techs, "PostgreSQL")
	require.True(t, ok)
	assert.Equal(t, "42.7.1", pg.Version)
}

func TestDetectJavaMalformedPOM(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "pom.xml", "<project><unclosed>")

	d := newTestDetector(t)
	techs := d.Technologies(dir)

	// A broken POM contributes nothing instead of failing the run.
	_, ok := findTech(techs, "Java")
	assert.False(t, ok)
}

func TestDetectGradleKotlin(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "build.gradle", `plugins { id "org.jetbrains.kotlin.jvm" }`)

	d := newTestDetector(t)
	techs := d.Technologies(dir)

	kotlin, ok := findTech(techs, "Kotlin")
	require.True(t, ok)
	assert.Equal(t, 5, kotlin.Importance)

	_, ok = findTech(techs, "Gradle")
	assert.True(t, ok)
	_, ok = findTech(techs, "Java")
	assert.False(t, ok)
}
