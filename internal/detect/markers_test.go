package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybermura-dev/ReadmeForge/internal/project"
)

func TestClassifyTechnology(t *testing.T) {
	tests := []struct {
		name string
		want project.Category
	}{
		{"React", project.CategoryFrontend},
		{"Tailwind CSS", project.CategoryFrontend},
		{"Django", project.CategoryBackend},
		{"PostgreSQL", project.CategoryDatabase},
		{"GitHub Actions", project.CategoryDevOps},
		{"Jest", project.CategoryTesting},
		{"Flutter", project.CategoryFramework},
		{"Caddy", project.CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyTechnology(tt.name))
		})
	}
}

func TestScanMarkers(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "tsconfig.json", "{}")
	writeFile(t, dir, ".github/workflows/ci.yml", "on: push\n")
	writeFile(t, dir, "infra/main.tf", `resource "x" "y" {}`)

	d := newTestDetector(t)
	techs := d.Technologies(dir)

	ts, ok := findTech(techs, "TypeScript")
	require.True(t, ok)
	assert.Equal(t, 3, ts.Importance)

	_, ok = findTech(techs, "GitHub Actions")
	assert.True(t, ok)

	// *.tf glob matches anywhere in the tree.
	_, ok = findTech(techs, "Terraform")
	assert.True(t, ok)
}

func TestMarkerDotfileFallback(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "babelrc", "{}")

	d := newTestDetector(t)
	techs := d.Technologies(dir)

	_, ok := findTech(techs, "Babel")
	assert.True(t, ok, ".babelrc marker should also match its non-dotted form")
}

func TestScanDevOpsTools(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Dockerfile", "FROM alpine\n")
	writeFile(t, dir, ".gitlab-ci.yml", "stages: []\n")
	writeFile(t, dir, "main.tf", `resource "x" "y" {}`)

	d := newTestDetector(t)
	techs := d.Technologies(dir)

	docker, ok := findTech(techs, "Docker")
	require.True(t, ok)
	assert.Equal(t, 4, docker.Importance)

	_, ok = findTech(techs, "GitLab CI")
	assert.True(t, ok)

	terraform, ok := findTech(techs, "Terraform")
	require.True(t, ok)
	assert.Equal(t, 4, terraform.Importance)
}

func TestCIFirstMatchWins(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".github/workflows/ci.yml", "on: push\n")
	writeFile(t, dir, ".travis.yml", "language: go\n")

	d := newTestDetector(t)
	techs := d.Technologies(dir)

	_, ok := findTech(techs, "GitHub Actions")
	assert.True(t, ok)
	_, ok = findTech(techs, "Travis CI")
	assert.False(t, ok, "CI systems are mutually exclusive, first match wins")
}

func TestScanDirectories(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "controllers/home.rb", "class Home; end\n")
	writeFile(t, dir, "migrations/001_init.sql", "CREATE TABLE t();\n")
	writeFile(t, dir, "src/react/App.jsx", "export default null\n")
	writeFile(t, dir, "node_modules/dep/index.js", "module.exports = {}\n")

	d := newTestDetector(t)
	techs := d.Technologies(dir)

	mvc, ok := findTech(techs, "MVC Architecture")
	require.True(t, ok)
	assert.Equal(t, project.CategoryArchitecture, mvc.Category)

	_, ok = findTech(techs, "Database Migrations")
	assert.True(t, ok)

	// Framework-named directory at depth 2.
	react, ok := findTech(techs, "React")
	require.True(t, ok)
	assert.Equal(t, 4, react.Importance)

	// The ignored directory is not descended but its name is still evidence.
	_, ok = findTech(techs, "Node.js")
	assert.True(t, ok)
}
