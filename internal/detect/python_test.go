package detect

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybermura-dev/ReadmeForge/internal/config"
	"github.com/cybermura-dev/ReadmeForge/internal/project"
)

func newTestDetector(t *testing.T) *Detector {
	t.Helper()
	cfg, err := config.Default()
	require.NoError(t, err)
	return New(cfg)
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func findTech(techs []project.Technology, name string) (project.Technology, bool) {
	for _, tech := range techs {
		if tech.Name == name {
			return tech, true
		}
	}
	return project.Technology{}, false
}

func TestParseRequirements(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []Requirement
	}{
		{"pinned", "flask==2.0.1", []Requirement{{Name: "flask", Version: "2.0.1"}}},
		{"minimum", "requests>=2.0", []Requirement{{Name: "requests", Version: "2.0"}}},
		{"bare", "requests", []Requirement{{Name: "requests", Version: ""}}},
		{"blank and comments", "\n# comment\n\n", nil},
		{"mixed", "# deps\nflask==2.0.1\n\nrequests>=2.0\n", []Requirement{
			{Name: "flask", Version: "2.0.1"},
			{Name: "requests", Version: "2.0"},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseRequirements(tt.content))
		})
	}
}

func TestDetectPythonRequirements(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "requirements.txt", "flask==2.0.1\nflask-login\npytest>=7.0\n")

	d := newTestDetector(t)
	techs := d.Technologies(dir)

	python, ok := findTech(techs, "Python")
	require.True(t, ok)
	assert.Equal(t, project.CategoryLanguage, python.Category)
	assert.Equal(t, 5, python.Importance)

	flask, ok := findTech(techs, "Flask")
	require.True(t, ok)
	assert.Equal(t, project.CategoryFramework, flask.Category)
	assert.Equal(t, "2.0.1", flask.Version)
	assert.Equal(t, 5, flask.Importance)

	pytest, ok := findTech(techs, "PyTest")
	require.True(t, ok)
	assert.Equal(t, project.CategoryTesting, pytest.Category)
	assert.Equal(t, "7.0", pytest.Version)
}

func TestDetectPyproject(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "pyproject.toml", `[tool.poetry]
name = "demo"

[tool.poetry.dependencies]
python = "^3.11"
fastapi = "^0.100"
`)

	d := newTestDetector(t)
	techs := d.Technologies(dir)

	_, ok := findTech(techs, "Python")
	assert.True(t, ok)

	poetry, ok := findTech(techs, "Poetry")
	require.True(t, ok)
	assert.Equal(t, project.CategoryDevOps, poetry.Category)

	fastapi, ok := findTech(techs, "FastAPI")
	require.True(t, ok)
	assert.Equal(t, project.CategoryFramework, fastapi.Category)
}

func TestDetectPythonMalformedPyproject(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "pyproject.toml", "not [ valid toml ===")

	d := newTestDetector(t)
	techs := d.Technologies(dir)

	// The malformed file still proves Python; the parse failure adds nothing.
	_, ok := findTech(techs, "Python")
	assert.True(t, ok)
	_, ok = findTech(techs, "Poetry")
	assert.False(t, ok)
}
