package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)

	assert.NotEmpty(t, cfg.Analyzers.FileExtensions)
	assert.NotEmpty(t, cfg.Analyzers.ProjectFiles)
	assert.NotEmpty(t, cfg.Sections["standard"])
	assert.NotEmpty(t, cfg.Sections["minimal"])
	assert.NotEmpty(t, cfg.Sections["detailed"])

	lang, ok := cfg.Language("py")
	require.True(t, ok)
	assert.Equal(t, "Python", lang)

	_, ok = cfg.Language("xyz")
	assert.False(t, ok)
}

func TestSectionsForFallsBackToStandard(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)

	assert.Equal(t, cfg.Sections["standard"], cfg.SectionsFor("no-such-template"))
	assert.Equal(t, cfg.Sections["minimal"], cfg.SectionsFor("minimal"))
}

func TestLoadOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`analyzers:
  file_extensions:
    zig: Zig
    py: Python3
sections:
  minimal:
    - description
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	// New and overridden table entries merge onto the defaults.
	lang, _ := cfg.Language("zig")
	assert.Equal(t, "Zig", lang)
	lang, _ = cfg.Language("py")
	assert.Equal(t, "Python3", lang)
	lang, _ = cfg.Language("go")
	assert.Equal(t, "Go", lang)

	// Section lists replace per template.
	assert.Equal(t, []string{"description"}, cfg.SectionsFor("minimal"))
	assert.NotEmpty(t, cfg.SectionsFor("standard"))
}

func TestLoadMissingFileIsFatal(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadMalformedFileIsFatal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("analyzers: [not: a map"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.Analyzers.FileExtensions)
}
