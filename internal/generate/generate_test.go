package generate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybermura-dev/ReadmeForge/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Default()
	require.NoError(t, err)
	return cfg
}

func TestExecuteWritesReadme(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"),
		[]byte(`{"name":"demo","description":"A demo.","dependencies":{"express":"^4.0"}}`), 0644))

	out, err := Execute(testConfig(t), Options{Path: dir})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "README.md"), out)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "# demo")
	assert.Contains(t, content, "A demo.")
	assert.Contains(t, content, "Express.js")
}

func TestExecuteCustomOutputAndTemplate(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.py"), []byte("print()\n"), 0644))
	target := filepath.Join(t.TempDir(), "OUT.md")

	out, err := Execute(testConfig(t), Options{Path: dir, Output: target, Template: "minimal"})
	require.NoError(t, err)
	assert.Equal(t, target, out)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Python")
}

func TestExecuteRejectsMissingPath(t *testing.T) {
	_, err := Execute(testConfig(t), Options{Path: filepath.Join(t.TempDir(), "nope")})
	assert.Error(t, err)
}

func TestExecuteRejectsUnknownTemplate(t *testing.T) {
	dir := t.TempDir()
	_, err := Execute(testConfig(t), Options{Path: dir, Template: "fancy"})
	assert.Error(t, err)
}
