package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybermura-dev/ReadmeForge/internal/project"
)

func TestDetectNodeJSDependencies(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "package.json", `{
  "name": "demo",
  "dependencies": {
    "express": "^4.18.0",
    "mongoose": "^7.0.0"
  },
  "devDependencies": {
    "jest": "^29.0.0",
    "typescript": "^5.0.0"
  }
}`)

	d := newTestDetector(t)
	techs := d.Technologies(dir)

	js, ok := findTech(techs, "JavaScript")
	require.True(t, ok)
	assert.Equal(t, 5, js.Importance)

	ts, ok := findTech(techs, "TypeScript")
	require.True(t, ok)
	assert.Equal(t, 5, ts.Importance)

	express, ok := findTech(techs, "Express.js")
	require.True(t, ok)
	assert.Equal(t, project.CategoryBackend, express.Category)
	assert.Equal(t, "^4.18.0", express.Version)

	mongo, ok := findTech(techs, "MongoDB (Mongoose)")
	require.True(t, ok)
	assert.Equal(t, project.CategoryDatabase, mongo.Category)

	jest, ok := findTech(techs, "Jest")
	require.True(t, ok)
	assert.Equal(t, project.CategoryTesting, jest.Category)
}

func TestDetectNodeJSFullstack(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "package.json", `{
  "name": "demo",
  "dependencies": {"react": "^18.0", "express": "^4.0"}
}`)

	d := newTestDetector(t)
	techs := d.Technologies(dir)

	full, ok := findTech(techs, "Fullstack JavaScript")
	require.True(t, ok)
	assert.Equal(t, project.CategoryOther, full.Category)

	react, ok := findTech(techs, "React")
	require.True(t, ok)
	assert.Equal(t, 5, react.Importance)
}

func TestDetectNodeJSScriptHints(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "package.json", `{
  "name": "demo",
  "scripts": {"dev": "next dev", "start": "electron ."}
}`)

	d := newTestDetector(t)
	techs := d.Technologies(dir)

	_, ok := findTech(techs, "Next.js")
	assert.True(t, ok)
	_, ok = findTech(techs, "Electron")
	assert.True(t, ok)
}

func TestDetectNodeJSMalformedManifest(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "package.json", `{"name": "demo",`)

	d := newTestDetector(t)
	techs := d.Technologies(dir)

	_, ok := findTech(techs, "JavaScript")
	assert.False(t, ok)
}
