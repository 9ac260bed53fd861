package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybermura-dev/ReadmeForge/internal/project"
)

func TestCensusLanguages(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.py", "print()\n")
	writeFile(t, dir, "b.py", "print()\n")
	writeFile(t, dir, "c.py", "print()\n")
	writeFile(t, dir, "util.js", "console.log()\n")
	writeFile(t, dir, "notes.xyz", "not a language\n")

	d := newTestDetector(t)
	techs := d.Technologies(dir)

	python, ok := findTech(techs, "Python")
	require.True(t, ok)
	assert.Equal(t, 5, python.Importance)

	js, ok := findTech(techs, "JavaScript")
	require.True(t, ok)
	assert.Equal(t, 4, js.Importance)
}

func TestCensusTieBreaksAlphabetically(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "one.rb", "puts 1\n")
	writeFile(t, dir, "two.go", "package main\n")

	d := newTestDetector(t)
	techs := d.Technologies(dir)

	golang, ok := findTech(techs, "Go")
	require.True(t, ok)
	ruby, ok := findTech(techs, "Ruby")
	require.True(t, ok)

	// Equal counts: Go ranks first alphabetically.
	assert.Equal(t, 5, golang.Importance)
	assert.Equal(t, 4, ruby.Importance)
}

func TestCensusSkipsIgnoredDirectories(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "main.go", "package main\n")
	writeFile(t, dir, "node_modules/dep/index.js", "module.exports = {}\n")

	d := newTestDetector(t)
	techs := d.Technologies(dir)

	_, ok := findTech(techs, "JavaScript")
	assert.False(t, ok, "files under node_modules must not be counted")
}

func TestExpressProjectEndToEnd(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "package.json", `{"name":"demo","dependencies":{"express":"^4.0"}}`)
	writeFile(t, dir, "routes/index.js", "module.exports = (app) => {}\n")

	d := newTestDetector(t)
	techs := d.Technologies(dir)

	express, ok := findTech(techs, "Express.js")
	require.True(t, ok)
	assert.Equal(t, project.CategoryBackend, express.Category)
	assert.Equal(t, 5, express.Importance)

	routing, ok := findTech(techs, "Routing")
	require.True(t, ok)
	assert.Equal(t, project.CategoryBackend, routing.Category)

	desc := d.Architecture(dir, techs)
	assert.Contains(t, desc, "Express.js Middleware Architecture")
}

func TestTechnologiesDeterministic(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "package.json", `{"name":"demo","dependencies":{"express":"^4.0","react":"^18.0"}}`)
	writeFile(t, dir, "requirements.txt", "flask==2.0.1\n")
	writeFile(t, dir, "Dockerfile", "FROM alpine\n")
	writeFile(t, dir, "src/app.py", "print()\n")

	d := newTestDetector(t)
	first := d.Technologies(dir)
	second := d.Technologies(dir)

	assert.Equal(t, first, second)
}
