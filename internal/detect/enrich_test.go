package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybermura-dev/ReadmeForge/internal/project"
)

func TestEnrichPythonImports(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "fetch.py", "import requests\nfrom celery import shared_task\n")

	d := newTestDetector(t)
	techs := d.Technologies(dir)

	requests, ok := findTech(techs, "requests")
	require.True(t, ok)
	assert.Equal(t, project.CategoryBackend, requests.Category)
	assert.Equal(t, 3, requests.Importance)

	_, ok = findTech(techs, "celery")
	assert.True(t, ok)
}

func TestEnrichJSImports(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "db.js", `const mongoose = require("mongoose");
import axios from "axios/lib/axios";
`)

	d := newTestDetector(t)
	techs := d.Technologies(dir)

	mongoose, ok := findTech(techs, "mongoose")
	require.True(t, ok)
	assert.Equal(t, project.CategoryDatabase, mongoose.Category)

	// Sub-path imports resolve to the top-level package.
	_, ok = findTech(techs, "axios")
	assert.True(t, ok)
}

func TestEnrichSkipsManifestDetectedEntries(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "package.json", `{"name":"demo","dependencies":{"react":"^18.0"}}`)
	writeFile(t, dir, "App.js", `import React from "react";`)

	d := newTestDetector(t)
	techs := d.Technologies(dir)

	count := 0
	for _, tech := range techs {
		if tech.Category == project.CategoryFrontend && normalizeTechName(tech.Name) == "react" {
			count++
		}
	}
	assert.Equal(t, 1, count, "manifest entry keeps its canonical casing, no lowercase duplicate")
}

func TestNormalizeJSImport(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"react", "react"},
		{"axios/lib/axios", "axios"},
		{"@scope/pkg", "@scope/pkg"},
		{"@scope/pkg/sub", "@scope/pkg"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeJSImport(tt.in))
	}
}
