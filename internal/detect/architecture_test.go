package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cybermura-dev/ReadmeForge/internal/project"
)

func TestArchitectureMVC(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "src/models/user.py", "class User: pass\n")
	writeFile(t, dir, "src/views/home.py", "def home(): pass\n")
	writeFile(t, dir, "src/controllers/base.py", "class Base: pass\n")

	d := newTestDetector(t)
	desc := d.Architecture(dir, nil)

	assert.Contains(t, desc, "MVC")
	assert.Contains(t, desc, "Main modules: controllers, models, views.")
}

func TestArchitectureLayered(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "domain/entity.go", "package domain\n")
	writeFile(t, dir, "presentation/view.go", "package presentation\n")

	d := newTestDetector(t)
	desc := d.Architecture(dir, nil)

	assert.Contains(t, desc, "Layered Architecture")
}

func TestArchitectureServiceOriented(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "services/billing/api.go", "package billing\n")
	writeFile(t, dir, "services/auth/api.go", "package auth\n")
	writeFile(t, dir, "services/mail/api.go", "package mail\n")

	d := newTestDetector(t)
	desc := d.Architecture(dir, nil)

	assert.Contains(t, desc, "Service-Oriented Architecture")
}

func TestArchitectureFactoryPattern(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "app/widget_factory.py", "class WidgetFactory: pass\n")

	d := newTestDetector(t)
	desc := d.Architecture(dir, nil)

	assert.Contains(t, desc, "Factory Pattern")
}

func TestArchitectureTechnologyHints(t *testing.T) {
	dir := t.TempDir()

	d := newTestDetector(t)
	desc := d.Architecture(dir, []project.Technology{
		{Name: "Django", Category: project.CategoryFramework},
		{Name: "React", Category: project.CategoryFrontend},
	})

	assert.Contains(t, desc, "Django MTV (Model-Template-View)")
	assert.Contains(t, desc, "Component-Based Architecture")
}

func TestArchitectureFallbacks(t *testing.T) {
	dir := t.TempDir()

	d := newTestDetector(t)

	desc := d.Architecture(dir, nil)
	assert.Equal(t, "Standard application architecture.", desc)

	desc = d.Architecture(dir, []project.Technology{
		{Name: "MVC Architecture", Category: project.CategoryArchitecture},
	})
	assert.Contains(t, desc, "architectural approaches: MVC Architecture.")
}
