package ignore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDir(t *testing.T) {
	assert.True(t, Dir("node_modules"))
	assert.True(t, Dir(".git"))
	assert.True(t, Dir("__pycache__"))
	assert.False(t, Dir("src"))
	assert.False(t, Dir("internal"))
}

func TestFile(t *testing.T) {
	assert.True(t, File("module.pyc"))
	assert.True(t, File(".DS_Store"))
	assert.True(t, File("App.class"))
	assert.False(t, File("main.go"))
	assert.False(t, File("README.md"))
}
