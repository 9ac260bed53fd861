package mcp

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybermura-dev/ReadmeForge/internal/config"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg, err := config.Default()
	require.NoError(t, err)
	return NewServer(cfg)
}

func toolRequest(args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{Arguments: args},
	}
}

func TestNewServer(t *testing.T) {
	s := newTestServer(t)
	require.NotNil(t, s)
	assert.NotNil(t, s.mcp)
}

func TestHandleAnalyzeProject(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"),
		[]byte(`{"name":"demo","dependencies":{"express":"^4.0"}}`), 0644))

	s := newTestServer(t)
	result, err := s.handleAnalyzeProject(context.Background(), toolRequest(map[string]any{
		"path": dir,
	}))
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.IsError)
}

func TestHandleAnalyzeProjectMissingPath(t *testing.T) {
	s := newTestServer(t)
	result, err := s.handleAnalyzeProject(context.Background(), toolRequest(nil))
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestHandleAnalyzeProjectBadPath(t *testing.T) {
	s := newTestServer(t)
	result, err := s.handleAnalyzeProject(context.Background(), toolRequest(map[string]any{
		"path": filepath.Join(t.TempDir(), "nope"),
	}))
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestHandleGenerateReadme(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.py"), []byte("print()\n"), 0644))

	s := newTestServer(t)
	result, err := s.handleGenerateReadme(context.Background(), toolRequest(map[string]any{
		"path":     dir,
		"template": "minimal",
	}))
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.IsError)

	_, statErr := os.Stat(filepath.Join(dir, "README.md"))
	assert.NoError(t, statErr)
}

func TestHandleGenerateReadmeUnknownTemplate(t *testing.T) {
	dir := t.TempDir()

	s := newTestServer(t)
	result, err := s.handleGenerateReadme(context.Background(), toolRequest(map[string]any{
		"path":     dir,
		"template": "fancy",
	}))
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}
