// Package mcp exposes the analyzer over the Model Context Protocol so AI
// assistants can inspect a project and generate its README.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/cybermura-dev/ReadmeForge/internal/analyze"
	"github.com/cybermura-dev/ReadmeForge/internal/config"
	forgefs "github.com/cybermura-dev/ReadmeForge/internal/fs"
	"github.com/cybermura-dev/ReadmeForge/internal/generate"
)

// Server wraps the MCP server with the analyzer tools.
type Server struct {
	cfg *config.Config
	mcp *server.MCPServer
}

// NewServer creates an MCP server exposing analyze_project and
// generate_readme.
func NewServer(cfg *config.Config) *Server {
	s := server.NewMCPServer(
		"readmeforge",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	srv := &Server{cfg: cfg, mcp: s}
	srv.registerTools()

	return srv
}

// ServeStdio starts the server using stdio transport.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

func (s *Server) registerTools() {
	analyzeTool := mcp.NewTool("analyze_project",
		mcp.WithDescription("Analyze a project directory and return its full inventory (technologies, features, structure, metadata) as JSON"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Absolute path to the project root"),
		),
	)
	s.mcp.AddTool(analyzeTool, s.handleAnalyzeProject)

	generateTool := mcp.NewTool("generate_readme",
		mcp.WithDescription("Analyze a project directory and write its README.md"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Absolute path to the project root"),
		),
		mcp.WithString("template",
			mcp.Description("Template name: standard, minimal, or detailed (default standard)"),
		),
		mcp.WithString("output",
			mcp.Description("Output file path (default <path>/README.md)"),
		),
	)
	s.mcp.AddTool(generateTool, s.handleGenerateReadme)
}

func (s *Server) handleAnalyzeProject(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: path"), nil
	}
	if !forgefs.DirExists(path) {
		return mcp.NewToolResultError(fmt.Sprintf("project path %s is not a directory", path)), nil
	}

	p := analyze.New(s.cfg).Project(path)

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode project: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) handleGenerateReadme(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: path"), nil
	}

	out, err := generate.Execute(s.cfg, generate.Options{
		Path:     path,
		Output:   request.GetString("output", ""),
		Template: request.GetString("template", ""),
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to generate README: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("README written to %s", out)), nil
}
