package detect

import (
	"encoding/xml"
	"io/fs"
	"os"
	"strings"

	"github.com/cybermura-dev/ReadmeForge/internal/project"
)

// MSBuildProject is the subset of a .NET project file this tool reads.
type MSBuildProject struct {
	XMLName        xml.Name `xml:"Project"`
	PropertyGroups []struct {
		AssemblyName string `xml:"AssemblyName"`
		Description  string `xml:"Description"`
	} `xml:"PropertyGroup"`
}

// ReadMSBuildProject parses a .csproj/.fsproj/.vbproj file. A missing or
// malformed file returns ok=false.
func ReadMSBuildProject(path string) (*MSBuildProject, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	var proj MSBuildProject
	if err := xml.Unmarshal(data, &proj); err != nil {
		return nil, false
	}
	return &proj, true
}

// AssemblyName returns the first non-empty AssemblyName property.
func (p *MSBuildProject) AssemblyName() string {
	for _, group := range p.PropertyGroups {
		if group.AssemblyName != "" {
			return group.AssemblyName
		}
	}
	return ""
}

// Description returns the first non-empty Description property.
func (p *MSBuildProject) Description() string {
	for _, group := range p.PropertyGroups {
		if group.Description != "" {
			return group.Description
		}
	}
	return ""
}

// FindProjectFiles returns every file under root with the given extension
// (e.g. ".csproj"), in walk order, skipping ignored directories.
func FindProjectFiles(root, ext string) []string {
	var out []string
	walkFiles(root, func(path string, entry fs.DirEntry) bool {
		if strings.HasSuffix(entry.Name(), ext) {
			out = append(out, path)
		}
		return true
	})
	return out
}

// detectDotNet inspects .NET project files. The project XML is sniffed for
// ASP.NET Core, EF Core, Blazor, and test framework markers.
func (d *Detector) detectDotNet(root string, reg *Registry) {
	csprojFiles := FindProjectFiles(root, ".csproj")
	if len(csprojFiles) > 0 {
		reg.Upsert(project.CategoryLanguage, "C#", 5)
		reg.Upsert(project.CategoryDevOps, ".NET", 4)

		for _, path := range csprojFiles {
			data, err := os.ReadFile(path)
			if err != nil {
				d.log.Debug("skipping unreadable project file", "path", path, "error", err)
				continue
			}
			content := string(data)
			lower := strings.ToLower(content)

			if strings.Contains(content, "Microsoft.AspNetCore") {
				reg.Upsert(project.CategoryFramework, "ASP.NET Core", 5)
			}
			if strings.Contains(content, "Microsoft.EntityFrameworkCore") {
				reg.Upsert(project.CategoryDatabase, "Entity Framework Core", 4)
			}
			if strings.Contains(content, "Microsoft.AspNetCore.Mvc") {
				reg.Upsert(project.CategoryBackend, "ASP.NET Core MVC", 4)
			}
			if strings.Contains(content, "Microsoft.AspNetCore.Components.WebAssembly") {
				reg.Upsert(project.CategoryFrontend, "Blazor WebAssembly", 4)
			} else if strings.Contains(content, "Microsoft.AspNetCore.Components.Web") {
				reg.Upsert(project.CategoryFrontend, "Blazor", 4)
			}

			if strings.Contains(lower, "xunit") {
				reg.Upsert(project.CategoryTesting, "xUnit", 3)
			}
			if strings.Contains(lower, "nunit") {
				reg.Upsert(project.CategoryTesting, "NUnit", 3)
			}
			if strings.Contains(lower, "mstest") {
				reg.Upsert(project.CategoryTesting, "MSTest", 3)
			}
		}
	}

	if len(FindProjectFiles(root, ".fsproj")) > 0 {
		reg.Upsert(project.CategoryLanguage, "F#", 5)
		reg.Upsert(project.CategoryDevOps, ".NET", 4)
	}

	if len(FindProjectFiles(root, ".vbproj")) > 0 {
		reg.Upsert(project.CategoryLanguage, "Visual Basic", 5)
		reg.Upsert(project.CategoryDevOps, ".NET", 4)
	}
}
