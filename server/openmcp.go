package server

import (
	"fmt"
	"html"
	"strings"
)

// MCPEndpointPath is where the MCP streamable HTTP transport is mounted.
const MCPEndpointPath = "/mcp"

// Manifest is the document served at /openmcp.json. It describes the
// server and its registered tools so that inspectors and clients can
// discover the endpoint without speaking the protocol first.
type Manifest struct {
	Name     string         `json:"name"`
	Version  string         `json:"version"`
	Endpoint string         `json:"endpoint"`
	Tools    []ManifestTool `json:"tools"`
}

// ManifestTool is a single tool entry in the manifest.
type ManifestTool struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

func (s *MCPServer) manifest() Manifest {
	m := Manifest{
		Name:     s.settings.Name,
		Version:  s.version,
		Endpoint: MCPEndpointPath,
		Tools:    make([]ManifestTool, 0, len(s.tools)),
	}
	for _, t := range s.tools {
		m.Tools = append(m.Tools, ManifestTool{
			Name:        t.Name,
			Description: t.Description,
		})
	}
	return m
}

func (s *MCPServer) renderDocsPage() string {
	var b strings.Builder
	name := html.EscapeString(s.settings.Name)

	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	fmt.Fprintf(&b, "<title>%s — MCP Server</title>\n", name)
	b.WriteString("</head>\n<body>\n")
	fmt.Fprintf(&b, "<h1>%s</h1>\n", name)
	fmt.Fprintf(&b, "<p>Version %s — MCP endpoint at <code>%s</code></p>\n",
		html.EscapeString(s.version), MCPEndpointPath)

	b.WriteString("<h2>Tools</h2>\n")
	if len(s.tools) == 0 {
		b.WriteString("<p>No tools registered.</p>\n")
	} else {
		b.WriteString("<ul>\n")
		for _, t := range s.tools {
			fmt.Fprintf(&b, "<li><strong>%s</strong> — %s</li>\n",
				html.EscapeString(t.Name), html.EscapeString(t.Description))
		}
		b.WriteString("</ul>\n")
	}

	fmt.Fprintf(&b, "<p><a href=%q>Inspector</a> · <a href=%q>Manifest</a></p>\n",
		InspectorPath, OpenMCPPath)
	b.WriteString("</body>\n</html>\n")
	return b.String()
}

func (s *MCPServer) renderInspectorPage() string {
	var b strings.Builder
	name := html.EscapeString(s.settings.Name)

	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	fmt.Fprintf(&b, "<title>Inspector — %s</title>\n", name)
	b.WriteString("</head>\n<body>\n")
	fmt.Fprintf(&b, "<h1>Inspector</h1>\n<p>Server: %s</p>\n", name)
	fmt.Fprintf(&b, "<p>Connect an MCP client to <code>%s</code> (streamable HTTP).</p>\n",
		MCPEndpointPath)
	fmt.Fprintf(&b, "<p>The manifest at <a href=%q><code>%s</code></a> lists the registered tools.</p>\n",
		OpenMCPPath, OpenMCPPath)
	b.WriteString("</body>\n</html>\n")
	return b.String()
}
