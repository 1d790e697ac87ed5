package server

import (
	"github.com/gofiber/fiber/v2"
)

// Debug-only route paths.
const (
	DocsPath      = "/docs"
	InspectorPath = "/inspector"
	OpenMCPPath   = "/openmcp.json"
)

// Route is a single HTTP route owned by the wrapper, registered on the
// Fiber application when it is built.
type Route struct {
	Method  string
	Path    string
	Handler fiber.Handler
}

// RoutePaths returns the paths of all currently registered routes,
// including debug routes when debug mode is active.
func (s *MCPServer) RoutePaths() []string {
	paths := make([]string, 0, len(s.routes))
	for _, r := range s.routes {
		paths = append(paths, r.Path)
	}
	return paths
}

// AddRoute registers a custom route on the server. Routes added before Run
// are mounted on the Fiber application alongside the built-in ones.
func (s *MCPServer) AddRoute(method, path string, handler fiber.Handler) {
	s.routes = append(s.routes, Route{Method: method, Path: path, Handler: handler})
}

func (s *MCPServer) hasRoute(path string) bool {
	for _, r := range s.routes {
		if r.Path == path {
			return true
		}
	}
	return false
}

// syncDebugRoutes makes the route collection match the resolved debug
// flag: debug routes are appended when debug turns on and removed when it
// turns off. Idempotent, so re-resolution never duplicates entries.
func (s *MCPServer) syncDebugRoutes() {
	if s.settings.Debug {
		if !s.hasRoute(DocsPath) {
			s.routes = append(s.routes,
				Route{Method: fiber.MethodGet, Path: DocsPath, Handler: s.handleDocs},
				Route{Method: fiber.MethodGet, Path: InspectorPath, Handler: s.handleInspector},
				Route{Method: fiber.MethodGet, Path: OpenMCPPath, Handler: s.handleOpenMCP},
			)
		}
		return
	}

	kept := s.routes[:0]
	for _, r := range s.routes {
		switch r.Path {
		case DocsPath, InspectorPath, OpenMCPPath:
		default:
			kept = append(kept, r)
		}
	}
	s.routes = kept
}

// handleHealth reports liveness.
func (s *MCPServer) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"name":   s.settings.Name,
	})
}

// handleDocs serves the HTML documentation page for registered tools.
func (s *MCPServer) handleDocs(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(s.renderDocsPage())
}

// handleInspector serves a minimal inspector page wired to the /mcp
// endpoint.
func (s *MCPServer) handleInspector(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(s.renderInspectorPage())
}

// handleOpenMCP serves the machine-readable server manifest.
func (s *MCPServer) handleOpenMCP(c *fiber.Ctx) error {
	return c.JSON(s.manifest())
}
