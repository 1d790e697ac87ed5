package server

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/Pallavikumarimdb/mcp-use/core/logger"
	"github.com/Pallavikumarimdb/mcp-use/core/middleware/rayid"
)

// DefaultVersion is reported when no version option is given.
const DefaultVersion = "0.1.0"

// MCPServer wraps an MCP protocol engine and a Fiber application behind a
// two-phase configuration surface: options given to New are resolved
// immediately, and options given to Run are merged on top just before the
// listener binds. Each resolution recomputes the settings, the transport
// security policy and the route collection.
type MCPServer struct {
	name    string
	version string
	logger  *zap.Logger
	runner  Runner

	// opts accumulates resolution input across phases.
	opts     Options
	settings Settings

	mcp   *mcpserver.MCPServer
	tools []mcp.Tool

	routes     []Route
	debugLevel int
}

// New creates a server with the given name. Unspecified settings default
// to 0.0.0.0:8000 with debug mode off.
func New(name string, opts ...Option) *MCPServer {
	s := &MCPServer{
		name:    name,
		version: DefaultVersion,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.runner == nil {
		s.runner = &ListenRunner{Logger: s.logger}
	}

	s.mcp = mcpserver.NewMCPServer(
		name,
		s.version,
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithRecovery(),
	)

	s.routes = []Route{
		{Method: fiber.MethodGet, Path: "/health", Handler: s.handleHealth},
	}
	s.applyResolution(Options{})

	return s
}

// Settings returns the current effective configuration.
func (s *MCPServer) Settings() Settings {
	return s.settings
}

// DebugLevel returns 1 when debug mode is active and 0 otherwise.
func (s *MCPServer) DebugLevel() int {
	return s.debugLevel
}

// AddTool registers an MCP tool with the protocol engine and records it
// for the manifest and docs page.
func (s *MCPServer) AddTool(tool mcp.Tool, handler mcpserver.ToolHandlerFunc) {
	s.mcp.AddTool(tool, handler)
	s.tools = append(s.tools, tool)
}

// applyResolution merges override into the accumulated options, resolves
// the settings and recomputes every dependent: security policy, route
// collection, debug level. Nothing is left stale from the prior phase.
func (s *MCPServer) applyResolution(override Options) {
	s.opts = s.opts.merge(override)
	s.settings = resolveSettings(s.name, s.opts)
	s.syncDebugRoutes()

	if s.settings.Debug {
		if s.debugLevel == 0 {
			s.debugLevel = 1
		}
	} else {
		s.debugLevel = 0
	}
}

// App builds a Fiber application reflecting the current resolution: ray-id
// tracing, request logging, the security middleware, the MCP endpoint and
// the route collection. Each call builds a fresh application, so it is
// also the test seam for HTTP-level assertions.
func (s *MCPServer) App() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               s.settings.Name,
		DisableStartupMessage: true,
	})

	app.Use(rayid.New())
	app.Use(func(c *fiber.Ctx) error {
		l := logger.WithRayID(s.logger, c)
		l.Debug("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		return err
	})
	app.Use(s.settings.TransportSecurity.Middleware())

	streamable := mcpserver.NewStreamableHTTPServer(s.mcp)
	app.All(MCPEndpointPath, adaptor.HTTPHandler(streamable))

	for _, r := range s.routes {
		app.Add(r.Method, r.Path, r.Handler)
	}

	return app
}

// Run resolves the run-time overrides and hands the application to the
// runner, which binds the listener. Overrides take effect before the bind:
// elevating debug here registers the debug routes that were absent at
// construction.
func (s *MCPServer) Run(ctx context.Context, opts ...RunOption) error {
	var override Options
	for _, opt := range opts {
		opt(&override)
	}
	s.applyResolution(override)

	s.logger.Info("Starting MCP server",
		zap.String("name", s.settings.Name),
		zap.String("host", s.settings.Host),
		zap.Int("port", s.settings.Port),
		zap.Bool("debug", s.settings.Debug),
		zap.Bool("dns_rebinding_protection", s.settings.TransportSecurity.Enabled()),
	)

	return s.runner.Run(ctx, s.App(), s.settings)
}
