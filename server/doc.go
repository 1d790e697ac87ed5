// Package server provides the MCP server wrapper.
//
// It combines an MCP protocol engine (mark3labs/mcp-go) with a Fiber web
// application behind a single type, MCPServer, whose configuration is
// resolved in two phases: once at construction and once more when Run is
// called. Run-time options override construction-time options field by
// field; anything left unspecified falls back to cloud-friendly defaults
// (0.0.0.0:8000).
//
// # Configuration Resolution
//
// Every resolution recomputes the derived state as a whole:
//   - Settings: the effective host, port and debug flag.
//   - SecurityPolicy: DNS rebinding protection, default-enabled for
//     loopback hosts and default-disabled for wildcard hosts, unless an
//     explicit flag was given.
//   - Route collection: the debug-only routes (/docs, /inspector,
//     /openmcp.json) are present exactly when debug mode is active, even
//     when debug is only enabled at Run time.
//
// # Usage
//
//	srv := server.New("my-server", server.WithPort(3000))
//	srv.AddTool(mcp.NewTool("echo", mcp.WithDescription("Echo a message")), echoHandler)
//	if err := srv.Run(ctx, server.RunWithDebug(true)); err != nil {
//	    log.Fatal(err)
//	}
//
// The actual listener bind is owned by a Runner, which tests replace with
// a no-op implementation.
package server
