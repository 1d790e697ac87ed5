package server

import "go.uber.org/zap"

// Option configures an MCPServer at construction time.
type Option func(*MCPServer)

// WithHost sets the bind address.
func WithHost(host string) Option {
	return func(s *MCPServer) { s.opts.Host = &host }
}

// WithPort sets the listen port.
func WithPort(port int) Option {
	return func(s *MCPServer) { s.opts.Port = &port }
}

// WithDebug toggles debug mode, which exposes the /docs, /inspector and
// /openmcp.json routes.
func WithDebug(debug bool) Option {
	return func(s *MCPServer) { s.opts.Debug = &debug }
}

// WithDNSRebindingProtection explicitly enables or disables DNS rebinding
// protection, overriding the host-derived default.
func WithDNSRebindingProtection(enabled bool) Option {
	return func(s *MCPServer) { s.opts.DNSRebindingProtection = &enabled }
}

// WithVersion sets the version reported over the protocol and in the
// manifest.
func WithVersion(version string) Option {
	return func(s *MCPServer) { s.version = version }
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *MCPServer) { s.logger = l }
}

// WithRunner replaces the listener runner. Tests use this to avoid binding
// a real socket.
func WithRunner(r Runner) Option {
	return func(s *MCPServer) { s.runner = r }
}

// RunOption overrides configuration for a single Run call. The override is
// merged over the construction-time options field by field.
type RunOption func(*Options)

// RunWithHost overrides the bind address at run time.
func RunWithHost(host string) RunOption {
	return func(o *Options) { o.Host = &host }
}

// RunWithPort overrides the listen port at run time.
func RunWithPort(port int) RunOption {
	return func(o *Options) { o.Port = &port }
}

// RunWithDebug overrides the debug flag at run time. Elevating debug here
// registers the debug routes even when the server was constructed without
// them.
func RunWithDebug(debug bool) RunOption {
	return func(o *Options) { o.Debug = &debug }
}

// RunWithDNSRebindingProtection overrides the protection flag at run time.
func RunWithDNSRebindingProtection(enabled bool) RunOption {
	return func(o *Options) { o.DNSRebindingProtection = &enabled }
}
