package server

const (
	// DefaultHost is the default bind address. 0.0.0.0 keeps the server
	// reachable behind cloud load balancers and container networks.
	DefaultHost = "0.0.0.0"
	// DefaultPort is the default listen port.
	DefaultPort = 8000
)

// Settings is the effective server configuration after resolution.
type Settings struct {
	// Name is the server identifier reported over the MCP protocol.
	Name string
	// Host is the bind address.
	Host string
	// Port is the listen port.
	Port int
	// Debug indicates whether the debug routes are active.
	Debug bool
	// TransportSecurity is the derived DNS rebinding protection policy.
	// It is nil when no flag and no host pattern asked for one; consumers
	// must treat a nil policy and a disabled policy as equivalent.
	TransportSecurity *SecurityPolicy
}

// Options carries one phase of configuration input. Nil fields mean
// "unspecified": they inherit the value from the previous phase, or the
// default if no phase ever set them.
type Options struct {
	Host                   *string
	Port                   *int
	Debug                  *bool
	DNSRebindingProtection *bool
}

// merge returns base with every non-nil field of override applied on top.
// Neither argument is modified.
func (base Options) merge(override Options) Options {
	out := base
	if override.Host != nil {
		out.Host = override.Host
	}
	if override.Port != nil {
		out.Port = override.Port
	}
	if override.Debug != nil {
		out.Debug = override.Debug
	}
	if override.DNSRebindingProtection != nil {
		out.DNSRebindingProtection = override.DNSRebindingProtection
	}
	return out
}

// resolveSettings turns accumulated options into effective settings,
// applying defaults for unspecified fields and deriving the transport
// security policy from the resolved host.
func resolveSettings(name string, opts Options) Settings {
	s := Settings{
		Name: name,
		Host: DefaultHost,
		Port: DefaultPort,
	}
	if opts.Host != nil {
		s.Host = *opts.Host
	}
	if opts.Port != nil {
		s.Port = *opts.Port
	}
	if opts.Debug != nil {
		s.Debug = *opts.Debug
	}
	s.TransportSecurity = deriveSecurity(s.Host, s.Port, opts.DNSRebindingProtection)
	return s
}
