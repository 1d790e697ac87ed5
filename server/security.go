package server

import (
	"fmt"
	"net"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// SecurityPolicy controls transport-level protections for the server.
type SecurityPolicy struct {
	// EnableDNSRebindingProtection rejects requests whose Host header is
	// not on the allow-list. This defends locally-bound servers against
	// browser-based DNS rebinding attacks.
	EnableDNSRebindingProtection bool
	// AllowedHosts lists the accepted Host header values. Entries without
	// a port match any port.
	AllowedHosts []string
}

// Enabled reports whether DNS rebinding protection is active. Safe on a
// nil policy, which counts as disabled.
func (p *SecurityPolicy) Enabled() bool {
	return p != nil && p.EnableDNSRebindingProtection
}

// deriveSecurity computes the policy for a resolved host. An explicit flag
// always wins; otherwise loopback hosts default to protected and every
// other host (wildcard or arbitrary) defaults to unprotected. The pure
// default case returns nil so callers can tell "nobody asked" apart from
// "explicitly disabled", though both mean protection is off.
func deriveSecurity(host string, port int, explicit *bool) *SecurityPolicy {
	enabled := isLoopbackHost(host)
	if explicit != nil {
		enabled = *explicit
	}

	if !enabled {
		if explicit == nil {
			return nil
		}
		return &SecurityPolicy{EnableDNSRebindingProtection: false}
	}

	return &SecurityPolicy{
		EnableDNSRebindingProtection: true,
		AllowedHosts:                 allowedHosts(host, port),
	}
}

// isLoopbackHost reports whether host denotes the local machine.
func isLoopbackHost(host string) bool {
	if strings.EqualFold(host, "localhost") {
		return true
	}
	if ip := net.ParseIP(host); ip != nil {
		return ip.IsLoopback()
	}
	return false
}

// allowedHosts builds the Host header allow-list for the given bind
// address. Loopback binds accept the usual local aliases so that both
// "localhost:8000" and "127.0.0.1:8000" work in a browser.
func allowedHosts(host string, port int) []string {
	names := []string{host}
	if isLoopbackHost(host) {
		names = []string{"localhost", "127.0.0.1", "[::1]"}
	}

	out := make([]string, 0, len(names)*2)
	for _, n := range names {
		out = append(out, n, fmt.Sprintf("%s:%d", n, port))
	}
	return out
}

// Middleware returns a Fiber handler enforcing the policy. Requests with a
// Host header outside the allow-list are rejected with 421 Misdirected
// Request. A nil or disabled policy yields a pass-through handler.
func (p *SecurityPolicy) Middleware() fiber.Handler {
	if p == nil || !p.EnableDNSRebindingProtection {
		return func(c *fiber.Ctx) error {
			return c.Next()
		}
	}

	allowed := make(map[string]struct{}, len(p.AllowedHosts))
	for _, h := range p.AllowedHosts {
		allowed[strings.ToLower(h)] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		host := strings.ToLower(c.Hostname())
		if _, ok := allowed[host]; ok {
			return c.Next()
		}
		// c.Hostname() strips the port; check the raw header too.
		raw := strings.ToLower(string(c.Request().Host()))
		if _, ok := allowed[raw]; ok {
			return c.Next()
		}
		return c.Status(fiber.StatusMisdirectedRequest).JSON(fiber.Map{
			"error": "host not allowed",
		})
	}
}
