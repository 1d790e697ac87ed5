package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }
func intptr(i int) *int       { return &i }
func boolptr(b bool) *bool    { return &b }

func TestOptionsMerge(t *testing.T) {
	base := Options{
		Host:  strptr("127.0.0.1"),
		Port:  intptr(3000),
		Debug: boolptr(false),
	}

	t.Run("OverrideWins", func(t *testing.T) {
		out := base.merge(Options{Debug: boolptr(true), Port: intptr(9000)})
		assert.Equal(t, "127.0.0.1", *out.Host)
		assert.Equal(t, 9000, *out.Port)
		assert.True(t, *out.Debug)
	})

	t.Run("NilFieldsInherit", func(t *testing.T) {
		out := base.merge(Options{})
		assert.Equal(t, "127.0.0.1", *out.Host)
		assert.Equal(t, 3000, *out.Port)
		assert.False(t, *out.Debug)
	})

	t.Run("BaseUnmodified", func(t *testing.T) {
		_ = base.merge(Options{Port: intptr(1)})
		assert.Equal(t, 3000, *base.Port)
	})
}

func TestResolveSettingsDefaults(t *testing.T) {
	s := resolveSettings("test", Options{})

	assert.Equal(t, "test", s.Name)
	assert.Equal(t, DefaultHost, s.Host)
	assert.Equal(t, DefaultPort, s.Port)
	assert.False(t, s.Debug)
	assert.Nil(t, s.TransportSecurity)
}

func TestResolveSettingsEchoesExplicitValues(t *testing.T) {
	s := resolveSettings("test", Options{
		Host:  strptr("10.0.0.5"),
		Port:  intptr(8443),
		Debug: boolptr(true),
	})

	assert.Equal(t, "10.0.0.5", s.Host)
	assert.Equal(t, 8443, s.Port)
	assert.True(t, s.Debug)
}

func TestDeriveSecurity(t *testing.T) {
	tests := []struct {
		name        string
		host        string
		explicit    *bool
		wantNil     bool
		wantEnabled bool
	}{
		{"LoopbackDefaultsOn", "127.0.0.1", nil, false, true},
		{"LocalhostDefaultsOn", "localhost", nil, false, true},
		{"IPv6LoopbackDefaultsOn", "::1", nil, false, true},
		{"WildcardDefaultsNil", "0.0.0.0", nil, true, false},
		{"ArbitraryHostDefaultsNil", "api.internal", nil, true, false},
		{"ExplicitOnWildcard", "0.0.0.0", boolptr(true), false, true},
		{"ExplicitOffLoopback", "127.0.0.1", boolptr(false), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := deriveSecurity(tt.host, 8000, tt.explicit)
			if tt.wantNil {
				assert.Nil(t, p)
				return
			}
			require.NotNil(t, p)
			assert.Equal(t, tt.wantEnabled, p.EnableDNSRebindingProtection)
		})
	}
}

func TestAllowedHostsLoopback(t *testing.T) {
	p := deriveSecurity("127.0.0.1", 3000, nil)
	require.NotNil(t, p)

	assert.Contains(t, p.AllowedHosts, "localhost:3000")
	assert.Contains(t, p.AllowedHosts, "127.0.0.1:3000")
	assert.Contains(t, p.AllowedHosts, "localhost")
}
