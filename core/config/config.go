package config

import (
	"reflect"
	"strings"

	"github.com/Pallavikumarimdb/mcp-use/core/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the mcp-use CLI process.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration passed to the MCP server wrapper.
	Server ServerConfig `mapstructure:"server"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
}

// ServerConfig is the environment-facing server section. It feeds the
// construction-time options of the server wrapper; the wrapper applies its
// own defaults for anything left unset.
type ServerConfig struct {
	// Name identifies the server over the MCP protocol.
	Name string `mapstructure:"name" default:"mcp-use"`
	// Host is the bind address.
	Host string `mapstructure:"host" default:"0.0.0.0"`
	// Port is the listen port.
	Port int `mapstructure:"port" default:"8000"`
	// Debug exposes the debug routes (/docs, /inspector, /openmcp.json).
	Debug bool `mapstructure:"debug" default:"false"`
	// DNSRebindingProtection force-enables Host header validation. When
	// false, the wrapper derives the policy from the bind address.
	DNSRebindingProtection bool `mapstructure:"dns_rebinding_protection" default:"false"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env file if it exists
	// We construct the path to .env
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. SERVER_PORT -> server.port)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		// Build the key
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
