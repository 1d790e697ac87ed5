// Package config provides configuration management for the mcp-use CLI.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all process settings, divided into subsections:
//   - Server: settings forwarded to the MCP server wrapper (name, host, port, debug, DNS rebinding protection)
//   - Log: logging level and format
//
// Environment variables map onto nested keys with underscores, e.g.
// SERVER_PORT sets server.port and LOG_LEVEL sets log.level.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
