package cmd

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/Pallavikumarimdb/mcp-use/core/config"
	"github.com/Pallavikumarimdb/mcp-use/core/logger"
	"github.com/Pallavikumarimdb/mcp-use/server"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var debugFlag bool

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Starts the MCP server on the configured host and port.
The --debug flag elevates debug mode at run time, exposing the
/docs, /inspector and /openmcp.json routes.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Build the server from the env-facing config. Boolean flags
		// are only forwarded when set so the wrapper's host-derived
		// defaulting stays in charge otherwise.
		opts := []server.Option{
			server.WithHost(cfg.Server.Host),
			server.WithPort(cfg.Server.Port),
			server.WithLogger(logg),
		}
		if cfg.Server.Debug {
			opts = append(opts, server.WithDebug(true))
		}
		if cfg.Server.DNSRebindingProtection {
			opts = append(opts, server.WithDNSRebindingProtection(true))
		}

		srv := server.New(cfg.Server.Name, opts...)

		// 4. Run until interrupted
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		var runOpts []server.RunOption
		if debugFlag {
			runOpts = append(runOpts, server.RunWithDebug(true))
		}

		if err := srv.Run(ctx, runOpts...); err != nil {
			logg.Fatal("Server failed", zap.Error(err))
		}
	},
}

func init() {
	serveCmd.Flags().BoolVar(&debugFlag, "debug", false, "elevate debug mode at run time")
	RootCmd.AddCommand(serveCmd)
}
