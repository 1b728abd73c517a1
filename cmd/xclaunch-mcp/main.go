package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	mcpadapter "xclaunch/internal/adapters/mcp"
	"xclaunch/internal/adapters/sqlite"
	"xclaunch/internal/config"
	"xclaunch/internal/logging"
)

var (
	configPath string
	dbPath     string
)

var rootCmd = &cobra.Command{
	Use:          "xclaunch-mcp",
	Short:        "Serve the xclaunch registry to MCP clients over stdio",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "config file (default "+config.DefaultConfigPath()+")")
	rootCmd.Flags().StringVar(&dbPath, "db", "", "registry database (overrides database.path)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if dbPath != "" {
		cfg.Database.Path = config.ExpandHome(dbPath)
	}

	// stdout carries the protocol; logs go to stderr
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	db, err := sqlite.Open(cfg.Database.Path, logger)
	if err != nil {
		return fmt.Errorf("failed to open registry: %w", err)
	}
	defer func() { _ = sqlite.Close(db) }()

	mcpServer := server.NewMCPServer(
		"xclaunch-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, sqlite.NewStore(db, logger))

	logger.Debug("serving mcp on stdio", zap.String("db", cfg.Database.Path))
	return server.ServeStdio(mcpServer)
}
