package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"clearscene/internal/adapters/filesystem"
	mcpadapter "clearscene/internal/adapters/mcp"
	"clearscene/internal/config"
)

func main() {
	rootFlag := flag.String("root", config.RootPath(), "path to the quicklook catalog root")
	flag.Parse()

	repo := filesystem.NewRepository(*rootFlag)

	mcpServer := server.NewMCPServer(
		"clearscene-mcp",
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

	mcpadapter.RegisterReadTools(mcpServer, repo)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("clearscene-mcp: %v", err)
	}
}
