package main

import (
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/elC0mpa/az-prune/cmd/mcp/tools"
)

func main() {
	cfg := LoadConfig()
	if !cfg.HasSubscription() {
		// Tools still register; subscription-scoped ones will answer with an
		// error until the variable is set.
		fmt.Fprintln(os.Stderr, "AZURE_SUBSCRIPTION_ID is not set")
	}

	s := server.NewMCPServer(
		"az-prune-mcp",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	tools.RegisterAzureTools(s, cfg.SubscriptionID)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
