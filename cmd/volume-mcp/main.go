// volume-mcp serves the MCP tool surface over stdio. It can run against
// the local database (default) or a remote voluserved instance over its
// REST API (-remote).
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/Joshfkon/workout-app-sub012/internal/advisor"
	"github.com/Joshfkon/workout-app-sub012/internal/config"
	"github.com/Joshfkon/workout-app-sub012/internal/mcp"
	"github.com/Joshfkon/workout-app-sub012/internal/storage"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file (local mode)")
	remoteURL := flag.String("remote", "", "base URL of a remote voluserved instance (e.g. http://volume-server:8080)")
	flag.Parse()

	// Stdout carries the MCP protocol; logs go to stderr.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	var ds mcp.DataSource

	if *remoteURL != "" {
		ds = mcp.NewHTTPClient(*remoteURL)
		log.Info("mcp server starting", "mode", "remote", "url", *remoteURL)
	} else {
		cfg, err := config.Load(*configPath)
		if err != nil {
			log.Error("failed to load config", "error", err)
			os.Exit(1)
		}

		db, err := storage.New(context.Background(), cfg.Database.DSN())
		if err != nil {
			log.Error("failed to connect database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		ds = advisor.New(db, log)
		log.Info("mcp server starting", "mode", "local")
	}

	s := mcp.New(ds, Version, log)

	if err := mcpserver.ServeStdio(s); err != nil {
		log.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}
