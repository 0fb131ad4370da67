package main

import (
	"log/slog"
	"os"

	"docs-admin/pkg/config"
	"docs-admin/pkg/handlers"
)

func main() {
	// Initialize config; missing secrets are fatal at startup.
	if err := config.Init(); err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// Make sure the writable roots exist before serving.
	for _, dir := range []string{config.UploadsDir(), config.AdminDataDir()} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			slog.Error("cannot create data directory", "dir", dir, "error", err)
			os.Exit(1)
		}
	}

	r := handlers.NewRouter()

	slog.Info("admin API listening", "addr", config.ListenAddr, "siteRoot", config.SiteRoot)
	if err := r.Run(config.ListenAddr); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}
