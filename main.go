// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/fit-journal/cliparse"
	"github.com/danielhkuo/fit-journal/router"
	"github.com/danielhkuo/fit-journal/store"
)

func main() {
	var err error

	// Load .env if present; real env vars take precedence
	godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Open the document store and load once, seeding on first run.
	// A corrupt document file is fatal here rather than on first request.
	st := store.Open(cfg.DataFile)
	if _, err := st.Load(); err != nil {
		slog.Error("document load failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Document store ready", "file", cfg.DataFile)

	// Create router
	handler := router.NewRouter(st, cfg)

	// Create server
	server := http.Server{
		Handler: handler,
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
