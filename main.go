package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/rialohq/rialo-dao/chain"
	"github.com/rialohq/rialo-dao/cliparse"
	"github.com/rialohq/rialo-dao/db"
	"github.com/rialohq/rialo-dao/middleware"
	"github.com/rialohq/rialo-dao/poller"
	"github.com/rialohq/rialo-dao/router"
)

func main() {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Connect to the moderation database
	store, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	// Verify connection
	if err := store.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema (tables)
	if err := store.CreateSchema(); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready")

	// Connect to the proposal registry
	source, err := chain.Dial(ctx, cfg.RPCURL, cfg.ContractAddress, cfg.OperatorKey, cfg.ChainID)
	if err != nil {
		slog.Error("chain connection failed", "error", err)
		os.Exit(1)
	}
	if source.ReadOnly() {
		slog.Warn("no operator key configured, running read-only")
	}

	// Start the snapshot poller
	snapshots := poller.New(source, store, cfg.PollInterval)
	go snapshots.Run(ctx)

	// Create router
	mux := router.NewRouter(source, snapshots, store, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		cancel()
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "poll_interval", cfg.PollInterval.String())
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
