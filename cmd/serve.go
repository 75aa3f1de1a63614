package cmd

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/griffedoc/griffedoc/internal/server"
)

var serveListen string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the documentation JSON API over HTTP",
	Long:  `Loads the documentation corpus and serves it as a JSON API for the website frontend: packages, navigation, pages, rendered docs, and search.`,
	Run:   runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveListen, "listen", "", "listen address (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, store, err := loadStore(ctx)
	if err != nil {
		log.Fatalf("failed to load docs: %v", err)
	}

	addr := cfg.Server.Listen
	if serveListen != "" {
		addr = serveListen
	}

	srv := server.New(store, newSearcher(cfg, store), addr)
	if err := srv.Start(ctx); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
