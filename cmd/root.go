package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/griffedoc/griffedoc/internal/config"
	"github.com/griffedoc/griffedoc/internal/docs"
	"github.com/griffedoc/griffedoc/internal/index"
	"github.com/griffedoc/griffedoc/internal/mcp"
	"github.com/griffedoc/griffedoc/internal/search"
)

var docsDir string

var rootCmd = &cobra.Command{
	Use:   "griffedoc",
	Short: "Browse and search generated Python API documentation",
	Long:  `Loads machine-generated API documentation JSON, indexes it for fuzzy search, and serves it over MCP (default), HTTP, or the terminal.`,
	Run:   runMCP,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("command failed: %v", err)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&docsDir, "docs", "", "documentation directory (overrides config)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(pagesCmd)
	rootCmd.AddCommand(packagesCmd)
}

// loadStore loads config and the documentation corpus shared by every
// command.
func loadStore(ctx context.Context) (*config.Config, *docs.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	if docsDir != "" {
		cfg.Docs.Dir = docsDir
	}
	store, err := docs.Load(ctx, cfg.Docs.Dir, cfg.Docs.Packages)
	if err != nil {
		return nil, nil, err
	}
	return cfg, store, nil
}

func newSearcher(cfg *config.Config, store *docs.Store) *search.Searcher {
	return search.New(index.Build(store), cfg.Search.MinQueryLength, cfg.Search.Limit)
}

func runMCP(cmd *cobra.Command, args []string) {
	cfg, store, err := loadStore(cmd.Context())
	if err != nil {
		log.Fatalf("failed to load docs: %v", err)
	}

	srv := mcp.NewServer(store, newSearcher(cfg, store))
	if err := srv.Run(); err != nil {
		log.Fatalf("mcp server failed: %v", err)
	}
}
