package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

var (
	searchPackage string
	searchLimit   int
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the loaded documentation",
	Example: `  griffedoc search Fabric
  griffedoc search --package cfabric "load"
  griffedoc search --limit 5 tokenizer`,
	Args: cobra.ExactArgs(1),
	Run:  runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchPackage, "package", "", "restrict to one package")
	searchCmd.Flags().IntVar(&searchLimit, "limit", 10, "max results")
}

func runSearch(cmd *cobra.Command, args []string) {
	cfg, store, err := loadStore(cmd.Context())
	if err != nil {
		log.Fatalf("failed to load docs: %v", err)
	}

	results := newSearcher(cfg, store).Search(args[0], searchPackage, searchLimit)
	if len(results) == 0 {
		fmt.Println("no results")
		return
	}

	for i, r := range results {
		fmt.Printf("%d. [%s] %s — %s\n", i+1, r.Type, r.Name, r.Path)
		if r.Summary != "" {
			fmt.Printf("   %s\n", r.Summary)
		}
	}
}
