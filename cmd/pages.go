package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"github.com/griffedoc/griffedoc/internal/index"
)

var pagesJSON bool

var pagesCmd = &cobra.Command{
	Use:   "pages",
	Short: "Enumerate every addressable documentation page",
	Long:  `Lists one entry per module across all loaded packages — the exact page set a static site build has to pre-render.`,
	Run:   runPages,
}

func init() {
	pagesCmd.Flags().BoolVar(&pagesJSON, "json", false, "output as JSON")
}

func runPages(cmd *cobra.Command, args []string) {
	_, store, err := loadStore(cmd.Context())
	if err != nil {
		log.Fatalf("failed to load docs: %v", err)
	}

	pages := index.AllPages(store)
	if pagesJSON {
		out, _ := json.MarshalIndent(pages, "", "  ")
		fmt.Println(string(out))
		return
	}

	for _, p := range pages {
		if len(p.Path) == 0 {
			fmt.Printf("/%s\n", p.Package)
			continue
		}
		fmt.Printf("/%s/%s\n", p.Package, strings.Join(p.Path, "/"))
	}
}
