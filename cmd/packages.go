package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/griffedoc/griffedoc/internal/index"
)

var packagesCmd = &cobra.Command{
	Use:   "packages",
	Short: "List loaded packages and their record counts",
	Run:   runPackages,
}

func runPackages(cmd *cobra.Command, args []string) {
	_, store, err := loadStore(cmd.Context())
	if err != nil {
		log.Fatalf("failed to load docs: %v", err)
	}

	counts := make(map[string]int)
	for _, r := range index.Build(store) {
		counts[r.Package]++
	}

	for _, name := range store.Names() {
		fmt.Printf("  %s: %d records\n", name, counts[name])
	}
}
