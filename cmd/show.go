package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/griffedoc/griffedoc/internal/index"
	"github.com/griffedoc/griffedoc/internal/render"
)

var showCmd = &cobra.Command{
	Use:   "show <package> [submodule ...]",
	Short: "Render one documentation page as markdown",
	Example: `  griffedoc show cfabric
  griffedoc show cfabric layers dense`,
	Args: cobra.MinimumNArgs(1),
	Run:  runShow,
}

func runShow(cmd *cobra.Command, args []string) {
	_, store, err := loadStore(cmd.Context())
	if err != nil {
		log.Fatalf("failed to load docs: %v", err)
	}

	pkg, path := args[0], args[1:]
	mod, ok := index.Lookup(store, pkg, path)
	if !ok {
		log.Fatalf("page not found: %s", render.Title(pkg, path))
	}
	fmt.Print(render.ModulePage(pkg, path, mod))
}
