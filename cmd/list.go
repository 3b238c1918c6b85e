package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mhartig/tsheet/internal/store"
	"github.com/mhartig/tsheet/internal/view"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the week's entries grouped by day",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	path := dataPath(loadConfig())
	doc := store.Load(path)
	fmt.Print(view.Render(view.Build(doc)))
	return nil
}
