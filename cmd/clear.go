package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mhartig/tsheet/internal/store"
)

var clearYes bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every entry in the timesheet",
	Args:  cobra.NoArgs,
	RunE:  runClear,
}

func init() {
	clearCmd.Flags().BoolVar(&clearYes, "yes", false, "Skip the confirmation prompt")
}

func runClear(cmd *cobra.Command, args []string) error {
	path := dataPath(loadConfig())
	doc := store.Load(path)

	if len(doc.Entries) == 0 {
		fmt.Println("Timesheet is already empty.")
		return nil
	}

	if !clearYes && !confirm(fmt.Sprintf("Delete all %d entries? This cannot be undone.", len(doc.Entries))) {
		fmt.Println("Aborted; nothing deleted.")
		return nil
	}

	mustSave(path, store.Clear())
	fmt.Printf("Cleared %d entries.\n", len(doc.Entries))
	return nil
}
