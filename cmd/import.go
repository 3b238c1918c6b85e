package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mhartig/tsheet/internal/store"
)

var importYes bool

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Merge entries from an exported timesheet file",
	Long: `Read a timesheet JSON file (as written by "tsheet export") and
append its entries to the current timesheet. Entries without a valid
weekday, employee, or times are skipped. The merge is strictly additive:
existing entries are never removed or rewritten, and nothing is
deduplicated. The imported count is shown before anything is committed.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().BoolVar(&importYes, "yes", false, "Skip the confirmation prompt")
}

func runImport(cmd *cobra.Command, args []string) error {
	path := dataPath(loadConfig())
	doc := store.Load(path)

	raw, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, "error reading import file:", err)
		os.Exit(1)
	}

	merged, count, err := store.ImportMerge(doc, raw)
	if errors.Is(err, store.ErrBadFormat) {
		fmt.Fprintf(os.Stderr, "%s: %v\n", args[0], err)
		os.Exit(1)
	}

	if count == 0 {
		fmt.Println("No importable entries found; timesheet unchanged.")
		return nil
	}

	if !importYes && !confirm(fmt.Sprintf("Import %d entries from %s?", count, args[0])) {
		fmt.Println("Aborted; timesheet unchanged.")
		return nil
	}

	mustSave(path, merged)
	fmt.Printf("Imported %d entries.\n", count)
	return nil
}
