package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mhartig/tsheet/internal/store"
)

var removeCmd = &cobra.Command{
	Use:     "remove <id>",
	Aliases: []string{"rm"},
	Short:   "Delete an entry by id",
	Long: `Delete the entry with the given id. An unambiguous id prefix (the
short id shown by "tsheet list") is enough. Removing an id that does not
exist is not an error.`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

func runRemove(cmd *cobra.Command, args []string) error {
	path := dataPath(loadConfig())
	doc := store.Load(path)

	id, err := store.ResolveID(doc, args[0])
	if errors.Is(err, store.ErrNotFound) {
		fmt.Printf("No entry matches %q; nothing removed.\n", args[0])
		return nil
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	mustSave(path, store.Remove(doc, id))
	fmt.Printf("Removed entry %s.\n", id)
	return nil
}
