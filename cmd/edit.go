package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mhartig/tsheet/internal/model"
	"github.com/mhartig/tsheet/internal/store"
)

var (
	editEmployee string
	editDay      string
	editTimeIn   string
	editTimeOut  string
	editNotes    string
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Pull an entry back into a draft and resubmit it",
	Long: `Edit works as remove-then-refill: the entry is taken out of the
timesheet and its fields become a draft. Flags override draft fields and
the draft is resubmitted as a new entry (with a new id, appended at the
end). Without flags the entry stays removed and the prefilled add command
is printed instead, ready to adjust and run.`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().StringVar(&editEmployee, "employee", "", "Replace the employee name")
	editCmd.Flags().StringVar(&editDay, "day", "", "Replace the weekday")
	editCmd.Flags().StringVar(&editTimeIn, "in", "", "Replace the time in (HH:MM)")
	editCmd.Flags().StringVar(&editTimeOut, "out", "", "Replace the time out (HH:MM)")
	editCmd.Flags().StringVar(&editNotes, "notes", "", "Replace the notes")
}

func runEdit(cmd *cobra.Command, args []string) error {
	path := dataPath(loadConfig())
	doc := store.Load(path)

	id, err := store.ResolveID(doc, args[0])
	if errors.Is(err, store.ErrNotFound) {
		fmt.Printf("No entry matches %q; nothing to edit.\n", args[0])
		return nil
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	doc, draft, err := store.Edit(doc, id)
	if err != nil {
		// ResolveID already proved the id exists.
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	// The original entry is gone from this point on, resubmitted or not.
	mustSave(path, doc)

	applyOverrides(cmd, &draft)

	if !cmd.Flags().Changed("employee") && !cmd.Flags().Changed("day") &&
		!cmd.Flags().Changed("in") && !cmd.Flags().Changed("out") &&
		!cmd.Flags().Changed("notes") {
		fmt.Printf("Entry %s pulled into a draft. Resubmit with:\n", id)
		fmt.Printf("  tsheet add --employee %q --day %s --in %s --out %s --notes %q\n",
			draft.Employee, draft.Day, draft.TimeIn, draft.TimeOut, draft.Notes)
		return nil
	}

	day, ok := model.CanonicalDay(draft.Day)
	if !ok {
		fmt.Fprintf(os.Stderr, "Invalid --day %q: want Monday through Sunday.\n", draft.Day)
		os.Exit(1)
	}

	doc, err = store.Add(doc, model.Entry{
		Employee: draft.Employee,
		Day:      day,
		TimeIn:   resolveClock(draft.TimeIn),
		TimeOut:  resolveClock(draft.TimeOut),
		Notes:    draft.Notes,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Draft rejected: %v\nThe original entry was removed; resubmit with:\n", err)
		fmt.Fprintf(os.Stderr, "  tsheet add --employee %q --day %s --in %s --out %s --notes %q\n",
			draft.Employee, draft.Day, draft.TimeIn, draft.TimeOut, draft.Notes)
		os.Exit(1)
	}

	mustSave(path, doc)
	fmt.Printf("Entry %s replaced (new id %s).\n", id, doc.Entries[len(doc.Entries)-1].ID)
	return nil
}

// applyOverrides copies changed flag values onto the draft.
func applyOverrides(cmd *cobra.Command, draft *store.Draft) {
	if cmd.Flags().Changed("employee") {
		draft.Employee = editEmployee
	}
	if cmd.Flags().Changed("day") {
		draft.Day = editDay
	}
	if cmd.Flags().Changed("in") {
		draft.TimeIn = editTimeIn
	}
	if cmd.Flags().Changed("out") {
		draft.TimeOut = editTimeOut
	}
	if cmd.Flags().Changed("notes") {
		draft.Notes = editNotes
	}
}
