package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mhartig/tsheet/internal/model"
	"github.com/mhartig/tsheet/internal/store"
	"github.com/mhartig/tsheet/internal/timecalc"
)

var (
	addEmployee string
	addDay      string
	addTimeIn   string
	addTimeOut  string
	addNotes    string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a time entry",
	Long: `Record a time-in/time-out entry for an employee on a weekday.

Times use the 24-hour HH:MM form. The literal value "now" is replaced by
the current wall-clock time, e.g. --in now. A time out clock-earlier than
the time in means the shift ran past midnight into the next day.`,
	Args: cobra.NoArgs,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addEmployee, "employee", "", "Employee name (default from config)")
	addCmd.Flags().StringVar(&addDay, "day", "", "Weekday, e.g. Monday or mon")
	addCmd.Flags().StringVar(&addTimeIn, "in", "", `Time in as HH:MM, or "now"`)
	addCmd.Flags().StringVar(&addTimeOut, "out", "", `Time out as HH:MM, or "now"`)
	addCmd.Flags().StringVar(&addNotes, "notes", "", "Optional notes")
}

func runAdd(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	path := dataPath(cfg)

	employee := addEmployee
	if employee == "" {
		employee = cfg.DefaultEmployee
	}

	day, ok := model.CanonicalDay(addDay)
	if !ok {
		fmt.Fprintf(os.Stderr, "Invalid --day %q: want Monday through Sunday.\n", addDay)
		os.Exit(1)
	}

	doc := store.Load(path)
	doc, err := store.Add(doc, model.Entry{
		Employee: employee,
		Day:      day,
		TimeIn:   resolveClock(addTimeIn),
		TimeOut:  resolveClock(addTimeOut),
		Notes:    addNotes,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	mustSave(path, doc)

	added := doc.Entries[len(doc.Entries)-1]
	hours, _ := timecalc.DurationHours(added.TimeIn, added.TimeOut)
	fmt.Printf("Added %s on %s, %s–%s (%sh).\n",
		added.Employee, added.Day, added.TimeIn, added.TimeOut,
		timecalc.RoundedHours(hours))
	return nil
}

// resolveClock substitutes the current wall-clock time for the literal
// "now"; everything else passes through for validation in the store.
func resolveClock(s string) string {
	if s == "now" {
		return timecalc.Clock(time.Now())
	}
	return s
}
