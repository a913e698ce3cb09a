package cli

import (
	"github.com/spf13/cobra"
)

var datesCmd = &cobra.Command{
	Use:   "dates DOCS_DIR",
	Short: "List the dates covered by a transcript directory",
	Args:  cobra.ExactArgs(1),
	RunE:  runDates,
}

func init() {
	rootCmd.AddCommand(datesCmd)
}

func runDates(cmd *cobra.Command, args []string) error {
	store, err := loadCorpus(cmd, args[0])
	if err != nil {
		return err
	}

	dates, err := store.Dates(cmd.Context())
	if err != nil {
		return err
	}

	undated, err := store.HasUndated(cmd.Context())
	if err != nil {
		return err
	}

	if len(dates) == 0 && !undated {
		cmd.Println("No transcripts loaded.")
		return nil
	}

	for _, d := range dates {
		cmd.Println(d.Format("2006-01-02"))
	}
	if undated {
		cmd.Println("undated")
	}
	return nil
}
