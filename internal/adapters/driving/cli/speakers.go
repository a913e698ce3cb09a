package cli

import (
	"github.com/spf13/cobra"
)

var speakersCmd = &cobra.Command{
	Use:   "speakers DOCS_DIR",
	Short: "List the speakers found in a transcript directory",
	Args:  cobra.ExactArgs(1),
	RunE:  runSpeakers,
}

func init() {
	rootCmd.AddCommand(speakersCmd)
}

func runSpeakers(cmd *cobra.Command, args []string) error {
	store, err := loadCorpus(cmd, args[0])
	if err != nil {
		return err
	}

	speakers, err := store.Speakers(cmd.Context())
	if err != nil {
		return err
	}

	if len(speakers) == 0 {
		cmd.Println("No speakers found.")
		return nil
	}

	for _, s := range speakers {
		cmd.Println(s)
	}
	return nil
}
