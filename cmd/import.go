package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/questline/internal/skilldoc"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <decomposition.json>",
	Short: "Import a goal decomposition into the database",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}
		doc, err := skilldoc.Parse(raw)
		if err != nil {
			return err
		}

		tracker, closeStore, err := openTracker(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		if err := tracker.ImportGoal(cmd.Context(), doc); err != nil {
			return err
		}

		skills := 0
		for _, q := range doc.Quests {
			skills += len(q.Skills)
		}
		fmt.Printf("Imported goal %s: %d quests, %d skills\n", doc.GoalID, len(doc.Quests), skills)
		return nil
	},
}
