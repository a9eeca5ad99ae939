package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats <goal-id>",
	Short: "Show mastery progress for a goal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		goalID := args[0]

		tracker, closeStore, err := openTracker(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		summary, err := tracker.GoalSummary(cmd.Context(), goalID)
		if err != nil {
			return err
		}

		fmt.Printf("Goal %s: %d skills\n", goalID, summary.Total)
		fmt.Printf("  mastered   %3d (%.0f%%)\n", summary.Mastered, summary.MasteredPercent*100)
		fmt.Printf("  practicing %3d (%.0f%%)\n", summary.Practicing, summary.PracticingPercent*100)
		fmt.Printf("  not started %2d (%.0f%%)\n", summary.NotStarted, summary.NotStartedPercent*100)

		locked, err := tracker.LockedReasons(cmd.Context(), goalID)
		if err != nil {
			return err
		}
		if len(locked) == 0 {
			return nil
		}

		ids := make([]string, 0, len(locked))
		for id := range locked {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		fmt.Println("Locked skills:")
		for _, id := range ids {
			fmt.Printf("  %s waits on:\n", id)
			for _, m := range locked[id] {
				fmt.Printf("    %s (%s)\n", m.SkillID, m.Title)
			}
		}
		return nil
	},
}
