package cmd

import (
	"fmt"

	"github.com/abhisek/questline/internal/mastery"
	"github.com/spf13/cobra"
)

var outcomeCmd = &cobra.Command{
	Use:   "outcome <skill-id> <pass|fail>",
	Short: "Record a drill outcome for a skill",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var outcome mastery.Outcome
		switch args[1] {
		case "pass":
			outcome = mastery.OutcomePass
		case "fail":
			outcome = mastery.OutcomeFail
		default:
			return fmt.Errorf("outcome must be pass or fail, got %q", args[1])
		}
		drillID, _ := cmd.Flags().GetString("drill")

		tracker, closeStore, err := openTracker(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		result, err := tracker.RecordOutcome(cmd.Context(), args[0], outcome, drillID)
		if err != nil {
			return err
		}

		fmt.Printf("%s: %s -> %s (%d passes, streak %d)\n",
			result.SkillID, result.PrevMastery, result.NewMastery,
			result.PassCount, result.ConsecutivePasses)
		if result.JustMastered {
			fmt.Println("Mastered!")
		}
		for _, id := range result.UnlockedSkillIDs {
			fmt.Println("Unlocked:", id)
		}
		if result.MilestoneAvailable {
			fmt.Println("Quest milestone is available.")
		}
		return nil
	},
}

func init() {
	outcomeCmd.Flags().String("drill", "", "Drill ID this outcome resolves")
}
