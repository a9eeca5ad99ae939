package cmd

import (
	"fmt"

	"github.com/abhisek/questline/internal/progress"
	"github.com/abhisek/questline/internal/weekplan"
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan <quest-id>",
	Short: "Generate and save week plans for an imported quest",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlan,
}

func init() {
	planCmd.Flags().Int("days", 0, "Practice days for the quest (required)")
	planCmd.Flags().Int("start-week", 1, "Global week number of the quest's first week")
	planCmd.Flags().String("previous", "", "Previous quest ID, for cross-quest warmup reviews")
	planCmd.Flags().String("goal", "", "Goal ID (required)")
	planCmd.Flags().String("user", "", "User ID")
	planCmd.Flags().Bool("activate", false, "Activate the first generated week")
	_ = planCmd.MarkFlagRequired("days")
	_ = planCmd.MarkFlagRequired("goal")
}

func runPlan(cmd *cobra.Command, args []string) error {
	questID := args[0]
	days, _ := cmd.Flags().GetInt("days")
	startWeek, _ := cmd.Flags().GetInt("start-week")
	previous, _ := cmd.Flags().GetString("previous")
	goalID, _ := cmd.Flags().GetString("goal")
	userID, _ := cmd.Flags().GetString("user")
	activate, _ := cmd.Flags().GetBool("activate")

	tracker, closeStore, err := openTracker(cmd)
	if err != nil {
		return err
	}
	defer closeStore()

	gen := weekplan.NewGenerator(weekplan.DefaultConfig(), nil)
	plans, err := tracker.ScheduleQuest(cmd.Context(), gen, goalID, userID, progress.QuestSchedule{
		QuestID:         questID,
		PracticeDays:    days,
		StartWeekNumber: startWeek,
		PreviousQuestID: previous,
	})
	if err != nil {
		return err
	}

	for _, p := range plans {
		printWeekPlan(p)
	}

	if activate && len(plans) > 0 {
		if err := tracker.ActivatePlan(cmd.Context(), goalID, plans[0].ID); err != nil {
			return err
		}
		fmt.Printf("Activated week %d (%s)\n", plans[0].WeekNumber, plans[0].ID)
	}
	return nil
}

func printWeekPlan(p *weekplan.WeekPlan) {
	fmt.Printf("Week %d (%s) — %s\n", p.WeekNumber, p.ID, p.Theme)
	fmt.Printf("  %s\n", p.WeeklyCompetence)
	for _, d := range p.Days {
		date := d.ScheduledDate.Format("Mon Jan 2")
		switch {
		case d.IsCatchUp():
			fmt.Printf("  Day %d  %s  catch-up\n", d.DayNumber, date)
		case d.ReviewSkillID != "":
			fmt.Printf("  Day %d  %s  %s (review: %s)\n", d.DayNumber, date, d.SkillID, d.ReviewSkillID)
		default:
			fmt.Printf("  Day %d  %s  %s\n", d.DayNumber, date, d.SkillID)
		}
	}
}
