package cmd

import (
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/abhisek/questline/internal/skilldoc"
	"github.com/abhisek/questline/internal/skillgraph"
	"github.com/abhisek/questline/internal/weekplan"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview <decomposition.json>",
	Short: "Preview the full schedule for a decomposition (no database)",
	Long: `Lay out every quest of a decomposition on the calendar and print the result.

This is a stateless developer tool — nothing is persisted. Useful for
evaluating a decomposition's pacing before importing it.`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().Uint64("seed", 0, "Seed for review sampling (0 uses a random seed)")
	previewCmd.Flags().String("start", "", "Start date as YYYY-MM-DD (defaults to today)")
}

func runPreview(cmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read %s: %w", args[0], err)
	}
	doc, err := skilldoc.Parse(raw)
	if err != nil {
		return err
	}
	allSkills, err := doc.Skills()
	if err != nil {
		return err
	}

	startDate := time.Now()
	if s, _ := cmd.Flags().GetString("start"); s != "" {
		startDate, err = time.Parse("2006-01-02", s)
		if err != nil {
			return fmt.Errorf("parse start date %q: %w", s, err)
		}
	}

	var rng *rand.Rand
	if seed, _ := cmd.Flags().GetUint64("seed"); seed != 0 {
		rng = rand.New(rand.NewPCG(seed, seed))
	}
	gen := weekplan.NewGenerator(weekplan.DefaultConfig(), rng)

	byQuest := make(map[string][]skillgraph.Skill)
	for _, s := range allSkills {
		byQuest[s.QuestID] = append(byQuest[s.QuestID], s)
	}

	week := 1
	var prevQuestID string
	for _, q := range doc.Quests {
		plans, err := gen.GenerateForQuest(weekplan.QuestContext{
			GoalID:              doc.GoalID,
			UserID:              doc.UserID,
			QuestID:             q.QuestID,
			Skills:              byQuest[q.QuestID],
			PracticeDays:        q.PracticeDays,
			StartWeekNumber:     week,
			PreviousQuestSkills: byQuest[prevQuestID],
			StartDate:           startDate,
		})
		if err != nil {
			return fmt.Errorf("quest %s: %w", q.QuestID, err)
		}

		fmt.Printf("=== Quest %s — %s (%d practice days)\n", q.QuestID, q.Title, q.PracticeDays)
		for _, p := range plans {
			printWeekPlan(p)
		}

		week += len(plans)
		prevQuestID = q.QuestID
		startDate = weekplan.NextMonday(plans[len(plans)-1].StartDate)
	}
	return nil
}
