package cmd

import (
	"fmt"
	"strconv"

	"github.com/abhisek/questline/internal/drill"
	"github.com/spf13/cobra"
)

var drillCmd = &cobra.Command{
	Use:   "drill <plan-id> <day-number>",
	Short: "Generate the practice drill for one scheduled day",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		dayNumber, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("day number %q is not a number", args[1])
		}

		tracker, closeStore, err := openTracker(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		engine := drill.NewEngine(drill.DefaultConfig())
		d, err := tracker.GenerateDrill(cmd.Context(), engine, args[0], dayNumber)
		if err != nil {
			return err
		}

		printDrill(d)
		return nil
	},
}

func printDrill(d *drill.DailyDrill) {
	fmt.Printf("Drill %s — skill %s, day %d (%d min)\n", d.ID, d.SkillID, d.DayNumber, d.TotalMinutes)
	if d.Warmup != nil {
		printSection(d.Warmup)
	}
	printSection(&d.Main)
	if d.Stretch != nil {
		printSection(d.Stretch)
	}
	if len(d.BuildsOnQuestIDs) > 0 {
		fmt.Printf("Builds on quests: %v\n", d.BuildsOnQuestIDs)
	}
	for _, w := range d.Warnings {
		fmt.Println("Warning:", w)
	}
}

func printSection(s *drill.Section) {
	fmt.Printf("[%s] %s (%d min)\n", s.Type, s.Title, s.EstimatedMinutes)
	fmt.Printf("  %s\n", s.Action)
	if s.PassSignal != "" {
		fmt.Printf("  Pass: %s\n", s.PassSignal)
	}
	if s.Constraint != "" {
		fmt.Printf("  Constraint: %s\n", s.Constraint)
	}
}
