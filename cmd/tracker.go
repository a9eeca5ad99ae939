package cmd

import (
	"fmt"

	"github.com/abhisek/questline/internal/mastery"
	"github.com/abhisek/questline/internal/progress"
	"github.com/abhisek/questline/internal/store"
	"github.com/spf13/cobra"
)

// openTracker opens the store and builds a tracker over it. The caller owns
// the returned close func.
func openTracker(cmd *cobra.Command) (*progress.Tracker, func() error, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	tracker := progress.NewTracker(st.SkillRepo(), st.WeekPlanRepo(), st.EventRepo(), mastery.DefaultThresholds())
	return tracker, st.Close, nil
}
