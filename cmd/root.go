package cmd

import (
	"github.com/abhisek/questline/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "questline",
	Short: "Skill progression and scheduling engine",
	Long:  "Questline — turns a decomposed learning goal into scheduled weeks of daily practice drills and tracks mastery as outcomes come in.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides QUESTLINE_DB env var)")

	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(drillCmd)
	rootCmd.AddCommand(outcomeCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then QUESTLINE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
