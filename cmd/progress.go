package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/gbianchi/impara/internal/config"
	"github.com/gbianchi/impara/internal/progress"
	"github.com/gbianchi/impara/internal/store"
	"github.com/spf13/cobra"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Print the stored progress report",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(nil)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		tracker := progress.NewTracker(st.ProgressRepo(), st.AchievementRepo(), cfg.Thresholds)
		report, err := tracker.Report(context.Background())
		if err != nil {
			return fmt.Errorf("build report: %w", err)
		}

		if len(report.Records) == 0 {
			fmt.Println("No sessions recorded yet.")
			return nil
		}

		fmt.Printf("%-12s  %-16s  %-6s  %-10s  %-7s  %-8s  %s\n",
			"Subject", "Topic", "Level", "Game", "Score", "Attempts", "Done")
		fmt.Println(strings.Repeat("─", 78))
		for _, rec := range report.Records {
			done := ""
			if rec.Completed {
				done = "✓"
			}
			fmt.Printf("%-12s  %-16s  %-6s  %-10s  %2d/%-4d  %-8d  %s\n",
				rec.Subject, rec.Topic, rec.Level, rec.ExerciseID,
				rec.Score, rec.TotalQuestions, rec.Attempts, done)
		}

		fmt.Printf("\nCompleted levels: %d\n", report.CompletedCount)
		if len(report.BySubject) > 0 {
			for subject, n := range report.BySubject {
				fmt.Printf("  %s: %d\n", subject, n)
			}
		}

		if len(report.Achievements) > 0 {
			fmt.Printf("\nTrophies (%d):\n", len(report.Achievements))
			for _, a := range report.Achievements {
				fmt.Printf("  %s — %s\n", a.Name, a.Reason)
			}
		}
		return nil
	},
}
