package cmd

import (
	"fmt"
	"os"

	"github.com/gbianchi/impara/internal/app"
	"github.com/gbianchi/impara/internal/config"
	"github.com/gbianchi/impara/internal/content"
	"github.com/gbianchi/impara/internal/progress"
	"github.com/gbianchi/impara/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := config.Load(nil)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	registry, err := content.Load(cfg.PacksDir, func(path string, err error) {
		fmt.Fprintf(os.Stderr, "skipping content pack %s: %v\n", path, err)
	})
	if err != nil {
		return fmt.Errorf("load content packs: %w", err)
	}

	tracker := progress.NewTracker(st.ProgressRepo(), st.AchievementRepo(), cfg.Thresholds)

	return app.Run(app.Deps{
		Registry:       registry,
		Tracker:        tracker,
		Prefs:          st.PrefsRepo(),
		TimedQuestions: cfg.TimedQuestions,
	})
}
