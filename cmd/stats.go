package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pacelab/pacer/internal/app"
	"github.com/pacelab/pacer/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show practice statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		dbPath, err := resolveDBPath(cmd, cfg)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		events, err := st.EventRepo()
		if err != nil {
			return fmt.Errorf("event repo: %w", err)
		}

		report, err := app.BuildStats(cmd.Context(), events, app.DemoSkills(time.Now()))
		if err != nil {
			return fmt.Errorf("build stats: %w", err)
		}

		fmt.Println(report.Render())
		return nil
	},
}
