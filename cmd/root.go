package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pacelab/pacer/internal/config"
	"github.com/pacelab/pacer/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "pacer",
	Short: "Adaptive practice scheduler",
	Long: "Pacer schedules practice sessions that interleave skills, vary question\n" +
		"presentation, test retrieval at the right moments, and recommend micro-breaks\n" +
		"when fatigue sets in.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PACER_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (overrides PACER_CONFIG env var)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then the config file, then PACER_DB / the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg != nil && cfg.Database.Path != "" {
		return cfg.Database.Path, store.EnsureDir(cfg.Database.Path)
	}
	return store.DefaultDBPath()
}

// loadConfig reads the config file named by --config or the default
// location.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return config.Load(path)
}
