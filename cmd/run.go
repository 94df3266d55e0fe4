package cmd

import (
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/spf13/cobra"

	"github.com/pacelab/pacer/internal/app"
	"github.com/pacelab/pacer/internal/content"
	"github.com/pacelab/pacer/internal/store"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a practice session",
	Long: "Runs a practice session with the simulated learner: an interleaved\n" +
		"schedule is generated, answers are synthesized, and fatigue, breaks,\n" +
		"variations, and retrieval tests all play out against the event store.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

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

		// A discovered API key upgrades the provider from the mock
		// default; generation failures fall back to template text.
		if cfg.Content.Provider == "mock" {
			cfg.Content.Discover()
		}
		provider, err := content.NewProvider(ctx, cfg.Content, events)
		if err != nil {
			fmt.Fprintln(os.Stderr, "content provider not configured:", err)
			fmt.Fprintln(os.Stderr, "falling back to template questions")
			provider = nil
		}

		seed, _ := cmd.Flags().GetUint64("seed")
		if !cmd.Flags().Changed("seed") {
			seed = rand.Uint64()
		}

		runner := app.New(app.Options{
			Events:    events,
			Snapshots: st.SnapshotRepo(),
			Provider:  provider,
			Config:    cfg,
			Seed:      seed,
		})

		summary, err := runner.Simulate(ctx)
		if err != nil {
			return fmt.Errorf("run session: %w", err)
		}

		verbose, _ := cmd.Flags().GetBool("verbose")
		fmt.Println(summary.Render(verbose))
		return nil
	},
}

func init() {
	runCmd.Flags().Uint64("seed", 0, "Seed for deterministic scheduling (random when unset)")
	runCmd.Flags().BoolP("verbose", "v", false, "Print the full question transcript")
}
