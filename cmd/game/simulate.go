package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"
	"github.com/younwookim/pollo/internal/application/replay"
	"github.com/younwookim/pollo/internal/application/system"
	"github.com/younwookim/pollo/internal/application/world"
)

var (
	flagDuration time.Duration
	flagPlan     string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a playthrough without a window",
	Long: `Run a playthrough of the selected level headless and report how it ended.

The character follows a plan of timed intents. Without a plan it stands still.
A plan is a YAML file:

  seed: 42
  duration: 60s
  steps:
    - at: 0s
      hold: [right]
    - at: 2s
      hold: [right, jump]

Examples:
  pollo simulate --duration 30s --seed 7
  pollo simulate --plan ./plans/rush.yaml`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().DurationVar(&flagDuration, "duration", time.Minute, "Simulated time limit")
	simulateCmd.Flags().StringVar(&flagPlan, "plan", "", "Path to a YAML plan of timed intents")
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	logger := newLogger(cmd.ErrOrStderr())

	plan := &replay.Plan{}
	if flagPlan != "" {
		loaded, err := replay.LoadPlan(flagPlan)
		if err != nil {
			return err
		}
		plan = loaded
	}
	if plan.Duration == 0 || cmd.Flags().Changed("duration") {
		plan.Duration = flagDuration
	}
	if plan.Level != "" && !cmd.Flags().Changed("level") {
		flagLevel = plan.Level
	}

	cfg, content, err := loadConfig()
	if err != nil {
		return err
	}

	s := plan.Seed
	if s == 0 || flagSeed != 0 {
		s = seed()
	}
	ctx := world.NewContext(cfg, content, nil, logger, rand.New(rand.NewSource(s)))
	w, err := world.New(ctx, content, &system.Intents{})
	if err != nil {
		return err
	}

	frame := time.Second / time.Duration(max(cfg.Physics.Display.TPS, 1))
	logger.Debug("simulating", "level", content.ID, "seed", s, "duration", plan.Duration, "steps", len(plan.Steps))
	res := replay.Simulate(w, *plan, frame)
	logger.Info("simulation finished", "ended", res.Ended, "elapsed", res.Elapsed)

	outcome := "none"
	if res.Ended {
		outcome = res.Outcome.String()
	}
	fmt.Fprintf(cmd.OutOrStdout(), "outcome=%s elapsed=%s coins=%d bottles=%d health=%.0f\n",
		outcome, res.Elapsed.Round(time.Millisecond), res.Coins, res.Bottles, res.Health)
	return nil
}
