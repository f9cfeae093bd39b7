// pollo is a side-scrolling platformer: walk, jump on chickens, collect
// coins and bottles, and defeat the giant hen at the end of the level.
//
// Usage:
//
//	pollo                    - Play in a window
//	pollo simulate           - Run a playthrough headless and report the outcome
//
// Global flags:
//
//	--config <dir>  - Directory with YAML overrides of the embedded config
//	--assets <dir>  - Directory with the img/ and audio/ trees (default: assets)
//	--level <id>    - Level to play (default: level1)
//	--seed <value>  - RNG seed (0 = random based on time)
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/younwookim/pollo/internal/infrastructure/config"
)

var (
	// Global flags
	flagConfig  string
	flagAssets  string
	flagLevel   string
	flagSeed    int64
	flagScale   float64
	flagMute    bool
	flagDebug   bool
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pollo",
	Short: "El Pollo Loco - a side-scrolling platformer",
	Long: `Walk through the desert, stomp chickens, collect coins and salsa
bottles, and throw the bottles at the giant hen waiting at the end.

Controls:
  Left/Right - Walk
  Space      - Jump
  D          - Throw a bottle
  M          - Sound on/off
  Esc        - Back to the menu

Examples:
  pollo
  pollo --assets ./assets --scale 1.5
  pollo simulate --duration 30s --seed 7`,
	SilenceUsage: true,
	RunE:         runGame,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Directory with YAML config overrides")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "assets", "Directory with the game's images and sounds")
	rootCmd.PersistentFlags().StringVar(&flagLevel, "level", "level1", "Level to play")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Log debug messages")
	rootCmd.Flags().Float64Var(&flagScale, "scale", 0, "Window scale (0 = configured scale)")
	rootCmd.Flags().BoolVar(&flagMute, "mute", false, "Start muted")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Frame every hit box")

	rootCmd.AddCommand(simulateCmd)
}

func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "pollo",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// loadConfig loads the game config and the selected level
func loadConfig() (*config.GameConfig, *config.LevelConfig, error) {
	loader := config.NewDefaultLoader()
	if flagConfig != "" {
		loader = config.NewLoader(flagConfig)
	}
	cfg, err := loader.LoadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	content, err := loader.LoadLevel(flagLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("load level: %w", err)
	}
	return cfg, content, nil
}

// seed returns the seed of the next playthrough
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}
