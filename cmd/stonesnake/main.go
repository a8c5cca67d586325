// stonesnake is a snake game on a wrap-around grid scattered with stones.
//
// Usage:
//
//	stonesnake               - Play in the terminal
//	stonesnake play          - Play in the terminal
//	stonesnake window        - Play in a desktop window
//	stonesnake config        - Print the effective configuration as YAML
//
// Global flags:
//
//	--config <path>    - Custom config YAML
//	--seed <value>     - RNG seed for reproducible rounds (0 = time based)
//	--fps <rate>       - Override the tick rate
//	--obstacles <n>    - Override the stone count
//	--log-file <path>  - Write logs to a file in terminal mode
//	--debug            - Enable debug logging
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/stonesnake/internal/config"
)

var (
	// Global flags
	flagConfig    string
	flagSeed      int64
	flagFPS       int
	flagObstacles int
	flagLogFile   string
	flagDebug     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "stonesnake",
	Short: "Stone Snake - a wrap-around snake game among stones",
	Long: `Stone Snake is a snake game on a wrap-around grid. Eat the food to grow,
avoid the stones and your own body. A crash starts a fresh round with the
stones reshuffled.

Controls:
  Arrows/WASD  - Steer
  P/Esc        - Pause
  Q/Ctrl+C     - Quit

Examples:
  stonesnake
  stonesnake window --fps 10
  stonesnake play --seed 42 --obstacles 30
  stonesnake config > ~/.stonesnake/snake.yaml`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (ticks per second)")
	rootCmd.PersistentFlags().IntVar(&flagObstacles, "obstacles", 0, "Stone count override")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file for terminal mode")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger writing to w.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "stonesnake",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// loadConfig resolves the config file, applies flag overrides and validates
// the result once.
func loadConfig(cmd *cobra.Command, logger *log.Logger) (config.SnakeConfig, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.Timing.TickRate = flagFPS
	}
	if flags.Changed("obstacles") {
		cfg.Obstacles.Count = flagObstacles
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", source, err)
	}

	logger.Debug("config loaded", "source", source,
		"board", fmt.Sprintf("%dx%d", cfg.Board.Width, cfg.Board.Height),
		"stones", cfg.Obstacles.Count, "tps", cfg.Timing.TickRate)
	return cfg, nil
}

// resolveSeed returns the seed flag or a time-based seed.
func resolveSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}
