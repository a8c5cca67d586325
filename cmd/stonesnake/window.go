package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/stonesnake/internal/games/snake"
	"github.com/vovakirdan/stonesnake/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Play in a desktop window sized board width x cell size by board height x
cell size pixels (640x480 with the defaults). Logs go to stderr.`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(cmd *cobra.Command, args []string) error {
	logger := newLogger(os.Stderr)

	cfg, err := loadConfig(cmd, logger)
	if err != nil {
		return err
	}

	round, err := snake.NewRound(cfg, resolveSeed(), logger)
	if err != nil {
		return err
	}

	if err := window.Run(round, cfg, logger); err != nil {
		return fmt.Errorf("running window: %w", err)
	}
	logger.Info("window closed", "state", round.State())
	return nil
}
