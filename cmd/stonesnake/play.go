package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/stonesnake/internal/games/snake"
	"github.com/vovakirdan/stonesnake/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Play in the terminal. Each grid cell is drawn two columns wide, so the
default 32x24 board needs a 66x28 terminal.

Ctrl+S saves a text screenshot to ~/.stonesnake/screenshots.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := newLogger(logOut)

	cfg, err := loadConfig(cmd, logger)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	round, err := snake.NewRound(cfg, resolveSeed(), logger)
	if err != nil {
		return err
	}

	needW, needH := snake.RequiredSize(round.Grid())
	if width < needW || height < needH+1 {
		logger.Warn("terminal smaller than board", "have", fmt.Sprintf("%dx%d", width, height),
			"need", fmt.Sprintf("%dx%d", needW, needH+1))
	}

	if err := tui.Run(round, cfg, width, height, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
