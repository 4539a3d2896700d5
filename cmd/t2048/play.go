package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/game"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var flagLogFile string

var errNotTerminal = errors.New("play needs an interactive terminal; try 't2048 debug' instead")

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play 2048 interactively",
	Long: `Start an interactive game of 2048.

Controls:
  Arrows/WASD/HJKL - Slide tiles
  R                - Restart
  Tab              - Show recorded results
  ?                - More keys
  Q/Esc/Ctrl+C     - Quit

The result is recorded when no move is left.

Examples:
  t2048 play
  t2048 play --size 3x3
  t2048 play --spawn on_change
  t2048 play --seed 42 --log-file ./t2048.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (logs are discarded otherwise)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The alt screen owns stdout, so logs go to a file or nowhere
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if openErr != nil {
			return fmt.Errorf("cannot open log file: %w", openErr)
		}
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut, "t2048")
	if err != nil {
		return err
	}

	session, err := game.New(cfg, game.WithLogger(logger))
	if err != nil {
		return err
	}

	store := openStore(cfg.Storage.Path, logger)

	runErr := tui.Run(session, store, logger)

	// Close store before reporting
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("error running game: %w", runErr)
	}
	fmt.Printf("Final score %d after %d moves (seed %d)\n", session.Score(), session.Moves(), session.Seed())
	return nil
}

// openStore opens the results database, or returns nil after logging a
// warning so the game still runs without history.
func openStore(path string, logger *log.Logger) *storage.Store {
	store, err := storage.Open(path)
	if err != nil {
		logger.Warn("could not open results database", "path", path, "error", err)
		return nil
	}
	return store
}
