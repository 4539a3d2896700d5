package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/engine"
	"github.com/vovakirdan/tui-2048/internal/game"
)

var debugCmd = &cobra.Command{
	Use:   "debug <moves>",
	Short: "Apply moves headlessly and print the board after each",
	Long: `Build a board, apply a move sequence and print the board after every step.

Moves are letters run together (LLUR) or names separated by commas
or spaces (left,up). Use --seed for a reproducible board.

Examples:
  t2048 debug LLUR --seed 1
  t2048 debug "left,up,right" --size 3x3
  t2048 debug UUDD --spawn manual --log-level debug`,
	Args: cobra.ExactArgs(1),
	RunE: runDebug,
}

func runDebug(cmd *cobra.Command, args []string) error {
	moves, err := engine.ParseMoves(args[0])
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := newLogger(cmd.ErrOrStderr(), "t2048")
	if err != nil {
		return err
	}

	session, err := game.New(cfg, game.WithLogger(logger))
	if err != nil {
		return err
	}

	return replay(cmd.OutOrStdout(), session, cfg, moves)
}

// replay plays moves on session and writes every intermediate board to w.
func replay(w io.Writer, session *game.Session, cfg config.Config, moves []engine.Direction) error {
	out := &errWriter{w: w}

	out.printf("board %dx%d  spawn %s  seed %d\n\n",
		cfg.Board.Height, cfg.Board.Width, cfg.SpawnPolicy(), session.Seed())
	out.printf("%s\n", session.Board().DebugString())

	for i, d := range moves {
		if session.Status() == game.StatusOver {
			out.printf("\ngame over, %d moves not played\n", len(moves)-i)
			break
		}
		changed := session.Move(d)
		note := ""
		if !changed {
			note = " (no change)"
		}
		out.printf("\n%d: %s%s  score %d\n", i+1, d, note, session.Score())
		out.printf("%s\n", session.Board().DebugString())
	}

	snap := session.Snapshot()
	out.printf("\n%s\n", strings.Join([]string{
		fmt.Sprintf("status: %s", snap.Status),
		fmt.Sprintf("score: %d", snap.Score),
		fmt.Sprintf("max tile: %d", snap.MaxTile),
	}, "\n"))
	return out.err
}

// errWriter keeps the first write error so printing code stays linear.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
