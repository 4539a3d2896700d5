// Package game drives an engine board for a presenter. It adds the pieces
// the engine leaves out: score, move count, win and game-over detection.
package game

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/engine"
)

// Session is one game of 2048 on a single board.
// A Session is not safe for concurrent use; presenters serialise access.
type Session struct {
	board  *engine.Board
	seed   int64
	target int
	logger *log.Logger

	score int
	moves int
	won   bool // Sticky once the target tile has been seen
}

// Option configures a Session.
type Option func(*sessionOptions)

type sessionOptions struct {
	logger *log.Logger
	source engine.Source
}

// WithLogger sets the logger moves are reported to at debug level.
func WithLogger(l *log.Logger) Option {
	return func(o *sessionOptions) {
		o.logger = l
	}
}

// WithSource replaces the seeded random source, mainly for tests.
func WithSource(src engine.Source) Option {
	return func(o *sessionOptions) {
		o.source = src
	}
}

// New creates a session from cfg. A zero seed is replaced with a time-based
// one, which Seed reports so the game can be replayed.
func New(cfg config.Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var o sessionOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	boardOpts := []engine.Option{
		engine.WithSeed(seed),
		engine.WithSpawnPolicy(cfg.SpawnPolicy()),
	}
	if o.source != nil {
		boardOpts = append(boardOpts, engine.WithSource(o.source))
	}

	board, err := engine.New(cfg.Board.Height, cfg.Board.Width, boardOpts...)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	s := &Session{
		board:  board,
		seed:   seed,
		target: cfg.Target,
		logger: o.logger,
	}
	s.refresh()

	s.logger.Debug("session started",
		"height", board.Height(),
		"width", board.Width(),
		"seed", seed,
		"spawn", board.Policy(),
	)
	return s, nil
}

// Board returns the underlying board for rendering and scenario seeding.
func (s *Session) Board() *engine.Board {
	return s.board
}

// Seed returns the seed the board's random source started from.
func (s *Session) Seed() int64 {
	return s.seed
}

// Score returns the sum of all tiles produced by fusions so far.
func (s *Session) Score() int {
	return s.score
}

// Moves returns the number of moves played, including ones that changed nothing.
func (s *Session) Moves() int {
	return s.moves
}

// Status returns the session status for the board as it is now, so tiles
// written through Board().SetTile are reflected without a move.
func (s *Session) Status() Status {
	s.refresh()
	switch {
	case s.over():
		return StatusOver
	case s.won:
		return StatusWon
	default:
		return StatusPlaying
	}
}

// Move plays d. Moves after game over are ignored and report false.
// Otherwise it reports whether the board changed before the spawn.
func (s *Session) Move(d engine.Direction) bool {
	s.refresh()
	if s.over() {
		return false
	}

	gained := 0
	for _, line := range s.board.Lines(d) {
		gained += engine.MergeScore(line)
	}

	changed := s.board.Move(d)
	s.moves++
	s.score += gained

	wasWon := s.won
	s.refresh()

	s.logger.Debug("move",
		"dir", d,
		"changed", changed,
		"gained", gained,
		"score", s.score,
		"moves", s.moves,
	)
	if s.won && !wasWon {
		s.logger.Info("target reached", "target", s.target, "moves", s.moves)
	}
	if s.over() {
		s.logger.Info("game over", "score", s.score, "max_tile", MaxTile(s.board), "moves", s.moves)
	}

	return changed
}

// Restart resets the board and clears score, moves and status.
// The random source carries on from where it was.
func (s *Session) Restart() {
	s.board.Reset()
	s.score = 0
	s.moves = 0
	s.won = false
	s.refresh()
	s.logger.Debug("session restarted")
}

// refresh records a win if the board holds the target tile.
// A win is sticky for the rest of the session.
func (s *Session) refresh() {
	if MaxTile(s.board) >= s.target {
		s.won = true
	}
}

// over reports whether the board has no legal move left.
func (s *Session) over() bool {
	return !CanMove(s.board)
}
