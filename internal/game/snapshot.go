package game

// Status represents the current session state.
type Status string

const (
	StatusPlaying Status = "playing"
	StatusWon     Status = "won" // Target reached, play may continue
	StatusOver    Status = "game_over"
)

// Snapshot captures the complete session state for rendering, determinism
// tests and result recording.
type Snapshot struct {
	Height  int
	Width   int
	Cells   [][]int
	Seed    int64
	Score   int
	Moves   int
	MaxTile int
	Target  int
	Won     bool // Target reached at any point, even if now over
	Status  Status
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	status := s.Status() // Records a win before Won is read
	return Snapshot{
		Height:  s.board.Height(),
		Width:   s.board.Width(),
		Cells:   s.board.Cells(),
		Seed:    s.seed,
		Score:   s.score,
		Moves:   s.moves,
		MaxTile: MaxTile(s.board),
		Target:  s.target,
		Won:     s.won,
		Status:  status,
	}
}
