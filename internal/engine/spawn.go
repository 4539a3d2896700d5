package engine

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// Source is the random source used to place spawned tiles.
// *rand.Rand satisfies it.
type Source interface {
	// Intn returns a uniform value in [0, n). n is always positive.
	Intn(n int) int
}

// spawnValues is the fixed multiset spawned values are drawn from:
// 4 with probability 0.1, 2 with probability 0.9.
var spawnValues = [...]int{4, 2, 2, 2, 2, 2, 2, 2, 2, 2}

// SpawnPolicy controls whether Move places a new tile.
type SpawnPolicy int

const (
	// SpawnEveryMove spawns after every Move call, even one that changed nothing.
	SpawnEveryMove SpawnPolicy = iota
	// SpawnOnChange spawns only when the move changed at least one cell.
	SpawnOnChange
	// SpawnManual never spawns from Move. Reset and NewTile still spawn.
	SpawnManual
)

// ErrUnknownSpawnPolicy is returned when text does not name a spawn policy.
var ErrUnknownSpawnPolicy = errors.New("unknown spawn policy")

// String returns the config name of the policy.
func (p SpawnPolicy) String() string {
	switch p {
	case SpawnEveryMove:
		return "every_move"
	case SpawnOnChange:
		return "on_change"
	case SpawnManual:
		return "manual"
	default:
		return fmt.Sprintf("SpawnPolicy(%d)", int(p))
	}
}

// ParseSpawnPolicy parses a policy name as written in config files.
// The empty string selects SpawnEveryMove.
func ParseSpawnPolicy(s string) (SpawnPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "every_move":
		return SpawnEveryMove, nil
	case "on_change":
		return SpawnOnChange, nil
	case "manual":
		return SpawnManual, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSpawnPolicy, s)
}

// Option configures a Board at construction.
type Option func(*Board)

// WithSource sets the random source used for spawning.
func WithSource(src Source) Option {
	return func(b *Board) {
		b.rng = src
	}
}

// WithSeed seeds a private math/rand source for reproducible spawns.
func WithSeed(seed int64) Option {
	return func(b *Board) {
		b.rng = rand.New(rand.NewSource(seed))
	}
}

// WithSpawnPolicy sets when Move spawns a tile.
func WithSpawnPolicy(p SpawnPolicy) Option {
	return func(b *Board) {
		b.policy = p
	}
}

// defaultSource returns a time-seeded source.
func defaultSource() Source {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
