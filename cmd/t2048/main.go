// t2048 plays 2048 in the terminal, headless for debugging, or over SSH.
//
// Usage:
//
//	t2048 play               - Play interactively
//	t2048 debug <moves>      - Apply moves headlessly and print the board
//	t2048 scores             - Show recorded results for the board size
//	t2048 serve              - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>     - Custom config YAML
//	--seed <value>      - Set RNG seed for reproducible games
//	--db <path>         - Set database path (default: ~/.t2048/results.db)
//	--size <HxW>        - Board size, e.g. 4x4 or 3x5
//	--spawn <policy>    - every_move, on_change or manual
//	--target <value>    - Tile value that wins
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagDBPath   string
	flagSize     string
	flagSpawn    string
	flagTarget   int
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - Slide and merge tiles in your terminal",
	Long: `t2048 is the 2048 sliding-tile game for the terminal.

Available commands:
  play     - Play interactively
  debug    - Apply a move string and print each board
  scores   - View recorded results
  serve    - Start SSH server for remote play

Examples:
  t2048 play
  t2048 play --size 5x5 --seed 7
  t2048 debug LLUR --seed 1
  t2048 scores --size 4x4
  t2048 serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to results database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagSize, "size", "", "Board size as HxW (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagSpawn, "spawn", "", "Spawn policy: every_move, on_change, manual")
	rootCmd.PersistentFlags().IntVar(&flagTarget, "target", 0, "Winning tile value (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(debugCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig loads the config file and applies the global flags on top.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}

	overrides := config.Overrides{
		SpawnPolicy: flagSpawn,
		Seed:        flagSeed,
		Target:      flagTarget,
		DBPath:      flagDBPath,
	}
	if flagSize != "" {
		overrides.Height, overrides.Width, err = config.ParseSize(flagSize)
		if err != nil {
			return config.Config{}, err
		}
	}
	cfg.ApplyOverrides(overrides)

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newLogger returns a logger writing to w at the --log-level verbosity.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          prefix,
	}), nil
}
