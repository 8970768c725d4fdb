// snaketerm is a terminal snake game with persistent scores, saved games,
// and an SSH server for remote play.
//
// Usage:
//
//	snaketerm play            - Play in the current terminal
//	snaketerm scores          - Show the high-score table
//	snaketerm serve           - Start the SSH server for remote play
//
// Global flags:
//
//	--config <path>  - Path to a config YAML
//	--db <path>      - Database path (default: ~/.snaketerm/snaketerm.db)
//	--seed <value>   - RNG seed for reproducible gem placement
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig string
	flagDBPath string
	flagSeed   int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snaketerm",
	Short: "Snake in your terminal",
	Long: `snaketerm is a terminal-based snake game.

Available commands:
  play     - Play in the current terminal
  scores   - View the high-score table
  serve    - Start an SSH server for remote play

Examples:
  snaketerm play
  snaketerm play --speed fast --theme winter
  snaketerm play --resume
  snaketerm scores
  snaketerm serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (overrides config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
