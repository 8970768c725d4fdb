package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/termgames/snaketerm/internal/config"
	"github.com/termgames/snaketerm/internal/platform/tui"
	"github.com/termgames/snaketerm/internal/storage"
)

var (
	flagSpeed  string
	flagTheme  string
	flagResume bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a game in the current terminal.

Controls:
  Arrows/WASD - Change direction
  P/Esc       - Pause
  Ctrl+S      - Save the game
  R           - Restart (after game over)
  Ctrl+R      - Load the saved game (after game over)
  Tab         - High scores
  Q/Ctrl+C    - Quit

Speed presets: slow, normal, fast
Themes: classic, winter, spring, summer, autumn, auto

Examples:
  snaketerm play
  snaketerm play --speed fast
  snaketerm play --theme auto
  snaketerm play --resume`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagSpeed, "speed", "", "Speed preset: slow, normal, fast")
	playCmd.Flags().StringVar(&flagTheme, "theme", "", "Color theme (or 'auto' for seasonal)")
	playCmd.Flags().BoolVar(&flagResume, "resume", false, "Resume the latest saved game")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagSpeed != "" {
		config.ApplySpeedPreset(&cfg, config.SpeedPreset(flagSpeed))
	}
	if flagTheme != "" {
		cfg.Theme = flagTheme
	}

	// Size the board from the terminal unless the config pins it.
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	boardW, boardH := tui.FitBoard(cfg.Board, width, height)

	store, err := storage.Open(dbPath(cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	final, runErr := tui.Run(tui.GameOptions{
		BoardWidth:  boardW,
		BoardHeight: boardH,
		Speed:       cfg.Speed.TickRate(),
		Theme:       tui.ThemeByName(cfg.Theme, time.Now()),
		Player:      playerName(),
		Seed:        seed,
		Store:       store,
		Resume:      flagResume,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}

	if score := final.FinalScore(); score >= 0 {
		fmt.Printf("Final score: %d\n", score)
	}
}

// dbPath resolves the database location: the --db flag wins over the config.
func dbPath(cfg config.Config) string {
	if flagDBPath != "" {
		return flagDBPath
	}
	if cfg.Database != "" {
		return cfg.Database
	}
	return "~/.snaketerm/snaketerm.db"
}

// playerName identifies the local player for the score table.
func playerName() string {
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "anonymous"
}
