package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/cognicore/sweeper/pkg/sweeper"
	"github.com/cognicore/sweeper/pkg/sweeper/config"
	"github.com/cognicore/sweeper/pkg/sweeper/grid"
	"github.com/cognicore/sweeper/pkg/sweeper/render"
	"github.com/cognicore/sweeper/pkg/sweeper/store"
	"github.com/cognicore/sweeper/pkg/sweeper/store/sqlite"
)

func main() {
	var (
		dbPath     = flag.String("db", "", "SQLite database path (optional, enables persistence)")
		configPath = flag.String("config", "", "Preset YAML file (optional)")
		presetName = flag.String("preset", "", "Preset name; overrides height/width/mines")
		height     = flag.Int("height", 8, "Board height")
		width      = flag.Int("width", 8, "Board width")
		mines      = flag.Int("mines", 8, "Mine count")
		games      = flag.Int("games", 1, "Number of games to play")
		seed       = flag.Int64("seed", 0, "Random seed (0 = time-based)")
		show       = flag.Bool("show", false, "Print the final view of each game")
	)
	flag.Parse()

	ctx := context.Background()

	req := sweeper.GameRequest{Height: *height, Width: *width, Mines: *mines}
	if *presetName != "" {
		cfg := config.Defaults()
		if *configPath != "" {
			loaded, err := config.Load(*configPath)
			if err != nil {
				log.Fatalf("load config: %v", err)
			}
			cfg = loaded
		}
		p, err := cfg.Preset(*presetName)
		if err != nil {
			log.Fatal(err)
		}
		req = sweeper.GameRequest{Height: p.Height, Width: p.Width, Mines: p.Mines}
	}

	var st store.Store
	if *dbPath != "" {
		var err error
		st, err = sqlite.Open(ctx, *dbPath)
		if err != nil {
			log.Fatalf("open store: %v", err)
		}
		defer st.Close()
	}

	s := sweeper.New(sweeper.Options{Store: st, Seed: *seed})

	wins := 0
	totalMoves := 0
	totalGuesses := 0
	for i := 0; i < *games; i++ {
		result, err := s.Play(ctx, req)
		if err != nil {
			log.Fatalf("game %d: %v", i+1, err)
		}

		if result.Won {
			wins++
		}
		totalMoves += len(result.Moves)
		totalGuesses += result.Guesses()

		fmt.Printf("game %s: won=%v moves=%d guesses=%d deduced_mines=%d (%s)\n",
			result.ID, result.Won, len(result.Moves), result.Guesses(),
			len(result.Mines), result.Duration)

		if *show {
			size := grid.Size{Height: req.Height, Width: req.Width}
			fmt.Println(render.Frame(size, result.Revealed, result.Mines))
		}
	}

	fmt.Println()
	fmt.Printf("played %d games on %dx%d with %d mines\n", *games, req.Height, req.Width, req.Mines)
	fmt.Printf("wins: %d (%.1f%%)\n", wins, 100*float64(wins)/float64(*games))
	fmt.Printf("moves: %d total, %d guessed\n", totalMoves, totalGuesses)
}
