package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/cognicore/sweeper/pkg/sweeper/store/sqlite"
)

type report struct {
	Games      int64        `json:"games"`
	Wins       int64        `json:"wins"`
	WinRate    float64      `json:"win_rate"`
	SafeMoves  int64        `json:"safe_moves"`
	GuessMoves int64        `json:"guess_moves"`
	Recent     []recentGame `json:"recent"`
}

type recentGame struct {
	ID       string `json:"id"`
	PlayedAt string `json:"played_at"`
	Board    string `json:"board"`
	Won      bool   `json:"won"`
	Moves    int    `json:"moves"`
}

func main() {
	var (
		dbPath = flag.String("db", "", "SQLite database path (required)")
		limit  = flag.Int("limit", 10, "Number of recent games to list")
		asJSON = flag.Bool("json", false, "Emit the report as JSON")
	)
	flag.Parse()

	if *dbPath == "" {
		log.Fatal("--db required")
	}

	ctx := context.Background()

	st, err := sqlite.Open(ctx, *dbPath)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	defer st.Close()

	stats, err := st.Stats(ctx)
	if err != nil {
		log.Fatalf("stats: %v", err)
	}
	games, err := st.RecentGames(ctx, *limit)
	if err != nil {
		log.Fatalf("recent games: %v", err)
	}

	rep := report{
		Games:      stats.Games,
		Wins:       stats.Wins,
		WinRate:    stats.WinRate(),
		SafeMoves:  stats.SafeMoves,
		GuessMoves: stats.GuessMoves,
	}
	for _, g := range games {
		rep.Recent = append(rep.Recent, recentGame{
			ID:       g.ID,
			PlayedAt: g.PlayedAt.Format("2006-01-02 15:04:05"),
			Board:    fmt.Sprintf("%dx%d/%d", g.Height, g.Width, g.MineCount),
			Won:      g.Won,
			Moves:    len(g.Moves),
		})
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rep); err != nil {
			log.Fatal(err)
		}
		return
	}

	fmt.Printf("games:  %d\n", rep.Games)
	fmt.Printf("wins:   %d (%.1f%%)\n", rep.Wins, 100*rep.WinRate)
	fmt.Printf("moves:  %d deduced safe, %d guessed\n", rep.SafeMoves, rep.GuessMoves)
	if len(rep.Recent) > 0 {
		fmt.Println()
		fmt.Println("recent games:")
		for _, g := range rep.Recent {
			outcome := "lost"
			if g.Won {
				outcome = "won"
			}
			fmt.Printf("  %s  %s  %-9s %s in %d moves\n", g.ID, g.PlayedAt, g.Board, outcome, g.Moves)
		}
	}
}
