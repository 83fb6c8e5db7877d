package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/cognicore/sweeper/pkg/sweeper/store"
)

func openTestStore(t *testing.T) store.Store {
	t.Helper()
	ctx := context.Background()
	st, err := Open(ctx, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func TestSaveAndGetGame(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)

	g := store.Game{
		ID:        "01TESTGAME",
		PlayedAt:  time.Now().UTC(),
		Height:    8,
		Width:     8,
		MineCount: 8,
		Won:       true,
		Moves: []store.Move{
			{Index: 0, Row: 4, Col: 4, Guess: true, Nearby: 0},
			{Index: 1, Row: 3, Col: 3, Guess: false, Nearby: 2},
			{Index: 2, Row: 0, Col: 0, Guess: true, Nearby: 0, Mine: true},
		},
	}
	if err := st.SaveGame(ctx, g); err != nil {
		t.Fatalf("SaveGame: %v", err)
	}

	got, found, err := st.GetGame(ctx, g.ID)
	if err != nil {
		t.Fatalf("GetGame: %v", err)
	}
	if !found {
		t.Fatal("Expected game to be found")
	}
	if !got.Won || got.Height != 8 || got.MineCount != 8 {
		t.Errorf("Unexpected game: %+v", got)
	}
	if len(got.Moves) != 3 {
		t.Fatalf("Expected 3 moves, got %d", len(got.Moves))
	}
	if !got.Moves[0].Guess || got.Moves[1].Guess {
		t.Error("Guess flags not round-tripped")
	}
	if !got.Moves[2].Mine {
		t.Error("Mine flag not round-tripped")
	}
}

func TestGetGameMissing(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)

	_, found, err := st.GetGame(ctx, "nope")
	if err != nil {
		t.Fatalf("GetGame: %v", err)
	}
	if found {
		t.Error("Expected game not found")
	}
}

func TestSaveGameUpsert(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)

	g := store.Game{ID: "g", PlayedAt: time.Now().UTC(), Height: 3, Width: 3, MineCount: 1}
	g.Moves = []store.Move{{Index: 0, Row: 1, Col: 1, Guess: true, Nearby: 1}}
	if err := st.SaveGame(ctx, g); err != nil {
		t.Fatalf("SaveGame: %v", err)
	}

	g.Won = true
	g.Moves = append(g.Moves, store.Move{Index: 1, Row: 2, Col: 2, Nearby: 0})
	if err := st.SaveGame(ctx, g); err != nil {
		t.Fatalf("SaveGame (update): %v", err)
	}

	got, _, err := st.GetGame(ctx, "g")
	if err != nil {
		t.Fatalf("GetGame: %v", err)
	}
	if !got.Won || len(got.Moves) != 2 {
		t.Errorf("Upsert did not replace game: %+v", got)
	}
}

func TestRecentGamesAndStats(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)

	base := time.Now().UTC()
	for i, g := range []store.Game{
		{ID: "a", Won: true},
		{ID: "b", Won: false},
		{ID: "c", Won: true},
	} {
		g.PlayedAt = base.Add(time.Duration(i) * time.Minute)
		g.Height, g.Width, g.MineCount = 8, 8, 8
		g.Moves = []store.Move{
			{Index: 0, Row: 0, Col: 0, Guess: true, Nearby: 1},
			{Index: 1, Row: 5, Col: 5, Guess: false, Nearby: 0},
		}
		if err := st.SaveGame(ctx, g); err != nil {
			t.Fatalf("SaveGame %s: %v", g.ID, err)
		}
	}

	games, err := st.RecentGames(ctx, 2)
	if err != nil {
		t.Fatalf("RecentGames: %v", err)
	}
	if len(games) != 2 || games[0].ID != "c" || games[1].ID != "b" {
		t.Errorf("Expected c, b; got %+v", games)
	}
	if len(games[0].Moves) != 2 {
		t.Errorf("Expected moves loaded with recent games, got %d", len(games[0].Moves))
	}

	stats, err := st.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.Games != 3 || stats.Wins != 2 {
		t.Errorf("Expected 3 games 2 wins, got %+v", stats)
	}
	if stats.SafeMoves != 3 || stats.GuessMoves != 3 {
		t.Errorf("Expected 3 safe and 3 guess moves, got %+v", stats)
	}
}
