package main

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"golang.org/x/net/websocket"

	"github.com/cognicore/sweeper/pkg/sweeper/board"
	"github.com/cognicore/sweeper/pkg/sweeper/grid"
	"github.com/cognicore/sweeper/pkg/sweeper/infer"
	"github.com/cognicore/sweeper/pkg/sweeper/infer/deductive"
)

// session is one in-progress game.
type session struct {
	board    *board.Board
	agent    infer.Agent
	revealed map[grid.Cell]int
	moves    int
	over     bool
	won      bool
}

// server owns a shared stepped session plus the settings used to spawn
// fresh games for websocket streams.
type server struct {
	mu      sync.Mutex
	current *session
	size    grid.Size
	mines   int
	delay   time.Duration
	rng     *rand.Rand
}

func newServer(height, width, mines int, seed int64, delay time.Duration) (*server, error) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s := &server{
		size:  grid.Size{Height: height, Width: width},
		mines: mines,
		delay: delay,
		rng:   rand.New(rand.NewSource(seed)),
	}

	sess, err := s.newSession()
	if err != nil {
		return nil, err
	}
	s.current = sess
	return s, nil
}

func (s *server) newSession() (*session, error) {
	b, err := board.New(s.size, s.mines, s.rng)
	if err != nil {
		return nil, err
	}
	return &session{
		board:    b,
		agent:    deductive.NewSeeded(s.size, s.rng.Int63()),
		revealed: make(map[grid.Cell]int),
	}, nil
}

// step plays one move: a known-safe cell if any, otherwise a guess.
func (sess *session) step() error {
	if sess.over {
		return nil
	}

	cell, ok := sess.agent.SafeMove()
	if !ok {
		cell, ok = sess.agent.RandomMove()
	}
	if !ok {
		for _, c := range sess.agent.Mines() {
			sess.board.Flag(c)
		}
		sess.over = true
		sess.won = sess.board.Won()
		return nil
	}

	sess.moves++
	if sess.board.IsMine(cell) {
		sess.over = true
		sess.won = false
		return nil
	}

	nearby := sess.board.NearbyMines(cell)
	sess.revealed[cell] = nearby
	return sess.agent.Observe(cell, nearby)
}

type cellView struct {
	State string `json:"state"` // "hidden", "opened" or "flagged"
	Count int    `json:"count"`
}

type stateView struct {
	Cells    [][]cellView `json:"cells"`
	Moves    int          `json:"moves"`
	GameOver bool         `json:"game_over"`
	Won      bool         `json:"won"`
}

func (sess *session) view(size grid.Size) stateView {
	mineSet := make(map[grid.Cell]struct{})
	for _, c := range sess.agent.Mines() {
		mineSet[c] = struct{}{}
	}

	v := stateView{
		Cells:    make([][]cellView, size.Height),
		Moves:    sess.moves,
		GameOver: sess.over,
		Won:      sess.won,
	}
	for row := 0; row < size.Height; row++ {
		v.Cells[row] = make([]cellView, size.Width)
		for col := 0; col < size.Width; col++ {
			c := grid.Cell{Row: row, Col: col}
			if n, ok := sess.revealed[c]; ok {
				v.Cells[row][col] = cellView{State: "opened", Count: n}
			} else if _, ok := mineSet[c]; ok {
				v.Cells[row][col] = cellView{State: "flagged"}
			} else {
				v.Cells[row][col] = cellView{State: "hidden"}
			}
		}
	}
	return v
}

func (s *server) handleNew(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	sess, err := s.newSession()
	if err == nil {
		s.current = sess
	}
	s.mu.Unlock()

	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.sendState(w)
}

func (s *server) handleStep(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	err := s.current.step()
	s.mu.Unlock()

	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.sendState(w)
}

func (s *server) handleState(w http.ResponseWriter, r *http.Request) {
	s.sendState(w)
}

func (s *server) sendState(w http.ResponseWriter) {
	s.mu.Lock()
	v := s.current.view(s.size)
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// liveHandler streams a fresh game move by move until it ends.
func (s *server) liveHandler() http.Handler {
	return websocket.Handler(func(ws *websocket.Conn) {
		defer ws.Close()

		s.mu.Lock()
		sess, err := s.newSession()
		s.mu.Unlock()
		if err != nil {
			return
		}

		for !sess.over {
			if err := sess.step(); err != nil {
				return
			}
			if err := websocket.JSON.Send(ws, sess.view(s.size)); err != nil {
				return
			}
			time.Sleep(s.delay)
		}
	})
}
