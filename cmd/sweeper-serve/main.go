// Command sweeper-serve exposes a small HTTP API for watching the
// agent play: step a shared game move by move, or stream whole games
// over a websocket.
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"
)

func main() {
	var (
		addr   = flag.String("addr", ":8080", "Listen address")
		height = flag.Int("height", 8, "Board height")
		width  = flag.Int("width", 8, "Board width")
		mines  = flag.Int("mines", 8, "Mine count")
		delay  = flag.Duration("delay", 200*time.Millisecond, "Pause between streamed moves")
		seed   = flag.Int64("seed", 0, "Random seed (0 = time-based)")
	)
	flag.Parse()

	srv, err := newServer(*height, *width, *mines, *seed, *delay)
	if err != nil {
		log.Fatal(err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/new", srv.handleNew)
	mux.HandleFunc("/api/step", srv.handleStep)
	mux.HandleFunc("/api/state", srv.handleState)
	mux.Handle("/live", srv.liveHandler())

	fmt.Printf("sweeper-serve listening on %s (%dx%d, %d mines)\n", *addr, *height, *width, *mines)
	log.Fatal(http.ListenAndServe(*addr, mux))
}
