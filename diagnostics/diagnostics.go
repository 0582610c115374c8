// Package diagnostics implements the optional session diagnostics page
// (SPEC_FULL.md's "Session diagnostics page": `-diag=ADDR` CLI flag):
// serves the record-store depth, MI classification counts and last GDB
// round-trip latency over HTTP, mirroring the teacher's use of
// go-echarts/statsview for live runtime introspection in spirit - a
// developer-facing view of internal counters, not a user-facing feature.
package diagnostics

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/rs/cors"

	"github.com/bmdebug/bmdebug/mi"
	"github.com/bmdebug/bmdebug/record"
)

// Counters is the snapshot served at /diagnostics/counters.
type Counters struct {
	TotalRecords   int            `json:"total_records"`
	ByClass        map[string]int `json:"by_class"`
	LastRoundTrip  time.Duration  `json:"last_round_trip_ns"`
}

// Server serves Counters (and, via statsview, Go runtime stats) over
// HTTP for as long as the process runs. It is entirely optional: nothing
// in the front-end engine depends on it being started.
type Server struct {
	addr  string
	store *record.Store

	crit          sync.Mutex
	lastRoundTrip time.Duration

	httpServer *http.Server
}

// New returns a Server that will listen on addr once Start is called.
func New(addr string, store *record.Store) *Server {
	return &Server{addr: addr, store: store}
}

// RecordRoundTrip updates the last-observed GDB command round-trip
// latency, surfaced in the next /diagnostics/counters snapshot.
func (s *Server) RecordRoundTrip(d time.Duration) {
	s.crit.Lock()
	defer s.crit.Unlock()
	s.lastRoundTrip = d
}

// Start runs the diagnostics HTTP server until ctx is cancelled. It also
// starts statsview's own Go-runtime stats page on the same configured
// address, per the teacher's statsview wiring.
func (s *Server) Start(ctx context.Context) error {
	viewer.SetConfiguration(viewer.WithAddr(s.addr))
	mgr := statsview.New()
	go mgr.Start()

	mux := http.NewServeMux()
	mux.HandleFunc("/diagnostics/counters", s.handleCounters)

	s.httpServer = &http.Server{
		Addr:    s.addr,
		Handler: cors.Default().Handler(mux),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return fmt.Errorf("diagnostics: %w", err)
	}
}

func (s *Server) handleCounters(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(s.snapshot())
}

// snapshot builds the current Counters value from the record store.
func (s *Server) snapshot() Counters {
	s.crit.Lock()
	lastRoundTrip := s.lastRoundTrip
	s.crit.Unlock()

	entries := s.store.All()
	c := Counters{
		TotalRecords:  len(entries),
		ByClass:       make(map[string]int),
		LastRoundTrip: lastRoundTrip,
	}

	for _, e := range entries {
		c.ByClass[classifyName(e.Class)]++
	}

	return c
}

func classifyName(class mi.Class) string {
	switch class {
	case mi.Plain:
		return "plain"
	case mi.Result:
		return "result"
	case mi.Exec:
		return "exec"
	case mi.Status:
		return "status"
	case mi.Notice:
		return "notice"
	case mi.ConsoleOut:
		return "console"
	case mi.MIInput:
		return "mi_input"
	case mi.Log:
		return "log"
	case mi.TargetOut:
		return "target"
	default:
		return "unknown"
	}
}
