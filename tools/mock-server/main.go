// Package main implements a mock vehicle snapshot server for local
// development. It serves a raw-row JSON fixture the way the hosted snapshot
// bucket does and can be told to fail, so the catalog loader's fallback tiers
// can be exercised without the real upstream.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"sync/atomic"
	"time"
)

type server struct {
	logger    *slog.Logger
	snapshot  []byte
	rows      int
	failEvery int64
	latency   time.Duration
	requests  atomic.Int64
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	fixtureFile := flag.String("fixture", "tools/mock-server/testdata/vehicles.json", "path to the snapshot fixture")
	failEvery := flag.Int("fail-every", 0, "answer every Nth snapshot request with 503 (0 disables)")
	latency := flag.Duration("latency", 0, "delay added to every snapshot response")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	s, err := newServer(logger, *fixtureFile)
	if err != nil {
		logger.Error("failed to load fixture", "path", *fixtureFile, "error", err)
		os.Exit(1)
	}
	s.failEvery = int64(*failEvery)
	s.latency = *latency
	logger.Info("loaded fixture", "rows", s.rows)

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock snapshot server", "addr", addr, "fail_every", *failEvery)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, s.routes()),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newServer(logger *slog.Logger, path string) (*server, error) {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var rows []json.RawMessage
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return &server{logger: logger, snapshot: data, rows: len(rows)}, nil
}

func (s *server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /vehicles.json", s.snapshotHandler)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return mux
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}

func (s *server) snapshotHandler(w http.ResponseWriter, r *http.Request) {
	n := s.requests.Add(1)

	if s.latency > 0 {
		select {
		case <-time.After(s.latency):
		case <-r.Context().Done():
			return
		}
	}

	if s.failEvery > 0 && n%s.failEvery == 0 {
		s.logger.Warn("simulated snapshot outage", "request", n)
		http.Error(w, "snapshot temporarily unavailable", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(len(s.snapshot)))
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	w.Write(s.snapshot)
	s.logger.Info("snapshot served", "request", n, "rows", s.rows)
}
