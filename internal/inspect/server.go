// Package inspect serves a live, queryable view of a project's route
// inventory over HTTP: the text table, a JSON API, Prometheus metrics, and
// a WebSocket feed that pushes fresh inventories as route files change.
package inspect

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/routemap-dev/routemap/internal/report"
	"github.com/routemap-dev/routemap/pkg/routes"
)

// shutdownTimeout bounds graceful shutdown once the context is cancelled.
const shutdownTimeout = 5 * time.Second

// Server is the route inspection server for a single routes root.
type Server struct {
	root     string
	logger   *slog.Logger
	registry *prometheus.Registry
	metrics  *scanMetrics
	hub      *UpdateHub

	mu  sync.RWMutex
	inv *report.Inventory
}

// NewServer creates an inspection server for the given routes root. The
// server owns its Prometheus registry, so multiple servers can coexist in
// one process (e.g., under test).
func NewServer(root string) *Server {
	registry := prometheus.NewRegistry()
	return &Server{
		root:     root,
		logger:   slog.Default().With("component", "inspect"),
		registry: registry,
		metrics:  newScanMetrics(registry),
		hub:      NewUpdateHub(),
	}
}

// Rescan runs a scan and, on success, swaps in the new inventory and
// broadcasts it to connected WebSocket clients. On failure the previous
// inventory stays in place; a tree that is mid-edit should not blank out
// the server.
func (s *Server) Rescan() error {
	start := time.Now()
	records, err := routes.NewScanner(s.root).Scan()
	s.metrics.scanDuration.Observe(time.Since(start).Seconds())
	s.metrics.scansTotal.Inc()
	if err != nil {
		s.metrics.scanFailures.Inc()
		return err
	}

	inv := report.NewInventory(s.root, records)
	s.metrics.routeCount.Set(float64(inv.Totals.Routes))
	s.metrics.layoutCount.Set(float64(inv.Totals.Layouts))

	s.mu.Lock()
	s.inv = inv
	s.mu.Unlock()

	s.hub.Broadcast(inv)
	return nil
}

// Inventory returns the most recent inventory, or nil before the first
// successful scan.
func (s *Server) Inventory() *report.Inventory {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inv
}

// Handler builds the HTTP surface of the inspection server.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(traceMiddleware)

	r.Get("/", s.handleTable)
	r.Get("/api/routes", s.handleRoutes)
	r.Get("/healthz", s.handleHealthz)
	r.Get("/ws", s.hub.HandleWebSocket)
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	return r
}

// Run scans once, starts the filesystem watcher, and serves until the
// context is cancelled. The initial scan must succeed; after that, scan
// failures are logged and the previous inventory keeps being served.
func (s *Server) Run(ctx context.Context, addr string) error {
	if err := s.Rescan(); err != nil {
		return err
	}

	watcher, err := NewWatcher(s.root, func() {
		if err := s.Rescan(); err != nil {
			s.logger.Error("rescan failed", "error", err)
			return
		}
		inv := s.Inventory()
		s.logger.Info("routes rescanned",
			"routes", inv.Totals.Routes,
			"layouts", inv.Totals.Layouts,
			"clients", s.hub.ClientCount())
	})
	if err != nil {
		return err
	}
	if err := watcher.Start(); err != nil {
		return err
	}
	defer watcher.Stop()

	srv := &http.Server{
		Addr:    addr,
		Handler: s.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	s.logger.Info("inspection server listening", "addr", addr, "root", s.root)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// handleTable serves the same box-drawn table the CLI prints.
func (s *Server) handleTable(w http.ResponseWriter, r *http.Request) {
	inv := s.Inventory()
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if inv == nil || len(inv.Routes) == 0 {
		w.Write([]byte("No routes found.\n"))
		return
	}
	report.WriteTable(w, inv.Routes)
}

// handleRoutes serves the inventory as JSON.
func (s *Server) handleRoutes(w http.ResponseWriter, r *http.Request) {
	inv := s.Inventory()
	if inv == nil {
		http.Error(w, "no scan has completed yet", http.StatusServiceUnavailable)
		return
	}
	data, err := inv.MarshalIndented()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Write(data)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
