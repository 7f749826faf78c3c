// Package telemetry exports search metrics to Prometheus and spans to OpenTelemetry.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"gridpath/pkg/engine/search"
	"gridpath/pkg/engine/world"
)

// Result label values
const (
	ResultFound    = "found"
	ResultFailed   = "failed"
	ResultRejected = "rejected"
)

var (
	// searchTotal counts finished searches by result and rejection reason
	searchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gridpath_search_total",
		Help: "Total searches by result",
	}, []string{"result", "reason"})

	// searchDuration tracks wall time per search
	searchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gridpath_search_duration_seconds",
		Help:    "Search duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.00001, 2, 14), // 10us to ~80ms
	}, []string{"result"})

	// cellsRelaxed counts cost improvements across all searches
	cellsRelaxed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gridpath_cells_relaxed_total",
		Help: "Total cells whose cost was improved",
	})

	// pathLength tracks the number of moves in found paths
	pathLength = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "gridpath_path_length",
		Help:    "Moves per found path",
		Buckets: []float64{1, 2, 5, 10, 20, 40, 80, 160},
	})
)

// Tracer returns the tracer used for search spans
func Tracer() trace.Tracer {
	return otel.Tracer("gridpath")
}

// ResultLabel maps a search status to the result label
func ResultLabel(s search.Status) string {
	switch s {
	case search.Succeeded:
		return ResultFound
	case search.Failed:
		return ResultFailed
	case search.Rejected:
		return ResultRejected
	default:
		return s.String()
	}
}

// ObserveDuration records how long a search with the given status took
func ObserveDuration(s search.Status, d time.Duration) {
	searchDuration.WithLabelValues(ResultLabel(s)).Observe(d.Seconds())
}

// Observer feeds search events into the Prometheus metrics
type Observer struct{}

// OnCellRelaxed implements search.Observer
func (Observer) OnCellRelaxed(world.Coord) {
	cellsRelaxed.Inc()
}

// OnPathFound implements search.Observer
func (Observer) OnPathFound(path []world.Coord) {
	searchTotal.WithLabelValues(ResultFound, "").Inc()
	if len(path) > 0 {
		pathLength.Observe(float64(len(path) - 1))
	}
}

// OnSearchFailed implements search.Observer
func (Observer) OnSearchFailed() {
	searchTotal.WithLabelValues(ResultFailed, "").Inc()
}

// OnRejected implements search.Observer
func (Observer) OnRejected(reason search.Rejection) {
	searchTotal.WithLabelValues(ResultRejected, reason.String()).Inc()
}

var _ search.Observer = Observer{}

// Handler serves the default Prometheus registry
func Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

// Serve exposes /metrics on addr until ctx is cancelled
func Serve(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("metrics listen on %s: %w", addr, err)
	}

	srv := &http.Server{Handler: Handler(), ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("metrics server shutdown: %v", err)
		}
	}()

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("metrics server: %v", err)
		}
	}()
	return nil
}
