// Package metrics exposes the counters and gauges named in
// SPEC_FULL.md's ambient stack: a Prometheus registry served over HTTP when
// MetricsConfig.MetricsEnabled is set (gravity_utils/src/types/config.rs
// MetricsConfig), or a no-op implementation otherwise so the rest of the
// orchestrator never branches on whether metrics are on.
package metrics

import (
	"context"
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is implemented by both the Prometheus-backed and no-op metrics
// sinks, so loop code never checks whether metrics are enabled.
type Recorder interface {
	EventNonceObserved(chain string, nonce uint64)
	ClaimSubmitted(eventKind string)
	ConfirmSubmitted(kind string)
	BatchRelayed(success bool)
	LoopIteration(loop string)
	LoopError(loop string, kind string)
}

type noopRecorder struct{}

func (noopRecorder) EventNonceObserved(string, uint64) {}
func (noopRecorder) ClaimSubmitted(string)             {}
func (noopRecorder) ConfirmSubmitted(string)            {}
func (noopRecorder) BatchRelayed(bool)                  {}
func (noopRecorder) LoopIteration(string)               {}
func (noopRecorder) LoopError(string, string)           {}

// NewNoop returns a Recorder that discards everything, for
// MetricsConfig.MetricsEnabled == false.
func NewNoop() Recorder { return noopRecorder{} }

type promRecorder struct {
	eventNonce      *prometheus.GaugeVec
	claimsSubmitted *prometheus.CounterVec
	confirmsSent    *prometheus.CounterVec
	batchesRelayed  *prometheus.CounterVec
	loopIterations  *prometheus.CounterVec
	loopErrors      *prometheus.CounterVec
}

// NewPrometheus registers the orchestrator's metric families on a fresh
// registry and returns both the Recorder and an http.Handler for the
// metrics endpoint.
func NewPrometheus() (Recorder, http.Handler) {
	reg := prometheus.NewRegistry()

	r := &promRecorder{
		eventNonce: promauto.With(reg).NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "gravity_orchestrator",
			Name:      "last_observed_event_nonce",
			Help:      "highest Eth event nonce observed per chain side",
		}, []string{"chain"}),
		claimsSubmitted: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: "gravity_orchestrator",
			Name:      "claims_submitted_total",
			Help:      "attestation claims submitted to the Cosmos chain, by event kind",
		}, []string{"event_kind"}),
		confirmsSent: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: "gravity_orchestrator",
			Name:      "confirms_submitted_total",
			Help:      "Eth signatures submitted to the Cosmos chain, by confirm kind",
		}, []string{"kind"}),
		batchesRelayed: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: "gravity_orchestrator",
			Name:      "batches_relayed_total",
			Help:      "batch/logic-call/valset relay transactions sent to Eth",
		}, []string{"success"}),
		loopIterations: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: "gravity_orchestrator",
			Name:      "loop_iterations_total",
			Help:      "completed polling iterations, by loop name",
		}, []string{"loop"}),
		loopErrors: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: "gravity_orchestrator",
			Name:      "loop_errors_total",
			Help:      "errors surfaced from a loop iteration, by loop name and error kind",
		}, []string{"loop", "kind"}),
	}

	return r, promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func (r *promRecorder) EventNonceObserved(chain string, nonce uint64) {
	r.eventNonce.WithLabelValues(chain).Set(float64(nonce))
}

func (r *promRecorder) ClaimSubmitted(eventKind string) {
	r.claimsSubmitted.WithLabelValues(eventKind).Inc()
}

func (r *promRecorder) ConfirmSubmitted(kind string) {
	r.confirmsSent.WithLabelValues(kind).Inc()
}

func (r *promRecorder) BatchRelayed(success bool) {
	label := "false"
	if success {
		label = "true"
	}
	r.batchesRelayed.WithLabelValues(label).Inc()
}

func (r *promRecorder) LoopIteration(loop string) {
	r.loopIterations.WithLabelValues(loop).Inc()
}

func (r *promRecorder) LoopError(loop string, kind string) {
	r.loopErrors.WithLabelValues(loop, kind).Inc()
}

// Serve runs an HTTP server exposing handler at /metrics on addr until ctx
// is cancelled.
func Serve(ctx context.Context, addr string, handler http.Handler) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", handler)
	srv := &http.Server{Addr: addr, Handler: mux}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case <-ctx.Done():
		return srv.Shutdown(context.Background())
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
