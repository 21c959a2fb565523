// Package metrics exposes gameplay and session counters in Prometheus format.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder collects metrics for one process.
// A nil *Recorder is valid and records nothing, so local play can skip metrics.
//
// Metrics:
//   - danmaku_runs_started_total{source}
//   - danmaku_runs_finished_total{source}
//   - danmaku_run_score{source} (histogram)
//   - danmaku_enemies_destroyed_total
//   - danmaku_ssh_sessions_active (gauge)
//   - danmaku_frame_duration_seconds (histogram)
type Recorder struct {
	registry *prometheus.Registry

	runsStarted  *prometheus.CounterVec
	runsFinished *prometheus.CounterVec
	runScore     *prometheus.HistogramVec
	kills        prometheus.Counter
	sessions     prometheus.Gauge
	frameTime    prometheus.Histogram
}

// NewRecorder creates a recorder with its own registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		runsStarted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "danmaku",
			Name:      "runs_started_total",
			Help:      "Runs started, by source (local or ssh).",
		}, []string{"source"}),
		runsFinished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "danmaku",
			Name:      "runs_finished_total",
			Help:      "Runs that ended with the player destroyed.",
		}, []string{"source"}),
		runScore: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "danmaku",
			Name:      "run_score",
			Help:      "Final score of finished runs.",
			Buckets:   []float64{0, 1, 2, 5, 10, 20, 50, 100, 200},
		}, []string{"source"}),
		kills: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "danmaku",
			Name:      "enemies_destroyed_total",
			Help:      "Enemies destroyed across all runs.",
		}),
		sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "danmaku",
			Name:      "ssh_sessions_active",
			Help:      "Currently connected SSH sessions.",
		}),
		frameTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "danmaku",
			Name:      "frame_duration_seconds",
			Help:      "Wall time spent simulating one frame.",
			Buckets:   []float64{0.00005, 0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01},
		}),
	}

	r.registry.MustRegister(r.runsStarted, r.runsFinished, r.runScore, r.kills, r.sessions, r.frameTime)
	return r
}

// RunStarted counts a new run.
func (r *Recorder) RunStarted(source string) {
	if r == nil {
		return
	}
	r.runsStarted.WithLabelValues(source).Inc()
}

// RunEnded counts a finished run and records its score.
func (r *Recorder) RunEnded(source string, score int) {
	if r == nil {
		return
	}
	r.runsFinished.WithLabelValues(source).Inc()
	r.runScore.WithLabelValues(source).Observe(float64(score))
}

// EnemiesDestroyed adds n kills.
func (r *Recorder) EnemiesDestroyed(n int) {
	if r == nil || n <= 0 {
		return
	}
	r.kills.Add(float64(n))
}

// SessionOpened marks an SSH session as connected.
func (r *Recorder) SessionOpened() {
	if r == nil {
		return
	}
	r.sessions.Inc()
}

// SessionClosed marks an SSH session as gone.
func (r *Recorder) SessionClosed() {
	if r == nil {
		return
	}
	r.sessions.Dec()
}

// ObserveFrame records how long one simulation frame took.
func (r *Recorder) ObserveFrame(d time.Duration) {
	if r == nil {
		return
	}
	r.frameTime.Observe(d.Seconds())
}

// Handler serves the registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
