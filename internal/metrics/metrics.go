// Package metrics exposes frame loop counters to Prometheus.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector records frame driver activity on its own registry.
type Collector struct {
	registry     *prometheus.Registry
	frames       prometheus.Counter
	pausedFrames prometheus.Counter
	picks        *prometheus.CounterVec
	fallbacks    *prometheus.CounterVec
	bodies       prometheus.Gauge
}

func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		frames: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "orrery_frames_total",
			Help: "Frame ticks executed",
		}),
		pausedFrames: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "orrery_paused_frames_total",
			Help: "Frame ticks executed while paused",
		}),
		picks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orrery_pick_total",
				Help: "Picking queries by result",
			},
			[]string{"result"},
		),
		fallbacks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orrery_speed_fallbacks_total",
				Help: "Unusable speed reads replaced by the last valid speed",
			},
			[]string{"body"},
		),
		bodies: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "orrery_bodies",
			Help: "Bodies in the simulation",
		}),
	}
	c.registry.MustRegister(c.frames, c.pausedFrames, c.picks, c.fallbacks, c.bodies)
	return c
}

func (c *Collector) Registry() *prometheus.Registry { return c.registry }

func (c *Collector) FrameStepped(paused bool) {
	c.frames.Inc()
	if paused {
		c.pausedFrames.Inc()
	}
}

func (c *Collector) PickResolved(hit bool) {
	if hit {
		c.picks.WithLabelValues("hit").Inc()
		return
	}
	c.picks.WithLabelValues("miss").Inc()
}

func (c *Collector) SpeedFellBack(body string) {
	c.fallbacks.WithLabelValues(body).Inc()
}

func (c *Collector) SetBodies(n int) { c.bodies.Set(float64(n)) }

func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is cancelled.
func (c *Collector) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
