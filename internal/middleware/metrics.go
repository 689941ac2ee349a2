package middleware

import (
	"context"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors of the costshare server.
type Metrics struct {
	requests    *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	settlements prometheus.Counter
	unassigned  prometheus.Counter
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "costshare",
			Name:      "rpc_requests_total",
			Help:      "RPC requests by procedure and result code.",
		}, []string{"procedure", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "costshare",
			Name:      "rpc_duration_seconds",
			Help:      "RPC latency by procedure.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure"}),
		settlements: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "costshare",
			Name:      "settlements_computed_total",
			Help:      "Settlement reports computed.",
		}),
		unassigned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "costshare",
			Name:      "unassigned_payment_reports_total",
			Help:      "Settlement reports that contained payments of deleted families.",
		}),
	}
	reg.MustRegister(m.requests, m.duration, m.settlements, m.unassigned)
	return m
}

// Interceptor returns a Connect interceptor recording request counts and latency.
func (m *Metrics) Interceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			procedure := req.Spec().Procedure

			resp, err := next(ctx, req)

			code := "ok"
			if err != nil {
				code = connect.CodeOf(err).String()
			}
			m.requests.WithLabelValues(procedure, code).Inc()
			m.duration.WithLabelValues(procedure).Observe(time.Since(start).Seconds())
			return resp, err
		}
	}
}

// ObserveSettlement records one computed settlement report.
func (m *Metrics) ObserveSettlement(hasUnassigned bool) {
	if m == nil {
		return
	}
	m.settlements.Inc()
	if hasUnassigned {
		m.unassigned.Inc()
	}
}
