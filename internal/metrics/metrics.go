package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "fanfirst"

type Recorder struct {
	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
	purchases        *prometheus.CounterVec
	ticketsSold      prometheus.Counter
	purchasesExpired prometheus.Counter
}

func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)

	return &Recorder{
		httpRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total HTTP requests by route, method and status",
			},
			[]string{"route", "method", "status"},
		),
		httpDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		),
		purchases: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "purchases_total",
				Help:      "Purchase attempts by outcome",
			},
			[]string{"outcome"},
		),
		ticketsSold: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "tickets_sold_total",
				Help:      "Tickets sold by successful purchases",
			},
		),
		purchasesExpired: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "purchases_expired_total",
				Help:      "Pending purchases failed by the expiry scheduler",
			},
		),
	}
}

func (r *Recorder) ObserveHTTP(route, method string, status int, elapsed time.Duration) {
	r.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	r.httpDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

func (r *Recorder) PurchaseProcessed(outcome string, tickets int) {
	r.purchases.WithLabelValues(outcome).Inc()
	if outcome == OutcomeSuccess {
		r.ticketsSold.Add(float64(tickets))
	}
}

func (r *Recorder) PurchasesExpired(n int) {
	r.purchasesExpired.Add(float64(n))
}

const (
	OutcomeSuccess  = "success"
	OutcomeSoldOut  = "sold_out"
	OutcomeInvalid  = "invalid"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

// NewRegistry возвращает реестр с метриками рантайма Go и процесса.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
