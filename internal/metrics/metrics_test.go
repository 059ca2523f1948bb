package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_PurchaseProcessed(t *testing.T) {
	rec := NewRecorder(prometheus.NewRegistry())

	rec.PurchaseProcessed(OutcomeSuccess, 3)
	rec.PurchaseProcessed(OutcomeSuccess, 2)
	rec.PurchaseProcessed(OutcomeSoldOut, 8)

	assert.Equal(t, 2.0, testutil.ToFloat64(rec.purchases.WithLabelValues(OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.purchases.WithLabelValues(OutcomeSoldOut)))
	assert.Equal(t, 5.0, testutil.ToFloat64(rec.ticketsSold))
}

func TestRecorder_PurchasesExpired(t *testing.T) {
	rec := NewRecorder(prometheus.NewRegistry())

	rec.PurchasesExpired(4)

	assert.Equal(t, 4.0, testutil.ToFloat64(rec.purchasesExpired))
}

func TestRecorder_ObserveHTTP(t *testing.T) {
	rec := NewRecorder(prometheus.NewRegistry())

	rec.ObserveHTTP("/events/:id", http.MethodGet, http.StatusOK, 15*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(rec.httpRequests.WithLabelValues("/events/:id", "GET", "200")))
}

func TestHandler_ExposesMetrics(t *testing.T) {
	reg := NewRegistry()
	rec := NewRecorder(reg)
	rec.PurchaseProcessed(OutcomeSuccess, 1)

	w := httptest.NewRecorder()
	Handler(reg).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "fanfirst_purchases_total")
	assert.Contains(t, w.Body.String(), "go_goroutines")
}
