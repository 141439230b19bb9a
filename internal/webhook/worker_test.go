package webhook

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/urbanaccess/report-api/internal/config"
	"github.com/urbanaccess/report-api/internal/models"
)

func newTestWorker(cfg *config.Config) *Worker {
	log := logrus.New()
	log.SetOutput(&bytes.Buffer{})
	return NewWorker(nil, log, cfg)
}

func testEvent() ReportEvent {
	return ReportEvent{
		ReportID:  uuid.New(),
		Title:     "Broken ramp",
		Status:    models.StatusInAnalysis,
		UpdatedBy: uuid.New(),
		Timestamp: time.Now(),
	}
}

func TestDeliver_RetriesWithSignature(t *testing.T) {
	var calls atomic.Int32
	var signature atomic.Value

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		signature.Store(r.Header.Get("X-Webhook-Signature"))
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := &config.Config{
		WebhookURL:        srv.URL,
		WebhookSecret:     "test-secret",
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	}

	payload := `{"title":"Broken ramp"}`
	newTestWorker(cfg).deliver(context.Background(), testEvent(), payload)

	assert.Equal(t, int32(2), calls.Load())
	assert.Equal(t, generateHMACSHA256(payload, "test-secret"), signature.Load())
}

func TestDeliver_BadURLBacksOffBetweenRetries(t *testing.T) {
	cfg := &config.Config{
		WebhookURL:        "://not-a-url",
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  20 * time.Millisecond,
	}

	start := time.Now()
	newTestWorker(cfg).deliver(context.Background(), testEvent(), "{}")

	// Three failed attempts sleep 20+40+80 ms before giving up.
	assert.GreaterOrEqual(t, time.Since(start), 140*time.Millisecond)
}

func TestDeliver_SkipsWithoutURL(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	cfg := &config.Config{
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	}

	newTestWorker(cfg).deliver(context.Background(), testEvent(), "{}")

	assert.Equal(t, int32(0), calls.Load())
}
