package bootstrap

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"patient-chatbot/internal/observability/metrics"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func TestSetupChatMetricsExposesCounters(t *testing.T) {
	handler, chatMetrics := setupChatMetrics()
	require.NotNil(t, handler)
	require.NotNil(t, chatMetrics)

	chatMetrics.ObserveIntent("book")
	chatMetrics.ObserveBooking(metrics.BookingCreated)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "chatbot_chat_intents_total")
	assert.Contains(t, rec.Body.String(), "chatbot_chat_bookings_total")
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestGormLogLevel(t *testing.T) {
	assert.Equal(t, logger.Info, gormLogLevel("development"))
	assert.Equal(t, logger.Warn, gormLogLevel("production"))
}

func TestSetupLogger(t *testing.T) {
	log := setupLogger("debug")
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())

	log = setupLogger("loud")
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
}
