package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestChatMetrics(t *testing.T) {
	m := NewChatMetrics(prometheus.NewRegistry())

	m.ObserveIntent("book")
	m.ObserveIntent("book")
	m.ObserveIntent("list")
	m.ObserveBooking(BookingFull)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.intentsTotal.WithLabelValues("book")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.intentsTotal.WithLabelValues("list")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.bookingsTotal.WithLabelValues(BookingFull)))
}

func TestChatMetrics_NilSafe(t *testing.T) {
	var m *ChatMetrics
	assert.NotPanics(t, func() {
		m.ObserveIntent("book")
		m.ObserveBooking(BookingCreated)
	})
}
