package metrics

import "github.com/prometheus/client_golang/prometheus"

// Booking outcomes recorded by ObserveBooking.
const (
	BookingCreated    = "created"
	BookingIncomplete = "incomplete"
	BookingFull       = "full"
	BookingError      = "error"
)

// ChatMetrics exposes counters for the conversation flow.
type ChatMetrics struct {
	intentsTotal  *prometheus.CounterVec
	bookingsTotal *prometheus.CounterVec
}

func NewChatMetrics(reg prometheus.Registerer) *ChatMetrics {
	m := &ChatMetrics{
		intentsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "chatbot",
			Subsystem: "chat",
			Name:      "intents_total",
			Help:      "Total chat messages by classified intent",
		}, []string{"intent"}),
		bookingsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "chatbot",
			Subsystem: "chat",
			Name:      "bookings_total",
			Help:      "Total booking attempts by outcome",
		}, []string{"outcome"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.intentsTotal, m.bookingsTotal)
	return m
}

func (m *ChatMetrics) ObserveIntent(intent string) {
	if m == nil {
		return
	}
	m.intentsTotal.WithLabelValues(intent).Inc()
}

func (m *ChatMetrics) ObserveBooking(outcome string) {
	if m == nil {
		return
	}
	m.bookingsTotal.WithLabelValues(outcome).Inc()
}
