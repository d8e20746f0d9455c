package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	bookingTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fixora",
			Name:      "booking_transitions_total",
			Help:      "Successful booking lifecycle transitions by kind.",
		},
		[]string{"transition"},
	)

	contactMessages = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "fixora",
			Name:      "contact_messages_total",
			Help:      "Contact form messages received.",
		},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(bookingTransitions, contactMessages)
	})
}

// IncTransition increments the counter for a lifecycle transition label.
func IncTransition(transition string) {
	bookingTransitions.WithLabelValues(transition).Inc()
}

// IncContactMessage counts a stored contact message.
func IncContactMessage() {
	contactMessages.Inc()
}
