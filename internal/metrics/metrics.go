package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	bookingCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "felka",
			Name:      "booking_created_total",
			Help:      "Count of cargo bookings created.",
		},
	)

	bookingCancelled = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "felka",
			Name:      "booking_cancelled_total",
			Help:      "Count of cargo bookings cancelled by requesters.",
		},
	)

	managerDecision = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "felka",
			Name:      "manager_decision_total",
			Help:      "Count of manager decisions over cargo bookings.",
		},
		[]string{"decision"},
	)

	slotsGenerated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "felka",
			Name:      "slots_generated_total",
			Help:      "Count of schedule slots created by week generation.",
		},
	)

	bookingRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "felka",
			Name:      "booking_rejected_total",
			Help:      "Count of booking operations rejected by policy.",
		},
		[]string{"policy"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(bookingCreated, bookingCancelled, managerDecision, slotsGenerated, bookingRejected)
	})
}

func IncBookingCreated() {
	bookingCreated.Inc()
}

func IncBookingCancelled() {
	bookingCancelled.Inc()
}

func IncManagerDecision(decision string) {
	managerDecision.WithLabelValues(decision).Inc()
}

func AddSlotsGenerated(n int) {
	slotsGenerated.Add(float64(n))
}

func IncBookingRejected(policy string) {
	bookingRejected.WithLabelValues(policy).Inc()
}
