package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AvailabilityChecks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "availability_checks_total",
		Help: "Admission decisions by item type and outcome.",
	}, []string{"item_type", "outcome"})

	ReservationsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "reservations_created_total",
		Help: "Reservations recorded by type.",
	}, []string{"type"})

	ReservationsCanceled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "reservations_cancelled_total",
		Help: "Reservations flipped to cancelled.",
	})
)

// Outcome maps an admission decision to a counter label.
func Outcome(available bool) string {
	if available {
		return "admitted"
	}
	return "denied"
}
