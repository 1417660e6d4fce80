package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BookingsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "clinic_bookings_created_total",
			Help: "Appointments successfully created through the booking flow",
		},
	)

	BookingConflicts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "clinic_booking_conflicts_total",
			Help: "Bookings rejected because another patient held the slot",
		},
	)

	RefundsAttempted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clinic_refunds_attempted_total",
			Help: "Gateway refunds attempted after a post-payment conflict",
		},
		[]string{"result"},
	)

	StatusTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clinic_appointment_transitions_total",
			Help: "Appointment status transitions by target status",
		},
		[]string{"to"},
	)

	AvailabilityCacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clinic_availability_cache_total",
			Help: "Availability reads by cache outcome",
		},
		[]string{"outcome"},
	)
)
