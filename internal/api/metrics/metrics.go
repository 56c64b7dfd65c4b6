// Package metrics defines and registers all custom Prometheus metrics for
// the AllSync CRM service. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics are registered with the default registry at package init via
// promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "allsync"

// ── Appointment metrics ──────────────────────────────────────────────────────

// AppointmentsCreatedTotal counts successfully created appointments.
// Labels:
//   - role: the active session role at creation time (e.g. "doctor")
//   - type: the appointment category (e.g. "Consultation")
var AppointmentsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "appointments_created_total",
		Help:      "Total number of appointments created, by role and type.",
	},
	[]string{"role", "type"},
)

// AppointmentTransitionsTotal counts applied status transitions.
// Labels:
//   - from, to: the statuses involved (no-op transitions excluded)
var AppointmentTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "appointment_transitions_total",
		Help:      "Total number of appointment status transitions applied.",
	},
	[]string{"from", "to"},
)

// AppointmentErrorsTotal counts rejected appointment operations.
// Label:
//   - reason: short failure code (e.g. "invalid_type", "terminal_status")
var AppointmentErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "appointment_errors_total",
		Help:      "Total number of appointment operations rejected by validation.",
	},
	[]string{"reason"},
)

// ── Client metrics ───────────────────────────────────────────────────────────

var ClientsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "clients_created_total",
		Help:      "Total number of clients created.",
	},
)

var ClientsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "clients_deleted_total",
		Help:      "Total number of clients deleted.",
	},
)

// ClientSearchesTotal counts directory searches.
// Label:
//   - kind: "filtered" for a non-empty query, "full" for the unfiltered list
var ClientSearchesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "client_searches_total",
		Help:      "Total number of client directory searches, by kind.",
	},
	[]string{"kind"},
)

// ── Activity feed metrics ────────────────────────────────────────────────────

// ActivityRecordedTotal counts feed entries recorded.
// Label:
//   - entity: the entity kind the entry refers to ("appointment", "client")
var ActivityRecordedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activity_recorded_total",
		Help:      "Total number of activity feed entries recorded, by entity.",
	},
	[]string{"entity"},
)

// ActivityDroppedTotal counts entries dropped because a worker queue was full.
var ActivityDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activity_dropped_total",
		Help:      "Total number of activity feed entries dropped under backpressure.",
	},
)

// ActivityQueueDepth tracks the current number of entries waiting in each
// dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var ActivityQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "activity_queue_depth",
		Help:      "Current number of entries pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
