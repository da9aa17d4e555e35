package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "insider"

var (
	EventsReceived   *prometheus.CounterVec
	EventsProcessed  *prometheus.CounterVec
	ProcessDuration  *prometheus.HistogramVec
	JobStatsWritten  prometheus.Counter
	QueueDropped     prometheus.Counter
	ReplayRotations  prometheus.Counter
	ReplayBackoffs   prometheus.Counter
	ReplayDeliveries *prometheus.CounterVec
)

func init() {
	EventsReceived = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "webhook",
			Name:      "events_received_total",
			Help:      "Webhook deliveries persisted, by event kind",
		},
		[]string{"kind"},
	)
	prometheus.MustRegister(EventsReceived)

	// result: success, failure, noop
	EventsProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "webhook",
			Name:      "events_processed_total",
			Help:      "Webhook events processed, by event kind and result",
		},
		[]string{"kind", "result"},
	)
	prometheus.MustRegister(EventsProcessed)

	ProcessDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "webhook",
			Name:      "process_duration_seconds",
			Help:      "Time spent processing one webhook event",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"kind"},
	)
	prometheus.MustRegister(ProcessDuration)

	JobStatsWritten = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "stats",
		Name:      "job_stats_written_total",
		Help:      "Job statistics rows created or refreshed",
	})
	prometheus.MustRegister(JobStatsWritten)

	QueueDropped = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "queue",
		Name:      "dropped_total",
		Help:      "Event ids not enqueued because the channel was full",
	})
	prometheus.MustRegister(QueueDropped)

	ReplayRotations = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "replay",
		Name:      "token_rotations_total",
		Help:      "Credential rotations after a rate limit",
	})
	prometheus.MustRegister(ReplayRotations)

	ReplayBackoffs = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "replay",
		Name:      "backoff_sleeps_total",
		Help:      "Back-off sleeps after every credential was rate limited",
	})
	prometheus.MustRegister(ReplayBackoffs)

	ReplayDeliveries = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "replay",
			Name:      "deliveries_total",
			Help:      "Synthesized deliveries fed through ingestion, by event kind",
		},
		[]string{"kind"},
	)
	prometheus.MustRegister(ReplayDeliveries)
}
