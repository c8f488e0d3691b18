package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Manager struct {
	// counters
	CounterRequests             *prometheus.CounterVec
	CounterAnomaliesDetected    *prometheus.CounterVec
	CounterTrainerNotifications prometheus.Counter
	CounterAutoMessages         prometheus.Counter
	CounterPresenceAlerts       prometheus.Counter
	CounterPresencePollTicks    prometheus.Counter
	CounterPlanRollovers        prometheus.Counter
	CounterHandleRequestPanic   prometheus.Counter

	// gauges
	GaugeRequests      prometheus.Gauge
	GaugeLifeSignal    prometheus.Gauge
	GaugeActivePollers prometheus.Gauge

	// histograms
	HistRequestDuration prometheus.Histogram
}

func NewTestManager() *Manager {
	return NewManager("backend", "test_server", prometheus.NewRegistry())
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterRequests := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request",
		Help:      "The total number of incoming requests",
	}, []string{"method", "status"})
	counterAnomaliesDetected := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "workout_anomalies_detected",
		Help:      "The total number of detected workout anomalies, per classification",
	}, []string{"type"})
	counterTrainerNotifications := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "trainer_notifications",
		Help:      "The total number of created trainer notifications",
	})
	counterAutoMessages := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "auto_messages_triggered",
		Help:      "The total number of triggered trainer auto-messages",
	})
	counterPresenceAlerts := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "presence_alerts",
		Help:      "The total number of emitted presence alerts",
	})
	counterPresencePollTicks := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "presence_poll_ticks",
		Help:      "The total number of presence poller ticks",
	})
	counterPlanRollovers := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "plan_rollovers",
		Help:      "The total number of workout plan week rollovers",
	})
	counterHandleRequestPanic := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "handle_request_panic",
		Help:      "The total number of serve request panics",
	})

	gaugeRequests := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "current_requests",
		Help:      "Current number of requests served",
	})
	gaugeLifeSignal := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "life_signal",
		Help:      "Shows whether the service is alive",
	})
	gaugeActivePollers := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "active_presence_pollers",
		Help:      "Current number of running presence pollers",
	})

	histReqDuration := factory.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Buckets: []float64{
				0.0000001, 0.0000002, 0.0000003, 0.0000004, 0.0000005,
				0.000001, 0.0000025, 0.000005, 0.0000075, 0.00001,
				0.0001, 0.001, 0.01, 0.1, 1, 10, 60,
			},
			Name: "request_duration_seconds",
			Help: "Total duration of requests in seconds",
		},
	)

	return &Manager{
		CounterRequests:             counterRequests,
		CounterAnomaliesDetected:    counterAnomaliesDetected,
		CounterTrainerNotifications: counterTrainerNotifications,
		CounterAutoMessages:         counterAutoMessages,
		CounterPresenceAlerts:       counterPresenceAlerts,
		CounterPresencePollTicks:    counterPresencePollTicks,
		CounterPlanRollovers:        counterPlanRollovers,
		CounterHandleRequestPanic:   counterHandleRequestPanic,
		GaugeRequests:               gaugeRequests,
		GaugeLifeSignal:             gaugeLifeSignal,
		GaugeActivePollers:          gaugeActivePollers,
		HistRequestDuration:         histReqDuration,
	}
}
