package presence

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/fitlinea/fitlinea/internal/telemetry/metrics"
)

type ManagerParams struct {
	Lister          ConversationLister
	Metrics         *metrics.Manager
	WarmupDelay     time.Duration
	PollInterval    time.Duration
	FreshnessWindow time.Duration
}

// Manager owns one poller per trainer session. Pollers are started
// lazily on the first presence request of a session and stopped on
// logout or server shutdown.
type Manager struct {
	params ManagerParams

	mu      sync.Mutex
	pollers map[string]*runningPoller
}

type runningPoller struct {
	poller *Poller
	cancel context.CancelFunc
}

func NewManager(params ManagerParams) *Manager {
	return &Manager{
		params:  params,
		pollers: make(map[string]*runningPoller),
	}
}

// PollerForSession returns the session's poller, starting one when the
// session has none yet.
func (m *Manager) PollerForSession(sessionToken string) *Poller {
	m.mu.Lock()
	defer m.mu.Unlock()

	if running, ok := m.pollers[sessionToken]; ok {
		return running.poller
	}

	poller := NewPoller(PollerParams{
		Lister:          m.params.Lister,
		Metrics:         m.params.Metrics,
		WarmupDelay:     m.params.WarmupDelay,
		PollInterval:    m.params.PollInterval,
		FreshnessWindow: m.params.FreshnessWindow,
	})
	ctx, cancel := context.WithCancel(context.Background())
	m.pollers[sessionToken] = &runningPoller{
		poller: poller,
		cancel: cancel,
	}
	go poller.Run(ctx)

	m.params.Metrics.GaugeActivePollers.Inc()
	log.Debugf("presence poller started, %d active", len(m.pollers))

	return poller
}

// StopForSession stops and removes the session's poller, if any.
func (m *Manager) StopForSession(sessionToken string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopLocked(sessionToken)
}

// StopAll stops every poller and waits for them to wind down. Used on
// server shutdown.
func (m *Manager) StopAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for sessionToken := range m.pollers {
		m.stopLocked(sessionToken)
	}
}

func (m *Manager) stopLocked(sessionToken string) {
	running, ok := m.pollers[sessionToken]
	if !ok {
		return
	}
	running.cancel()
	<-running.poller.Done()
	delete(m.pollers, sessionToken)
	m.params.Metrics.GaugeActivePollers.Dec()
	log.Debugf("presence poller stopped, %d active", len(m.pollers))
}
