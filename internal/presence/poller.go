// Package presence watches trainer conversations for fresh assistant
// activity while a trainer is logged in, and raises in-dashboard alerts
// for messages the trainer has not looked at yet.
package presence

import (
	"context"
	"sort"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/fitlinea/fitlinea/internal/chat"
	"github.com/fitlinea/fitlinea/internal/telemetry/metrics"
)

//go:generate mockgen -source=$GOFILE -destination=poller_mocks_test.go -package=presence

// ConversationLister provides the conversation snapshots the poller
// works from.
type ConversationLister interface {
	ListConversations(ctx context.Context) ([]chat.Conversation, error)
}

// Alert is a pending "new assistant message" notification for the
// trainer dashboard. At most one alert per conversation is held.
type Alert struct {
	ConversationID string    `json:"conversationId"`
	AthleteID      int       `json:"athleteId"`
	MessageID      string    `json:"messageId"`
	SentAt         time.Time `json:"sentAt"`
}

type PollerParams struct {
	Lister          ConversationLister
	Metrics         *metrics.Manager
	WarmupDelay     time.Duration
	PollInterval    time.Duration
	FreshnessWindow time.Duration
}

// Poller tracks assistant activity for one trainer session. After a
// short warmup it seeds the last seen timestamps without alerting, so a
// fresh login does not replay the whole backlog, then keeps polling on
// a steady interval.
type Poller struct {
	lister          ConversationLister
	metrics         *metrics.Manager
	warmupDelay     time.Duration
	pollInterval    time.Duration
	freshnessWindow time.Duration
	nowFunc         func() time.Time

	mu       sync.Mutex
	lastSeen map[string]time.Time
	alerts   map[string]Alert
	viewing  string

	done chan struct{}
}

func NewPoller(params PollerParams) *Poller {
	return &Poller{
		lister:          params.Lister,
		metrics:         params.Metrics,
		warmupDelay:     params.WarmupDelay,
		pollInterval:    params.PollInterval,
		freshnessWindow: params.FreshnessWindow,
		nowFunc:         time.Now,
		lastSeen:        make(map[string]time.Time),
		alerts:          make(map[string]Alert),
		done:            make(chan struct{}),
	}
}

// Run blocks until ctx is canceled. Meant to be started in a goroutine.
func (p *Poller) Run(ctx context.Context) {
	defer close(p.done)

	select {
	case <-ctx.Done():
		return
	case <-time.After(p.warmupDelay):
	}

	p.poll(ctx, true)

	ticker := time.NewTicker(p.pollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.poll(ctx, false)
		}
	}
}

// Done is closed once Run has returned.
func (p *Poller) Done() <-chan struct{} {
	return p.done
}

func (p *Poller) poll(ctx context.Context, seeding bool) {
	conversations, err := p.lister.ListConversations(ctx)
	if err != nil {
		// transient chat service failures just skip the tick
		log.Errorf("presence poll, list conversations: %s", err)
		return
	}
	p.metrics.CounterPresencePollTicks.Inc()

	now := p.nowFunc()

	p.mu.Lock()
	defer p.mu.Unlock()

	for _, conv := range conversations {
		if conv.LastMessage == nil || conv.LastMessage.SenderRole != chat.RoleAssistant {
			continue
		}
		sentAt := conv.LastMessage.SentAt

		seen, known := p.lastSeen[conv.ID]
		if seeding || !known {
			// record silently, timestamps only move forward
			if !known || sentAt.After(seen) {
				p.lastSeen[conv.ID] = sentAt
			}
			continue
		}

		if !sentAt.After(seen) {
			continue
		}
		p.lastSeen[conv.ID] = sentAt

		// an old message surfacing late is not worth an alert
		if now.Sub(sentAt) > p.freshnessWindow {
			continue
		}

		// the trainer is already looking at this conversation
		if p.viewing == conv.ID {
			continue
		}

		if _, pending := p.alerts[conv.ID]; pending {
			continue
		}
		p.alerts[conv.ID] = Alert{
			ConversationID: conv.ID,
			AthleteID:      conv.AthleteID,
			MessageID:      conv.LastMessage.ID,
			SentAt:         sentAt,
		}
		p.metrics.CounterPresenceAlerts.Inc()
	}
}

// Alerts returns the pending alerts, oldest first.
func (p *Poller) Alerts() []Alert {
	p.mu.Lock()
	defer p.mu.Unlock()

	alerts := make([]Alert, 0, len(p.alerts))
	for _, alert := range p.alerts {
		alerts = append(alerts, alert)
	}
	sort.Slice(alerts, func(i, j int) bool {
		return alerts[i].SentAt.Before(alerts[j].SentAt)
	})
	return alerts
}

// SetViewing marks a conversation as open in the trainer's dashboard,
// clearing its pending alert and suppressing future ones.
func (p *Poller) SetViewing(conversationID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.viewing = conversationID
	delete(p.alerts, conversationID)
}

// ClearViewing marks that no conversation is open.
func (p *Poller) ClearViewing() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.viewing = ""
}

// DismissAlert drops the pending alert for a conversation, reporting
// whether there was one.
func (p *Poller) DismissAlert(conversationID string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, pending := p.alerts[conversationID]; !pending {
		return false
	}
	delete(p.alerts, conversationID)
	return true
}
