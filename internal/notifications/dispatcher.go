package notifications

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"

	"github.com/fitlinea/fitlinea/internal/anomaly"
	"github.com/fitlinea/fitlinea/internal/chat"
	"github.com/fitlinea/fitlinea/internal/telemetry/metrics"
	"github.com/fitlinea/fitlinea/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=dispatcher_mocks_test.go -package=notifications_test

type dispatcherRepo interface {
	Add(ctx context.Context, notification Notification) (*Notification, error)
}

type autoMessenger interface {
	TriggerAutoMessage(ctx context.Context, params chat.TriggerAutoMessageParams) error
}

// Dispatcher fans a detected anomaly out to its side effects: a
// persistent trainer notification, plus an assistant auto-message for
// the anomaly types that warrant reaching out to the athlete. The side
// effects are independent, one failing does not stop the other.
type Dispatcher struct {
	repo      dispatcherRepo
	messenger autoMessenger
	metrics   *metrics.Manager
}

func NewDispatcher(
	repo dispatcherRepo,
	messenger autoMessenger,
	metricsManager *metrics.Manager,
) *Dispatcher {
	return &Dispatcher{
		repo:      repo,
		messenger: messenger,
		metrics:   metricsManager,
	}
}

func (d *Dispatcher) Dispatch(ctx context.Context, athleteID int, event anomaly.Event) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "dispatcher.notifications.dispatch")
	defer tracing.EndSpanWithErrCheck(span, err)

	var errs error

	if _, addErr := d.repo.Add(ctx, Notification{
		AthleteID:   athleteID,
		Category:    CategoryWorkoutAnomaly,
		AnomalyType: event.Type.String(),
		Message:     event.Message,
		Metadata:    &event,
	}); addErr != nil {
		errs = multierr.Append(errs, fmt.Errorf("add trainer notification: %w", addErr))
	} else {
		d.metrics.CounterTrainerNotifications.Inc()
	}

	// a pure weight increase with held reps goes to the trainer only,
	// everything else also pings the athlete
	if event.Type != anomaly.DrasticWeightIncrease {
		if msgErr := d.messenger.TriggerAutoMessage(ctx, chat.TriggerAutoMessageParams{
			AthleteID: athleteID,
			Reason:    AutoMessageReasonUnusualChange,
			Context:   event.Message,
		}); msgErr != nil {
			errs = multierr.Append(errs, fmt.Errorf("trigger auto message: %w", msgErr))
		} else {
			d.metrics.CounterAutoMessages.Inc()
		}
	}

	if errs != nil {
		log.Errorf("dispatch anomaly [%s] for athlete %d: %s", event.Type, athleteID, errs)
	}

	return errs
}
