package plans

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	log "github.com/sirupsen/logrus"

	"github.com/fitlinea/fitlinea/internal/telemetry/metrics"
	"github.com/fitlinea/fitlinea/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=rollover_mocks_test.go -package=plans_test

type plansRepo interface {
	Get(ctx context.Context, id int) (*Plan, error)
	GetActive(ctx context.Context, athleteID int) (*Plan, error)
	Add(ctx context.Context, plan Plan) (*Plan, error)
	SetActive(ctx context.Context, id int, active bool) error
}

type RollerParams struct {
	Repo           plansRepo
	Metrics        *metrics.Manager
	ResyncAttempts uint64
	ResyncDelay    time.Duration
}

// Roller moves an athlete's plan to the next week: the current plan is
// archived and a successor with the same payload (and a bumped week
// title) becomes the active one. Training logs are stored per log
// entry, so the successor starts with a clean sheet.
type Roller struct {
	repo           plansRepo
	metrics        *metrics.Manager
	resyncAttempts uint64
	resyncDelay    time.Duration
}

func NewRoller(params RollerParams) *Roller {
	return &Roller{
		repo:           params.Repo,
		metrics:        params.Metrics,
		resyncAttempts: params.ResyncAttempts,
		resyncDelay:    params.ResyncDelay,
	}
}

type RolloverResult struct {
	ArchivedID int   `json:"archivedId"`
	WeekNumber int   `json:"weekNumber"`
	NewPlan    *Plan `json:"newPlan"`
}

// Rollover archives the plan and creates its successor. An archive
// failure aborts before anything changed; a create failure after the
// archive leaves the athlete without an active week and is surfaced
// loudly so the trainer can recover by hand.
func (ro *Roller) Rollover(ctx context.Context, planID int) (_ *RolloverResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "roller.plans.rollover")
	defer tracing.EndSpanWithErrCheck(span, err)

	plan, err := ro.repo.Get(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("get plan: %w", err)
	}
	if !plan.Active {
		return nil, ErrPlanNotActive
	}

	if err := ro.repo.SetActive(ctx, plan.ID, false); err != nil {
		return nil, fmt.Errorf("archive current week: %w", err)
	}

	newTitle, weekNumber := NextWeekTitle(plan.Title)
	newPlan, err := ro.repo.Add(ctx, Plan{
		AthleteID:   plan.AthleteID,
		Title:       newTitle,
		Description: plan.Description,
		Active:      true,
		Payload:     plan.Payload,
	})
	if err != nil {
		// the old week is already archived: the athlete has no active
		// plan now, this must not look like a routine failure
		return nil, fmt.Errorf(
			"week archived but next week %q not created, manual recovery needed: %w",
			newTitle, err,
		)
	}

	// re-poll until the new week is the visible active plan, bounded
	// so a lagging replica cannot hold the request forever
	resyncPolicy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(ro.resyncDelay), ro.resyncAttempts),
		ctx,
	)
	if resyncErr := backoff.Retry(func() error {
		active, err := ro.repo.GetActive(ctx, plan.AthleteID)
		if err != nil {
			return err
		}
		if active.ID != newPlan.ID {
			return errors.New("new week not visible as active plan yet")
		}
		return nil
	}, resyncPolicy); resyncErr != nil {
		log.Errorf(
			"rollover resync for athlete %d, plan %d -> %d: %s",
			plan.AthleteID, plan.ID, newPlan.ID, resyncErr,
		)
	}

	ro.metrics.CounterPlanRollovers.Inc()
	log.Debugf("plan %d rolled over to %d (%s)", plan.ID, newPlan.ID, newTitle)

	return &RolloverResult{
		ArchivedID: plan.ID,
		WeekNumber: weekNumber,
		NewPlan:    newPlan,
	}, nil
}
