package traininglog

import (
	"context"
	"fmt"
	"math"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/fitlinea/fitlinea/internal/anomaly"
	"github.com/fitlinea/fitlinea/internal/telemetry/metrics"
	"github.com/fitlinea/fitlinea/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=traininglog_test

type logRepo interface {
	Add(ctx context.Context, entry LogEntry) (*LogEntry, error)
	Get(ctx context.Context, id int) (*LogEntry, error)
	Delete(ctx context.Context, id int) error
	List(ctx context.Context, params ListParams) (_ []LogEntry, total int, err error)
	History(ctx context.Context, athleteID int, exercise string) ([]LogEntry, error)
	UpdateSet(ctx context.Context, logID int, set Set) error
}

type anomalyDispatcher interface {
	Dispatch(ctx context.Context, athleteID int, event anomaly.Event) error
}

// Service persists log edits and runs anomaly detection on every set
// value save.
type Service struct {
	repo       logRepo
	detector   *anomaly.Detector
	dispatcher anomalyDispatcher
	metrics    *metrics.Manager
}

func NewService(
	repo logRepo,
	detector *anomaly.Detector,
	dispatcher anomalyDispatcher,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		repo:       repo,
		detector:   detector,
		dispatcher: dispatcher,
		metrics:    metricsManager,
	}
}

func (s *Service) Add(ctx context.Context, entry LogEntry) (_ *LogEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.traininglog.add")
	defer tracing.EndSpanWithErrCheck(span, err)

	if entry.Date.IsZero() {
		entry.Date = time.Now()
	}

	added, err := s.repo.Add(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("add log entry: %w", err)
	}
	return added, nil
}

func (s *Service) Get(ctx context.Context, id int) (_ *LogEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.traininglog.get")
	defer tracing.EndSpanWithErrCheck(span, err)
	return s.repo.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.traininglog.delete")
	defer tracing.EndSpanWithErrCheck(span, err)
	return s.repo.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, params ListParams) (_ []LogEntry, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.traininglog.list")
	defer tracing.EndSpanWithErrCheck(span, err)
	return s.repo.List(ctx, params)
}

// UpdateSetValue saves one edited set cell. The new value is classified
// against the athlete's history first, then persisted; a detected
// anomaly is handed to the dispatcher best-effort, so a failing alert
// never fails the save.
func (s *Service) UpdateSetValue(ctx context.Context, params UpdateSetParams) (_ *SetUpdateResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.traininglog.updatesetvalue")
	defer tracing.EndSpanWithErrCheck(span, err)

	if err := validateSetValue(params.Field, params.Value); err != nil {
		return nil, err
	}

	entry, err := s.repo.Get(ctx, params.LogID)
	if err != nil {
		return nil, fmt.Errorf("get log entry: %w", err)
	}

	currentSet := findSet(entry.Sets, params.SetIndex)

	updatedSet := Set{SetIndex: params.SetIndex}
	if currentSet != nil {
		updatedSet = *currentSet
	}

	// only the numeric cells run through the detector, the free-text
	// ones are recorded as entered
	var event *anomaly.Event
	switch params.Field {
	case anomaly.FieldReps, anomaly.FieldWeight:
		history, err := s.repo.History(ctx, entry.AthleteID, entry.Exercise)
		if err != nil {
			return nil, fmt.Errorf("get exercise history: %w", err)
		}

		var detectCurrent *anomaly.SetValue
		if currentSet != nil {
			detectCurrent = &anomaly.SetValue{
				SetIndex: currentSet.SetIndex,
				Reps:     currentSet.Reps,
				Weight:   currentSet.Weight,
			}
		}
		event = s.detector.Detect(anomaly.DetectParams{
			Exercise:   entry.Exercise,
			Field:      params.Field,
			NewValue:   params.Value,
			EditDate:   entry.Date,
			SetIndex:   params.SetIndex,
			History:    sessionLogs(history),
			CurrentSet: detectCurrent,
		})

		if params.Field == anomaly.FieldReps {
			reps := int(params.Value)
			updatedSet.Reps = &reps
		} else {
			weight := params.Value
			updatedSet.Weight = &weight
		}
	case anomaly.FieldTempo:
		tempo := params.Text
		updatedSet.Tempo = &tempo
	case anomaly.FieldRest:
		rest := params.Text
		updatedSet.Rest = &rest
	case anomaly.FieldNotes:
		notes := params.Text
		updatedSet.Notes = &notes
	}

	if err := s.repo.UpdateSet(ctx, entry.ID, updatedSet); err != nil {
		return nil, fmt.Errorf("update set: %w", err)
	}

	if event != nil {
		s.metrics.CounterAnomaliesDetected.WithLabelValues(event.Type.String()).Inc()
		if dispatchErr := s.dispatcher.Dispatch(ctx, entry.AthleteID, *event); dispatchErr != nil {
			// the set value is already saved, alerting failures are logged only
			log.Errorf(
				"dispatch %s anomaly for athlete %d [%s]: %s",
				event.Type, entry.AthleteID, entry.Exercise, dispatchErr,
			)
		}
	}

	return &SetUpdateResult{
		LogID:    entry.ID,
		Set:      updatedSet,
		Anomaly:  event,
		Exercise: entry.Exercise,
	}, nil
}

func validateSetValue(field anomaly.Field, value float64) error {
	switch field {
	case anomaly.FieldReps:
		if value < 0 || value != math.Trunc(value) {
			return fmt.Errorf("%w: reps must be a non-negative whole number", ErrInvalidField)
		}
	case anomaly.FieldWeight:
		if value < 0 {
			return fmt.Errorf("%w: weight must be non-negative", ErrInvalidField)
		}
	case anomaly.FieldTempo, anomaly.FieldRest, anomaly.FieldNotes:
		// free text, nothing to check
	default:
		return fmt.Errorf("%w: %q", ErrInvalidField, field)
	}
	return nil
}

func findSet(sets []Set, setIndex int) *Set {
	for i := range sets {
		if sets[i].SetIndex == setIndex {
			return &sets[i]
		}
	}
	return nil
}
