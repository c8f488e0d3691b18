package anomaly

import (
	"fmt"
	"sort"
	"strconv"
	"time"
)

// Field is the log cell field being edited
type Field string

const (
	FieldReps   Field = "reps"
	FieldWeight Field = "weight"

	// free-text cells, saved with the set but never classified
	FieldTempo Field = "tempo"
	FieldRest  Field = "rest"
	FieldNotes Field = "notes"
)

// Classification can be one of:
//   - stagnation
//   - drastic_improvement
//   - drastic_drop
//   - unusual_pattern
//   - drastic_weight_increase
//   - drastic_weight_drop
type Classification string

const (
	Stagnation            Classification = "stagnation"
	DrasticImprovement    Classification = "drastic_improvement"
	DrasticDrop           Classification = "drastic_drop"
	UnusualPattern        Classification = "unusual_pattern"
	DrasticWeightIncrease Classification = "drastic_weight_increase"
	DrasticWeightDrop     Classification = "drastic_weight_drop"
)

func (c Classification) String() string {
	return string(c)
}

func (c Classification) IsValid() bool {
	switch c {
	case Stagnation,
		DrasticImprovement,
		DrasticDrop,
		UnusualPattern,
		DrasticWeightIncrease,
		DrasticWeightDrop:
		return true
	default:
		return false
	}
}

// SetValue holds the recorded values of one set; reps and weight are
// optional since the athlete fills cells one at a time
type SetValue struct {
	SetIndex int      `json:"setIndex"`
	Reps     *int     `json:"reps,omitempty"`
	Weight   *float64 `json:"weight,omitempty"`
}

// SessionLog is one training session's recorded sets for a single exercise
type SessionLog struct {
	Date time.Time  `json:"date"`
	Sets []SetValue `json:"sets"`
}

// Event describes a detected anomaly. It is transient: produced on a set
// save, handed to the notification dispatcher, then discarded.
type Event struct {
	Type           Classification `json:"type"`
	Message        string         `json:"message"`
	Exercise       string         `json:"exercise"`
	Value          float64        `json:"value"`
	Previous       float64        `json:"previous"`
	Weight         *float64       `json:"weight,omitempty"`
	PreviousWeight *float64       `json:"previousWeight,omitempty"`
	Reps           *int           `json:"reps,omitempty"`
	PreviousReps   *int           `json:"previousReps,omitempty"`
	Sessions       int            `json:"sessions,omitempty"`
}

// Thresholds holds the detector ratios and windows. The values encode
// coaching judgment, not derived constraints, so they stay configurable.
type Thresholds struct {
	// reps rules, ratios against the most recent session
	RepsImprovementFactor float64
	RepsDropFactor        float64
	RepsUnusualFactor     float64
	// weight rules
	WeightIncreaseFactor float64
	WeightDropFactor     float64
	// cross-field tolerances
	WeightLowTolerance     float64
	WeightHighTolerance    float64
	RepsRetentionTolerance float64
	// stagnation needs this many identical historical sessions
	StagnationSessionWindow int
	// pattern analysis looks at most this many recent sessions
	HistorySessionLimit int
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		RepsImprovementFactor:   2.0,
		RepsDropFactor:          0.5,
		RepsUnusualFactor:       1.3,
		WeightIncreaseFactor:    1.3,
		WeightDropFactor:        0.7,
		WeightLowTolerance:      0.9,
		WeightHighTolerance:     1.1,
		RepsRetentionTolerance:  0.9,
		StagnationSessionWindow: 4,
		HistorySessionLimit:     10,
	}
}

// Detector compares a newly entered set value against the athlete's
// recent history for the same exercise and set position. It is a pure
// rule engine: simple ratios against the most recent session, evaluated
// in a fixed priority order, first match wins. No statistical smoothing,
// favoring recall over precision - the trainer filters false positives.
type Detector struct {
	thresholds Thresholds
}

func NewDetector(thresholds Thresholds) *Detector {
	return &Detector{
		thresholds: thresholds,
	}
}

// DetectParams carries one edited cell plus the full exercise history.
// CurrentSet is the set record under edit as currently stored (used for
// the cross-field value), possibly nil when the set is brand new.
type DetectParams struct {
	Exercise   string
	Field      Field
	NewValue   float64
	EditDate   time.Time
	SetIndex   int
	History    []SessionLog
	CurrentSet *SetValue
}

type setSample struct {
	date   time.Time
	reps   *int
	weight *float64
}

// Detect classifies the new value against history, returning nil when
// nothing unusual is found or when there is no usable history for this
// set position (insufficient history is a precondition, not an error).
func (d *Detector) Detect(params DetectParams) *Event {
	samples := d.sampleHistory(params)
	if len(samples) == 0 {
		return nil
	}

	if params.Field == FieldReps {
		if ev := d.checkStagnation(params, samples); ev != nil {
			return ev
		}
		return d.checkRepsChange(params, samples)
	}

	if params.Field == FieldWeight {
		return d.checkWeightChange(params, samples)
	}

	return nil
}

// sampleHistory extracts the values recorded for this set position from
// the sessions strictly preceding the edited date, most recent first,
// capped to the configured session limit. The record under edit is never
// part of the returned samples.
func (d *Detector) sampleHistory(params DetectParams) []setSample {
	previous := make([]SessionLog, 0, len(params.History))
	for _, session := range params.History {
		if session.Date.Before(params.EditDate) {
			previous = append(previous, session)
		}
	}

	sort.Slice(previous, func(i, j int) bool {
		return previous[i].Date.After(previous[j].Date)
	})

	if len(previous) > d.thresholds.HistorySessionLimit {
		previous = previous[:d.thresholds.HistorySessionLimit]
	}

	var samples []setSample
	for _, session := range previous {
		for _, set := range session.Sets {
			if set.SetIndex == params.SetIndex {
				samples = append(samples, setSample{
					date:   session.Date,
					reps:   set.Reps,
					weight: set.Weight,
				})
				break
			}
		}
	}

	return samples
}

// checkStagnation fires when the most recent sessions all repeated the
// exact same (reps, weight) pair and the new value repeats it once more.
func (d *Detector) checkStagnation(params DetectParams, samples []setSample) *Event {
	window := d.thresholds.StagnationSessionWindow
	if len(samples) < window {
		return nil
	}

	first := samples[0]
	if first.reps == nil || first.weight == nil {
		return nil
	}

	for _, s := range samples[:window] {
		if s.reps == nil || *s.reps != *first.reps {
			return nil
		}
		if s.weight == nil || *s.weight != *first.weight {
			return nil
		}
	}

	newReps := int(params.NewValue)
	if newReps != *first.reps {
		return nil
	}

	sessions := window + 1 // the repeated history plus the value being saved
	return &Event{
		Type: Stagnation,
		Message: fmt.Sprintf(
			"Stagnation detected in %s: %d consecutive sessions with %d reps x %skg",
			params.Exercise, sessions, newReps, formatKilos(*first.weight),
		),
		Exercise: params.Exercise,
		Value:    float64(newReps),
		Previous: float64(*first.reps),
		Weight:   first.weight,
		Sessions: sessions,
	}
}

func (d *Detector) checkRepsChange(params DetectParams, samples []setSample) *Event {
	last := samples[0]
	if last.reps == nil {
		return nil
	}

	newReps := params.NewValue
	lastReps := float64(*last.reps)

	var lastWeight float64
	if last.weight != nil {
		lastWeight = *last.weight
	}

	// weight already recorded for the set under edit, or the last known one
	currentWeight := lastWeight
	if params.CurrentSet != nil && params.CurrentSet.Weight != nil {
		currentWeight = *params.CurrentSet.Weight
	}

	// more than double the reps with the same or higher weight is suspicious
	if newReps > lastReps*d.thresholds.RepsImprovementFactor &&
		currentWeight >= lastWeight*d.thresholds.WeightLowTolerance {
		return &Event{
			Type: DrasticImprovement,
			Message: fmt.Sprintf(
				"Drastic improvement in %s: %d reps x %skg (before: %d reps x %skg)",
				params.Exercise, int(newReps), formatKilos(currentWeight),
				int(lastReps), formatKilos(lastWeight),
			),
			Exercise:       params.Exercise,
			Value:          newReps,
			Previous:       lastReps,
			Weight:         &currentWeight,
			PreviousWeight: &lastWeight,
		}
	}

	// less than half the reps with the same or lower weight is concerning
	if newReps < lastReps*d.thresholds.RepsDropFactor &&
		currentWeight <= lastWeight*d.thresholds.WeightHighTolerance {
		return &Event{
			Type: DrasticDrop,
			Message: fmt.Sprintf(
				"Drastic drop in %s: %d reps x %skg (before: %d reps x %skg)",
				params.Exercise, int(newReps), formatKilos(currentWeight),
				int(lastReps), formatKilos(lastWeight),
			),
			Exercise:       params.Exercise,
			Value:          newReps,
			Previous:       lastReps,
			Weight:         &currentWeight,
			PreviousWeight: &lastWeight,
		}
	}

	// reps and weight both rose sharply; normally when weight goes up, reps go down
	if newReps > lastReps*d.thresholds.RepsUnusualFactor &&
		currentWeight > lastWeight*d.thresholds.WeightHighTolerance {
		return &Event{
			Type: UnusualPattern,
			Message: fmt.Sprintf(
				"Unusual pattern in %s: %d reps x %skg (before: %d reps x %skg) - both weight and reps went up",
				params.Exercise, int(newReps), formatKilos(currentWeight),
				int(lastReps), formatKilos(lastWeight),
			),
			Exercise:       params.Exercise,
			Value:          newReps,
			Previous:       lastReps,
			Weight:         &currentWeight,
			PreviousWeight: &lastWeight,
		}
	}

	return nil
}

func (d *Detector) checkWeightChange(params DetectParams, samples []setSample) *Event {
	last := samples[0]
	if last.weight == nil {
		return nil
	}

	newWeight := params.NewValue
	lastWeight := *last.weight

	lastReps := 0
	if last.reps != nil {
		lastReps = *last.reps
	}

	currentReps := lastReps
	if params.CurrentSet != nil && params.CurrentSet.Reps != nil {
		currentReps = *params.CurrentSet.Reps
	}

	// big weight jump with the reps held is unusual
	if newWeight > lastWeight*d.thresholds.WeightIncreaseFactor &&
		float64(currentReps) >= float64(lastReps)*d.thresholds.RepsRetentionTolerance {
		return &Event{
			Type: DrasticWeightIncrease,
			Message: fmt.Sprintf(
				"Drastic weight increase in %s: %skg x %d reps (before: %skg x %d reps)",
				params.Exercise, formatKilos(newWeight), currentReps,
				formatKilos(lastWeight), lastReps,
			),
			Exercise:     params.Exercise,
			Value:        newWeight,
			Previous:     lastWeight,
			Reps:         &currentReps,
			PreviousReps: &lastReps,
		}
	}

	if newWeight < lastWeight*d.thresholds.WeightDropFactor {
		return &Event{
			Type: DrasticWeightDrop,
			Message: fmt.Sprintf(
				"Drastic weight drop in %s: %skg x %d reps (before: %skg x %d reps)",
				params.Exercise, formatKilos(newWeight), currentReps,
				formatKilos(lastWeight), lastReps,
			),
			Exercise:     params.Exercise,
			Value:        newWeight,
			Previous:     lastWeight,
			Reps:         &currentReps,
			PreviousReps: &lastReps,
		}
	}

	return nil
}

func formatKilos(kilos float64) string {
	return strconv.FormatFloat(kilos, 'f', -1, 64)
}
