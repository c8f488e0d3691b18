package traininglog

import (
	"errors"
	"time"

	"github.com/fitlinea/fitlinea/internal/anomaly"
)

var (
	ErrLogNotFound  = errors.New("training log not found")
	ErrSetNotFound  = errors.New("training log set not found")
	ErrInvalidField = errors.New("invalid set field")
)

// Set is one recorded set within a log entry. All cells are pointers
// since athletes fill them one at a time. Tempo, rest and notes are
// free text, recorded as entered.
type Set struct {
	SetIndex int      `json:"setIndex"`
	Reps     *int     `json:"reps,omitempty"`
	Weight   *float64 `json:"weight,omitempty"`
	Tempo    *string  `json:"tempo,omitempty"`
	Rest     *string  `json:"rest,omitempty"`
	Notes    *string  `json:"notes,omitempty"`
}

// LogEntry (DB level type) is one training session entry: the sets an
// athlete recorded for a single exercise on a given date.
type LogEntry struct {
	ID        int       `json:"id"`
	AthleteID int       `json:"athleteId"`
	Exercise  string    `json:"exercise"`
	Date      time.Time `json:"date"`
	Sets      []Set     `json:"sets"`
}

// UpdateSetParams describes one edited cell of a log entry. Value
// carries the numeric fields (reps, weight), Text the free-text ones
// (tempo, rest, notes).
type UpdateSetParams struct {
	LogID    int           `json:"logId"`
	SetIndex int           `json:"setIndex"`
	Field    anomaly.Field `json:"field"`
	Value    float64       `json:"value,omitempty"`
	Text     string        `json:"text,omitempty"`
}

// SetUpdateResult is returned after a set value save. Anomaly is nil
// when the new value looked normal.
type SetUpdateResult struct {
	LogID    int            `json:"logId"`
	Set      Set            `json:"set"`
	Anomaly  *anomaly.Event `json:"anomaly,omitempty"`
	Exercise string         `json:"exercise"`
}

// sessionLogs converts repo entries into the detector's neutral history
// representation.
func sessionLogs(entries []LogEntry) []anomaly.SessionLog {
	sessions := make([]anomaly.SessionLog, 0, len(entries))
	for _, entry := range entries {
		session := anomaly.SessionLog{
			Date: entry.Date,
			Sets: make([]anomaly.SetValue, 0, len(entry.Sets)),
		}
		for _, set := range entry.Sets {
			session.Sets = append(session.Sets, anomaly.SetValue{
				SetIndex: set.SetIndex,
				Reps:     set.Reps,
				Weight:   set.Weight,
			})
		}
		sessions = append(sessions, session)
	}
	return sessions
}
