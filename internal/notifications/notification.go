package notifications

import (
	"errors"
	"time"

	"github.com/fitlinea/fitlinea/internal/anomaly"
)

var ErrNotificationNotFound = errors.New("notification not found")

const (
	CategoryWorkoutAnomaly = "workout_anomaly"

	// reason sent to the chat service when an anomaly triggers an
	// assistant auto-message
	AutoMessageReasonUnusualChange = "unusual_workout_change"
)

// Notification (DB level type) is a persistent trainer notification,
// shown in the trainer dashboard until marked as read.
type Notification struct {
	ID          int    `json:"id"`
	AthleteID   int    `json:"athleteId"`
	Category    string `json:"category"`
	AnomalyType string `json:"anomalyType,omitempty"`
	Message     string `json:"message"`
	// Metadata mirrors the anomaly event that produced the
	// notification, so the dashboard can show the numeric context
	// without parsing the message text
	Metadata  *anomaly.Event `json:"metadata,omitempty"`
	Read      bool           `json:"read"`
	CreatedAt time.Time      `json:"createdAt"`
}
