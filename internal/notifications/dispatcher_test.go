package notifications_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/fitlinea/fitlinea/internal/anomaly"
	"github.com/fitlinea/fitlinea/internal/chat"
	"github.com/fitlinea/fitlinea/internal/notifications"
	"github.com/fitlinea/fitlinea/internal/telemetry/metrics"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestDispatcher(t *testing.T) (*notifications.Dispatcher, *MockdispatcherRepo, *MockautoMessenger) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockdispatcherRepo(ctrl)
	messengerMock := NewMockautoMessenger(ctrl)
	dispatcher := notifications.NewDispatcher(repoMock, messengerMock, metrics.NewTestManager())
	return dispatcher, repoMock, messengerMock
}

func TestDispatcher_Dispatch(t *testing.T) {
	dispatcher, repoMock, messengerMock := newTestDispatcher(t)
	ctx := context.Background()

	weight := 60.0
	event := anomaly.Event{
		Type:           anomaly.DrasticDrop,
		Message:        "Drastic drop in Bench Press: 4 reps x 60kg (before: 10 reps x 60kg)",
		Exercise:       "Bench Press",
		Value:          4,
		Previous:       10,
		Weight:         &weight,
		PreviousWeight: &weight,
	}

	repoMock.EXPECT().
		Add(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, n notifications.Notification) (*notifications.Notification, error) {
			assert.Equal(t, 42, n.AthleteID)
			assert.Equal(t, notifications.CategoryWorkoutAnomaly, n.Category)
			assert.Equal(t, "drastic_drop", n.AnomalyType)
			assert.Equal(t, event.Message, n.Message)
			// the full event rides along as metadata, numbers included
			require.NotNil(t, n.Metadata)
			assert.Equal(t, event, *n.Metadata)
			assert.False(t, n.Read)
			n.ID = 1
			return &n, nil
		})
	messengerMock.EXPECT().
		TriggerAutoMessage(gomock.Any(), chat.TriggerAutoMessageParams{
			AthleteID: 42,
			Reason:    notifications.AutoMessageReasonUnusualChange,
			Context:   event.Message,
		}).
		Return(nil)

	require.NoError(t, dispatcher.Dispatch(ctx, 42, event))
}

func TestDispatcher_Dispatch_WeightIncreaseSkipsAutoMessage(t *testing.T) {
	dispatcher, repoMock, _ := newTestDispatcher(t)
	ctx := context.Background()

	// no TriggerAutoMessage expectation: the messenger must stay silent
	repoMock.EXPECT().
		Add(gomock.Any(), gomock.Any()).
		Return(&notifications.Notification{ID: 1}, nil)

	require.NoError(t, dispatcher.Dispatch(ctx, 42, anomaly.Event{
		Type:     anomaly.DrasticWeightIncrease,
		Message:  "Drastic weight increase in Squat: 70kg x 8 reps (before: 50kg x 8 reps)",
		Exercise: "Squat",
	}))
}

func TestDispatcher_Dispatch_SideEffectsIndependent(t *testing.T) {
	dispatcher, repoMock, messengerMock := newTestDispatcher(t)
	ctx := context.Background()

	// the notification insert fails, the auto-message must still fire
	repoMock.EXPECT().
		Add(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("db connection lost"))
	messengerMock.EXPECT().
		TriggerAutoMessage(gomock.Any(), gomock.Any()).
		Return(nil)

	err := dispatcher.Dispatch(ctx, 42, anomaly.Event{
		Type:     anomaly.UnusualPattern,
		Message:  "Unusual pattern in Row",
		Exercise: "Row",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "add trainer notification")
}

func TestDispatcher_Dispatch_BothFail(t *testing.T) {
	dispatcher, repoMock, messengerMock := newTestDispatcher(t)
	ctx := context.Background()

	repoMock.EXPECT().
		Add(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("db connection lost"))
	messengerMock.EXPECT().
		TriggerAutoMessage(gomock.Any(), gomock.Any()).
		Return(errors.New("chat service down"))

	err := dispatcher.Dispatch(ctx, 42, anomaly.Event{
		Type:     anomaly.Stagnation,
		Message:  "Stagnation detected in Bench Press",
		Exercise: "Bench Press",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "add trainer notification")
	assert.Contains(t, err.Error(), "trigger auto message")
}
