package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDispatcher_PublishReachesSubscribers(t *testing.T) {
	t.Parallel()

	d := NewInMemoryDispatcher()

	var got []Event
	d.Subscribe(EventUserRegistered, func(_ context.Context, event Event) error {
		got = append(got, event)
		return nil
	})

	event := New(EventUserRegistered, 7, UserRegisteredPayload{Username: "alice"})
	require.NoError(t, d.Publish(context.Background(), event))

	require.Len(t, got, 1)
	require.Equal(t, event.ID, got[0].ID)
	require.Equal(t, int64(7), got[0].UserID)
}

func TestDispatcher_UnsubscribedTypeIsIgnored(t *testing.T) {
	t.Parallel()

	d := NewInMemoryDispatcher()

	var called bool
	d.Subscribe(EventProfileUpdated, func(context.Context, Event) error {
		called = true
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), New(EventUserRegistered, 1, nil)))
	require.False(t, called)
}

func TestDispatcher_HandlerErrorDoesNotStopDelivery(t *testing.T) {
	t.Parallel()

	d := NewInMemoryDispatcher()

	var secondCalled bool
	d.Subscribe(EventNotificationSent, func(context.Context, Event) error {
		return errors.New("handler failure")
	})
	d.Subscribe(EventNotificationSent, func(context.Context, Event) error {
		secondCalled = true
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), New(EventNotificationSent, 1, nil)))
	require.True(t, secondCalled)
}

func TestNew_PopulatesIDAndTimestamp(t *testing.T) {
	t.Parallel()

	event := New(EventUserRegistered, 3, nil)
	require.NotEmpty(t, event.ID)
	require.False(t, event.Timestamp.IsZero())

	other := New(EventUserRegistered, 3, nil)
	require.NotEqual(t, event.ID, other.ID)
}
