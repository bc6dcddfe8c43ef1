package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/userplatform/platform-services/internal/events"
	"github.com/userplatform/platform-services/internal/service"
)

func TestNotificationList_Stub(t *testing.T) {
	t.Parallel()

	svc := service.NewNotificationService(nil, nil, zap.NewNop())
	feed := svc.List(context.Background(), 1)
	require.Len(t, feed, 2)
	require.Equal(t, "Welcome to the platform!", feed[0].Message)
	require.False(t, feed[0].Read)
	require.True(t, feed[1].Read)
}

func TestNotificationSend_PublishesEvent(t *testing.T) {
	t.Parallel()

	dispatcher := events.NewInMemoryDispatcher()
	var published []events.Event
	dispatcher.Subscribe(events.EventNotificationSent, func(_ context.Context, event events.Event) error {
		published = append(published, event)
		return nil
	})

	svc := service.NewNotificationService(dispatcher, nil, zap.NewNop())
	require.NoError(t, svc.Send(context.Background(), 7, "hello"))

	require.Len(t, published, 1)
	require.Equal(t, int64(7), published[0].UserID)
	payload, ok := published[0].Payload.(events.NotificationSentPayload)
	require.True(t, ok)
	require.Equal(t, "hello", payload.Message)
}

func TestNotificationRecentSends_NoRedis(t *testing.T) {
	t.Parallel()

	// Without redis configured the recent-sends buffer quietly degrades.
	svc := service.NewNotificationService(nil, nil, zap.NewNop())
	require.NoError(t, svc.Send(context.Background(), 7, "hello"))

	recent, err := svc.RecentSends(context.Background(), 10)
	require.NoError(t, err)
	require.Empty(t, recent)
}
