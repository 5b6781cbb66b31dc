package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/aliskhannn/event-notifier/internal/mocks/service/notification"
	"github.com/aliskhannn/event-notifier/internal/model"
	eventrepo "github.com/aliskhannn/event-notifier/internal/repository/event"
	notifrepo "github.com/aliskhannn/event-notifier/internal/repository/notification"
	userrepo "github.com/aliskhannn/event-notifier/internal/repository/user"
)

func setupService(t *testing.T) (*Service, *MockDeps) {
	ctrl := gomock.NewController(t)

	deps := &MockDeps{
		Notifications: mocks.NewMocknotificationRepository(ctrl),
		Events:        mocks.NewMockeventRepository(ctrl),
		Users:         mocks.NewMockuserRepository(ctrl),
		Hub:           mocks.NewMockpusher(ctrl),
		Cache:         mocks.NewMockcache(ctrl),
	}

	svc := NewService(deps.Notifications, deps.Events, deps.Users, deps.Hub, deps.Cache, 50)
	return svc, deps
}

type MockDeps struct {
	Notifications *mocks.MocknotificationRepository
	Events        *mocks.MockeventRepository
	Users         *mocks.MockuserRepository
	Hub           *mocks.Mockpusher
	Cache         *mocks.Mockcache
}

func TestService_BuildNotification(t *testing.T) {
	svc, deps := setupService(t)

	strategy := retry.Strategy{}
	eventID := uuid.New()
	ev := model.Event{ID: eventID, Type: "follow", ActorID: "u1", TargetID: "u2"}

	deps.Events.EXPECT().GetEventByID(gomock.Any(), eventID).Return(ev, nil)
	deps.Cache.EXPECT().GetWithRetry(gomock.Any(), strategy, "actor-name:u1").Return("", redis.Nil)
	deps.Users.EXPECT().GetDisplayName(gomock.Any(), "u1").Return("Alice", nil)
	deps.Cache.EXPECT().SetWithRetry(gomock.Any(), strategy, "actor-name:u1", "Alice").Return(nil)

	want := model.Notification{
		ID:        uuid.New(),
		UserID:    "u2",
		EventID:   eventID,
		Message:   "Alice started following you.",
		CreatedAt: time.Now(),
	}

	deps.Notifications.EXPECT().
		CreateNotification(gomock.Any(), model.Notification{
			UserID:  "u2",
			EventID: eventID,
			Message: "Alice started following you.",
		}).
		Return(want, nil)

	got, err := svc.BuildNotification(context.Background(), strategy, eventID, "u2")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestService_BuildNotification_CachedActorName(t *testing.T) {
	svc, deps := setupService(t)

	strategy := retry.Strategy{}
	eventID := uuid.New()
	ev := model.Event{ID: eventID, Type: "post", ActorID: "u1", TargetID: "u2"}

	deps.Events.EXPECT().GetEventByID(gomock.Any(), eventID).Return(ev, nil)
	deps.Cache.EXPECT().GetWithRetry(gomock.Any(), strategy, "actor-name:u1").Return("Alice", nil)

	deps.Notifications.EXPECT().
		CreateNotification(gomock.Any(), model.Notification{
			UserID:  "u2",
			EventID: eventID,
			Message: "Alice published a new post.",
		}).
		Return(model.Notification{Message: "Alice published a new post."}, nil)

	_, err := svc.BuildNotification(context.Background(), strategy, eventID, "u2")
	require.NoError(t, err)
}

func TestService_BuildNotification_ActorMissing(t *testing.T) {
	svc, deps := setupService(t)

	strategy := retry.Strategy{}
	eventID := uuid.New()
	ev := model.Event{ID: eventID, Type: "follow", ActorID: "ghost", TargetID: "u2"}

	deps.Events.EXPECT().GetEventByID(gomock.Any(), eventID).Return(ev, nil)
	deps.Cache.EXPECT().GetWithRetry(gomock.Any(), strategy, "actor-name:ghost").Return("", redis.Nil)
	deps.Users.EXPECT().GetDisplayName(gomock.Any(), "ghost").Return("", userrepo.ErrUserNotFound)

	deps.Notifications.EXPECT().
		CreateNotification(gomock.Any(), model.Notification{
			UserID:  "u2",
			EventID: eventID,
			Message: "Someone started following you.",
		}).
		Return(model.Notification{Message: "Someone started following you."}, nil)

	got, err := svc.BuildNotification(context.Background(), strategy, eventID, "u2")
	require.NoError(t, err)
	assert.Equal(t, "Someone started following you.", got.Message)
}

func TestService_BuildNotification_EventMissing(t *testing.T) {
	svc, deps := setupService(t)

	strategy := retry.Strategy{}
	eventID := uuid.New()

	deps.Events.EXPECT().GetEventByID(gomock.Any(), eventID).Return(model.Event{}, eventrepo.ErrEventNotFound)

	_, err := svc.BuildNotification(context.Background(), strategy, eventID, "u2")
	require.Error(t, err)
	assert.ErrorIs(t, err, eventrepo.ErrEventNotFound)
}

func TestService_PushLive(t *testing.T) {
	svc, deps := setupService(t)

	n := model.Notification{ID: uuid.New(), UserID: "u2", Message: "hi"}
	deps.Hub.EXPECT().Publish("u2", n)

	svc.PushLive(n)
}

func TestService_ListForUser(t *testing.T) {
	svc, deps := setupService(t)

	notifications := []model.Notification{
		{ID: uuid.New(), UserID: "u2", Message: "newest"},
		{ID: uuid.New(), UserID: "u2", Message: "older"},
	}

	deps.Notifications.EXPECT().ListByUser(gomock.Any(), "u2", 50).Return(notifications, nil)

	got, err := svc.ListForUser(context.Background(), "u2")
	require.NoError(t, err)
	assert.Equal(t, notifications, got)
}

func TestService_MarkRead(t *testing.T) {
	svc, deps := setupService(t)

	id := uuid.New()
	seen := time.Now()
	want := model.Notification{ID: id, UserID: "u2", IsRead: true, SeenAt: &seen}

	deps.Notifications.EXPECT().MarkRead(gomock.Any(), id).Return(want, nil)

	got, err := svc.MarkRead(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestService_MarkRead_NotFound(t *testing.T) {
	svc, deps := setupService(t)

	id := uuid.New()
	deps.Notifications.EXPECT().MarkRead(gomock.Any(), id).Return(model.Notification{}, notifrepo.ErrNotificationNotFound)

	_, err := svc.MarkRead(context.Background(), id)
	require.Error(t, err)
	assert.ErrorIs(t, err, notifrepo.ErrNotificationNotFound)
}

func TestService_BuildNotification_CreateFails(t *testing.T) {
	svc, deps := setupService(t)

	strategy := retry.Strategy{}
	eventID := uuid.New()
	ev := model.Event{ID: eventID, Type: "follow", ActorID: "u1", TargetID: "u2"}

	deps.Events.EXPECT().GetEventByID(gomock.Any(), eventID).Return(ev, nil)
	deps.Cache.EXPECT().GetWithRetry(gomock.Any(), strategy, "actor-name:u1").Return("Alice", nil)
	deps.Notifications.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).Return(model.Notification{}, errors.New("db down"))

	_, err := svc.BuildNotification(context.Background(), strategy, eventID, "u2")
	require.Error(t, err)
}
