package notification

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/event-notifier/internal/model"
	"github.com/aliskhannn/event-notifier/internal/repository/user"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/notification/mock.go -package=mocks

type notificationRepository interface {
	CreateNotification(context.Context, model.Notification) (model.Notification, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]model.Notification, error)
	MarkRead(context.Context, uuid.UUID) (model.Notification, error)
}

type eventRepository interface {
	GetEventByID(context.Context, uuid.UUID) (model.Event, error)
}

type userRepository interface {
	GetDisplayName(context.Context, string) (string, error)
}

type pusher interface {
	Publish(userID string, payload interface{})
}

type cache interface {
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
	GetWithRetry(ctx context.Context, strategy retry.Strategy, key string) (string, error)
}

type Service struct {
	notifications notificationRepository
	events        eventRepository
	users         userRepository
	hub           pusher
	cache         cache
	listLimit     int
}

func NewService(
	notifications notificationRepository,
	events eventRepository,
	users userRepository,
	hub pusher,
	cache cache,
	listLimit int,
) *Service {
	return &Service{
		notifications: notifications,
		events:        events,
		users:         users,
		hub:           hub,
		cache:         cache,
		listLimit:     listLimit,
	}
}

// BuildNotification resolves the event, renders its message and persists the
// notification. Every failure here is retryable at the job level, including
// a missing event: a job may reach the worker before the event row commit is
// visible, so referential integrity is not assumed.
func (s *Service) BuildNotification(ctx context.Context, strategy retry.Strategy, eventID uuid.UUID, targetID string) (model.Notification, error) {
	ev, err := s.events.GetEventByID(ctx, eventID)
	if err != nil {
		return model.Notification{}, fmt.Errorf("resolve event: %w", err)
	}

	actor := s.actorName(ctx, strategy, ev.ActorID)
	message := RenderMessage(ev.Type, actor)

	n, err := s.notifications.CreateNotification(ctx, model.Notification{
		UserID:  targetID,
		EventID: ev.ID,
		Message: message,
	})
	if err != nil {
		return model.Notification{}, fmt.Errorf("create notification: %w", err)
	}

	return n, nil
}

// PushLive forwards a persisted notification to the user's live channels.
// Best-effort: the job is already complete once the notification is durable.
func (s *Service) PushLive(n model.Notification) {
	s.hub.Publish(n.UserID, n)
}

// ListForUser returns the user's notifications, newest first.
func (s *Service) ListForUser(ctx context.Context, userID string) ([]model.Notification, error) {
	notifications, err := s.notifications.ListByUser(ctx, userID, s.listLimit)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}

	return notifications, nil
}

// MarkRead marks a notification as read and returns the updated record.
func (s *Service) MarkRead(ctx context.Context, id uuid.UUID) (model.Notification, error) {
	n, err := s.notifications.MarkRead(ctx, id)
	if err != nil {
		return model.Notification{}, fmt.Errorf("mark notification read: %w", err)
	}

	return n, nil
}

// actorName resolves a display name for the actor, going through the cache
// first. Lookup is best-effort: an absent actor record, or any lookup
// failure, renders the generic fallback rather than failing the job.
func (s *Service) actorName(ctx context.Context, strategy retry.Strategy, actorID string) string {
	key := actorNameKey(actorID)

	name, err := s.cache.GetWithRetry(ctx, strategy, key)
	if err == nil && name != "" {
		return name
	}
	if err != nil && !errors.Is(err, redis.Nil) {
		zlog.Logger.Error().Err(err).Str("actor_id", actorID).Msg("failed to get actor name from cache")
	}

	name, err = s.users.GetDisplayName(ctx, actorID)
	if err != nil {
		if !errors.Is(err, user.ErrUserNotFound) {
			zlog.Logger.Error().Err(err).Str("actor_id", actorID).Msg("failed to get actor name")
		}

		return FallbackActorName
	}

	if err := s.cache.SetWithRetry(ctx, strategy, key, name); err != nil {
		zlog.Logger.Error().Err(err).Str("actor_id", actorID).Msg("failed to cache actor name")
	}

	return name
}

func actorNameKey(actorID string) string {
	return "actor-name:" + actorID
}
