package delivery

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/event-notifier/internal/model"
	"github.com/aliskhannn/event-notifier/internal/rabbitmq/queue"
	"github.com/aliskhannn/event-notifier/internal/repository/job"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/rabbitmq/handlers/delivery/mock.go -package=mocks

type notificationBuilder interface {
	BuildNotification(ctx context.Context, strategy retry.Strategy, eventID uuid.UUID, targetID string) (model.Notification, error)
	PushLive(n model.Notification)
}

type jobStore interface {
	MarkActive(ctx context.Context, id uuid.UUID) error
	MarkCompleted(ctx context.Context, id uuid.UUID, attempts int) error
	MarkFailed(ctx context.Context, id uuid.UUID, attempts int, reason string) error
}

type Handler struct {
	service notificationBuilder
	jobs    jobStore
}

func NewHandler(svc notificationBuilder, jobs jobStore) *Handler {
	return &Handler{
		service: svc,
		jobs:    jobs,
	}
}

// HandleMessage runs one delivery job to completion or exhaustion. Build and
// persist failures retry per the strategy; once the notification is durable
// the job is complete and the live push can no longer fail it.
func (h *Handler) HandleMessage(ctx context.Context, msg queue.DeliveryMessage, strategy retry.Strategy) {
	zlog.Logger.Info().
		Str("job_id", msg.JobID.String()).
		Str("event_id", msg.EventID.String()).
		Str("target_id", msg.TargetID).
		Msg("handling delivery job")

	if err := h.jobs.MarkActive(ctx, msg.JobID); err != nil {
		// The job row is observability state only; a missing row must not
		// stop delivery.
		zlog.Logger.Warn().Err(err).Str("job_id", msg.JobID.String()).Msg("failed to mark job active")
	}

	var notif model.Notification
	attempts := 0

	err := retry.Do(func() error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		attempts++

		n, err := h.service.BuildNotification(ctx, strategy, msg.EventID, msg.TargetID)
		if err != nil {
			zlog.Logger.Warn().Err(err).
				Str("job_id", msg.JobID.String()).
				Int("attempt", attempts).
				Msg("delivery attempt failed")
			return err
		}

		notif = n
		return nil
	}, strategy)

	if err != nil {
		zlog.Logger.Error().Err(err).
			Str("job_id", msg.JobID.String()).
			Str("event_id", msg.EventID.String()).
			Int("attempts", attempts).
			Msg("delivery job exhausted retries")

		if setErr := h.jobs.MarkFailed(ctx, msg.JobID, attempts, err.Error()); setErr != nil {
			if errors.Is(setErr, job.ErrJobNotFound) {
				zlog.Logger.Warn().Str("job_id", msg.JobID.String()).Msg("delivery job not found")
				return
			}

			zlog.Logger.Error().Err(setErr).Str("job_id", msg.JobID.String()).Msg("failed to mark job failed")
		}
		return
	}

	if setErr := h.jobs.MarkCompleted(ctx, msg.JobID, attempts); setErr != nil {
		zlog.Logger.Error().Err(setErr).Str("job_id", msg.JobID.String()).Msg("failed to mark job completed")
	}

	zlog.Logger.Info().
		Str("job_id", msg.JobID.String()).
		Str("event_id", msg.EventID.String()).
		Str("notification_id", notif.ID.String()).
		Int("attempts", attempts).
		Msg("delivery job completed")

	h.service.PushLive(notif)
}
