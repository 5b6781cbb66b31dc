package event

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/event-notifier/internal/model"
	"github.com/aliskhannn/event-notifier/internal/rabbitmq/queue"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/event/mock.go -package=mocks

// ErrEnqueueFailed means the event row exists but no delivery job could be
// enqueued for it: the event will never be delivered. Intake and enqueue are
// two separate steps with no transaction around them; the gap is logged and
// surfaced, not repaired.
var ErrEnqueueFailed = errors.New("event persisted but delivery enqueue failed")

type eventRepository interface {
	CreateEvent(context.Context, model.Event) (uuid.UUID, error)
}

type jobRepository interface {
	CreateJob(context.Context, model.DeliveryJob) (uuid.UUID, error)
}

type deliveryPublisher interface {
	Publish(msg queue.DeliveryMessage, strategy retry.Strategy) error
}

type Service struct {
	events eventRepository
	jobs   jobRepository
	queue  deliveryPublisher
}

func NewService(events eventRepository, jobs jobRepository, queue deliveryPublisher) *Service {
	return &Service{events: events, jobs: jobs, queue: queue}
}

// SubmitEvent persists the event, then enqueues exactly one delivery job for
// its target. Intake never waits for delivery.
func (s *Service) SubmitEvent(ctx context.Context, strategy retry.Strategy, ev model.Event) (uuid.UUID, error) {
	if len(ev.Payload) == 0 {
		ev.Payload = json.RawMessage("{}")
	}

	id, err := s.events.CreateEvent(ctx, ev)
	if err != nil {
		return uuid.Nil, fmt.Errorf("create event: %w", err)
	}

	jobID, err := s.jobs.CreateJob(ctx, model.DeliveryJob{EventID: id, TargetID: ev.TargetID})
	if err != nil {
		zlog.Logger.Error().Err(err).
			Str("event_id", id.String()).
			Msg("event persisted but job row creation failed")
		return id, ErrEnqueueFailed
	}

	msg := queue.DeliveryMessage{
		JobID:    jobID,
		EventID:  id,
		TargetID: ev.TargetID,
	}

	if err := s.queue.Publish(msg, strategy); err != nil {
		zlog.Logger.Error().Err(err).
			Str("event_id", id.String()).
			Str("job_id", jobID.String()).
			Msg("event persisted but enqueue failed")
		return id, ErrEnqueueFailed
	}

	return id, nil
}
