package delivery

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/aliskhannn/event-notifier/internal/mocks/rabbitmq/handlers/delivery"
	"github.com/aliskhannn/event-notifier/internal/model"
	"github.com/aliskhannn/event-notifier/internal/rabbitmq/queue"
)

func setupHandler(t *testing.T) (*Handler, *mocks.MocknotificationBuilder, *mocks.MockjobStore) {
	ctrl := gomock.NewController(t)
	builderMock := mocks.NewMocknotificationBuilder(ctrl)
	jobsMock := mocks.NewMockjobStore(ctrl)
	return NewHandler(builderMock, jobsMock), builderMock, jobsMock
}

func TestHandler_HandleMessage_FirstAttemptSucceeds(t *testing.T) {
	h, builderMock, jobsMock := setupHandler(t)

	strategy := retry.Strategy{Attempts: 3, Delay: time.Millisecond, Backoff: 2}
	msg := queue.DeliveryMessage{JobID: uuid.New(), EventID: uuid.New(), TargetID: "u2"}
	notif := model.Notification{ID: uuid.New(), UserID: "u2", Message: "Alice started following you."}

	jobsMock.EXPECT().MarkActive(gomock.Any(), msg.JobID).Return(nil)
	builderMock.EXPECT().
		BuildNotification(gomock.Any(), strategy, msg.EventID, "u2").
		Return(notif, nil)
	jobsMock.EXPECT().MarkCompleted(gomock.Any(), msg.JobID, 1).Return(nil)
	builderMock.EXPECT().PushLive(notif)

	h.HandleMessage(context.Background(), msg, strategy)
}

func TestHandler_HandleMessage_SucceedsOnThirdAttempt(t *testing.T) {
	h, builderMock, jobsMock := setupHandler(t)

	strategy := retry.Strategy{Attempts: 3, Delay: 20 * time.Millisecond, Backoff: 2}
	msg := queue.DeliveryMessage{JobID: uuid.New(), EventID: uuid.New(), TargetID: "u2"}
	notif := model.Notification{ID: uuid.New(), UserID: "u2", Message: "Alice started following you."}

	jobsMock.EXPECT().MarkActive(gomock.Any(), msg.JobID).Return(nil)

	transient := errors.New("store unavailable")
	gomock.InOrder(
		builderMock.EXPECT().
			BuildNotification(gomock.Any(), strategy, msg.EventID, "u2").
			Return(model.Notification{}, transient),
		builderMock.EXPECT().
			BuildNotification(gomock.Any(), strategy, msg.EventID, "u2").
			Return(model.Notification{}, transient),
		builderMock.EXPECT().
			BuildNotification(gomock.Any(), strategy, msg.EventID, "u2").
			Return(notif, nil),
	)

	jobsMock.EXPECT().MarkCompleted(gomock.Any(), msg.JobID, 3).Return(nil)
	builderMock.EXPECT().PushLive(notif)

	start := time.Now()
	h.HandleMessage(context.Background(), msg, strategy)
	elapsed := time.Since(start)

	// Two backoff delays between the three attempts.
	assert.GreaterOrEqual(t, elapsed, 40*time.Millisecond)
}

func TestHandler_HandleMessage_ExhaustsRetries(t *testing.T) {
	h, builderMock, jobsMock := setupHandler(t)

	strategy := retry.Strategy{Attempts: 3, Delay: time.Millisecond, Backoff: 2}
	msg := queue.DeliveryMessage{JobID: uuid.New(), EventID: uuid.New(), TargetID: "u2"}

	jobsMock.EXPECT().MarkActive(gomock.Any(), msg.JobID).Return(nil)

	builderMock.EXPECT().
		BuildNotification(gomock.Any(), strategy, msg.EventID, "u2").
		Return(model.Notification{}, errors.New("event not found")).
		Times(3)

	jobsMock.EXPECT().
		MarkFailed(gomock.Any(), msg.JobID, 3, gomock.Any()).
		Return(nil)

	// No MarkCompleted and no PushLive: nothing was persisted.
	h.HandleMessage(context.Background(), msg, strategy)
}

func TestHandler_HandleMessage_JobRowMissing(t *testing.T) {
	h, builderMock, jobsMock := setupHandler(t)

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond, Backoff: 2}
	msg := queue.DeliveryMessage{JobID: uuid.New(), EventID: uuid.New(), TargetID: "u2"}
	notif := model.Notification{ID: uuid.New(), UserID: "u2"}

	// A missing bookkeeping row must not stop delivery.
	jobsMock.EXPECT().MarkActive(gomock.Any(), msg.JobID).Return(errors.New("delivery job not found"))
	builderMock.EXPECT().
		BuildNotification(gomock.Any(), strategy, msg.EventID, "u2").
		Return(notif, nil)
	jobsMock.EXPECT().MarkCompleted(gomock.Any(), msg.JobID, 1).Return(nil)
	builderMock.EXPECT().PushLive(notif)

	h.HandleMessage(context.Background(), msg, strategy)
}
