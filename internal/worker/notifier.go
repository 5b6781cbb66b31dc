package worker

import (
	"context"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/event-notifier/internal/rabbitmq/queue"
)

//go:generate mockgen -source=notifier.go -destination=../mocks/worker/mock.go -package=mocks

type deliveryConsumer interface {
	Consume(ctx context.Context, out chan<- queue.DeliveryMessage, strategy retry.Strategy) error
}

type messageHandler interface {
	HandleMessage(ctx context.Context, msg queue.DeliveryMessage, strategy retry.Strategy)
}

// Notifier fans delivery jobs out to a pool of worker goroutines. Jobs for
// different events run independently; no ordering is guaranteed across jobs,
// even for the same target user.
type Notifier struct {
	queue   deliveryConsumer
	handler messageHandler
}

func NewNotifier(q deliveryConsumer, h messageHandler) *Notifier {
	return &Notifier{
		queue:   q,
		handler: h,
	}
}

// Run consumes delivery jobs until ctx is cancelled. Each of the workerCount
// goroutines pulls jobs from the shared channel and runs them to completion
// or exhaustion; there is no way to cancel an individual in-flight job.
func (n *Notifier) Run(ctx context.Context, strategy retry.Strategy, workerCount int) {
	msgChan := make(chan queue.DeliveryMessage)

	go func() {
		if err := n.queue.Consume(ctx, msgChan, strategy); err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to consume messages")
		}
	}()

	for i := 0; i < workerCount; i++ {
		go func(id int) {
			zlog.Logger.Printf("worker-%d started", id)

			for {
				select {
				case <-ctx.Done():
					zlog.Logger.Printf("worker-%d shutting down", id)
					return
				case msg := <-msgChan:
					n.handler.HandleMessage(ctx, msg, strategy)
				}
			}
		}(i)
	}

	<-ctx.Done()
	zlog.Logger.Print("notifier stopped")
}
