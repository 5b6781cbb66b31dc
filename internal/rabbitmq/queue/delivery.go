package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"
)

const (
	ExchangeName   = "notify-exchange"
	MainQueueName  = "delivery-queue"
	RetryQueueName = "delivery-retry"
	DLQName        = "delivery-dlq"
	RoutingKey     = "delivery"
)

// DeliveryMessage is the wire form of one delivery job: render and deliver
// one notification for one event/target pair.
type DeliveryMessage struct {
	JobID    uuid.UUID `json:"jobId"`
	EventID  uuid.UUID `json:"eventId"`
	TargetID string    `json:"targetId"`
}

// DeliveryQueue wraps the durable broker topology for delivery jobs: a main
// queue dead-lettering to the DLQ, and a retry queue whose TTL dead-letters
// messages back to the main queue.
type DeliveryQueue struct {
	Publisher *rabbitmq.Publisher
	Consumer  *rabbitmq.Consumer
}

func NewDeliveryQueue(ch *rabbitmq.Channel) (*DeliveryQueue, error) {
	exchange := rabbitmq.NewExchange(ExchangeName, "direct")
	if err := exchange.BindToChannel(ch); err != nil {
		return nil, fmt.Errorf("failed to bind to exchange: %w", err)
	}

	qm := rabbitmq.NewQueueManager(ch)

	_, err := qm.DeclareQueue(DLQName, rabbitmq.QueueConfig{Durable: true})
	if err != nil {
		return nil, fmt.Errorf("failed to declare DLQ queue: %w", err)
	}

	retryArgs := map[string]interface{}{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": MainQueueName,
		"x-message-ttl":             int32(5000),
	}

	_, err = qm.DeclareQueue(RetryQueueName, rabbitmq.QueueConfig{
		Durable: true,
		Args:    retryArgs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to declare retry queue: %w", err)
	}

	mainArgs := map[string]interface{}{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": DLQName,
	}

	mainQ, err := qm.DeclareQueue(MainQueueName, rabbitmq.QueueConfig{
		Durable: true,
		Args:    mainArgs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to declare main queue: %w", err)
	}

	if err := ch.QueueBind(mainQ.Name, RoutingKey, exchange.Name(), false, nil); err != nil {
		return nil, fmt.Errorf("failed to bind the exchange to the main queue: %w", err)
	}

	pub := rabbitmq.NewPublisher(ch, exchange.Name())
	cons := rabbitmq.NewConsumer(ch, rabbitmq.NewConsumerConfig(mainQ.Name))

	return &DeliveryQueue{Publisher: pub, Consumer: cons}, nil
}

// Publish enqueues one delivery job. The message is persisted by the broker
// and survives process restarts.
func (q *DeliveryQueue) Publish(msg DeliveryMessage, strategy retry.Strategy) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	return q.Publisher.PublishWithRetry(body, RoutingKey, "application/json", strategy)
}

// Consume decodes delivery jobs into out until the consumer stops or ctx is
// cancelled. Malformed bodies are logged and skipped.
func (q *DeliveryQueue) Consume(ctx context.Context, out chan<- DeliveryMessage, strategy retry.Strategy) error {
	msgChan := make(chan []byte)

	go decode(ctx, msgChan, out)

	return q.Consumer.ConsumeWithRetry(msgChan, strategy)
}

// decode unmarshals raw bodies from in into out until in closes. After ctx
// cancellation the remaining bodies are drained and discarded so the broker
// consumer is never left blocked on an abandoned channel.
func decode(ctx context.Context, in <-chan []byte, out chan<- DeliveryMessage) {
	defer func() {
		for range in {
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case m, ok := <-in:
			if !ok {
				return
			}

			var msg DeliveryMessage
			if err := json.Unmarshal(m, &msg); err != nil {
				zlog.Logger.Error().Err(err).Msg("failed to unmarshal message")
				continue
			}

			select {
			case out <- msg:
			case <-ctx.Done():
				return
			}
		}
	}
}
