package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fieldserve/config"
	"fieldserve/infras/kafka"
	"fieldserve/internal/domains/notification/model"
	"fieldserve/shared/timezone"

	"github.com/rs/zerolog/log"
)

// Dispatcher publishes lifecycle events after the owning transaction has committed.
// Delivery failures are logged and never reach the caller.
type Dispatcher interface {
	Publish(ctx context.Context, events ...model.Event)
}

type serviceImpl struct {
	producer kafka.Producer
	topic    string
}

func New(cfg *config.Config, producer kafka.Producer) Dispatcher {
	return &serviceImpl{
		producer: producer,
		topic:    cfg.Kafka.NotificationTopic,
	}
}

func (s *serviceImpl) Publish(ctx context.Context, events ...model.Event) {
	if len(events) == 0 {
		return
	}

	messages := make([]kafka.Message, 0, len(events))

	for _, event := range events {
		if event.OccurredAt.IsZero() {
			event.OccurredAt = timezone.Now()
		}

		messages = append(messages, kafka.Message{Key: event.AggregateID, Value: event})
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.producer.SendMessages(c, s.topic, messages...); err != nil {
			log.Error().Err(err).Str("topic", s.topic).Str("event", string(events[0].Type)).
				Msg("failed to publish notification")
		}
	}()
}

type noopDispatcher struct{}

// NewNoop discards every event. Used when no brokers are configured.
func NewNoop() Dispatcher {
	return noopDispatcher{}
}

func (noopDispatcher) Publish(context.Context, ...model.Event) {}
