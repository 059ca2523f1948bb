package messaging

import (
	"context"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/ThreeDotsLabs/watermill/components/cqrs"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/domain"
	"github.com/redis/go-redis/v9"
)

type Publisher struct {
	bus *cqrs.EventBus
	now func() time.Time
}

func NewRedisPublisher(client *redis.Client, log watermill.LoggerAdapter) (message.Publisher, error) {
	pub, err := redisstream.NewPublisher(redisstream.PublisherConfig{
		Client: client,
	}, log)
	if err != nil {
		return nil, fmt.Errorf("creating redis publisher: %w", err)
	}
	return pub, nil
}

func NewPublisher(pub message.Publisher, log watermill.LoggerAdapter) (*Publisher, error) {
	bus, err := cqrs.NewEventBusWithConfig(pub, cqrs.EventBusConfig{
		GeneratePublishTopic: func(params cqrs.GenerateEventPublishTopicParams) (string, error) {
			return topicFor(params.EventName)
		},
		Marshaler: marshaler,
		Logger:    log,
	})
	if err != nil {
		return nil, fmt.Errorf("creating event bus: %w", err)
	}

	return &Publisher{bus: bus, now: time.Now}, nil
}

func (p *Publisher) PublishPurchaseCreated(ctx context.Context, purchase *domain.Purchase) error {
	if err := p.bus.Publish(ctx, newPurchaseCreated(purchase, p.now().UTC())); err != nil {
		return fmt.Errorf("publish purchase created: %w", err)
	}
	return nil
}

func (p *Publisher) PublishPurchaseFailed(ctx context.Context, purchase *domain.Purchase) error {
	if err := p.bus.Publish(ctx, newPurchaseFailed(purchase, p.now().UTC())); err != nil {
		return fmt.Errorf("publish purchase failed: %w", err)
	}
	return nil
}
