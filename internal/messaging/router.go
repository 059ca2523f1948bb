package messaging

import (
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/ThreeDotsLabs/watermill/components/cqrs"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/redis/go-redis/v9"
)

const consumerGroupPrefix = "fanfirst."

// SubscriberFactory создаёт подписчика для группы потребителей одного обработчика.
type SubscriberFactory func(consumerGroup string) (message.Subscriber, error)

func RedisSubscribers(client *redis.Client, log watermill.LoggerAdapter) SubscriberFactory {
	return func(consumerGroup string) (message.Subscriber, error) {
		return redisstream.NewSubscriber(redisstream.SubscriberConfig{
			Client:        client,
			ConsumerGroup: consumerGroup,
		}, log)
	}
}

type RouterDeps struct {
	Logger      watermill.LoggerAdapter
	Subscribers SubscriberFactory
	Handler     *Handler
	MaxRetries  int
}

type Router struct {
	*message.Router
}

func NewRouter(deps RouterDeps) (*Router, error) {
	router, err := message.NewRouter(message.RouterConfig{}, deps.Logger)
	if err != nil {
		return nil, fmt.Errorf("creating router: %w", err)
	}

	router.AddMiddleware(middleware.Recoverer)
	router.AddMiddleware(middleware.Retry{
		MaxRetries:      deps.MaxRetries,
		InitialInterval: 100 * time.Millisecond,
		MaxInterval:     time.Second,
		Multiplier:      2,
		Logger:          deps.Logger,
	}.Middleware)

	ep, err := cqrs.NewEventProcessorWithConfig(router, cqrs.EventProcessorConfig{
		SubscriberConstructor: func(params cqrs.EventProcessorSubscriberConstructorParams) (message.Subscriber, error) {
			return deps.Subscribers(consumerGroupPrefix + params.HandlerName)
		},
		GenerateSubscribeTopic: func(params cqrs.EventProcessorGenerateSubscribeTopicParams) (string, error) {
			return topicFor(params.EventName)
		},
		Marshaler: marshaler,
		Logger:    deps.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("creating event processor: %w", err)
	}

	h := deps.Handler
	handlers := []cqrs.EventHandler{
		cqrs.NewEventHandler("engagement_score.created", h.AddEngagement),
		cqrs.NewEventHandler("engagement_score.failed", h.RevokeEngagement),
		cqrs.NewEventHandler("purchase_notifications.created", h.NotifyCreated),
		cqrs.NewEventHandler("purchase_notifications.failed", h.NotifyFailed),
	}
	if err = ep.AddHandlers(handlers...); err != nil {
		return nil, fmt.Errorf("adding handlers: %w", err)
	}

	return &Router{router}, nil
}
