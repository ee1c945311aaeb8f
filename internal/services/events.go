package services

import (
	"context"

	"shop-service/internal/domain"
	"shop-service/internal/infra/rabbitmq"
	"shop-service/internal/logger"

	"go.uber.org/zap"
)

// publishEvent announces a committed write. Failures are logged, never returned.
func publishEvent(ctx context.Context, pub rabbitmq.PublisherInterface, entity string, action domain.EventAction, id uint64) {
	evt := domain.NewEntityEvent(entity, action, id)
	if err := pub.Publish(ctx, evt.RoutingKey(), evt); err != nil {
		logger.Warn(ctx, "failed to publish event", zap.String("routing_key", evt.RoutingKey()), zap.Error(err))
	}
}

func orNoop(pub rabbitmq.PublisherInterface) rabbitmq.PublisherInterface {
	if pub == nil {
		return rabbitmq.NoopPublisher{}
	}
	return pub
}
