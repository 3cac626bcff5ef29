package application

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/staynest/service-stay/internal/domain/booking"
	"github.com/staynest/service-stay/internal/domain/identity"
	"github.com/staynest/service-stay/internal/domain/listing"
	"github.com/staynest/service-stay/internal/pkg/domain"
	"github.com/staynest/service-stay/internal/pkg/kafka"
)

const eventSource = "service-stay"

// Backend is the document store the services read and write through.
type Backend interface {
	listing.Gateway
	booking.Gateway
}

// EventPublisher delivers domain events. *kafka.Producer implements it.
type EventPublisher interface {
	PublishEvent(ctx context.Context, topic string, event kafka.CloudEvent) error
}

// eventBus publishes best effort: failures are logged and swallowed.
type eventBus struct {
	publisher EventPublisher
	logger    *zap.Logger
}

func (b eventBus) publish(ctx context.Context, topic, eventType, subject string, data interface{}) {
	if b.publisher == nil {
		return
	}
	cloudEvent, err := kafka.NewCloudEvent(eventSource, eventType, data)
	if err != nil {
		b.logger.Error("failed to create cloud event",
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return
	}
	cloudEvent.Subject = subject

	if err := b.publisher.PublishEvent(ctx, topic, cloudEvent); err != nil {
		b.logger.Error("failed to publish event",
			zap.String("topic", topic),
			zap.String("event_type", eventType),
			zap.Error(err),
		)
	}
}

func requireAuthenticated(caller identity.AuthContext) error {
	if !caller.IsAuthenticated() {
		return domain.NewAuthRequiredError("sign in required")
	}
	return nil
}

func requireAdmin(policy identity.AdminPolicy, caller identity.AuthContext) error {
	if err := requireAuthenticated(caller); err != nil {
		return err
	}
	if !policy.IsAdmin(caller) {
		return domain.NewForbiddenError("admin access required")
	}
	return nil
}

func now() time.Time { return time.Now().UTC() }
