package events

import (
	"context"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/staynest/service-stay/internal/pkg/kafka"
)

// BookingEventLogger consumes booking events and writes one audit log line
// per event.
type BookingEventLogger struct {
	consumer *kafka.Consumer
	logger   *zap.Logger
}

// NewBookingEventLogger creates a BookingEventLogger reading TopicBookingEvents.
func NewBookingEventLogger(brokers []string, groupID string, logger *zap.Logger) *BookingEventLogger {
	return &BookingEventLogger{
		consumer: kafka.NewConsumer(brokers, groupID, TopicBookingEvents, logger),
		logger:   logger,
	}
}

// Start begins consuming booking events. This blocks until the context is cancelled.
func (l *BookingEventLogger) Start(ctx context.Context) error {
	return l.consumer.Consume(ctx, l.handleMessage)
}

// Close closes the underlying Kafka consumer.
func (l *BookingEventLogger) Close() error {
	return l.consumer.Close()
}

func (l *BookingEventLogger) handleMessage(_ context.Context, msg kafkago.Message) error {
	l.HandleEvent(msg.Value)
	return nil
}

// HandleEvent logs a single raw CloudEvent. Malformed payloads are logged
// and dropped.
func (l *BookingEventLogger) HandleEvent(value []byte) {
	ce, err := kafka.ParseCloudEvent(value)
	if err != nil {
		l.logger.Error("failed to parse cloud event from booking topic",
			zap.Error(err),
			zap.String("raw", string(value)),
		)
		return
	}

	switch ce.Type {
	case BookingRequested:
		var evt BookingRequestedEvent
		if err := ce.ParseData(&evt); err != nil {
			l.logger.Error("failed to parse BookingRequestedEvent data", zap.Error(err))
			return
		}
		l.logger.Info("audit: booking requested",
			zap.String("booking_id", evt.BookingID),
			zap.String("listing_id", evt.ListingID),
			zap.String("user_id", evt.UserID),
			zap.String("date", evt.Date),
		)
	case BookingConfirmed:
		var evt BookingConfirmedEvent
		if err := ce.ParseData(&evt); err != nil {
			l.logger.Error("failed to parse BookingConfirmedEvent data", zap.Error(err))
			return
		}
		l.logger.Info("audit: booking confirmed",
			zap.String("booking_id", evt.BookingID),
			zap.String("user_id", evt.UserID),
			zap.String("confirmed_by", evt.ConfirmedBy),
		)
	default:
		l.logger.Debug("ignoring unhandled booking event type",
			zap.String("type", ce.Type),
		)
	}
}
