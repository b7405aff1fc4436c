// Package kafka publishes account lifecycle events. Publishing is
// fire-and-forget: a failed publish is retried on a bounded backoff and then
// logged, never surfaced to the request that triggered it.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/finhub/accounts_service/internal/core/domain"
	portssvc "github.com/finhub/accounts_service/internal/core/ports/services"
	"github.com/finhub/accounts_service/internal/middleware"
	"github.com/finhub/accounts_service/internal/utils/retry"
	kafkago "github.com/segmentio/kafka-go"
)

type Producer struct {
	writer *kafkago.Writer
	policy retry.Policy
}

// NewProducer creates the lifecycle event publisher for the given broker and
// topic. Messages for one account always share a key, so consumers see that
// account's events in order.
func NewProducer(broker, topic string) *Producer {
	return &Producer{
		writer: &kafkago.Writer{
			Addr:         kafkago.TCP(broker),
			Topic:        topic,
			Balancer:     &kafkago.LeastBytes{},
			RequiredAcks: kafkago.RequireAll,
			Async:        false,
			WriteTimeout: 10 * time.Second,
		},
		policy: retry.DefaultPolicy,
	}
}

var _ portssvc.EventPublisherSvc = (*Producer)(nil)

// PublishAccountEvent serializes and publishes the event in the background.
// The retry runs detached from the request context so an aborted request
// cannot cancel an event that already logically happened.
func (p *Producer) PublishAccountEvent(ctx context.Context, event domain.AccountEvent) {
	logger := middleware.GetLoggerFromCtx(ctx)

	msg, err := buildMessage(event)
	if err != nil {
		logger.Error("failed to serialize account event",
			slog.String("account_number", event.AccountNumber),
			slog.String("event_type", string(event.EventType)),
			slog.String("error", err.Error()))
		return
	}

	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		err := p.policy.Do(bgCtx, func(ctx context.Context) error {
			return p.writer.WriteMessages(ctx, msg)
		})
		if err != nil {
			logger.Error("failed to publish account event",
				slog.String("account_number", event.AccountNumber),
				slog.String("event_type", string(event.EventType)),
				slog.String("error", err.Error()))
			return
		}
		logger.Debug("account event published",
			slog.String("account_number", event.AccountNumber),
			slog.String("event_type", string(event.EventType)))
	}()
}

// Close flushes and closes the underlying writer.
func (p *Producer) Close() error {
	return p.writer.Close()
}

func buildMessage(event domain.AccountEvent) (kafkago.Message, error) {
	value, err := json.Marshal(event)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("failed to marshal account event: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(event.AccountNumber),
		Value: value,
		Time:  event.Timestamp,
	}, nil
}
