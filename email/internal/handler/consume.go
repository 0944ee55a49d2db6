package handler

import (
	"context"
	"encoding/json"

	"github.com/Astemirdum/library-borrowing/email/internal/model"
	"github.com/Astemirdum/library-borrowing/pkg/kafka"
	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

type sendConfirmation func(ctx context.Context, cmd model.SendReservationConfirmationCommand) error

type Consumer struct {
	sendConfirmationHandler sendConfirmation
	log                     *zap.Logger
}

func NewConsumer(send sendConfirmation, log *zap.Logger) *Consumer {
	return &Consumer{
		sendConfirmationHandler: send,
		log:                     log.Named("consumer"),
	}
}

func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

// Cleanup is run at the end of a session, once all ConsumeClaim goroutines have exited.
func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				consumer.log.Warn("message channel was closed")
				return nil
			}
			consumer.handle(session, message)
		case <-session.Context().Done():
			return nil
		}
	}
}

// handle leaves a message unmarked when sending failed.
func (consumer *Consumer) handle(session sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) {
	var event kafka.BookReservedEvent
	if err := json.Unmarshal(message.Value, &event); err != nil {
		consumer.log.Error("json.Unmarshal", zap.Error(err), zap.ByteString("value", message.Value))
		session.MarkMessage(message, "")
		return
	}

	cmd := model.SendReservationConfirmationCommand{
		ReservationID: event.ReservationID,
		BookID:        event.BookID,
		UserID:        event.UserID,
	}
	if err := consumer.sendConfirmationHandler(session.Context(), cmd); err != nil {
		consumer.log.Error("consumer.sendConfirmationHandler",
			zap.Stringer("event_id", event.EventID),
			zap.Int64("reservation_id", event.ReservationID),
			zap.Error(err))
		return
	}

	consumer.log.Debug("Message claimed:",
		zap.String("value", string(message.Value)),
		zap.Time("timestamp", message.Timestamp),
		zap.String("topic", message.Topic))
	session.MarkMessage(message, "")
}
