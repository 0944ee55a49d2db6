package handler

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/Astemirdum/library-borrowing/email/internal/model"
	"github.com/Astemirdum/library-borrowing/pkg/kafka"
	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSession struct {
	sarama.ConsumerGroupSession
	ctx    context.Context
	marked []int64
}

func (s *fakeSession) Context() context.Context { return s.ctx }

func (s *fakeSession) MarkMessage(msg *sarama.ConsumerMessage, _ string) {
	s.marked = append(s.marked, msg.Offset)
}

type fakeClaim struct {
	sarama.ConsumerGroupClaim
	messages chan *sarama.ConsumerMessage
}

func (c *fakeClaim) Messages() <-chan *sarama.ConsumerMessage { return c.messages }

func eventMessage(t *testing.T, offset int64, e kafka.BookReservedEvent) *sarama.ConsumerMessage {
	data, err := json.Marshal(e)
	require.NoError(t, err)
	return &sarama.ConsumerMessage{Topic: kafka.BookReservedTopic, Offset: offset, Value: data}
}

func TestConsumer_ConsumeClaim(t *testing.T) {
	var handled []model.SendReservationConfirmationCommand
	send := func(_ context.Context, cmd model.SendReservationConfirmationCommand) error {
		handled = append(handled, cmd)
		if cmd.BookID == 13 {
			return errors.New("no such book")
		}
		return nil
	}

	claim := &fakeClaim{messages: make(chan *sarama.ConsumerMessage, 4)}
	claim.messages <- eventMessage(t, 0, kafka.BookReservedEvent{EventID: uuid.New(), ReservationID: 3, BookID: 42, UserID: 7})
	claim.messages <- &sarama.ConsumerMessage{Topic: kafka.BookReservedTopic, Offset: 1, Value: []byte("{broken")}
	claim.messages <- eventMessage(t, 2, kafka.BookReservedEvent{EventID: uuid.New(), ReservationID: 4, BookID: 13, UserID: 7})
	claim.messages <- eventMessage(t, 3, kafka.BookReservedEvent{EventID: uuid.New(), ReservationID: 5, BookID: 43, UserID: 8})
	close(claim.messages)

	session := &fakeSession{ctx: context.Background()}
	consumer := NewConsumer(send, zap.NewNop())
	require.NoError(t, consumer.Setup(session))
	require.NoError(t, consumer.ConsumeClaim(session, claim))
	require.NoError(t, consumer.Cleanup(session))

	require.Equal(t, []model.SendReservationConfirmationCommand{
		{ReservationID: 3, BookID: 42, UserID: 7},
		{ReservationID: 4, BookID: 13, UserID: 7},
		{ReservationID: 5, BookID: 43, UserID: 8},
	}, handled)
	require.Equal(t, []int64{0, 1, 3}, session.marked, "failed sends stay unmarked")
}

func TestConsumer_ConsumeClaimStopsOnSessionEnd(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	session := &fakeSession{ctx: ctx}
	claim := &fakeClaim{messages: make(chan *sarama.ConsumerMessage)}
	consumer := NewConsumer(func(context.Context, model.SendReservationConfirmationCommand) error {
		return nil
	}, zap.NewNop())

	require.NoError(t, consumer.ConsumeClaim(session, claim))
	require.Empty(t, session.marked)
}
