package queue_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Astemirdum/library-borrowing/borrowing/internal/queue"
	"github.com/Astemirdum/library-borrowing/pkg/kafka"
	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestEnqueuer_PublishBookReserved(t *testing.T) {
	event := kafka.BookReservedEvent{
		EventID:       uuid.New(),
		ReservationID: 3,
		BookID:        42,
		UserID:        7,
		OccurredAt:    time.Date(2024, 4, 2, 15, 4, 5, 0, time.UTC),
	}

	producer := mocks.NewSyncProducer(t, sarama.NewConfig())
	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var got kafka.BookReservedEvent
		if err := json.Unmarshal(val, &got); err != nil {
			return err
		}
		if got.EventID != event.EventID || got.ReservationID != event.ReservationID ||
			got.BookID != event.BookID || got.UserID != event.UserID || !got.OccurredAt.Equal(event.OccurredAt) {
			return errors.New("unexpected event payload")
		}
		return nil
	})

	require.NoError(t, queue.NewEnqueuer(producer).PublishBookReserved(context.Background(), event))
	require.NoError(t, producer.Close())
}

func TestEnqueuer_PublishBookReservedFails(t *testing.T) {
	producer := mocks.NewSyncProducer(t, sarama.NewConfig())
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	err := queue.NewEnqueuer(producer).PublishBookReserved(context.Background(), kafka.BookReservedEvent{BookID: 1})
	require.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	require.NoError(t, producer.Close())
}
