package queue

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/Astemirdum/library-borrowing/pkg/kafka"
	"github.com/IBM/sarama"
	"github.com/pkg/errors"
)

type Enqueuer struct {
	producer sarama.SyncProducer
}

func NewEnqueuer(producer sarama.SyncProducer) *Enqueuer {
	return &Enqueuer{
		producer: producer,
	}
}

func (q *Enqueuer) PublishBookReserved(_ context.Context, event kafka.BookReservedEvent) error {
	return q.enqueue(kafka.BookReservedTopic, strconv.FormatInt(event.BookID, 10), event)
}

func (q *Enqueuer) enqueue(topic, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(data),
	}
	if _, _, err = q.producer.SendMessage(msg); err != nil {
		return errors.Wrap(err, "producer.SendMessage")
	}
	return nil
}
