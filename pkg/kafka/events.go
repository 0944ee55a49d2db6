package kafka

import (
	"time"

	"github.com/google/uuid"
)

type BookReservedEvent struct {
	EventID       uuid.UUID `json:"eventId"`
	ReservationID int64     `json:"reservationId"`
	BookID        int64     `json:"bookId"`
	UserID        int64     `json:"userId"`
	OccurredAt    time.Time `json:"occurredAt"`
}
