package model

import (
	"fmt"
)

type SendReservationConfirmationCommand struct {
	ReservationID int64 `json:"reservationId"`
	BookID        int64 `json:"bookId"`
	UserID        int64 `json:"userId"`
}

type ReservationConfirmEmail struct {
	Recipient     string
	BookTitle     string
	ReservationID int64
}

func (e ReservationConfirmEmail) Subject() string {
	return "Library: book reserved"
}

func (e ReservationConfirmEmail) Content() string {
	return fmt.Sprintf("Hi,\n\nthe book %q is reserved for you.\nYour reservation id is %d.\n\nLibrary",
		e.BookTitle, e.ReservationID)
}
