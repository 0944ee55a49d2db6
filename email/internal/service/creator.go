package service

import (
	"strings"

	"github.com/Astemirdum/library-borrowing/email/internal/errs"
	"github.com/Astemirdum/library-borrowing/email/internal/model"
)

func ReservationEmail(reservationID int64, bookTitle, recipient string) (model.ReservationConfirmEmail, error) {
	recipient = strings.TrimSpace(recipient)
	if recipient == "" {
		return model.ReservationConfirmEmail{}, errs.ErrEmptyRecipient
	}
	return model.ReservationConfirmEmail{
		Recipient:     recipient,
		BookTitle:     bookTitle,
		ReservationID: reservationID,
	}, nil
}
