package service

import (
	"context"
	"fmt"

	"github.com/Astemirdum/library-borrowing/email/internal/errs"
	"github.com/Astemirdum/library-borrowing/email/internal/model"
	"github.com/Astemirdum/library-borrowing/pkg/lookup"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

//go:generate go run github.com/golang/mock/mockgen -source=facade.go -destination=mocks/mock.go

type EmailSender interface {
	SendReservationConfirmationEmail(ctx context.Context, email model.ReservationConfirmEmail) error
}

type EmailDatabase interface {
	GetTitleByBookID(ctx context.Context, bookID int64) lookup.Result[string]
	GetUserEmailAddress(ctx context.Context, userID int64) lookup.Result[string]
}

type Facade struct {
	sender EmailSender
	db     EmailDatabase
	log    *zap.Logger
}

func NewFacade(sender EmailSender, db EmailDatabase, log *zap.Logger) *Facade {
	return &Facade{
		sender: sender,
		db:     db,
		log:    log.Named("facade"),
	}
}

// Handle sends one confirmation per call; a repeated command sends again.
func (f *Facade) Handle(ctx context.Context, cmd model.SendReservationConfirmationCommand) error {
	title, err := required(f.db.GetTitleByBookID(ctx, cmd.BookID),
		"can't get book title from database. Reason: there is no book with an id: %d", cmd.BookID)
	if err != nil {
		return err
	}
	address, err := required(f.db.GetUserEmailAddress(ctx, cmd.UserID),
		"can't get email address from database. Reason: there is no user with an id: %d", cmd.UserID)
	if err != nil {
		return err
	}

	email, err := ReservationEmail(cmd.ReservationID, title, address)
	if err != nil {
		return errors.Wrapf(errs.ErrIllegalArgument, "user %d: %v", cmd.UserID, err)
	}
	if err := f.sender.SendReservationConfirmationEmail(ctx, email); err != nil {
		return errors.Wrap(err, "SendReservationConfirmationEmail")
	}
	f.log.Debug("reservation confirmation sent",
		zap.Int64("reservation_id", cmd.ReservationID),
		zap.Int64("user_id", cmd.UserID))
	return nil
}

func required(res lookup.Result[string], format string, id int64) (string, error) {
	switch res.Kind() {
	case lookup.Found:
		v, _ := res.Get()
		return v, nil
	case lookup.StoreUnavailable:
		return "", fmt.Errorf("%w: %w", errs.ErrStoreUnavailable, res.Err())
	default:
		return "", errors.Wrapf(errs.ErrIllegalArgument, format, id)
	}
}
