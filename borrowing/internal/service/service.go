package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Astemirdum/library-borrowing/borrowing/internal/errs"
	"github.com/Astemirdum/library-borrowing/borrowing/internal/model"
	"github.com/Astemirdum/library-borrowing/borrowing/internal/repository"
	"github.com/Astemirdum/library-borrowing/pkg/kafka"
	"github.com/Astemirdum/library-borrowing/pkg/lookup"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type EventPublisher interface {
	PublishBookReserved(ctx context.Context, event kafka.BookReservedEvent) error
}

type Service struct {
	log       *zap.Logger
	repo      repository.Repository
	publisher EventPublisher
	now       func() time.Time
}

func NewService(repo repository.Repository, publisher EventPublisher, log *zap.Logger) *Service {
	return &Service{
		log:       log.Named("service"),
		repo:      repo,
		publisher: publisher,
		now:       time.Now,
	}
}

func (s *Service) MakeBookAvailable(ctx context.Context, bookID int64) error {
	return s.repo.SetBookAvailable(ctx, bookID)
}

// ReserveBook saves the reservation and then announces it. The reservation
// stands even when the announcement cannot be published.
func (s *Service) ReserveBook(ctx context.Context, bookID, userID int64) (model.ReservationDetails, error) {
	book, err := unwrap(s.repo.GetAvailableBook(ctx, bookID), errs.ErrAvailableBookNotFound)
	if err != nil {
		return model.ReservationDetails{}, errors.Wrapf(err, "book %d", bookID)
	}
	user, err := unwrap(s.repo.GetActiveUser(ctx, userID), errs.ErrActiveUserNotFound)
	if err != nil {
		return model.ReservationDetails{}, errors.Wrapf(err, "user %d", userID)
	}

	reserved, err := user.Reserve(book)
	if err != nil {
		return model.ReservationDetails{}, errors.Wrapf(err, "user %d", userID)
	}

	details, err := s.repo.Save(ctx, reserved)
	if err != nil {
		return model.ReservationDetails{}, err
	}

	event := kafka.BookReservedEvent{
		EventID:       uuid.New(),
		ReservationID: int64(details.ReservationID),
		BookID:        details.ReservedBook.BookID,
		UserID:        details.ReservedBook.UserID,
		OccurredAt:    s.now().UTC(),
	}
	if err := s.publisher.PublishBookReserved(ctx, event); err != nil {
		s.log.Error("PublishBookReserved",
			zap.Int64("reservation_id", event.ReservationID),
			zap.Int64("book_id", event.BookID),
			zap.Error(err))
	}
	return details, nil
}

func (s *Service) BorrowBook(ctx context.Context, bookID, userID int64) (model.BorrowedBook, error) {
	reserved, err := unwrap(s.repo.GetReservedBook(ctx, bookID), errs.ErrReservationNotFound)
	if err != nil {
		return model.BorrowedBook{}, errors.Wrapf(err, "book %d", bookID)
	}
	if reserved.UserID != userID {
		return model.BorrowedBook{}, errors.Wrapf(errs.ErrReservationNotFound, "book %d user %d", bookID, userID)
	}

	borrowed := reserved.Borrow(s.now())
	if err := s.repo.SaveBorrowed(ctx, borrowed); err != nil {
		return model.BorrowedBook{}, err
	}
	return borrowed, nil
}

func (s *Service) GetActiveUser(ctx context.Context, userID int64) (model.ActiveUser, error) {
	user, err := unwrap(s.repo.GetActiveUser(ctx, userID), errs.ErrActiveUserNotFound)
	if err != nil {
		return model.ActiveUser{}, errors.Wrapf(err, "user %d", userID)
	}
	return user, nil
}

func unwrap[T any](res lookup.Result[T], notFound error) (T, error) {
	var zero T
	switch res.Kind() {
	case lookup.Found:
		v, _ := res.Get()
		return v, nil
	case lookup.StoreUnavailable:
		return zero, fmt.Errorf("%w: %w", errs.ErrStoreUnavailable, res.Err())
	default:
		return zero, notFound
	}
}
