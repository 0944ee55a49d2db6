package handler

import (
	"context"

	"github.com/Astemirdum/library-borrowing/borrowing/internal/model"
	"github.com/Astemirdum/library-borrowing/borrowing/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type BorrowingService interface {
	MakeBookAvailable(ctx context.Context, bookID int64) error
	ReserveBook(ctx context.Context, bookID, userID int64) (model.ReservationDetails, error)
	BorrowBook(ctx context.Context, bookID, userID int64) (model.BorrowedBook, error)
	GetActiveUser(ctx context.Context, userID int64) (model.ActiveUser, error)
}

var _ BorrowingService = (*service.Service)(nil)
