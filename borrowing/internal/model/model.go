package model

import (
	"time"

	"github.com/Astemirdum/library-borrowing/borrowing/internal/errs"
)

// MaxReservations is how many books one user may hold reserved at once.
const MaxReservations = 3

type BookKind uint8

const (
	KindAvailable BookKind = iota + 1
	KindReserved
	KindBorrowed
)

func (k BookKind) String() string {
	switch k {
	case KindAvailable:
		return "available"
	case KindReserved:
		return "reserved"
	case KindBorrowed:
		return "borrowed"
	default:
		return "unknown"
	}
}

// Book is one of AvailableBook, ReservedBook or BorrowedBook.
type Book interface {
	ID() int64
	Kind() BookKind
	book()
}

var (
	_ Book = AvailableBook{}
	_ Book = ReservedBook{}
	_ Book = BorrowedBook{}
)

type AvailableBook struct {
	BookID int64 `json:"bookId" db:"book_id"`
}

func (b AvailableBook) ID() int64      { return b.BookID }
func (b AvailableBook) Kind() BookKind { return KindAvailable }
func (AvailableBook) book()            {}

type ReservedBook struct {
	BookID int64 `json:"bookId" db:"book_id"`
	UserID int64 `json:"userId" db:"user_id"`
}

func (b ReservedBook) ID() int64      { return b.BookID }
func (b ReservedBook) Kind() BookKind { return KindReserved }
func (ReservedBook) book()            {}

// Borrow turns the reservation into a loan starting at borrowedAt.
func (b ReservedBook) Borrow(borrowedAt time.Time) BorrowedBook {
	return BorrowedBook{
		BookID:     b.BookID,
		UserID:     b.UserID,
		BorrowedAt: borrowedAt.UTC(),
	}
}

type BorrowedBook struct {
	BookID     int64     `json:"bookId" db:"book_id"`
	UserID     int64     `json:"userId" db:"user_id"`
	BorrowedAt time.Time `json:"borrowedAt" db:"borrowed_date"`
}

func (b BorrowedBook) ID() int64      { return b.BookID }
func (b BorrowedBook) Kind() BookKind { return KindBorrowed }
func (BorrowedBook) book()            {}

type ReservationID int64

type ReservationDetails struct {
	ReservationID ReservationID `json:"reservationId"`
	ReservedBook  ReservedBook  `json:"reservedBook"`
}

type ActiveUser struct {
	UserID        int64          `json:"userId"`
	ReservedBooks []ReservedBook `json:"reservedBooks"`
}

func (u ActiveUser) Reserve(book AvailableBook) (ReservedBook, error) {
	if len(u.ReservedBooks) >= MaxReservations {
		return ReservedBook{}, errs.ErrTooManyBooksAssigned
	}
	return ReservedBook{BookID: book.BookID, UserID: u.UserID}, nil
}

type BookRequest struct {
	BookID int64 `json:"bookId" validate:"required,gt=0"`
	UserID int64 `json:"userId" validate:"required,gt=0"`
}
