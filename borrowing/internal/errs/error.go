package errs

import (
	"errors"
)

var (
	ErrAvailableBookNotFound = errors.New("available book not found")
	ErrActiveUserNotFound    = errors.New("active user not found")
	ErrReservationNotFound   = errors.New("reservation not found")
	ErrTooManyBooksAssigned  = errors.New("too many books assigned to user")
	ErrAlreadyExists         = errors.New("already exists")
	ErrStoreUnavailable      = errors.New("store unavailable")
)
