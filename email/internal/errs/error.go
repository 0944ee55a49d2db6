package errs

import (
	"errors"
)

var (
	ErrIllegalArgument  = errors.New("illegal argument")
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrEmptyRecipient   = errors.New("recipient address is empty")
)
