package ledger

import (
	"errors"
)

// Abort conditions for ledger transitions. Every precondition failure is
// fatal to the enclosing operation: the caller must discard all record
// state touched by the call and surface the code unchanged.
var (
	ErrEventNotActive      = errors.New("event is not active")
	ErrEventSoldOut        = errors.New("event is sold out")
	ErrSelfTransfer        = errors.New("ticket transfer to current owner")
	ErrEventActive         = errors.New("event is still active")
	ErrInsufficientPayment = errors.New("payment below required price")
	ErrUnauthorized        = errors.New("caller is not authorized")
	ErrUnderflow           = errors.New("counter would underflow")
	ErrWrongEvent          = errors.New("ticket does not belong to event")
)
