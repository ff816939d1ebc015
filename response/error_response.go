package response

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"ticketflow-ledger-backend/ledger"
	"ticketflow-ledger-backend/logger"
)

type ErrorResponse struct {
	StatusCode  int
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	Status      string `json:"status"`
	Description string
}

func (r ErrorResponse) Error() string {
	return fmt.Sprintf("StatusCode: %d, Success: %t, Message: %s, Status: %s, Description: %s", r.StatusCode, r.Success, r.Message, r.Status, r.Description)
}

func (r ErrorResponse) Send(ctx context.Context, w http.ResponseWriter) {
	logger.Errorf(ctx, r.Error())
	w.WriteHeader(r.StatusCode)
	json.NewEncoder(w).Encode(r)
}

// FromLedger maps a ledger abort to its wire representation. Unrecognized
// errors fall through to the generic failure so internal details never
// reach the caller.
func FromLedger(err error) ErrorResponse {
	switch {
	case errors.Is(err, ledger.ErrEventNotActive):
		return EventNotActive()
	case errors.Is(err, ledger.ErrEventSoldOut):
		return EventSoldOut()
	case errors.Is(err, ledger.ErrSelfTransfer):
		return SelfTransfer()
	case errors.Is(err, ledger.ErrEventActive):
		return EventActive()
	case errors.Is(err, ledger.ErrInsufficientPayment):
		return InsufficientPayment()
	case errors.Is(err, ledger.ErrUnauthorized):
		return Unauthorized()
	case errors.Is(err, ledger.ErrUnderflow):
		return Underflow()
	case errors.Is(err, ledger.ErrWrongEvent):
		return WrongEvent()
	}
	return SomethingWrong()
}

func EventNotActive() ErrorResponse {
	return ErrorResponse{
		StatusCode: http.StatusConflict,
		Success:    false,
		Message:    "This event has been cancelled",
		Status:     "EVENT_NOT_ACTIVE",
	}
}

func EventSoldOut() ErrorResponse {
	return ErrorResponse{
		StatusCode: http.StatusConflict,
		Success:    false,
		Message:    "No tickets left for this event",
		Status:     "EVENT_SOLD_OUT",
	}
}

func SelfTransfer() ErrorResponse {
	return ErrorResponse{
		StatusCode: http.StatusBadRequest,
		Success:    false,
		Message:    "Cannot transfer a ticket to its current owner",
		Status:     "SELF_TRANSFER",
	}
}

func EventActive() ErrorResponse {
	return ErrorResponse{
		StatusCode: http.StatusConflict,
		Success:    false,
		Message:    "Refunds open only after the event is cancelled",
		Status:     "EVENT_ACTIVE",
	}
}

func InsufficientPayment() ErrorResponse {
	return ErrorResponse{
		StatusCode: http.StatusPaymentRequired,
		Success:    false,
		Message:    "Payment is below the required price",
		Status:     "INSUFFICIENT_PAYMENT",
	}
}

func Unauthorized() ErrorResponse {
	return ErrorResponse{
		StatusCode: http.StatusUnauthorized,
		Success:    false,
		Message:    "No valid Auth Token",
		Status:     "UNAUTHORISED",
	}
}

func Underflow() ErrorResponse {
	return ErrorResponse{
		StatusCode: http.StatusConflict,
		Success:    false,
		Message:    "Operation would underflow event accounting",
		Status:     "UNDERFLOW",
	}
}

func WrongEvent() ErrorResponse {
	return ErrorResponse{
		StatusCode: http.StatusBadRequest,
		Success:    false,
		Message:    "Ticket does not belong to this event",
		Status:     "TICKET_EVENT_MISMATCH",
	}
}

func BadRequest(message, description string) ErrorResponse {
	return ErrorResponse{
		StatusCode:  http.StatusBadRequest,
		Success:     false,
		Message:     message,
		Status:      "BAD REQUEST",
		Description: description,
	}
}

func ResourceNotFound(message, description string) ErrorResponse {
	return ErrorResponse{
		StatusCode:  http.StatusNotFound,
		Success:     false,
		Message:     message,
		Status:      "NOT FOUND",
		Description: description,
	}
}

func SomethingWrong() ErrorResponse {
	return ErrorResponse{
		StatusCode: http.StatusInternalServerError,
		Success:    false,
		Message:    "Sorry, Something went wrong",
		Status:     "SOMETHING_WRONG",
	}
}

func InvalidData(description string) ErrorResponse {
	return ErrorResponse{
		StatusCode:  http.StatusBadRequest,
		Success:     false,
		Message:     "Invalid data passed",
		Status:      "INVALID_DATA",
		Description: description,
	}
}

func OTPExpired() ErrorResponse {
	return ErrorResponse{
		StatusCode: http.StatusGone,
		Success:    false,
		Message:    "OTP Expired, Please try again",
		Status:     "OTP_EXPIRED",
	}
}

func OTPMismatch() ErrorResponse {
	return ErrorResponse{
		StatusCode: http.StatusBadRequest,
		Success:    false,
		Message:    "Wrong OTP entered",
		Status:     "OTP_MISMATCH",
	}
}

func ProfileNotFound() ErrorResponse {
	return ErrorResponse{
		StatusCode: http.StatusNotFound,
		Success:    false,
		Message:    "No such profile exists",
		Status:     "PROFILE_NOT_EXIST",
	}
}
