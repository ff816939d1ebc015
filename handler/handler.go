package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"ticketflow-ledger-backend/config"
	"ticketflow-ledger-backend/event"
	"ticketflow-ledger-backend/firebase"
	"ticketflow-ledger-backend/response"
	"ticketflow-ledger-backend/ticket"
	"ticketflow-ledger-backend/user"

	"github.com/spf13/viper"
)

func verifyToken(tokenID string) bool {
	_, ok := firebase.VerifyJWTIDToken(tokenID, viper.GetString(config.FirebaseProjectID), time.Duration(viper.GetInt(config.JWTOfflineInterval)))
	return ok
}

// sendError maps a service failure onto the wire. Ledger aborts keep their
// codes; anything unrecognized degrades to the generic failure so internal
// detail never leaks.
func sendError(ctx context.Context, w http.ResponseWriter, err error) {
	var res response.ErrorResponse
	if errors.As(err, &res) {
		res.Send(ctx, w)
		return
	}

	if errors.Is(err, event.ErrNotFound) || errors.Is(err, ticket.ErrNotFound) || errors.Is(err, user.ErrNotFound) {
		response.ResourceNotFound("The requested record was not found", err.Error()).Send(ctx, w)
		return
	}

	response.FromLedger(err).Send(ctx, w)
}
