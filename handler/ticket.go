package handler

import (
	"encoding/json"
	"net/http"

	"ticketflow-ledger-backend/factory"
	"ticketflow-ledger-backend/logger"
	"ticketflow-ledger-backend/model"
	"ticketflow-ledger-backend/response"
	"ticketflow-ledger-backend/ticket"
	"ticketflow-ledger-backend/user"
)

func BuyTicket(service *ticket.Ticket, users *user.User, f factory.Factory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req model.BuyTicketRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			logger.Errorf(ctx, "buyTicket: error unmarshalling request body: %+v", err)
			response.BadRequest("invalid request body", "").Send(ctx, w)
			return
		}

		if req.Data.Payment == nil || req.Data.Auth == nil {
			response.InvalidData("buyTicket: payment and auth are required").Send(ctx, w)
			return
		}

		if !verifyToken(req.Data.Auth.TokenID) {
			response.Unauthorized().Send(ctx, w)
			return
		}

		caller, err := users.AddressOf(f.DB(ctx), req.Data.Auth.ProfileID)
		if err != nil {
			logger.Errorf(ctx, "buyTicket: unable to resolve caller: %+v", err)
			sendError(ctx, w, err)
			return
		}

		t, err := service.Buy(ctx, f.DB(ctx), req.Data.EventID, req.Data.ProfileID, req.Data.Payment, caller)
		if err != nil {
			logger.Errorf(ctx, "buyTicket: unable to buy ticket: %+v", err)
			sendError(ctx, w, err)
			return
		}

		response.SuccessResponse{
			Data:       &response.Data{Ticket: t},
			StatusCode: http.StatusCreated,
		}.Send(w)
	}
}

// UpdateTicket dispatches the ticket mutations: a new owner means a
// transfer, the refund flag settles and destroys the ticket.
func UpdateTicket(service *ticket.Ticket, users *user.User, f factory.Factory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req model.TicketUpdateRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			logger.Errorf(ctx, "updateTicket: error unmarshalling request body: %+v", err)
			response.BadRequest("invalid request body", "").Send(ctx, w)
			return
		}

		if req.Data.Update == nil || req.Data.Auth == nil {
			response.InvalidData("updateTicket: update and auth are required").Send(ctx, w)
			return
		}

		if !verifyToken(req.Data.Auth.TokenID) {
			response.Unauthorized().Send(ctx, w)
			return
		}

		caller, err := users.AddressOf(f.DB(ctx), req.Data.Auth.ProfileID)
		if err != nil {
			logger.Errorf(ctx, "updateTicket: unable to resolve caller: %+v", err)
			sendError(ctx, w, err)
			return
		}

		up := req.Data.Update

		if up.NewOwner != nil {
			t, err := service.Transfer(ctx, f.DB(ctx), up.TicketID, *up.NewOwner, caller)
			if err != nil {
				logger.Errorf(ctx, "updateTicket: unable to transfer ticket: %+v", err)
				sendError(ctx, w, err)
				return
			}

			response.SuccessResponse{
				Data:       &response.Data{Ticket: t},
				StatusCode: http.StatusOK,
			}.Send(w)
			return
		}

		if up.Refund {
			if up.Payment == nil {
				response.InvalidData("updateTicket: refund requires a payment").Send(ctx, w)
				return
			}

			err := service.Refund(ctx, f.DB(ctx), up.TicketID, up.EventID, up.Payment, caller)
			if err != nil {
				logger.Errorf(ctx, "updateTicket: unable to refund ticket: %+v", err)
				sendError(ctx, w, err)
				return
			}

			response.SuccessResponse{
				Data:       &response.Data{Auth: req.Data.Auth},
				StatusCode: http.StatusOK,
			}.Send(w)
			return
		}

		response.InvalidData("updateTicket: no matching action found").Send(ctx, w)
	}
}
