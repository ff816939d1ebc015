package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"ticketflow-ledger-backend/event"
	"ticketflow-ledger-backend/factory"
	"ticketflow-ledger-backend/logger"
	"ticketflow-ledger-backend/model"
	"ticketflow-ledger-backend/response"
	"ticketflow-ledger-backend/user"

	"github.com/gorilla/mux"
)

func CreateEvent(service *event.Event, users *user.User, f factory.Factory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req model.CreateEventRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			logger.Errorf(ctx, "createEvent: error unmarshalling request body: %+v", err)
			response.BadRequest("invalid request body", "").Send(ctx, w)
			return
		}

		if req.Data.Event == nil || req.Data.Auth == nil {
			response.InvalidData("createEvent: event and auth are required").Send(ctx, w)
			return
		}

		if !verifyToken(req.Data.Auth.TokenID) {
			response.Unauthorized().Send(ctx, w)
			return
		}

		caller, err := users.AddressOf(f.DB(ctx), req.Data.Auth.ProfileID)
		if err != nil {
			logger.Errorf(ctx, "createEvent: unable to resolve caller: %+v", err)
			sendError(ctx, w, err)
			return
		}

		e, err := service.Create(ctx, f.DB(ctx), req.Data.Event, caller)
		if err != nil {
			logger.Errorf(ctx, "createEvent: unable to create event: %+v", err)
			sendError(ctx, w, err)
			return
		}

		response.SuccessResponse{
			Data:       &response.Data{Event: e},
			StatusCode: http.StatusCreated,
		}.Send(w)
	}
}

func UpdateEvent(service *event.Event, users *user.User, f factory.Factory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req model.EventUpdateRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			logger.Errorf(ctx, "updateEvent: error unmarshalling request body: %+v", err)
			response.BadRequest("invalid request body", "").Send(ctx, w)
			return
		}

		if req.Data.Update == nil || req.Data.Auth == nil {
			response.InvalidData("updateEvent: update and auth are required").Send(ctx, w)
			return
		}

		if !verifyToken(req.Data.Auth.TokenID) {
			response.Unauthorized().Send(ctx, w)
			return
		}

		caller, err := users.AddressOf(f.DB(ctx), req.Data.Auth.ProfileID)
		if err != nil {
			logger.Errorf(ctx, "updateEvent: unable to resolve caller: %+v", err)
			sendError(ctx, w, err)
			return
		}

		err = service.Update(ctx, f.DB(ctx), req.Data.Update, caller)
		if err != nil {
			logger.Errorf(ctx, "updateEvent: unable to update event: %+v", err)
			sendError(ctx, w, err)
			return
		}

		response.SuccessResponse{
			Data:       &response.Data{Auth: req.Data.Auth},
			StatusCode: http.StatusOK,
		}.Send(w)
	}
}

func CheckIn(service *event.Event, users *user.User, f factory.Factory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req model.CheckInRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			logger.Errorf(ctx, "checkIn: error unmarshalling request body: %+v", err)
			response.BadRequest("invalid request body", "").Send(ctx, w)
			return
		}

		if req.Data.Auth == nil {
			response.InvalidData("checkIn: auth is required").Send(ctx, w)
			return
		}

		if !verifyToken(req.Data.Auth.TokenID) {
			response.Unauthorized().Send(ctx, w)
			return
		}

		caller, err := users.AddressOf(f.DB(ctx), req.Data.Auth.ProfileID)
		if err != nil {
			logger.Errorf(ctx, "checkIn: unable to resolve caller: %+v", err)
			sendError(ctx, w, err)
			return
		}

		att, err := service.CheckIn(ctx, f.DB(ctx), req.Data.TicketID, req.Data.EventID, caller)
		if err != nil {
			logger.Errorf(ctx, "checkIn: unable to check in attendee: %+v", err)
			sendError(ctx, w, err)
			return
		}

		response.SuccessResponse{
			Data:       &response.Data{Attendance: att},
			StatusCode: http.StatusCreated,
		}.Send(w)
	}
}

func GetEvent(service *event.Event, f factory.Factory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		vars := mux.Vars(r)
		eventIDString := vars["eventID"]

		eventID, err := strconv.ParseInt(eventIDString, 10, 64)
		if err != nil {
			response.InvalidData(fmt.Sprintf("getEvent: invalid event id: %v", eventIDString)).Send(ctx, w)
			logger.Errorf(ctx, "getEvent: unable to parse eventID: %s: %+v", eventIDString, err)
			return
		}

		e, err := service.Get(f.DB(ctx), eventID)
		if err != nil {
			logger.Errorf(ctx, "getEvent: unable to get event: %+v", err)
			sendError(ctx, w, err)
			return
		}

		response.SuccessResponse{
			Data:       &response.Data{Event: e},
			StatusCode: http.StatusOK,
		}.Send(w)
	}
}
