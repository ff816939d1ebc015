package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"ticketflow-ledger-backend/config"
	"ticketflow-ledger-backend/factory"
	"ticketflow-ledger-backend/firebase"
	"ticketflow-ledger-backend/logger"
	"ticketflow-ledger-backend/model"
	"ticketflow-ledger-backend/response"
	"ticketflow-ledger-backend/twilio"
	"ticketflow-ledger-backend/user"

	"github.com/gorilla/mux"
	"github.com/spf13/viper"
)

func CreateProfile(service *user.User, f factory.Factory) http.HandlerFunc {
	sender := twilio.NewSender(
		viper.GetString(config.TwilioAccountSID),
		viper.GetString(config.TwilioAuthToken),
		viper.GetString(config.TwilioURL),
		viper.GetString(config.TwilioFrom),
	)

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req model.CreateProfileRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			logger.Errorf(ctx, "createProfile: error unmarshalling request body: %+v", err)
			response.BadRequest("invalid request body", "").Send(ctx, w)
			return
		}

		if req.Data.Profile == nil || req.Data.Auth == nil {
			response.InvalidData("createProfile: profile and auth are required").Send(ctx, w)
			return
		}

		// Account provisioning verifies the token against Firebase itself;
		// later calls settle for the offline certificate check.
		_, err = firebase.VerifyIDToken(ctx, f.FirebaseApp(ctx), req.Data.Auth.TokenID)
		if err != nil {
			response.Unauthorized().Send(ctx, w)
			return
		}

		p, auth, err := service.Create(ctx, f.DB(ctx), req.Data.Profile, sender, f.Redis(ctx))
		if err != nil {
			logger.Errorf(ctx, "createProfile: unable to create profile: %+v", err)
			sendError(ctx, w, err)
			return
		}

		response.SuccessResponse{
			Data:       &response.Data{Profile: p, Auth: auth},
			StatusCode: http.StatusCreated,
		}.Send(w)
	}
}

func VerifyProfile(service *user.User, f factory.Factory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req model.CreateProfileRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			logger.Errorf(ctx, "verifyProfile: error unmarshalling request body: %+v", err)
			response.BadRequest("invalid request body", "").Send(ctx, w)
			return
		}

		if req.Data.Auth == nil {
			response.InvalidData("verifyProfile: auth is required").Send(ctx, w)
			return
		}

		if !verifyToken(req.Data.Auth.TokenID) {
			response.Unauthorized().Send(ctx, w)
			return
		}

		err = service.VerifyOTP(ctx, f.DB(ctx), f.Redis(ctx), req.Data.Auth.ProfileID, req.Data.Auth.OTP)
		if err != nil {
			logger.Errorf(ctx, "verifyProfile: unable to verify otp: %+v", err)
			sendError(ctx, w, err)
			return
		}

		response.SuccessResponse{
			Data:       &response.Data{Auth: req.Data.Auth},
			StatusCode: http.StatusOK,
		}.Send(w)
	}
}

func GetProfile(service *user.User, f factory.Factory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		vars := mux.Vars(r)
		profileIDString := vars["profileID"]

		profileID, err := strconv.ParseInt(profileIDString, 10, 64)
		if err != nil {
			response.InvalidData(fmt.Sprintf("getProfile: invalid profile id: %v", profileIDString)).Send(ctx, w)
			logger.Errorf(ctx, "getProfile: unable to parse profileID: %s: %+v", profileIDString, err)
			return
		}

		p, err := service.Get(f.DB(ctx), profileID)
		if err != nil {
			logger.Errorf(ctx, "getProfile: unable to get profile: %+v", err)
			sendError(ctx, w, err)
			return
		}

		response.SuccessResponse{
			Data:       &response.Data{Profile: p},
			StatusCode: http.StatusOK,
		}.Send(w)
	}
}

func UpdateEngagement(service *user.User, f factory.Factory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req model.EngagementRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			logger.Errorf(ctx, "updateEngagement: error unmarshalling request body: %+v", err)
			response.BadRequest("invalid request body", "").Send(ctx, w)
			return
		}

		if req.Data.Auth == nil {
			response.InvalidData("updateEngagement: auth is required").Send(ctx, w)
			return
		}

		if !verifyToken(req.Data.Auth.TokenID) {
			response.Unauthorized().Send(ctx, w)
			return
		}

		caller, err := service.AddressOf(f.DB(ctx), req.Data.Auth.ProfileID)
		if err != nil {
			logger.Errorf(ctx, "updateEngagement: unable to resolve caller: %+v", err)
			sendError(ctx, w, err)
			return
		}

		p, err := service.UpdateEngagement(ctx, f.DB(ctx), req.Data.ProfileID, req.Data.Points, caller)
		if err != nil {
			logger.Errorf(ctx, "updateEngagement: unable to update engagement score: %+v", err)
			sendError(ctx, w, err)
			return
		}

		response.SuccessResponse{
			Data:       &response.Data{Profile: p},
			StatusCode: http.StatusOK,
		}.Send(w)
	}
}
