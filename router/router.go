package router

import (
	"context"
	"fmt"
	"net/http"

	"ticketflow-ledger-backend/algorand"
	"ticketflow-ledger-backend/config"
	"ticketflow-ledger-backend/event"
	"ticketflow-ledger-backend/factory"
	"ticketflow-ledger-backend/handler"
	"ticketflow-ledger-backend/healthcheck"
	"ticketflow-ledger-backend/logger"
	"ticketflow-ledger-backend/middleware"
	"ticketflow-ledger-backend/response"
	"ticketflow-ledger-backend/ticket"
	"ticketflow-ledger-backend/user"
	"ticketflow-ledger-backend/vault"

	"github.com/gorilla/mux"
	"github.com/spf13/viper"
)

// Router returns the router for all the API handler.
func Router(ctx context.Context) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.SetCorrelationIDHeader)
	r.Use(middleware.PanicHandler)
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		response.ResourceNotFound(fmt.Sprintf("The requested resource was not found: path: %s, method: %s", req.URL.Path, req.Method), "The requested resource was not found!").Send(req.Context(), w)
	})

	r.Use(middleware.ResponseTimeLogging)
	r.Use(middleware.RequestLogging)
	r.Use(middleware.SetContentTypeHeader)

	v, err := vault.New(
		viper.GetString(config.VaultToken),
		viper.GetString(config.VaultUnSealKey),
		viper.GetString(config.VaultAddress),
		viper.GetString(config.AccountPath))
	if err != nil {
		logger.Fatalf(ctx, "router: Error creating vault client: %+v", err)
	}

	treasury := &algorand.Account{
		AccountAddress:     viper.GetString(config.TreasuryAddress),
		SecurityPassphrase: viper.GetString(config.TreasuryParaphrase),
	}

	algo := algorand.New(
		treasury,
		viper.GetString(config.ApiAddress),
		viper.GetString(config.ApiKey),
		viper.GetUint64(config.AmountFactor),
		viper.GetUint64(config.MinFee),
		viper.GetUint64(config.SeedAlgo),
	)

	secret := viper.GetString(config.Secret)
	userService := user.NewUser(algo, *v, secret)
	eventService := event.NewEvent()
	ticketService := ticket.NewTicket(algo, *v, secret)
	f := factory.NewFactory()

	r.HandleFunc("/healthcheck", healthcheck.Self).Methods(http.MethodGet)
	baseRouter := r.PathPrefix("/v1").Subrouter()

	userRouter := baseRouter.PathPrefix("/user").Subrouter()
	userRouter.HandleFunc("", handler.CreateProfile(userService, f)).Methods(http.MethodPost)
	userRouter.HandleFunc("", handler.UpdateEngagement(userService, f)).Methods(http.MethodPatch)
	userRouter.HandleFunc("/verify", handler.VerifyProfile(userService, f)).Methods(http.MethodPost)
	userRouter.HandleFunc("/{profileID}", handler.GetProfile(userService, f)).Methods(http.MethodGet)

	eventRouter := baseRouter.PathPrefix("/event").Subrouter()
	eventRouter.HandleFunc("", handler.CreateEvent(eventService, userService, f)).Methods(http.MethodPost)
	eventRouter.HandleFunc("", handler.UpdateEvent(eventService, userService, f)).Methods(http.MethodPatch)
	eventRouter.HandleFunc("/check_in", handler.CheckIn(eventService, userService, f)).Methods(http.MethodPost)
	eventRouter.HandleFunc("/{eventID}", handler.GetEvent(eventService, f)).Methods(http.MethodGet)

	ticketRouter := baseRouter.PathPrefix("/ticket").Subrouter()
	ticketRouter.HandleFunc("", handler.BuyTicket(ticketService, userService, f)).Methods(http.MethodPost)
	ticketRouter.HandleFunc("", handler.UpdateTicket(ticketService, userService, f)).Methods(http.MethodPatch)

	return r
}
