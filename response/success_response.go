package response

import (
	"encoding/json"
	"net/http"

	"ticketflow-ledger-backend/model"
)

type SuccessResponse struct {
	Data       *Data `json:"data"`
	StatusCode int   `json:"-"`
}

type Data struct {
	Event      *model.Event       `json:"event,omitempty"`
	Events     []model.Event      `json:"events,omitempty"`
	Ticket     *model.Ticket      `json:"ticket,omitempty"`
	Profile    *model.UserProfile `json:"profile,omitempty"`
	Attendance *model.Attendance  `json:"attendance,omitempty"`
	Auth       *model.Auth        `json:"auth,omitempty"`
}

func (r SuccessResponse) Send(w http.ResponseWriter) {
	w.WriteHeader(r.StatusCode)
	json.NewEncoder(w).Encode(r)
}
