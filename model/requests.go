package model

type CreateEventRequest struct {
	Data struct {
		Event *Event `json:"event,omitempty" validate:"required"`
		Auth  *Auth  `json:"auth,omitempty" validate:"required"`
	} `json:"data"`
}

// EventUpdate carries the mutually exclusive event mutations dispatched by
// the PATCH handler: cancel, staking, allow-list append, pricing tier append.
type EventUpdate struct {
	EventID         int64        `json:"event_id,omitempty"`
	Cancel          bool         `json:"cancel,omitempty"`
	StakingAPY      *uint64      `json:"staking_apy,omitempty"`
	AllowedAttendee *string      `json:"allowed_attendee,omitempty"`
	PricingTier     *PricingTier `json:"pricing_tier,omitempty"`
}

type EventUpdateRequest struct {
	Data struct {
		Update *EventUpdate `json:"update,omitempty" validate:"required"`
		Auth   *Auth        `json:"auth,omitempty" validate:"required"`
	} `json:"data"`
}

type BuyTicketRequest struct {
	Data struct {
		EventID   int64    `json:"event_id,omitempty"`
		ProfileID int64    `json:"profile_id,omitempty"`
		Payment   *Payment `json:"payment,omitempty" validate:"required"`
		Auth      *Auth    `json:"auth,omitempty" validate:"required"`
	} `json:"data"`
}

// TicketUpdate dispatches ticket mutations: a set NewOwner is a transfer,
// Refund settles and destroys the ticket.
type TicketUpdate struct {
	TicketID int64    `json:"ticket_id,omitempty"`
	EventID  int64    `json:"event_id,omitempty"`
	NewOwner *string  `json:"new_owner,omitempty"`
	Refund   bool     `json:"refund,omitempty"`
	Payment  *Payment `json:"payment,omitempty"`
}

type TicketUpdateRequest struct {
	Data struct {
		Update *TicketUpdate `json:"update,omitempty" validate:"required"`
		Auth   *Auth         `json:"auth,omitempty" validate:"required"`
	} `json:"data"`
}

type CheckInRequest struct {
	Data struct {
		TicketID int64 `json:"ticket_id,omitempty"`
		EventID  int64 `json:"event_id,omitempty"`
		Auth     *Auth `json:"auth,omitempty" validate:"required"`
	} `json:"data"`
}

type CreateProfileRequest struct {
	Data struct {
		Profile *UserProfile `json:"profile,omitempty" validate:"required"`
		Auth    *Auth        `json:"auth,omitempty" validate:"required"`
	} `json:"data"`
}

type EngagementRequest struct {
	Data struct {
		ProfileID int64 `json:"profile_id,omitempty"`
		Points    int64 `json:"points,omitempty"`
		Auth      *Auth `json:"auth,omitempty" validate:"required"`
	} `json:"data"`
}
