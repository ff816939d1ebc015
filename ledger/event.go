package ledger

import (
	"time"

	"ticketflow-ledger-backend/model"
)

// EventInput carries the caller-supplied fields for a new event.
type EventInput struct {
	Name           *string
	Description    *string
	Location       *string
	Category       *string
	DateTime       *time.Time
	MaxTickets     uint64
	PricePerTicket uint64
	IsPrivate      bool
}

// NewEvent creates an active event with empty inventory and bookkeeping.
// Anyone may create an event; the creator identity is taken from the
// authenticated caller of the surrounding transaction.
func NewEvent(creator string, in EventInput) *model.Event {
	return &model.Event{
		Creator:          creator,
		EventName:        in.Name,
		EventDescription: in.Description,
		Location:         in.Location,
		Category:         in.Category,
		DateTime:         in.DateTime,
		MaxTickets:       in.MaxTickets,
		TicketsSold:      0,
		PricePerTicket:   in.PricePerTicket,
		Revenue:          0,
		IsActive:         true,
		IsPrivate:        in.IsPrivate,
	}
}

// CancelEvent deactivates the event. The transition is one-way: there is no
// reactivation operation. Cancelling an already cancelled event is a no-op.
func CancelEvent(e *model.Event, caller string) error {
	if caller != e.Creator {
		return ErrUnauthorized
	}
	e.IsActive = false
	return nil
}

// EnableStaking records the staking terms on the event. The ledger itself
// never consults them; they are read by an external staking collaborator.
func EnableStaking(e *model.Event, apy uint64, caller string) error {
	if caller != e.Creator {
		return ErrUnauthorized
	}
	e.StakingEnabled = true
	e.StakingAPY = apy
	return nil
}

// AddAllowedAttendee appends an address to a private event's allow-list.
// The list is bookkeeping only: purchases do not consult it.
func AddAllowedAttendee(e *model.Event, address, caller string) error {
	if caller != e.Creator {
		return ErrUnauthorized
	}
	if !e.IsPrivate {
		return ErrUnauthorized
	}
	e.AllowedAttendees = append(e.AllowedAttendees, address)
	return nil
}

// AddPricingTier appends a tier to the end of the event's tier sequence.
// No dedup, no sorting: resolution is first-match in insertion order, so
// the creator controls precedence by the order of these calls.
func AddPricingTier(e *model.Event, tierLevel, price, requiredScore uint64, caller string) error {
	if caller != e.Creator {
		return ErrUnauthorized
	}
	e.PricingTiers = append(e.PricingTiers, model.PricingTier{
		EventID:                 e.EventID,
		TierLevel:               tierLevel,
		Price:                   price,
		RequiredEngagementScore: requiredScore,
	})
	return nil
}
