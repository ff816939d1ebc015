package ledger

import (
	"context"

	"ticketflow-ledger-backend/model"
)

// loyaltyReward is credited to a profile for every purchase made through
// BuyTicketWithProfile.
const loyaltyReward = 10

// BuyTicket sells one ticket at the event's base price. The owed amount is
// split off the payment and transferred to the creator; overpayment stays
// with the payer. The returned ticket is owned by the caller and carries
// the price actually paid.
func BuyTicket(ctx context.Context, e *model.Event, pay *model.Payment, caller string, xfer Transferrer) (*model.Ticket, error) {
	return sell(ctx, e, pay, caller, e.PricePerTicket, xfer)
}

// BuyTicketWithProfile sells one ticket at the price resolved from the
// event's tier sequence and the buyer's engagement score, and credits the
// profile with the purchase loyalty reward.
func BuyTicketWithProfile(ctx context.Context, e *model.Event, p *model.UserProfile, pay *model.Payment, caller string, xfer Transferrer) (*model.Ticket, error) {
	t, err := sell(ctx, e, pay, caller, ResolvePrice(e, p), xfer)
	if err != nil {
		return nil, err
	}
	p.LoyaltyPoints += loyaltyReward
	return t, nil
}

func sell(ctx context.Context, e *model.Event, pay *model.Payment, caller string, price uint64, xfer Transferrer) (*model.Ticket, error) {
	if !e.IsActive {
		return nil, ErrEventNotActive
	}
	if e.TicketsSold >= e.MaxTickets {
		return nil, ErrEventSoldOut
	}
	if pay.Value < price {
		return nil, ErrInsufficientPayment
	}

	// Move the funds before touching any record state so a failed transfer
	// leaves the event untouched.
	if err := xfer.Transfer(ctx, pay.From, e.Creator, price); err != nil {
		return nil, err
	}
	pay.Value -= price

	e.TicketsSold++
	e.Revenue += price

	return &model.Ticket{
		EventID:       e.EventID,
		Owner:         caller,
		PurchasePrice: price,
	}, nil
}

// TransferTicket reassigns ownership. Only the current owner may transfer,
// and never to themselves. No fee, no event-side bookkeeping.
func TransferTicket(t *model.Ticket, newOwner, caller string) error {
	if caller != t.Owner {
		return ErrUnauthorized
	}
	if newOwner == caller {
		return ErrSelfTransfer
	}
	t.Owner = newOwner
	return nil
}

// RefundTicket settles a ticket after cancellation: the creator pays the
// holder back the frozen purchase price and the event's inventory and
// revenue are wound back. The ticket is consumed; on success the caller
// must destroy it. Refunds are only permitted once the event is cancelled.
func RefundTicket(ctx context.Context, t *model.Ticket, e *model.Event, pay *model.Payment, caller string, xfer Transferrer) error {
	if e.IsActive {
		return ErrEventActive
	}
	if caller != e.Creator {
		return ErrUnauthorized
	}
	if t.EventID != e.EventID {
		return ErrWrongEvent
	}
	if e.TicketsSold == 0 || e.Revenue < t.PurchasePrice {
		return ErrUnderflow
	}
	if pay.Value < t.PurchasePrice {
		return ErrInsufficientPayment
	}

	if err := xfer.Transfer(ctx, pay.From, t.Owner, t.PurchasePrice); err != nil {
		return err
	}
	pay.Value -= t.PurchasePrice

	e.TicketsSold--
	e.Revenue -= t.PurchasePrice
	return nil
}
