package ticket

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"ticketflow-ledger-backend/algorand"
	"ticketflow-ledger-backend/ledger"
	"ticketflow-ledger-backend/logger"
	"ticketflow-ledger-backend/model"
	"ticketflow-ledger-backend/store"
	"ticketflow-ledger-backend/vault"
)

const (
	eventTable   = "Events"
	ticketTable  = "Tickets"
	profileTable = "User_Profiles"
)

var ErrNotFound = errors.New("no record found")

var ticketCols = []string{"event_id", "owner", "purchase_price"}

// NewTicket returns a new ticket service instance
func NewTicket(algo algorand.Algo, v vault.Vault, secret string) *Ticket {
	return &Ticket{
		algo:   algo,
		vault:  v,
		secret: secret,
	}
}

// Ticket serves the money-moving ticket operations. Value transfer runs
// over the custodial Algorand accounts held in Vault.
type Ticket struct {
	algo   algorand.Algo
	vault  vault.Vault
	secret string
}

// Buy sells one ticket of the event to the caller. When profileID is set
// the price is resolved from the event's tier sequence against that
// profile and the purchase earns loyalty points.
func (s *Ticket) Buy(ctx context.Context, db *sql.DB, eventID, profileID int64, pay *model.Payment, caller string) (*model.Ticket, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("buy: error begining db transaction: %s", err)
	}

	e, ok, err := fetchEventForUpdate(tx, eventID)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("buy: error fetching event: %w", err)
	}
	if !ok {
		tx.Rollback()
		return nil, ErrNotFound
	}

	pay.From = caller

	var t *model.Ticket
	var profile *model.UserProfile
	if profileID > 0 {
		profile, ok, err = fetchProfileForUpdate(tx, profileID)
		if err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("buy: error fetching profile: %w", err)
		}
		if !ok {
			tx.Rollback()
			return nil, ErrNotFound
		}

		t, err = ledger.BuyTicketWithProfile(ctx, e, profile, pay, caller, ledger.TransferFunc(s.sendPayment))
	} else {
		t, err = ledger.BuyTicket(ctx, e, pay, caller, ledger.TransferFunc(s.sendPayment))
	}
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	_, err = store.Update(
		tx,
		eventTable,
		[]string{"tickets_sold", "revenue"},
		[]interface{}{e.TicketsSold, e.Revenue},
		[]string{"event_id"},
		[]interface{}{eventID},
	)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("buy: error updating event: %w", err)
	}

	if profile != nil {
		_, err = store.Update(
			tx,
			profileTable,
			[]string{"loyalty_points"},
			[]interface{}{profile.LoyaltyPoints},
			[]string{"profile_id"},
			[]interface{}{profileID},
		)
		if err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("buy: error updating profile: %w", err)
		}
	}

	id, err := store.Create(tx, ticketTable, ticketCols, []interface{}{t.EventID, t.Owner, t.PurchasePrice})
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("buy: error inserting ticket: %w", err)
	}
	t.TicketID = id

	err = tx.Commit()
	if err != nil {
		return nil, fmt.Errorf("buy: could not commit transaction: err: %w", err)
	}

	return t, nil
}

// Transfer reassigns a ticket to a new owner.
func (s *Ticket) Transfer(ctx context.Context, db *sql.DB, ticketID int64, newOwner, caller string) (*model.Ticket, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("transfer: error begining db transaction: %s", err)
	}

	t, ok, err := fetchTicketForUpdate(tx, ticketID)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("transfer: error fetching ticket: %w", err)
	}
	if !ok {
		tx.Rollback()
		return nil, ErrNotFound
	}

	if err := ledger.TransferTicket(t, newOwner, caller); err != nil {
		tx.Rollback()
		return nil, err
	}

	updatedRows, err := store.Update(tx, ticketTable, []string{"owner"}, []interface{}{t.Owner}, []string{"ticket_id"}, []interface{}{ticketID})
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("transfer: error updating ticket: %w", err)
	}
	if updatedRows == 0 {
		tx.Rollback()
		return nil, fmt.Errorf("transfer: no row updated")
	}

	err = tx.Commit()
	if err != nil {
		return nil, fmt.Errorf("transfer: could not commit transaction: err: %w", err)
	}

	return t, nil
}

// Refund settles a ticket of a cancelled event: the creator pays the
// holder back the frozen purchase price and the ticket is destroyed.
func (s *Ticket) Refund(ctx context.Context, db *sql.DB, ticketID, eventID int64, pay *model.Payment, caller string) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("refund: error begining db transaction: %s", err)
	}

	e, ok, err := fetchEventForUpdate(tx, eventID)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("refund: error fetching event: %w", err)
	}
	if !ok {
		tx.Rollback()
		return ErrNotFound
	}

	t, ok, err := fetchTicketForUpdate(tx, ticketID)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("refund: error fetching ticket: %w", err)
	}
	if !ok {
		tx.Rollback()
		return ErrNotFound
	}

	pay.From = caller

	if err := ledger.RefundTicket(ctx, t, e, pay, caller, ledger.TransferFunc(s.sendPayment)); err != nil {
		tx.Rollback()
		return err
	}

	_, err = store.Update(
		tx,
		eventTable,
		[]string{"tickets_sold", "revenue"},
		[]interface{}{e.TicketsSold, e.Revenue},
		[]string{"event_id"},
		[]interface{}{eventID},
	)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("refund: error updating event: %w", err)
	}

	// The ticket is consumed: it cannot be reused, transferred, or checked
	// in after the refund settles.
	deleted, err := store.Delete(tx, ticketTable, []string{"ticket_id"}, []interface{}{ticketID})
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("refund: error deleting ticket: %w", err)
	}
	if deleted == 0 {
		tx.Rollback()
		return fmt.Errorf("refund: no row deleted")
	}

	err = tx.Commit()
	if err != nil {
		return fmt.Errorf("refund: could not commit transaction: err: %w", err)
	}

	return nil
}

// sendPayment is the ledger.Transferrer over the custodial accounts: both
// parties' Algorand accounts are read from Vault and the amount moves as a
// payment transaction signed by the sender.
func (s *Ticket) sendPayment(ctx context.Context, from, to string, amount uint64) error {
	fromAccount, ok, err := s.fetchAccount(from)
	if err != nil {
		return fmt.Errorf("transfer: error fetching sender account: %w", err)
	}
	if !ok {
		return fmt.Errorf("transfer: sender account not found")
	}

	toAccount, ok, err := s.fetchAccount(to)
	if err != nil {
		return fmt.Errorf("transfer: error fetching receiver account: %w", err)
	}
	if !ok {
		return fmt.Errorf("transfer: receiver account not found")
	}

	err = s.algo.Send(ctx, fromAccount, toAccount, amount)
	if err != nil {
		return fmt.Errorf("transfer: error sending payment: %w", err)
	}

	logger.Infof(ctx, "transfer: moved %d from %s to %s", amount, from, to)
	return nil
}
