package event

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"ticketflow-ledger-backend/ledger"
	"ticketflow-ledger-backend/model"
	"ticketflow-ledger-backend/store"
)

const (
	eventTable       = "Events"
	pricingTierTable = "Pricing_Tiers"
	allowedTable     = "Allowed_Attendees"
	attendanceTable  = "Attendance_Records"
)

var ErrNotFound = errors.New("no record found")

var eventCols = []string{"creator", "event_name", "event_description", "location", "category", "date_time", "max_tickets", "tickets_sold", "price_per_ticket", "revenue", "is_active", "staking_enabled", "staking_apy", "is_private", "attendance_count"}
var pricingTierCols = []string{"event_id", "tier_level", "price", "required_engagement_score"}
var attendanceCols = []string{"event_id", "attendee"}

// NewEvent returns a new event service instance
func NewEvent() *Event {
	return &Event{}
}

// Event serves the event lifecycle operations against the Events table.
type Event struct {
}

// Create publishes a new event owned by the caller. Anyone may create one.
func (s *Event) Create(ctx context.Context, db *sql.DB, in *model.Event, caller string) (*model.Event, error) {
	e := ledger.NewEvent(caller, ledger.EventInput{
		Name:           in.EventName,
		Description:    in.EventDescription,
		Location:       in.Location,
		Category:       in.Category,
		DateTime:       in.DateTime,
		MaxTickets:     in.MaxTickets,
		PricePerTicket: in.PricePerTicket,
		IsPrivate:      in.IsPrivate,
	})

	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("create: error begining db transaction: %s", err)
	}

	values := []interface{}{
		e.Creator,
		e.EventName,
		e.EventDescription,
		e.Location,
		e.Category,
		e.DateTime,
		e.MaxTickets,
		e.TicketsSold,
		e.PricePerTicket,
		e.Revenue,
		e.IsActive,
		e.StakingEnabled,
		e.StakingAPY,
		e.IsPrivate,
		e.AttendanceCount,
	}

	id, err := store.Create(tx, eventTable, eventCols, values)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("create: error inserting event by: %s: err: %w", caller, err)
	}
	e.EventID = id

	err = tx.Commit()
	if err != nil {
		return nil, fmt.Errorf("create: error commiting event to db by: %s: err: %s", caller, err)
	}

	return e, nil
}

// Update dispatches the mutually exclusive event mutations: cancel, enable
// staking, append an allowed attendee, append a pricing tier. Each runs as
// one transaction holding the event row lock for the duration of the call.
func (s *Event) Update(ctx context.Context, db *sql.DB, up *model.EventUpdate, caller string) error {
	if up.Cancel {
		return s.cancel(db, up.EventID, caller)
	}

	if up.StakingAPY != nil {
		return s.enableStaking(db, up.EventID, *up.StakingAPY, caller)
	}

	if up.AllowedAttendee != nil {
		return s.addAllowedAttendee(db, up.EventID, *up.AllowedAttendee, caller)
	}

	if up.PricingTier != nil {
		return s.addPricingTier(db, up.EventID, up.PricingTier, caller)
	}

	return fmt.Errorf("update: no matching action found")
}

func (s *Event) cancel(db *sql.DB, eventID int64, caller string) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("cancel: error begining db transaction: %s", err)
	}

	e, ok, err := fetchEventForUpdate(tx, eventID)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("cancel: error fetching event: %w", err)
	}
	if !ok {
		tx.Rollback()
		return ErrNotFound
	}

	if err := ledger.CancelEvent(e, caller); err != nil {
		tx.Rollback()
		return err
	}

	_, err = store.Update(tx, eventTable, []string{"is_active"}, []interface{}{e.IsActive}, []string{"event_id"}, []interface{}{eventID})
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("cancel: error updating event: %w", err)
	}

	err = tx.Commit()
	if err != nil {
		return fmt.Errorf("cancel: could not commit transaction: err: %w", err)
	}

	return nil
}

func (s *Event) enableStaking(db *sql.DB, eventID int64, apy uint64, caller string) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("enableStaking: error begining db transaction: %s", err)
	}

	e, ok, err := fetchEventForUpdate(tx, eventID)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("enableStaking: error fetching event: %w", err)
	}
	if !ok {
		tx.Rollback()
		return ErrNotFound
	}

	if err := ledger.EnableStaking(e, apy, caller); err != nil {
		tx.Rollback()
		return err
	}

	_, err = store.Update(
		tx,
		eventTable,
		[]string{"staking_enabled", "staking_apy"},
		[]interface{}{e.StakingEnabled, e.StakingAPY},
		[]string{"event_id"},
		[]interface{}{eventID},
	)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("enableStaking: error updating event: %w", err)
	}

	err = tx.Commit()
	if err != nil {
		return fmt.Errorf("enableStaking: could not commit transaction: err: %w", err)
	}

	return nil
}

func (s *Event) addAllowedAttendee(db *sql.DB, eventID int64, address, caller string) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("addAllowedAttendee: error begining db transaction: %s", err)
	}

	e, ok, err := fetchEventForUpdate(tx, eventID)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("addAllowedAttendee: error fetching event: %w", err)
	}
	if !ok {
		tx.Rollback()
		return ErrNotFound
	}

	if err := ledger.AddAllowedAttendee(e, address, caller); err != nil {
		tx.Rollback()
		return err
	}

	_, err = store.Create(tx, allowedTable, []string{"event_id", "address"}, []interface{}{eventID, address})
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("addAllowedAttendee: error inserting allowed attendee: %w", err)
	}

	err = tx.Commit()
	if err != nil {
		return fmt.Errorf("addAllowedAttendee: could not commit transaction: err: %w", err)
	}

	return nil
}

func (s *Event) addPricingTier(db *sql.DB, eventID int64, tier *model.PricingTier, caller string) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("addPricingTier: error begining db transaction: %s", err)
	}

	e, ok, err := fetchEventForUpdate(tx, eventID)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("addPricingTier: error fetching event: %w", err)
	}
	if !ok {
		tx.Rollback()
		return ErrNotFound
	}

	if err := ledger.AddPricingTier(e, tier.TierLevel, tier.Price, tier.RequiredEngagementScore, caller); err != nil {
		tx.Rollback()
		return err
	}

	// Auto-increment ids preserve insertion order, which the price
	// resolver depends on.
	_, err = store.Create(tx, pricingTierTable, pricingTierCols, []interface{}{eventID, tier.TierLevel, tier.Price, tier.RequiredEngagementScore})
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("addPricingTier: error inserting pricing tier: %w", err)
	}

	err = tx.Commit()
	if err != nil {
		return fmt.Errorf("addPricingTier: could not commit transaction: err: %w", err)
	}

	return nil
}

// CheckIn records the holder of the ticket as present at the event and
// returns the attendance receipt.
func (s *Event) CheckIn(ctx context.Context, db *sql.DB, ticketID, eventID int64, caller string) (*model.Attendance, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("checkIn: error begining db transaction: %s", err)
	}

	e, ok, err := fetchEventForUpdate(tx, eventID)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("checkIn: error fetching event: %w", err)
	}
	if !ok {
		tx.Rollback()
		return nil, ErrNotFound
	}

	t, ok, err := fetchTicket(tx, ticketID)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("checkIn: error fetching ticket: %w", err)
	}
	if !ok {
		tx.Rollback()
		return nil, ErrNotFound
	}

	att, err := ledger.CheckInAttendee(t, e, caller)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	_, err = store.Update(tx, eventTable, []string{"attendance_count"}, []interface{}{e.AttendanceCount}, []string{"event_id"}, []interface{}{eventID})
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("checkIn: error updating attendance count: %w", err)
	}

	id, err := store.Create(tx, attendanceTable, attendanceCols, []interface{}{att.EventID, att.Attendee})
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("checkIn: error inserting attendance record: %w", err)
	}
	att.AttendanceID = id

	err = tx.Commit()
	if err != nil {
		return nil, fmt.Errorf("checkIn: could not commit transaction: err: %w", err)
	}

	return att, nil
}

// Get returns the event with its pricing tiers and allow-list.
func (s *Event) Get(db *sql.DB, eventID int64) (*model.Event, error) {
	e, ok, err := fetchEvent(db, eventID)
	if err != nil {
		return nil, fmt.Errorf("get: error fetching event: %w", err)
	}
	if !ok {
		return nil, ErrNotFound
	}

	e.PricingTiers, err = fetchPricingTiers(db, eventID)
	if err != nil {
		return nil, fmt.Errorf("get: error fetching pricing tiers: %w", err)
	}

	e.AllowedAttendees, err = fetchAllowedAttendees(db, eventID)
	if err != nil {
		return nil, fmt.Errorf("get: error fetching allowed attendees: %w", err)
	}

	return e, nil
}
