package event

import (
	"database/sql"
	"fmt"

	"ticketflow-ledger-backend/model"
)

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	Prepare(query string) (*sql.Stmt, error)
}

const eventSelect = `SELECT event_id, creator, event_name, event_description, location, category, date_time,
		max_tickets, tickets_sold, price_per_ticket, revenue, is_active, staking_enabled, staking_apy,
		is_private, attendance_count FROM Events WHERE event_id = ?`

func fetchEvent(q querier, eventID int64) (*model.Event, bool, error) {
	return queryEvent(q, eventSelect, eventID)
}

// fetchEventForUpdate takes the row lock for the duration of the enclosing
// transaction, so concurrent mutations of one event serialize.
func fetchEventForUpdate(tx *sql.Tx, eventID int64) (*model.Event, bool, error) {
	e, ok, err := queryEvent(tx, eventSelect+" FOR UPDATE", eventID)
	if err != nil || !ok {
		return e, ok, err
	}

	e.PricingTiers, err = fetchPricingTiers(tx, eventID)
	if err != nil {
		return nil, false, fmt.Errorf("fetchEventForUpdate: error fetching pricing tiers: %w", err)
	}

	return e, true, nil
}

func queryEvent(q querier, query string, eventID int64) (*model.Event, bool, error) {
	stmt, err := q.Prepare(query)
	if err != nil {
		return nil, false, fmt.Errorf("queryEvent: error preparing query: %w", err)
	}
	defer stmt.Close()

	rows, err := stmt.Query(eventID)
	if err != nil {
		return nil, false, fmt.Errorf("queryEvent: error executing query: %w", err)
	}
	defer rows.Close()

	var e model.Event
	if rows.Next() {
		err := rows.Scan(
			&e.EventID,
			&e.Creator,
			&e.EventName,
			&e.EventDescription,
			&e.Location,
			&e.Category,
			&e.DateTime,
			&e.MaxTickets,
			&e.TicketsSold,
			&e.PricePerTicket,
			&e.Revenue,
			&e.IsActive,
			&e.StakingEnabled,
			&e.StakingAPY,
			&e.IsPrivate,
			&e.AttendanceCount,
		)
		if err != nil {
			return nil, false, fmt.Errorf("queryEvent: error while scanning row: %s", err)
		}
		return &e, true, nil
	}

	return nil, false, nil
}

func fetchPricingTiers(q querier, eventID int64) ([]model.PricingTier, error) {
	query := `SELECT pricing_tier_id, event_id, tier_level, price, required_engagement_score
		FROM Pricing_Tiers WHERE event_id = ? ORDER BY pricing_tier_id`

	stmt, err := q.Prepare(query)
	if err != nil {
		return nil, fmt.Errorf("fetchPricingTiers: error preparing query: %w", err)
	}
	defer stmt.Close()

	rows, err := stmt.Query(eventID)
	if err != nil {
		return nil, fmt.Errorf("fetchPricingTiers: error executing query: %w", err)
	}
	defer rows.Close()

	var tiers []model.PricingTier
	for rows.Next() {
		var t model.PricingTier
		err := rows.Scan(&t.PricingTierID, &t.EventID, &t.TierLevel, &t.Price, &t.RequiredEngagementScore)
		if err != nil {
			return nil, fmt.Errorf("fetchPricingTiers: error while scanning row: %s", err)
		}
		tiers = append(tiers, t)
	}

	return tiers, nil
}

func fetchAllowedAttendees(q querier, eventID int64) ([]string, error) {
	query := `SELECT address FROM Allowed_Attendees WHERE event_id = ? ORDER BY allowed_attendee_id`

	stmt, err := q.Prepare(query)
	if err != nil {
		return nil, fmt.Errorf("fetchAllowedAttendees: error preparing query: %w", err)
	}
	defer stmt.Close()

	rows, err := stmt.Query(eventID)
	if err != nil {
		return nil, fmt.Errorf("fetchAllowedAttendees: error executing query: %w", err)
	}
	defer rows.Close()

	var addresses []string
	for rows.Next() {
		var a string
		if err := rows.Scan(&a); err != nil {
			return nil, fmt.Errorf("fetchAllowedAttendees: error while scanning row: %s", err)
		}
		addresses = append(addresses, a)
	}

	return addresses, nil
}

func fetchTicket(q querier, ticketID int64) (*model.Ticket, bool, error) {
	query := `SELECT ticket_id, event_id, owner, purchase_price FROM Tickets WHERE ticket_id = ?`

	stmt, err := q.Prepare(query)
	if err != nil {
		return nil, false, fmt.Errorf("fetchTicket: error preparing query: %w", err)
	}
	defer stmt.Close()

	rows, err := stmt.Query(ticketID)
	if err != nil {
		return nil, false, fmt.Errorf("fetchTicket: error executing query: %w", err)
	}
	defer rows.Close()

	var t model.Ticket
	if rows.Next() {
		err := rows.Scan(&t.TicketID, &t.EventID, &t.Owner, &t.PurchasePrice)
		if err != nil {
			return nil, false, fmt.Errorf("fetchTicket: error while scanning row: %s", err)
		}
		return &t, true, nil
	}

	return nil, false, nil
}
