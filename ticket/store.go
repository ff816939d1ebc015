package ticket

import (
	"database/sql"
	"fmt"

	"ticketflow-ledger-backend/model"
)

func fetchEventForUpdate(tx *sql.Tx, eventID int64) (*model.Event, bool, error) {
	query := `SELECT event_id, creator, max_tickets, tickets_sold, price_per_ticket, revenue, is_active
		FROM Events WHERE event_id = ? FOR UPDATE`

	stmt, err := tx.Prepare(query)
	if err != nil {
		return nil, false, fmt.Errorf("fetchEventForUpdate: error preparing query: %w", err)
	}
	defer stmt.Close()

	rows, err := stmt.Query(eventID)
	if err != nil {
		return nil, false, fmt.Errorf("fetchEventForUpdate: error executing query: %w", err)
	}
	defer rows.Close()

	var e model.Event
	if !rows.Next() {
		return nil, false, nil
	}
	err = rows.Scan(&e.EventID, &e.Creator, &e.MaxTickets, &e.TicketsSold, &e.PricePerTicket, &e.Revenue, &e.IsActive)
	if err != nil {
		return nil, false, fmt.Errorf("fetchEventForUpdate: error while scanning row: %s", err)
	}
	rows.Close()

	e.PricingTiers, err = fetchPricingTiers(tx, eventID)
	if err != nil {
		return nil, false, fmt.Errorf("fetchEventForUpdate: error fetching pricing tiers: %w", err)
	}

	return &e, true, nil
}

func fetchPricingTiers(tx *sql.Tx, eventID int64) ([]model.PricingTier, error) {
	query := `SELECT pricing_tier_id, event_id, tier_level, price, required_engagement_score
		FROM Pricing_Tiers WHERE event_id = ? ORDER BY pricing_tier_id`

	stmt, err := tx.Prepare(query)
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

func fetchTicketForUpdate(tx *sql.Tx, ticketID int64) (*model.Ticket, bool, error) {
	query := `SELECT ticket_id, event_id, owner, purchase_price FROM Tickets WHERE ticket_id = ? FOR UPDATE`

	stmt, err := tx.Prepare(query)
	if err != nil {
		return nil, false, fmt.Errorf("fetchTicketForUpdate: error preparing query: %w", err)
	}
	defer stmt.Close()

	rows, err := stmt.Query(ticketID)
	if err != nil {
		return nil, false, fmt.Errorf("fetchTicketForUpdate: error executing query: %w", err)
	}
	defer rows.Close()

	var t model.Ticket
	if rows.Next() {
		err := rows.Scan(&t.TicketID, &t.EventID, &t.Owner, &t.PurchasePrice)
		if err != nil {
			return nil, false, fmt.Errorf("fetchTicketForUpdate: error while scanning row: %s", err)
		}
		return &t, true, nil
	}

	return nil, false, nil
}

func fetchProfileForUpdate(tx *sql.Tx, profileID int64) (*model.UserProfile, bool, error) {
	query := `SELECT profile_id, address, engagement_score, loyalty_points, membership_tier
		FROM User_Profiles WHERE profile_id = ? FOR UPDATE`

	stmt, err := tx.Prepare(query)
	if err != nil {
		return nil, false, fmt.Errorf("fetchProfileForUpdate: error preparing query: %w", err)
	}
	defer stmt.Close()

	rows, err := stmt.Query(profileID)
	if err != nil {
		return nil, false, fmt.Errorf("fetchProfileForUpdate: error executing query: %w", err)
	}
	defer rows.Close()

	var p model.UserProfile
	if rows.Next() {
		err := rows.Scan(&p.ProfileID, &p.Address, &p.EngagementScore, &p.LoyaltyPoints, &p.MembershipTier)
		if err != nil {
			return nil, false, fmt.Errorf("fetchProfileForUpdate: error while scanning row: %s", err)
		}
		return &p, true, nil
	}

	return nil, false, nil
}
