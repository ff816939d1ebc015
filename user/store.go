package user

import (
	"database/sql"
	"fmt"

	"ticketflow-ledger-backend/model"
)

type querier interface {
	Prepare(query string) (*sql.Stmt, error)
}

const profileSelect = `SELECT profile_id, address, engagement_score, loyalty_points, membership_tier,
		phone_country_code, phone_number, is_verified FROM User_Profiles WHERE profile_id = ?`

func fetchProfile(q querier, profileID int64) (*model.UserProfile, bool, error) {
	return queryProfile(q, profileSelect, profileID)
}

func fetchProfileForUpdate(tx *sql.Tx, profileID int64) (*model.UserProfile, bool, error) {
	return queryProfile(tx, profileSelect+" FOR UPDATE", profileID)
}

func queryProfile(q querier, query string, profileID int64) (*model.UserProfile, bool, error) {
	stmt, err := q.Prepare(query)
	if err != nil {
		return nil, false, fmt.Errorf("queryProfile: error preparing query: %w", err)
	}
	defer stmt.Close()

	rows, err := stmt.Query(profileID)
	if err != nil {
		return nil, false, fmt.Errorf("queryProfile: error executing query: %w", err)
	}
	defer rows.Close()

	var p model.UserProfile
	if rows.Next() {
		err := rows.Scan(
			&p.ProfileID,
			&p.Address,
			&p.EngagementScore,
			&p.LoyaltyPoints,
			&p.MembershipTier,
			&p.PhoneCountryCode,
			&p.PhoneNumber,
			&p.IsVerified,
		)
		if err != nil {
			return nil, false, fmt.Errorf("queryProfile: error while scanning row: %s", err)
		}
		return &p, true, nil
	}

	return nil, false, nil
}

func fetchEventsAttended(q querier, address string) ([]model.Attendance, error) {
	query := `SELECT attendance_id, event_id, attendee FROM Attendance_Records WHERE attendee = ? ORDER BY attendance_id`

	stmt, err := q.Prepare(query)
	if err != nil {
		return nil, fmt.Errorf("fetchEventsAttended: error preparing query: %w", err)
	}
	defer stmt.Close()

	rows, err := stmt.Query(address)
	if err != nil {
		return nil, fmt.Errorf("fetchEventsAttended: error executing query: %w", err)
	}
	defer rows.Close()

	var attended []model.Attendance
	for rows.Next() {
		var a model.Attendance
		if err := rows.Scan(&a.AttendanceID, &a.EventID, &a.Attendee); err != nil {
			return nil, fmt.Errorf("fetchEventsAttended: error while scanning row: %s", err)
		}
		attended = append(attended, a)
	}

	return attended, nil
}
