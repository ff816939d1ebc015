package model

// UserProfile is the per-principal loyalty account consulted by tiered
// pricing. Engagement score and loyalty points only grow through the
// ledger operations; the membership tier is derived from the score.
type UserProfile struct {
	ProfileID       int64  `json:"profile_id,omitempty"`
	Address         string `json:"address,omitempty"`
	EngagementScore uint64 `json:"engagement_score"`
	LoyaltyPoints   uint64 `json:"loyalty_points"`
	MembershipTier  uint64 `json:"membership_tier,omitempty"`

	// Attendance receipts naming this profile's address, materialized at
	// read time. Append-only.
	EventsAttended []Attendance `json:"events_attended,omitempty"`

	PhoneCountryCode *string `json:"phone_country_code,omitempty"`
	PhoneNumber      *string `json:"phone_number,omitempty"`
	IsVerified       bool    `json:"is_verified,omitempty"`

	AccountAddress string `json:"account_address,omitempty"`
}

// Attendance is an immutable check-in receipt.
type Attendance struct {
	AttendanceID int64  `json:"attendance_id,omitempty"`
	EventID      int64  `json:"event_id,omitempty"`
	Attendee     string `json:"attendee,omitempty"`
}
