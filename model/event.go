package model

import (
	"time"
)

// Event is the sellable inventory unit and the authorization root for its
// own tickets. It is shared state: anyone may reference it, but privileged
// mutations require the creator.
type Event struct {
	EventID int64  `json:"event_id,omitempty"`
	Creator string `json:"creator,omitempty"`

	EventName        *string    `json:"event_name,omitempty"`
	EventDescription *string    `json:"event_description,omitempty"`
	Location         *string    `json:"location,omitempty"`
	Category         *string    `json:"category,omitempty"`
	DateTime         *time.Time `json:"date_time,omitempty"`

	MaxTickets     uint64 `json:"max_tickets,omitempty"`
	TicketsSold    uint64 `json:"tickets_sold"`
	PricePerTicket uint64 `json:"price_per_ticket,omitempty"`
	Revenue        uint64 `json:"revenue"`

	IsActive bool `json:"is_active"`

	// Insertion order is significant: the price resolver walks PricingTiers
	// front to back and takes the first match.
	PricingTiers []PricingTier `json:"pricing_tiers,omitempty"`

	StakingEnabled bool   `json:"staking_enabled,omitempty"`
	StakingAPY     uint64 `json:"staking_apy,omitempty"`

	IsPrivate        bool     `json:"is_private,omitempty"`
	AllowedAttendees []string `json:"allowed_attendees,omitempty"`

	AttendanceCount uint64 `json:"attendance_count"`
}

type PricingTier struct {
	PricingTierID           int64  `json:"pricing_tier_id,omitempty"`
	EventID                 int64  `json:"event_id,omitempty"`
	TierLevel               uint64 `json:"tier_level,omitempty"`
	Price                   uint64 `json:"price"`
	RequiredEngagementScore uint64 `json:"required_engagement_score"`
}
