package ledger

import (
	"ticketflow-ledger-backend/model"
)

// Membership tier thresholds. The tier is a pure function of the
// engagement score and is only ever recomputed here.
const (
	tierTwoScore   = 500
	tierThreeScore = 1000
)

// NewUserProfile creates a fresh loyalty profile for the caller's address.
// Nothing prevents a principal from creating several profiles; the pricing
// resolver only ever sees the one the buyer presents.
func NewUserProfile(caller string) *model.UserProfile {
	return &model.UserProfile{
		Address:         caller,
		EngagementScore: 0,
		LoyaltyPoints:   0,
		MembershipTier:  1,
	}
}

// UpdateEngagementScore applies a point delta to the caller's own profile
// and promotes the membership tier when a threshold is crossed. Negative
// deltas that would take the score below zero abort. The tier only ever
// moves up: no branch demotes, even if a later subtraction drops the score
// back under a threshold.
func UpdateEngagementScore(p *model.UserProfile, points int64, caller string) error {
	if caller != p.Address {
		return ErrUnauthorized
	}
	if points < 0 && uint64(-points) > p.EngagementScore {
		return ErrUnderflow
	}
	if points < 0 {
		p.EngagementScore -= uint64(-points)
	} else {
		p.EngagementScore += uint64(points)
	}

	if p.EngagementScore > tierThreeScore {
		if p.MembershipTier < 3 {
			p.MembershipTier = 3
		}
	} else if p.EngagementScore > tierTwoScore && p.MembershipTier < 2 {
		p.MembershipTier = 2
	}
	return nil
}
