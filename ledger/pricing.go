package ledger

import (
	"ticketflow-ledger-backend/model"
)

// ResolvePrice returns the price the profile's holder owes for the event:
// the price of the first tier, in stored order, whose required engagement
// score the profile meets, or the base price when no tier matches.
//
// This is deliberately first-match, not best-match. Tiers inserted out of
// descending score order can resolve to a worse price than the buyer
// qualifies for; downstream accounting depends on this exact tie-break, so
// it must not be "fixed" here.
func ResolvePrice(e *model.Event, p *model.UserProfile) uint64 {
	for _, tier := range e.PricingTiers {
		if tier.RequiredEngagementScore <= p.EngagementScore {
			return tier.Price
		}
	}
	return e.PricePerTicket
}
