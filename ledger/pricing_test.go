package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePriceFirstMatchInInsertionOrder(t *testing.T) {
	e := sampleEvent()
	require.NoError(t, AddPricingTier(e, 1, 80, 100, creator))
	require.NoError(t, AddPricingTier(e, 2, 90, 50, creator))

	highScore := NewUserProfile(buyer)
	require.NoError(t, UpdateEngagementScore(highScore, 120, buyer))
	midScore := NewUserProfile(buyer)
	require.NoError(t, UpdateEngagementScore(midScore, 60, buyer))
	lowScore := NewUserProfile(buyer)
	require.NoError(t, UpdateEngagementScore(lowScore, 10, buyer))

	assert.Equal(t, uint64(80), ResolvePrice(e, highScore))
	assert.Equal(t, uint64(90), ResolvePrice(e, midScore))
	assert.Equal(t, uint64(100), ResolvePrice(e, lowScore))
}

// Tiers inserted out of descending score order resolve to the first match,
// not the best one. A buyer qualifying for a cheaper later tier still pays
// the earlier tier's price; this tie-break is load-bearing.
func TestResolvePricePrefersEarlierTierOverBetterLaterTier(t *testing.T) {
	e := sampleEvent()
	require.NoError(t, AddPricingTier(e, 2, 90, 50, creator))
	require.NoError(t, AddPricingTier(e, 1, 80, 100, creator))

	p := NewUserProfile(buyer)
	require.NoError(t, UpdateEngagementScore(p, 120, buyer))

	assert.Equal(t, uint64(90), ResolvePrice(e, p))
}

func TestResolvePriceFallsBackToBasePrice(t *testing.T) {
	e := sampleEvent()
	p := NewUserProfile(buyer)

	assert.Equal(t, e.PricePerTicket, ResolvePrice(e, p))
}
