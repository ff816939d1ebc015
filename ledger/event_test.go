package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEventStartsCleanAndActive(t *testing.T) {
	e := sampleEvent()

	assert.True(t, e.IsActive)
	assert.Equal(t, uint64(0), e.TicketsSold)
	assert.Equal(t, uint64(0), e.Revenue)
	assert.Empty(t, e.PricingTiers)
	assert.Empty(t, e.AllowedAttendees)
	assert.False(t, e.StakingEnabled)
}

func TestCancelEventIsIdempotent(t *testing.T) {
	e := sampleEvent()

	require.NoError(t, CancelEvent(e, creator))
	assert.False(t, e.IsActive)

	// Second cancel is a no-op, not an error.
	require.NoError(t, CancelEvent(e, creator))
	assert.False(t, e.IsActive)
}

func TestCreatorGatedOperationsRejectOtherCallers(t *testing.T) {
	e := sampleEvent()
	e.IsPrivate = true

	assert.Equal(t, ErrUnauthorized, CancelEvent(e, buyer))
	assert.Equal(t, ErrUnauthorized, EnableStaking(e, 5, buyer))
	assert.Equal(t, ErrUnauthorized, AddAllowedAttendee(e, friend, buyer))
	assert.Equal(t, ErrUnauthorized, AddPricingTier(e, 1, 80, 100, buyer))

	assert.True(t, e.IsActive)
	assert.False(t, e.StakingEnabled)
	assert.Empty(t, e.AllowedAttendees)
	assert.Empty(t, e.PricingTiers)
}

func TestEnableStakingRecordsTerms(t *testing.T) {
	e := sampleEvent()

	require.NoError(t, EnableStaking(e, 7, creator))
	assert.True(t, e.StakingEnabled)
	assert.Equal(t, uint64(7), e.StakingAPY)
}

func TestAddAllowedAttendeeRequiresPrivateEvent(t *testing.T) {
	e := sampleEvent()

	err := AddAllowedAttendee(e, friend, creator)
	assert.Equal(t, ErrUnauthorized, err)

	e.IsPrivate = true
	require.NoError(t, AddAllowedAttendee(e, friend, creator))
	require.NoError(t, AddAllowedAttendee(e, buyer, creator))
	assert.Equal(t, []string{friend, buyer}, e.AllowedAttendees)
}

func TestAddPricingTierAppendsInCallOrder(t *testing.T) {
	e := sampleEvent()

	require.NoError(t, AddPricingTier(e, 2, 90, 50, creator))
	require.NoError(t, AddPricingTier(e, 1, 80, 100, creator))
	// Duplicates are allowed; appends are unconditional.
	require.NoError(t, AddPricingTier(e, 2, 90, 50, creator))

	require.Len(t, e.PricingTiers, 3)
	assert.Equal(t, uint64(90), e.PricingTiers[0].Price)
	assert.Equal(t, uint64(80), e.PricingTiers[1].Price)
}
