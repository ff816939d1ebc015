package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUserProfileStartsAtTierOne(t *testing.T) {
	p := NewUserProfile(buyer)

	assert.Equal(t, buyer, p.Address)
	assert.Equal(t, uint64(0), p.EngagementScore)
	assert.Equal(t, uint64(0), p.LoyaltyPoints)
	assert.Equal(t, uint64(1), p.MembershipTier)
}

func TestUpdateEngagementScoreRequiresOwner(t *testing.T) {
	p := NewUserProfile(buyer)

	err := UpdateEngagementScore(p, 100, friend)
	assert.Equal(t, ErrUnauthorized, err)
	assert.Equal(t, uint64(0), p.EngagementScore)
}

func TestMembershipTierPromotesAtThresholds(t *testing.T) {
	p := NewUserProfile(buyer)

	require.NoError(t, UpdateEngagementScore(p, 500, buyer))
	assert.Equal(t, uint64(1), p.MembershipTier)

	require.NoError(t, UpdateEngagementScore(p, 100, buyer))
	assert.Equal(t, uint64(2), p.MembershipTier)

	require.NoError(t, UpdateEngagementScore(p, 500, buyer))
	assert.Equal(t, uint64(3), p.MembershipTier)
}

func TestMembershipTierNeverRegresses(t *testing.T) {
	p := NewUserProfile(buyer)
	require.NoError(t, UpdateEngagementScore(p, 1200, buyer))
	require.Equal(t, uint64(3), p.MembershipTier)

	// A subtraction may lower the score below a threshold, but only the
	// promote branch ever fires.
	require.NoError(t, UpdateEngagementScore(p, -600, buyer))
	assert.Equal(t, uint64(600), p.EngagementScore)
	assert.Equal(t, uint64(3), p.MembershipTier)
}

func TestUpdateEngagementScoreRejectsUnderflow(t *testing.T) {
	p := NewUserProfile(buyer)
	require.NoError(t, UpdateEngagementScore(p, 50, buyer))

	err := UpdateEngagementScore(p, -100, buyer)
	assert.Equal(t, ErrUnderflow, err)
	assert.Equal(t, uint64(50), p.EngagementScore)
}
