package moderation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"violethacks/internal/domain"
	"violethacks/internal/moderation"
)

func TestInitialStatus(t *testing.T) {
	_, err := moderation.InitialStatus(domain.RoleMember)
	require.ErrorIs(t, err, domain.ErrInsufficientPrivilege)

	s, err := moderation.InitialStatus(domain.RoleSupporter)
	require.NoError(t, err)
	assert.Equal(t, domain.ModerationPending, s)

	for _, r := range []domain.Role{domain.RoleModerator, domain.RoleAdmin} {
		s, err := moderation.InitialStatus(r)
		require.NoError(t, err)
		assert.Equal(t, domain.ModerationVerified, s, string(r))
	}
}

func TestAllPairsReachable(t *testing.T) {
	states := []domain.ModerationStatus{
		domain.ModerationPending, domain.ModerationVerified, domain.ModerationRejected,
	}
	for _, from := range states {
		for _, to := range states {
			assert.True(t, moderation.CanTransition(from, to))
			assert.Equal(t, from == to, moderation.IsNoop(from, to))
		}
	}
}

func TestInvalidStatusRejected(t *testing.T) {
	assert.False(t, moderation.CanTransition(domain.ModerationPending, domain.ModerationStatus("ARCHIVED")))
	assert.False(t, moderation.CanTransition(domain.ModerationStatus(""), domain.ModerationVerified))
}
