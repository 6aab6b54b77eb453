package policy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"violethacks/internal/domain"
	"violethacks/internal/policy"
)

func TestUploadRequiresSupporterOrHigher(t *testing.T) {
	assert.False(t, policy.Can(domain.RoleMember, policy.ActionUploadListing))
	assert.True(t, policy.Can(domain.RoleSupporter, policy.ActionUploadListing))
	assert.True(t, policy.Can(domain.RoleModerator, policy.ActionUploadListing))
	assert.True(t, policy.Can(domain.RoleAdmin, policy.ActionUploadListing))
}

func TestAdminOnlyActionsRejectModerator(t *testing.T) {
	// MODERATOR 能免审上传，但绝不进 ADMIN-only 集合
	adminOnly := []policy.Action{
		policy.ActionModerateListing,
		policy.ActionDeleteAnyListing,
		policy.ActionBanAccount,
		policy.ActionChangeRole,
		policy.ActionEditAdminData,
		policy.ActionViewAllAccounts,
	}
	for _, act := range adminOnly {
		assert.True(t, policy.Can(domain.RoleAdmin, act), string(act))
		assert.False(t, policy.Can(domain.RoleModerator, act), string(act))
		assert.False(t, policy.Can(domain.RoleSupporter, act), string(act))
		assert.False(t, policy.Can(domain.RoleMember, act), string(act))
	}
}

func TestAutoVerifyOnlyModeratorAndAdmin(t *testing.T) {
	assert.True(t, policy.Can(domain.RoleModerator, policy.ActionAutoVerifyUpload))
	assert.True(t, policy.Can(domain.RoleAdmin, policy.ActionAutoVerifyUpload))
	assert.False(t, policy.Can(domain.RoleSupporter, policy.ActionAutoVerifyUpload))
	assert.False(t, policy.Can(domain.RoleMember, policy.ActionAutoVerifyUpload))
}

func TestAnyRoleActions(t *testing.T) {
	roles := []domain.Role{domain.RoleMember, domain.RoleSupporter, domain.RoleModerator, domain.RoleAdmin}
	for _, r := range roles {
		assert.True(t, policy.Can(r, policy.ActionEditOwnProfile), string(r))
		assert.True(t, policy.Can(r, policy.ActionPostComment), string(r))
	}
}

func TestUnknownDenied(t *testing.T) {
	assert.False(t, policy.Can(domain.Role("GUEST"), policy.ActionUploadListing))
	assert.False(t, policy.Can(domain.RoleAdmin, policy.Action("nope")))
}

func TestCanTouchListing(t *testing.T) {
	owner := &domain.Account{ID: "u1", Role: domain.RoleSupporter}
	admin := &domain.Account{ID: "a1", Role: domain.RoleAdmin}
	mod := &domain.Account{ID: "m1", Role: domain.RoleModerator}

	assert.True(t, policy.CanTouchListing(owner, "u1"))
	assert.True(t, policy.CanTouchListing(admin, "u1"))
	assert.False(t, policy.CanTouchListing(mod, "u1"))
	assert.False(t, policy.CanTouchListing(nil, "u1"))
}
