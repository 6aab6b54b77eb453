package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"violethacks/internal/domain"
	"violethacks/internal/repo"
	"violethacks/internal/service"
)

func TestAdminAccountOps(t *testing.T) {
	db := newTestDB(t)
	accounts := repo.NewAccountRepo(db)
	svc := service.NewAccountService(accounts)

	admin := mustAccount(t, accounts, "adm@example.com", domain.RoleAdmin)
	user := mustAccount(t, accounts, "user@example.com", domain.RoleMember)

	// 非 ADMIN 全被拒
	for _, r := range []domain.Role{domain.RoleMember, domain.RoleSupporter, domain.RoleModerator} {
		actor := &domain.Account{ID: "x", Role: r}
		_, err := svc.SetBanned(actor, user.ID, true)
		assert.ErrorIs(t, err, domain.ErrInsufficientPrivilege, string(r))
		_, err = svc.SetRole(actor, user.ID, domain.RoleSupporter)
		assert.ErrorIs(t, err, domain.ErrInsufficientPrivilege, string(r))
		_, err = svc.SetAdminData(actor, user.ID, "notes", nil)
		assert.ErrorIs(t, err, domain.ErrInsufficientPrivilege, string(r))
		_, _, err = svc.List(actor, "", 0, 20)
		assert.ErrorIs(t, err, domain.ErrInsufficientPrivilege, string(r))
	}

	a, err := svc.SetRole(admin, user.ID, domain.RoleModerator)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleModerator, a.Role)
	assert.False(t, a.IsAdmin())

	a, err = svc.SetAdminData(admin, user.ID, "watch this one", []string{"OG"})
	require.NoError(t, err)
	assert.Equal(t, "watch this one", a.AdminNotes)
	assert.Equal(t, []string{"OG"}, a.Badges)

	// 不存在的 id：nil，不报错
	a, err = svc.SetBanned(admin, "missing", true)
	require.NoError(t, err)
	assert.Nil(t, a)
}

func TestAccountListInsertionOrder(t *testing.T) {
	db := newTestDB(t)
	accounts := repo.NewAccountRepo(db)
	svc := service.NewAccountService(accounts)

	admin := mustAccount(t, accounts, "adm@example.com", domain.RoleAdmin)
	mustAccount(t, accounts, "b@example.com", domain.RoleMember)
	mustAccount(t, accounts, "c@example.com", domain.RoleMember)

	as, total, err := svc.List(admin, "", 0, 20)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, as, 3)
	assert.Equal(t, "adm@example.com", as[0].Email)
	assert.Equal(t, "c@example.com", as[2].Email)

	// 模糊搜
	as, total, err = svc.List(admin, "b@", 0, 20)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, as, 1)
	assert.Equal(t, "b@example.com", as[0].Email)
}

func TestUpdateProfileIdempotent(t *testing.T) {
	db := newTestDB(t)
	accounts := repo.NewAccountRepo(db)
	svc := service.NewAccountService(accounts)

	user := mustAccount(t, accounts, "user@example.com", domain.RoleMember)

	a1, err := svc.UpdateProfile(user, "new bio", "https://cdn.example.com/a.png")
	require.NoError(t, err)
	a2, err := svc.UpdateProfile(user, "new bio", "https://cdn.example.com/a.png")
	require.NoError(t, err)

	assert.Equal(t, a1.Bio, a2.Bio)
	assert.Equal(t, a1.Avatar, a2.Avatar)

	got, err := accounts.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "new bio", got.Bio)
	assert.Equal(t, "https://cdn.example.com/a.png", got.Avatar)
	// 其它字段不被 profile 更新碰到
	assert.Equal(t, domain.RoleMember, got.Role)
	assert.Equal(t, user.Email, got.Email)
}
