package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"violethacks/internal/domain"
	"violethacks/internal/repo"
	"violethacks/internal/service"
)

func TestAutoProvisionOnFirstLogin(t *testing.T) {
	db := newTestDB(t)
	accounts := repo.NewAccountRepo(db)
	svc := service.NewAuthService(accounts, testSeed)

	a, isNew, err := svc.Authenticate("  alice@example.com ", "hunter2")
	require.NoError(t, err)
	assert.True(t, isNew)
	assert.Equal(t, "alice@example.com", a.Email)
	assert.Equal(t, "alice", a.Username)
	assert.Equal(t, domain.RoleMember, a.Role)
	assert.False(t, a.Banned)

	// 二次登录同密码：返回同一账号，不再新建
	b, isNew, err := svc.Authenticate("alice@example.com", "hunter2")
	require.NoError(t, err)
	assert.False(t, isNew)
	assert.Equal(t, a.ID, b.ID)

	n, err := accounts.Count()
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestPasswordVerifiedOnReturningLogin(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewAuthService(repo.NewAccountRepo(db), testSeed)

	_, _, err := svc.Authenticate("bob@example.com", "first-password")
	require.NoError(t, err)

	_, _, err = svc.Authenticate("bob@example.com", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAdminEmailNeverAutoProvisions(t *testing.T) {
	db := newTestDB(t)
	accounts := repo.NewAccountRepo(db)
	svc := service.NewAuthService(accounts, testSeed)

	seeded, err := svc.EnsureAdmin()
	require.NoError(t, err)
	require.Equal(t, domain.RoleAdmin, seeded.Role)
	require.True(t, seeded.IsAdmin())

	// 错密钥：失败，且不会注册新账号
	_, _, err = svc.Authenticate(testSeed.Email, "not-the-secret")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	n, err := accounts.Count()
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	// 对密钥：永远拿回播种的那个账号
	a, isNew, err := svc.Authenticate(testSeed.Email, testSeed.Password)
	require.NoError(t, err)
	assert.False(t, isNew)
	assert.Equal(t, seeded.ID, a.ID)
	assert.Equal(t, domain.RoleAdmin, a.Role)
}

func TestEnsureAdminIdempotent(t *testing.T) {
	db := newTestDB(t)
	accounts := repo.NewAccountRepo(db)
	svc := service.NewAuthService(accounts, testSeed)

	a1, err := svc.EnsureAdmin()
	require.NoError(t, err)
	a2, err := svc.EnsureAdmin()
	require.NoError(t, err)
	assert.Equal(t, a1.ID, a2.ID)

	n, err := accounts.Count()
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestBannedAccountCannotAuthenticate(t *testing.T) {
	db := newTestDB(t)
	accounts := repo.NewAccountRepo(db)
	authSvc := service.NewAuthService(accounts, testSeed)
	accountSvc := service.NewAccountService(accounts)

	admin, err := authSvc.EnsureAdmin()
	require.NoError(t, err)

	u, _, err := authSvc.Authenticate("mallory@example.com", "pw")
	require.NoError(t, err)

	_, err = accountSvc.SetBanned(admin, u.ID, true)
	require.NoError(t, err)

	// 账号还在目录里，但登录被拒
	_, _, err = authSvc.Authenticate("mallory@example.com", "pw")
	assert.ErrorIs(t, err, domain.ErrAccountBanned)
	got, err := accounts.FindByID(u.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Banned)

	// 解封后恢复
	_, err = accountSvc.SetBanned(admin, u.ID, false)
	require.NoError(t, err)
	_, _, err = authSvc.Authenticate("mallory@example.com", "pw")
	assert.NoError(t, err)
}
