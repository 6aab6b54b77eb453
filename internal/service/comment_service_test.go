package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"violethacks/internal/domain"
	"violethacks/internal/repo"
	"violethacks/internal/service"
)

func TestAddCommentSnapshotsAuthor(t *testing.T) {
	db := newTestDB(t)
	accounts := repo.NewAccountRepo(db)
	listings := repo.NewListingRepo(db)
	comments := repo.NewCommentRepo(db)
	listingSvc := service.NewListingService(listings)
	commentSvc := service.NewCommentService(comments, listings)
	accountSvc := service.NewAccountService(accounts)

	adm := mustAccount(t, accounts, "adm@example.com", domain.RoleAdmin)
	user := mustAccount(t, accounts, "user@example.com", domain.RoleMember)

	l, err := listingSvc.Create(listingInput("X"), adm)
	require.NoError(t, err)

	c, err := commentSvc.Add(l.ID, user, "  nice one  ")
	require.NoError(t, err)
	assert.Equal(t, "nice one", c.Text)
	assert.Equal(t, user.Username, c.Username)
	assert.Equal(t, domain.RoleMember, c.UserRole)
	assert.False(t, c.AuthorIsAdmin())

	// 作者字段是创建时快照：之后改资料不回写
	_, err = accountSvc.UpdateProfile(user, "changed bio", "https://cdn.example.com/new.png")
	require.NoError(t, err)
	cs, err := commentSvc.List(l.ID)
	require.NoError(t, err)
	require.Len(t, cs, 1)
	assert.Equal(t, user.Avatar, cs[0].UserAvatar)
}

func TestCommentsNewestFirst(t *testing.T) {
	db := newTestDB(t)
	accounts := repo.NewAccountRepo(db)
	listings := repo.NewListingRepo(db)
	comments := repo.NewCommentRepo(db)
	listingSvc := service.NewListingService(listings)
	commentSvc := service.NewCommentService(comments, listings)

	adm := mustAccount(t, accounts, "adm@example.com", domain.RoleAdmin)
	l, err := listingSvc.Create(listingInput("X"), adm)
	require.NoError(t, err)

	for _, text := range []string{"one", "two", "three"} {
		_, err := commentSvc.Add(l.ID, adm, text)
		require.NoError(t, err)
		time.Sleep(2 * time.Millisecond) // created_at 排序要可分辨
	}

	cs, err := commentSvc.List(l.ID)
	require.NoError(t, err)
	require.Len(t, cs, 3)
	assert.Equal(t, "three", cs[0].Text)
	assert.Equal(t, "one", cs[2].Text)
}

func TestBannedAccountCannotComment(t *testing.T) {
	db := newTestDB(t)
	accounts := repo.NewAccountRepo(db)
	listings := repo.NewListingRepo(db)
	commentSvc := service.NewCommentService(repo.NewCommentRepo(db), listings)
	listingSvc := service.NewListingService(listings)

	adm := mustAccount(t, accounts, "adm@example.com", domain.RoleAdmin)
	banned := mustAccount(t, accounts, "banned@example.com", domain.RoleMember)
	banned.Banned = true
	require.NoError(t, accounts.Update(banned))

	l, err := listingSvc.Create(listingInput("X"), adm)
	require.NoError(t, err)

	_, err = commentSvc.Add(l.ID, banned, "hi")
	assert.ErrorIs(t, err, domain.ErrInsufficientPrivilege)
}

func TestCommentOnMissingListing(t *testing.T) {
	db := newTestDB(t)
	accounts := repo.NewAccountRepo(db)
	commentSvc := service.NewCommentService(repo.NewCommentRepo(db), repo.NewListingRepo(db))

	user := mustAccount(t, accounts, "user@example.com", domain.RoleMember)
	c, err := commentSvc.Add("missing", user, "hello?")
	require.NoError(t, err)
	assert.Nil(t, c)
}
