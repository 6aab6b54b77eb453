package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"violethacks/internal/domain"
	"violethacks/internal/repo"
	"violethacks/internal/service"
)

func TestComputeSiteStats(t *testing.T) {
	db := newTestDB(t)
	accounts := repo.NewAccountRepo(db)
	listings := repo.NewListingRepo(db)
	comments := repo.NewCommentRepo(db)
	statsSvc := service.NewStatsService(accounts, comments, nil, time.Second, 0.4)
	listingSvc := service.NewListingService(listings)
	commentSvc := service.NewCommentService(comments, listings)

	adm := mustAccount(t, accounts, "adm@example.com", domain.RoleAdmin)
	time.Sleep(2 * time.Millisecond) // joined_at 排序要可分辨
	latest := mustAccount(t, accounts, "newest@example.com", domain.RoleMember)

	l, err := listingSvc.Create(listingInput("X"), adm)
	require.NoError(t, err)
	_, err = commentSvc.Add(l.ID, latest, "first!")
	require.NoError(t, err)
	_, err = commentSvc.Add(l.ID, adm, "welcome")
	require.NoError(t, err)

	s, err := statsSvc.Compute(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 2, s.TotalMembers)
	assert.EqualValues(t, 2, s.TotalComments)
	assert.Equal(t, latest.Username, s.LatestMember)
	// floor(2*0.4)+1
	assert.EqualValues(t, 1, s.OnlineMembers)
}

func TestComputeSiteStatsEmptyDirectory(t *testing.T) {
	db := newTestDB(t)
	statsSvc := service.NewStatsService(repo.NewAccountRepo(db), repo.NewCommentRepo(db), nil, time.Second, 0.4)

	s, err := statsSvc.Compute(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 0, s.TotalMembers)
	assert.EqualValues(t, 0, s.TotalComments)
	assert.Equal(t, "", s.LatestMember)
}
