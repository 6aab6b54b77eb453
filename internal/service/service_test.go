package service_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"violethacks/internal/core/database"
	"violethacks/internal/domain"
	"violethacks/internal/repo"
	"violethacks/internal/service"
	"violethacks/pkg/utils"
)

var testSeed = service.AdminSeed{
	Email:    "admin@violethacks.local",
	Password: "s3cret-admin!",
	Name:     "VioletAdmin",
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.NewGorm(database.Opts{
		Driver:       "sqlite",
		DSN:          ":memory:",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		LogLevel:     "silent",
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Account{}, &domain.Listing{}, &domain.Comment{}))
	return db
}

// mustAccount 直接入库一个账号，绕过登录流程
func mustAccount(t *testing.T, accounts *repo.AccountRepo, email string, role domain.Role) *domain.Account {
	t.Helper()
	a := &domain.Account{
		ID:           "u_" + utils.NewID(),
		Email:        email,
		Username:     email[:len(email)-len("@example.com")],
		PasswordHash: utils.HashPassword("pw"),
		Role:         role,
		Badges:       []string{},
	}
	require.NoError(t, accounts.Create(a))
	return a
}

func listingInput(title string) service.ListingInput {
	return service.ListingInput{
		Title:       title,
		Game:        "Test Game",
		Version:     "1.0.0",
		Description: "does things",
		DownloadURL: "https://example.com/dl.zip",
		Safety:      domain.SafetyUndetected,
	}
}
