package repository

import (
	"testing"

	"inkwell/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an isolated in-memory database with the full schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Post{}, &models.Comment{}))
	return db
}

func createUser(t *testing.T, db *gorm.DB, username string, status models.MembershipStatus) *models.User {
	t.Helper()
	user := &models.User{
		FirstName:        "Test",
		LastName:         username,
		Username:         username,
		Email:            username + "@example.com",
		Password:         "hashed",
		MembershipStatus: status,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createPost(t *testing.T, db *gorm.DB, owner *models.User, title string, privacy models.Privacy) *models.Post {
	t.Helper()
	post := &models.Post{
		Title:   title,
		Text:    "body of " + title,
		Privacy: privacy,
		UserID:  owner.ID,
	}
	require.NoError(t, db.Create(post).Error)
	return post
}
