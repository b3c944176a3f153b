package seed

import (
	"os"
	"path/filepath"
	"testing"

	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const fixtureYAML = `
users:
  - first_name: Ada
    last_name: Admin
    username: admin
    email: admin@example.com
    admin: true
  - first_name: Marcus
    last_name: Reed
    username: mreed
    email: mreed@example.com

posts:
  - title: Hello
    text: First post
    author: admin
    comments:
      - text: Welcome!
        author: mreed
  - title: Draft
    text: Not public
    privacy: Private
    author: mreed
`

func TestApplyFixture(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Post{}, &models.Comment{}))

	path := filepath.Join(t.TempDir(), "fixture.yml")
	require.NoError(t, os.WriteFile(path, []byte(fixtureYAML), 0o600))

	fixture, err := LoadFixture(path)
	require.NoError(t, err)
	require.NoError(t, NewSeeder(db).ApplyFixture(fixture))

	var admin models.User
	require.NoError(t, db.Where("username = ?", "admin").First(&admin).Error)
	assert.Equal(t, models.MembershipAdmin, admin.MembershipStatus)
	assert.Equal(t, "Ada Admin", admin.FullName)

	var posts []models.Post
	require.NoError(t, db.Order("id").Find(&posts).Error)
	require.Len(t, posts, 2)
	assert.Equal(t, models.PrivacyPublic, posts[0].Privacy, "omitted privacy defaults to Public")
	assert.Equal(t, models.PrivacyPrivate, posts[1].Privacy)

	var comments int64
	require.NoError(t, db.Model(&models.Comment{}).Count(&comments).Error)
	assert.EqualValues(t, 1, comments)
}

func TestApplyFixture_UnknownAuthor(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Post{}, &models.Comment{}))

	path := filepath.Join(t.TempDir(), "fixture.yml")
	orphan := "posts:\n  - title: Orphan\n    text: body\n    author: ghost\n"
	require.NoError(t, os.WriteFile(path, []byte(orphan), 0o600))

	fixture, err := LoadFixture(path)
	require.NoError(t, err)

	err = NewSeeder(db).ApplyFixture(fixture)
	assert.ErrorContains(t, err, "unknown author")
}
