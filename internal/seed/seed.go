// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"inkwell/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seeder populates the database with generated users, posts, and comments.
type Seeder struct {
	db  *gorm.DB
	rnd *rand.Rand
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	return &Seeder{
		db:  db,
		rnd: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ClearAll removes all seeded data. Order matters for foreign keys.
func (s *Seeder) ClearAll() error {
	for _, model := range []interface{}{
		&models.Comment{},
		&models.Post{},
		&models.User{},
	} {
		if err := s.db.Unscoped().Where("1 = 1").Delete(model).Error; err != nil {
			return fmt.Errorf("failed to clear table: %w", err)
		}
	}
	log.Println("cleared existing data")
	return nil
}

// SeedUsers creates n member accounts plus one admin. Every generated
// account uses the password "password123".
func (s *Seeder) SeedUsers(n int) ([]*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	users := make([]*models.User, 0, n+1)

	admin := &models.User{
		FirstName:        "Ada",
		LastName:         "Admin",
		Username:         "admin",
		Email:            "admin@inkwell.dev",
		Password:         string(hashed),
		MembershipStatus: models.MembershipAdmin,
	}
	users = append(users, admin)

	for i := 0; i < n; i++ {
		users = append(users, &models.User{
			FirstName:        gofakeit.FirstName(),
			LastName:         gofakeit.LastName(),
			Username:         fmt.Sprintf("%s%d", gofakeit.Username(), gofakeit.Number(100, 999)),
			Email:            gofakeit.Email(),
			Password:         string(hashed),
			MembershipStatus: models.MembershipMember,
		})
	}

	if err := s.db.Create(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("created %d users", len(users))
	return users, nil
}

// SeedPosts creates n posts spread across the given users with a realistic
// created_at spread and a roughly one-in-four private share.
func (s *Seeder) SeedPosts(users []*models.User, n int) ([]*models.Post, error) {
	posts := make([]*models.Post, 0, n)
	for i := 0; i < n; i++ {
		author := users[s.rnd.Intn(len(users))]
		privacy := models.PrivacyPublic
		if s.rnd.Intn(4) == 0 {
			privacy = models.PrivacyPrivate
		}

		daysBack := s.rnd.Intn(90)
		hoursBack := s.rnd.Intn(24)

		posts = append(posts, &models.Post{
			Title:     gofakeit.Sentence(5),
			Text:      gofakeit.Paragraph(1, 3, 5, "\n"),
			Privacy:   privacy,
			UserID:    author.ID,
			CreatedAt: time.Now().Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(hoursBack)*time.Hour),
		})
	}

	if err := s.db.Create(&posts).Error; err != nil {
		return nil, fmt.Errorf("failed to create posts: %w", err)
	}
	log.Printf("created %d posts", len(posts))
	return posts, nil
}

// SeedComments scatters comments across the given posts, zero to five each.
func (s *Seeder) SeedComments(users []*models.User, posts []*models.Post) (int, error) {
	var comments []*models.Comment
	for _, post := range posts {
		for i := 0; i < s.rnd.Intn(6); i++ {
			author := users[s.rnd.Intn(len(users))]
			comments = append(comments, &models.Comment{
				Text:      gofakeit.Sentence(12),
				PostID:    post.ID,
				UserID:    author.ID,
				CreatedAt: post.CreatedAt.Add(time.Duration(i+1) * time.Hour),
			})
		}
	}
	if len(comments) == 0 {
		return 0, nil
	}

	if err := s.db.Create(&comments).Error; err != nil {
		return 0, fmt.Errorf("failed to create comments: %w", err)
	}
	log.Printf("created %d comments", len(comments))
	return len(comments), nil
}
