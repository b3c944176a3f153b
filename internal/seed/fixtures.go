package seed

import (
	"fmt"
	"os"

	"inkwell/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

// Fixture is a declarative data set loaded from a YAML file. Posts and
// comments reference their authors by username so fixtures stay readable.
type Fixture struct {
	Users []struct {
		FirstName string `yaml:"first_name"`
		LastName  string `yaml:"last_name"`
		Username  string `yaml:"username"`
		Email     string `yaml:"email"`
		Password  string `yaml:"password"`
		Admin     bool   `yaml:"admin"`
	} `yaml:"users"`
	Posts []struct {
		Title    string `yaml:"title"`
		Text     string `yaml:"text"`
		Privacy  string `yaml:"privacy"`
		Author   string `yaml:"author"`
		Comments []struct {
			Text   string `yaml:"text"`
			Author string `yaml:"author"`
		} `yaml:"comments"`
	} `yaml:"posts"`
}

// LoadFixture parses a YAML fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture: %w", err)
	}
	return &f, nil
}

// ApplyFixture persists the fixture's users, posts, and comments.
func (s *Seeder) ApplyFixture(f *Fixture) error {
	byUsername := make(map[string]*models.User, len(f.Users))

	for _, u := range f.Users {
		password := u.Password
		if password == "" {
			password = "password123"
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		status := models.MembershipMember
		if u.Admin {
			status = models.MembershipAdmin
		}

		user := &models.User{
			FirstName:        u.FirstName,
			LastName:         u.LastName,
			Username:         u.Username,
			Email:            u.Email,
			Password:         string(hashed),
			MembershipStatus: status,
		}
		if err := s.db.Create(user).Error; err != nil {
			return fmt.Errorf("fixture user %q: %w", u.Username, err)
		}
		byUsername[u.Username] = user
	}

	for _, p := range f.Posts {
		author, ok := byUsername[p.Author]
		if !ok {
			return fmt.Errorf("fixture post %q: unknown author %q", p.Title, p.Author)
		}

		privacy := models.Privacy(p.Privacy)
		if privacy == "" {
			privacy = models.PrivacyPublic
		}

		post := &models.Post{
			Title:   p.Title,
			Text:    p.Text,
			Privacy: privacy,
			UserID:  author.ID,
		}
		if err := s.db.Create(post).Error; err != nil {
			return fmt.Errorf("fixture post %q: %w", p.Title, err)
		}

		for _, cm := range p.Comments {
			commenter, ok := byUsername[cm.Author]
			if !ok {
				return fmt.Errorf("fixture comment under %q: unknown author %q", p.Title, cm.Author)
			}
			comment := &models.Comment{
				Text:   cm.Text,
				PostID: post.ID,
				UserID: commenter.ID,
			}
			if err := s.db.Create(comment).Error; err != nil {
				return fmt.Errorf("fixture comment under %q: %w", p.Title, err)
			}
		}
	}

	return nil
}
