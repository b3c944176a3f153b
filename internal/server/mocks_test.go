package server

import (
	"context"

	"inkwell/internal/config"
	"inkwell/internal/middleware"
	"inkwell/internal/models"
	"inkwell/internal/policy"
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepository) GetVisibleByID(ctx context.Context, id uint, actor policy.Identity) (*models.Post, error) {
	args := m.Called(ctx, id, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepository) ListVisible(ctx context.Context, actor policy.Identity) ([]*models.Post, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Post), args.Error(1)
}

func (m *MockPostRepository) Update(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentRepository) ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Comment), args.Error(1)
}

func (m *MockCommentRepository) Update(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// newTestServer wires a Server to the given mocks without touching a real
// database or Redis.
func newTestServer(userRepo *MockUserRepository, postRepo *MockPostRepository, commentRepo *MockCommentRepository) *Server {
	cfg := &config.Config{
		JWTSecret:   "test-secret",
		JWTIssuer:   "inkwell-api",
		JWTAudience: "inkwell-client",
	}
	s := &Server{
		config:      cfg,
		userRepo:    userRepo,
		postRepo:    postRepo,
		commentRepo: commentRepo,
	}
	if userRepo != nil {
		s.userService = service.NewUserService(userRepo)
	}
	if postRepo != nil {
		s.postService = service.NewPostService(postRepo)
	}
	if commentRepo != nil {
		s.commentService = service.NewCommentService(commentRepo, postRepo)
	}
	return s
}

// asIdentity injects the given identity into locals, standing in for the
// auth middleware.
func asIdentity(id policy.Identity) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(middleware.IdentityKey, id)
		return c.Next()
	}
}

func memberIdentity(userID uint) policy.Identity {
	return policy.Identity{User: &models.User{ID: userID, MembershipStatus: models.MembershipMember}}
}

func adminIdentity(userID uint) policy.Identity {
	return policy.Identity{
		User:    &models.User{ID: userID, MembershipStatus: models.MembershipAdmin},
		IsAdmin: true,
	}
}
