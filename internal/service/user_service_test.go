package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"inkwell/internal/models"
	"inkwell/internal/policy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type userRepoStub struct {
	getByIDFn       func(ctx context.Context, id uint) (*models.User, error)
	getByUsernameFn func(ctx context.Context, username string) (*models.User, error)
	getByEmailFn    func(ctx context.Context, email string) (*models.User, error)
	createFn        func(ctx context.Context, user *models.User) error
	updateFn        func(ctx context.Context, user *models.User) error
	deleteFn        func(ctx context.Context, id uint) error
	listFn          func(ctx context.Context) ([]models.User, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}

func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}

func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}

func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}

func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func (s *userRepoStub) List(ctx context.Context) ([]models.User, error) {
	return s.listFn(ctx)
}

// noopUserRepo returns a stub where every lookup misses.
func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:       func(context.Context, uint) (*models.User, error) { return nil, models.NewNotFoundError("User", 0) },
		getByUsernameFn: func(context.Context, string) (*models.User, error) { return nil, nil },
		getByEmailFn:    func(context.Context, string) (*models.User, error) { return nil, nil },
		createFn:        func(context.Context, *models.User) error { return nil },
		updateFn:        func(context.Context, *models.User) error { return nil },
		deleteFn:        func(context.Context, uint) error { return nil },
		listFn:          func(context.Context) ([]models.User, error) { return nil, nil },
	}
}

func validInput() UserInput {
	return UserInput{
		FirstName:            "Marcus",
		LastName:             "Reed",
		Username:             "mreed",
		Email:                "mreed@example.com",
		Password:             "Str0ngPass!1",
		PasswordConfirmation: "Str0ngPass!1",
	}
}

func fieldsOf(t *testing.T, err error) []models.FieldError {
	t.Helper()
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	require.Equal(t, models.CodeValidation, appErr.Code)
	return appErr.Fields
}

func TestUserService_Register(t *testing.T) {
	repo := noopUserRepo()
	var saved *models.User
	repo.createFn = func(_ context.Context, u *models.User) error {
		saved = u
		return nil
	}

	svc := NewUserService(repo)
	user, err := svc.Register(context.Background(), validInput())
	require.NoError(t, err)
	require.NotNil(t, saved)

	assert.Equal(t, models.MembershipMember, user.MembershipStatus)
	assert.NotEqual(t, "Str0ngPass!1", user.Password, "password must be hashed")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("Str0ngPass!1")))
}

func TestUserService_Register_DuplicateRaceMapsToFieldError(t *testing.T) {
	// The advisory pre-check misses, the unique index still fires.
	repo := noopUserRepo()
	repo.createFn = func(context.Context, *models.User) error {
		return fmt.Errorf("duplicated key not allowed: users_email_key: %w", gorm.ErrDuplicatedKey)
	}

	svc := NewUserService(repo)
	_, err := svc.Register(context.Background(), validInput())
	require.Error(t, err)

	fields := fieldsOf(t, err)
	require.Len(t, fields, 1)
	assert.Equal(t, "email", fields[0].Field)
	assert.Equal(t, "Email already in use.", fields[0].Message)
}

func TestUserService_Register_DuplicatePreCheck(t *testing.T) {
	repo := noopUserRepo()
	repo.getByUsernameFn = func(_ context.Context, username string) (*models.User, error) {
		return &models.User{ID: 3, Username: username}, nil
	}

	svc := NewUserService(repo)
	_, err := svc.Register(context.Background(), validInput())
	require.Error(t, err)

	fields := fieldsOf(t, err)
	require.Len(t, fields, 1)
	assert.Equal(t, "username", fields[0].Field)
}

func TestUserService_Update_RehashesPassword(t *testing.T) {
	current := &models.User{ID: 1, Username: "mreed", Email: "mreed@example.com", Password: "old-hash"}

	repo := noopUserRepo()
	repo.getByIDFn = func(context.Context, uint) (*models.User, error) { return current, nil }
	var saved *models.User
	repo.updateFn = func(_ context.Context, u *models.User) error {
		saved = u
		return nil
	}

	actor := policy.Identity{User: current}
	svc := NewUserService(repo)
	_, err := svc.Update(context.Background(), actor, 1, validInput())
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.Password), []byte("Str0ngPass!1")))
}

func TestUserService_Update_UniquenessSkipsOwnValues(t *testing.T) {
	current := &models.User{ID: 1, Username: "mreed", Email: "mreed@example.com"}

	repo := noopUserRepo()
	repo.getByIDFn = func(context.Context, uint) (*models.User, error) { return current, nil }
	repo.getByUsernameFn = func(context.Context, string) (*models.User, error) {
		t.Fatal("username pre-check must be skipped for an unchanged value")
		return nil, nil
	}
	repo.getByEmailFn = func(context.Context, string) (*models.User, error) {
		t.Fatal("email pre-check must be skipped for an unchanged value")
		return nil, nil
	}

	actor := policy.Identity{User: current}
	svc := NewUserService(repo)
	_, err := svc.Update(context.Background(), actor, 1, validInput())
	require.NoError(t, err)
}

func TestUserService_Delete_Conjunction(t *testing.T) {
	target := &models.User{ID: 1, MembershipStatus: models.MembershipAdmin}

	repo := noopUserRepo()
	repo.getByIDFn = func(context.Context, uint) (*models.User, error) { return target, nil }
	deleted := false
	repo.deleteFn = func(context.Context, uint) error {
		deleted = true
		return nil
	}

	svc := NewUserService(repo)

	selfAdmin := policy.Identity{User: target, IsAdmin: true}
	require.NoError(t, svc.Delete(context.Background(), selfAdmin, 1))
	assert.True(t, deleted)

	otherAdmin := policy.Identity{User: &models.User{ID: 9}, IsAdmin: true}
	err := svc.Delete(context.Background(), otherAdmin, 1)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, models.CodeForbidden, appErr.Code)
}
