// Package repository implements the data access layer for the application.
package repository

import (
	"context"
	"errors"

	"inkwell/internal/cache"
	"inkwell/internal/models"
	"inkwell/internal/observability"

	"gorm.io/gorm"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]models.User, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a new UserRepository implementation.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	key := cache.UserKey(id)

	err := cache.Aside(ctx, key, &user, cache.UserTTL, func() error {
		defer observability.TrackQuery("select", "users")()
		if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("User", id)
			}
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUsername returns the user with the given username, or nil when no
// such user exists.
func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	defer observability.TrackQuery("select", "users")()
	var user models.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

// GetByEmail returns the user with the given email, or nil when no such
// user exists.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	defer observability.TrackQuery("select", "users")()
	var user models.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	defer observability.TrackQuery("insert", "users")()
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	defer observability.TrackQuery("update", "users")()
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return err
	}
	cache.InvalidateUser(ctx, user.ID)
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id uint) error {
	defer observability.TrackQuery("delete", "users")()
	if err := r.db.WithContext(ctx).Delete(&models.User{}, id).Error; err != nil {
		return err
	}
	cache.InvalidateUser(ctx, id)
	return nil
}

// List returns all users ordered by full name.
func (r *userRepository) List(ctx context.Context) ([]models.User, error) {
	defer observability.TrackQuery("select", "users")()
	var users []models.User
	err := r.db.WithContext(ctx).Order("full_name asc").Find(&users).Error
	return users, err
}
