// Package service contains the application's business logic, orchestrating
// validation, access policy, and persistence.
package service

import (
	"context"
	"errors"
	"strings"

	"inkwell/internal/models"
	"inkwell/internal/observability"
	"inkwell/internal/policy"
	"inkwell/internal/repository"
	"inkwell/internal/validation"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService implements registration, profile management, and account
// deletion.
type UserService struct {
	userRepo repository.UserRepository
}

// UserInput carries the raw registration/update fields.
type UserInput struct {
	FirstName            string `json:"first_name"`
	LastName             string `json:"last_name"`
	Username             string `json:"username"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

// NewUserService returns a UserService backed by the given repository.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Register validates the input, pre-checks username/email uniqueness, and
// creates the account with a hashed password and Member status. The
// pre-check is advisory; the unique indexes are authoritative and a conflict
// in the race window maps back to the same field-scoped failure.
func (s *UserService) Register(ctx context.Context, in UserInput) (*models.User, error) {
	res := validation.Evaluate(validation.UserFields(
		in.FirstName, in.LastName, in.Username, in.Email, in.Password, in.PasswordConfirmation,
	))

	fieldErrs := res.Errors
	fieldErrs = append(fieldErrs, s.uniquenessErrors(ctx, res.Get("username"), res.Get("email"), nil)...)
	if len(fieldErrs) > 0 {
		observability.ValidationFailures.WithLabelValues("user").Inc()
		return nil, models.NewValidationErrors(fieldErrs)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(res.Get("password")), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		FirstName:        res.Get("first_name"),
		LastName:         res.Get("last_name"),
		Username:         res.Get("username"),
		Email:            res.Get("email"),
		Password:         string(hashed),
		MembershipStatus: models.MembershipMember,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if fields, ok := duplicateKeyFields(err); ok {
			return nil, models.NewValidationErrors(fields)
		}
		return nil, models.NewInternalError(err)
	}

	return user, nil
}

// Get returns a single user by ID.
func (s *UserService) Get(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// List returns all users ordered by full name.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.userRepo.List(ctx)
}

// Update replaces the target user's profile. Owner-only; the password is
// required and re-hashed on every update. Uniqueness checks skip values the
// user already holds.
func (s *UserService) Update(ctx context.Context, actor policy.Identity, targetID uint, in UserInput) (*models.User, error) {
	if !policy.CanUpdateUser(actor, targetID) {
		observability.AccessDenied.WithLabelValues("user", "update").Inc()
		return nil, models.NewForbiddenError("You can only update your own account")
	}

	user, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	res := validation.Evaluate(validation.UserFields(
		in.FirstName, in.LastName, in.Username, in.Email, in.Password, in.PasswordConfirmation,
	))

	fieldErrs := res.Errors
	fieldErrs = append(fieldErrs, s.uniquenessErrors(ctx, res.Get("username"), res.Get("email"), user)...)
	if len(fieldErrs) > 0 {
		observability.ValidationFailures.WithLabelValues("user").Inc()
		return nil, models.NewValidationErrors(fieldErrs)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(res.Get("password")), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user.FirstName = res.Get("first_name")
	user.LastName = res.Get("last_name")
	user.Username = res.Get("username")
	user.Email = res.Get("email")
	user.Password = string(hashed)

	if err := s.userRepo.Update(ctx, user); err != nil {
		if fields, ok := duplicateKeyFields(err); ok {
			return nil, models.NewValidationErrors(fields)
		}
		return nil, models.NewInternalError(err)
	}

	return user, nil
}

// Delete removes the target account. The observed rule requires the actor
// to be the target AND an admin; see policy.CanDeleteUser.
func (s *UserService) Delete(ctx context.Context, actor policy.Identity, targetID uint) error {
	if !policy.CanDeleteUser(actor, targetID) {
		observability.AccessDenied.WithLabelValues("user", "delete").Inc()
		return models.NewForbiddenError("Forbidden")
	}

	if _, err := s.userRepo.GetByID(ctx, targetID); err != nil {
		return err
	}

	if err := s.userRepo.Delete(ctx, targetID); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// uniquenessErrors runs the advisory duplicate pre-check. current, when
// non-nil, is the account being updated; values it already holds pass.
func (s *UserService) uniquenessErrors(ctx context.Context, username, email string, current *models.User) []models.FieldError {
	var fieldErrs []models.FieldError

	if current == nil || username != current.Username {
		if existing, err := s.userRepo.GetByUsername(ctx, username); err == nil && existing != nil {
			fieldErrs = append(fieldErrs, models.FieldError{
				Field:   "username",
				Message: "Username already in use.",
				Value:   username,
			})
		}
	}

	if current == nil || email != current.Email {
		if existing, err := s.userRepo.GetByEmail(ctx, email); err == nil && existing != nil {
			fieldErrs = append(fieldErrs, models.FieldError{
				Field:   "email",
				Message: "Email already in use.",
				Value:   email,
			})
		}
	}

	return fieldErrs
}

// duplicateKeyFields maps a store-level unique violation (the authoritative
// enforcement, hit only in the pre-check race window) back to field errors.
func duplicateKeyFields(err error) ([]models.FieldError, bool) {
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, false
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "email"):
		return []models.FieldError{{Field: "email", Message: "Email already in use."}}, true
	default:
		return []models.FieldError{{Field: "username", Message: "Username already in use."}}, true
	}
}
