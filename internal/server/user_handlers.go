package server

import (
	"inkwell/internal/middleware"
	"inkwell/internal/models"
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetUsers handles GET /v1/users
// @Summary List users
// @Description List all users sorted by full name
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.User
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 "no users exist"
// @Router /users [get]
func (s *Server) GetUsers(c *fiber.Ctx) error {
	users, err := s.userService.List(c.UserContext())
	if err != nil {
		return s.respondServiceError(c, err)
	}
	if len(users) == 0 {
		return c.SendStatus(fiber.StatusNotFound)
	}
	return c.JSON(users)
}

// GetUser handles GET /v1/users/:userId
// @Summary Get a user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param userId path int true "User ID"
// @Success 200 {object} models.User
// @Failure 404 "user not found"
// @Router /users/{userId} [get]
func (s *Server) GetUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	user, err := s.userService.Get(c.UserContext(), id)
	if err != nil {
		return s.respondServiceError(c, err)
	}
	return c.JSON(user)
}

// CreateUser handles POST /v1/users
// @Summary Register a new account
// @Description Validate and create an account; failures return 200 with an errors list
// @Tags users
// @Accept json
// @Produce json
// @Param request body service.UserInput true "Registration fields"
// @Success 200 {object} models.ValidationErrorResponse "validation failures"
// @Success 201 {object} models.User
// @Router /users [post]
func (s *Server) CreateUser(c *fiber.Ctx) error {
	var in service.UserInput
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.Register(c.UserContext(), in)
	if err != nil {
		return s.respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// UpdateUser handles PUT /v1/users/:userId
// @Summary Update an account
// @Description Owner-only full replacement; the password is re-hashed
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userId path int true "User ID"
// @Param request body service.UserInput true "Profile fields"
// @Success 200 {object} models.User
// @Failure 403 "not the account owner"
// @Router /users/{userId} [put]
func (s *Server) UpdateUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	var in service.UserInput
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.Update(c.UserContext(), middleware.Identity(c), id, in)
	if err != nil {
		return s.respondServiceError(c, err)
	}
	return c.JSON(user)
}

// DeleteUser handles DELETE /v1/users/:userId
// @Summary Delete an account
// @Tags users
// @Security BearerAuth
// @Param userId path int true "User ID"
// @Success 200 "deleted"
// @Failure 403 "not permitted"
// @Router /users/{userId} [delete]
func (s *Server) DeleteUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	if err := s.userService.Delete(c.UserContext(), middleware.Identity(c), id); err != nil {
		return s.respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusOK)
}
