package server

import (
	"inkwell/internal/middleware"
	"inkwell/internal/models"
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetPosts handles GET /v1/posts
// @Summary List posts
// @Description List posts visible to the caller, oldest first, with per-item editable flags
// @Tags posts
// @Produce json
// @Success 200 {array} models.Post
// @Failure 404 "no visible posts"
// @Router /posts [get]
func (s *Server) GetPosts(c *fiber.Ctx) error {
	posts, err := s.postService.ListForViewer(c.UserContext(), middleware.Identity(c))
	if err != nil {
		return s.respondServiceError(c, err)
	}
	return c.JSON(posts)
}

// GetPost handles GET /v1/posts/:postId
// @Summary Get a post
// @Description An invisible private post is indistinguishable from an absent one
// @Tags posts
// @Produce json
// @Param postId path int true "Post ID"
// @Success 200 {object} models.Post
// @Failure 404 "post not found or not visible"
// @Router /posts/{postId} [get]
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}

	post, err := s.postService.GetForViewer(c.UserContext(), middleware.Identity(c), id)
	if err != nil {
		return s.respondServiceError(c, err)
	}
	return c.JSON(post)
}

// CreatePost handles POST /v1/posts
// @Summary Create a post
// @Description Validation failures return 200 with an errors list
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.PostInput true "Post fields"
// @Success 200 {object} models.ValidationErrorResponse "validation failures"
// @Success 201 {object} models.Post
// @Router /posts [post]
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var in service.PostInput
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.Create(c.UserContext(), middleware.Identity(c), in)
	if err != nil {
		return s.respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// UpdatePost handles PUT /v1/posts/:postId
// @Summary Update a post
// @Description Owner-only; admin status grants no edit rights
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param postId path int true "Post ID"
// @Param request body service.PostInput true "Post fields"
// @Success 200 {object} models.Post
// @Failure 403 "not the author"
// @Router /posts/{postId} [put]
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}

	var in service.PostInput
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.Update(c.UserContext(), middleware.Identity(c), id, in)
	if err != nil {
		return s.respondServiceError(c, err)
	}
	return c.JSON(post)
}

// DeletePost handles DELETE /v1/posts/:postId
// @Summary Delete a post
// @Description The author or any admin may delete
// @Tags posts
// @Security BearerAuth
// @Param postId path int true "Post ID"
// @Success 200 "deleted"
// @Failure 403 "not permitted"
// @Router /posts/{postId} [delete]
func (s *Server) DeletePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}

	if err := s.postService.Delete(c.UserContext(), middleware.Identity(c), id); err != nil {
		return s.respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusOK)
}
