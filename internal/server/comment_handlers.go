package server

import (
	"inkwell/internal/middleware"
	"inkwell/internal/models"
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetComments handles GET /v1/posts/:postId/comments
// @Summary List a post's comments
// @Description Comments are listed oldest first regardless of the parent post's privacy
// @Tags comments
// @Produce json
// @Param postId path int true "Post ID"
// @Success 200 {array} models.Comment
// @Failure 404 "no comments under the post"
// @Router /posts/{postId}/comments [get]
func (s *Server) GetComments(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}

	comments, err := s.commentService.ListByPost(c.UserContext(), postID)
	if err != nil {
		return s.respondServiceError(c, err)
	}
	return c.JSON(comments)
}

// CreateComment handles POST /v1/posts/:postId/comments
// @Summary Comment on a post
// @Description Validation failures return 200 with an errors list
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param postId path int true "Post ID"
// @Param request body service.CommentInput true "Comment fields"
// @Success 200 {object} models.ValidationErrorResponse "validation failures"
// @Success 201 {object} models.Comment
// @Failure 404 "post not found"
// @Router /posts/{postId}/comments [post]
func (s *Server) CreateComment(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}

	var in service.CommentInput
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.Create(c.UserContext(), middleware.Identity(c), postID, in)
	if err != nil {
		return s.respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

// UpdateComment handles PUT /v1/posts/:postId/comments/:commentId
// @Summary Update a comment
// @Description Owner-only
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param postId path int true "Post ID"
// @Param commentId path int true "Comment ID"
// @Param request body service.CommentInput true "Comment fields"
// @Success 200 {object} models.Comment
// @Failure 403 "not the author"
// @Router /posts/{postId}/comments/{commentId} [put]
func (s *Server) UpdateComment(c *fiber.Ctx) error {
	commentID, err := s.parseID(c, "commentId")
	if err != nil {
		return nil
	}

	var in service.CommentInput
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.Update(c.UserContext(), middleware.Identity(c), commentID, in)
	if err != nil {
		return s.respondServiceError(c, err)
	}
	return c.JSON(comment)
}

// DeleteComment handles DELETE /v1/posts/:postId/comments/:commentId
// @Summary Delete a comment
// @Description The author or any admin may delete
// @Tags comments
// @Security BearerAuth
// @Param postId path int true "Post ID"
// @Param commentId path int true "Comment ID"
// @Success 200 "deleted"
// @Failure 403 "not permitted"
// @Router /posts/{postId}/comments/{commentId} [delete]
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	commentID, err := s.parseID(c, "commentId")
	if err != nil {
		return nil
	}

	if err := s.commentService.Delete(c.UserContext(), middleware.Identity(c), commentID); err != nil {
		return s.respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusOK)
}
