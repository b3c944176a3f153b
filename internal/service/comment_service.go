package service

import (
	"context"

	"inkwell/internal/models"
	"inkwell/internal/observability"
	"inkwell/internal/policy"
	"inkwell/internal/repository"
	"inkwell/internal/validation"
)

// CommentService implements comment authoring under posts.
type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

// CommentInput carries the raw comment create/update fields.
type CommentInput struct {
	Text string `json:"text"`
}

// NewCommentService returns a CommentService backed by the given repositories.
func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo, postRepo: postRepo}
}

// ListByPost returns every comment under the post, oldest first. The parent
// post's privacy is not consulted. An empty result is a not-found condition.
func (s *CommentService) ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	comments, err := s.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if len(comments) == 0 {
		return nil, models.NewNotFoundError("Comments", postID)
	}
	return comments, nil
}

// Create validates the input and stores a new comment by the actor under the
// given post. The parent post must exist.
func (s *CommentService) Create(ctx context.Context, actor policy.Identity, postID uint, in CommentInput) (*models.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	res := validation.Evaluate(validation.CommentFields(in.Text))
	if !res.OK() {
		observability.ValidationFailures.WithLabelValues("comment").Inc()
		return nil, models.NewValidationErrors(res.Errors)
	}

	comment := &models.Comment{
		Text:   res.Get("text"),
		PostID: postID,
		UserID: actor.UserID(),
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, models.NewInternalError(err)
	}
	return comment, nil
}

// Update replaces the comment's text. Editing is owner-only.
func (s *CommentService) Update(ctx context.Context, actor policy.Identity, id uint, in CommentInput) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !policy.CanEditComment(actor, comment) {
		observability.AccessDenied.WithLabelValues("comment", "update").Inc()
		return nil, models.NewForbiddenError("Forbidden")
	}

	res := validation.Evaluate(validation.CommentFields(in.Text))
	if !res.OK() {
		observability.ValidationFailures.WithLabelValues("comment").Inc()
		return nil, models.NewValidationErrors(res.Errors)
	}

	comment.Text = res.Get("text")

	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, models.NewInternalError(err)
	}
	return comment, nil
}

// Delete removes the comment. The owner or any admin may delete.
func (s *CommentService) Delete(ctx context.Context, actor policy.Identity, id uint) error {
	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !policy.CanDeleteComment(actor, comment) {
		observability.AccessDenied.WithLabelValues("comment", "delete").Inc()
		return models.NewForbiddenError("Forbidden")
	}

	if err := s.commentRepo.Delete(ctx, id); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
