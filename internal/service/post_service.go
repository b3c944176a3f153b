package service

import (
	"context"

	"inkwell/internal/models"
	"inkwell/internal/observability"
	"inkwell/internal/policy"
	"inkwell/internal/repository"
	"inkwell/internal/validation"
)

// PostService implements post authoring and viewer-scoped reads.
type PostService struct {
	postRepo repository.PostRepository
}

// PostInput carries the raw post create/update fields.
type PostInput struct {
	Title   string `json:"title"`
	Text    string `json:"text"`
	Privacy string `json:"privacy"`
}

// NewPostService returns a PostService backed by the given repository.
func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// Create validates the input and stores a new post owned by the actor.
// An omitted privacy value defaults to Public before validation runs.
func (s *PostService) Create(ctx context.Context, actor policy.Identity, in PostInput) (*models.Post, error) {
	if in.Privacy == "" {
		in.Privacy = string(models.PrivacyPublic)
	}

	res := validation.Evaluate(validation.PostFields(in.Title, in.Text, in.Privacy))
	if !res.OK() {
		observability.ValidationFailures.WithLabelValues("post").Inc()
		return nil, models.NewValidationErrors(res.Errors)
	}

	post := &models.Post{
		Title:   res.Get("title"),
		Text:    res.Get("text"),
		Privacy: models.Privacy(res.Get("privacy")),
		UserID:  actor.UserID(),
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, models.NewInternalError(err)
	}
	return post, nil
}

// ListForViewer returns every post the actor may read, oldest first, with the
// per-item Editable flag set from ownership. An empty result is a not-found
// condition.
func (s *PostService) ListForViewer(ctx context.Context, actor policy.Identity) ([]*models.Post, error) {
	posts, err := s.postRepo.ListVisible(ctx, actor)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, models.NewNotFoundError("Posts", 0)
	}
	for _, post := range posts {
		post.Editable = policy.Editable(actor, post)
	}
	return posts, nil
}

// GetForViewer returns a single post the actor may read, with Editable set.
func (s *PostService) GetForViewer(ctx context.Context, actor policy.Identity, id uint) (*models.Post, error) {
	post, err := s.postRepo.GetVisibleByID(ctx, id, actor)
	if err != nil {
		return nil, err
	}
	post.Editable = policy.Editable(actor, post)
	return post, nil
}

// Update replaces the post's content. Editing is owner-only; admin status
// grants no edit rights here.
func (s *PostService) Update(ctx context.Context, actor policy.Identity, id uint, in PostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !policy.CanEditPost(actor, post) {
		observability.AccessDenied.WithLabelValues("post", "update").Inc()
		return nil, models.NewForbiddenError("Forbidden")
	}

	if in.Privacy == "" {
		in.Privacy = string(models.PrivacyPublic)
	}

	res := validation.Evaluate(validation.PostFields(in.Title, in.Text, in.Privacy))
	if !res.OK() {
		observability.ValidationFailures.WithLabelValues("post").Inc()
		return nil, models.NewValidationErrors(res.Errors)
	}

	post.Title = res.Get("title")
	post.Text = res.Get("text")
	post.Privacy = models.Privacy(res.Get("privacy"))

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, models.NewInternalError(err)
	}
	return post, nil
}

// Delete removes the post. The owner or any admin may delete.
func (s *PostService) Delete(ctx context.Context, actor policy.Identity, id uint) error {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !policy.CanDeletePost(actor, post) {
		observability.AccessDenied.WithLabelValues("post", "delete").Inc()
		return models.NewForbiddenError("Forbidden")
	}

	if err := s.postRepo.Delete(ctx, id); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
