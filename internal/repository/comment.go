package repository

import (
	"context"
	"errors"

	"inkwell/internal/models"
	"inkwell/internal/observability"

	"gorm.io/gorm"
)

// CommentRepository defines persistence operations for comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id uint) (*models.Comment, error)
	ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error)
	Update(ctx context.Context, comment *models.Comment) error
	Delete(ctx context.Context, id uint) error
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new CommentRepository.
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	defer observability.TrackQuery("insert", "comments")()
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepository) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	defer observability.TrackQuery("select", "comments")()
	var comment models.Comment
	if err := r.db.WithContext(ctx).Preload("User").First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Comment", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &comment, nil
}

// ListByPost returns every comment under the post, oldest first. There is
// deliberately no privacy filter here: comment listings are readable even
// when the parent post is private (documented behavior).
func (r *commentRepository) ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	defer observability.TrackQuery("select", "comments")()
	var comments []*models.Comment
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("post_id = ?", postID).
		Order("created_at asc").
		Find(&comments).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return comments, nil
}

func (r *commentRepository) Update(ctx context.Context, comment *models.Comment) error {
	defer observability.TrackQuery("update", "comments")()
	return r.db.WithContext(ctx).Save(comment).Error
}

func (r *commentRepository) Delete(ctx context.Context, id uint) error {
	defer observability.TrackQuery("delete", "comments")()
	return r.db.WithContext(ctx).Delete(&models.Comment{}, id).Error
}
