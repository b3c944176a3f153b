package repository

import (
	"context"
	"errors"

	"inkwell/internal/cache"
	"inkwell/internal/models"
	"inkwell/internal/observability"
	"inkwell/internal/policy"

	"gorm.io/gorm"
)

// PostRepository defines persistence operations for posts. Read operations
// taking a policy.Identity apply the visibility filter at query level, so an
// invisible private post is indistinguishable from an absent one.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	GetVisibleByID(ctx context.Context, id uint, actor policy.Identity) (*models.Post, error)
	ListVisible(ctx context.Context, actor policy.Identity) ([]*models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id uint) error
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	defer observability.TrackQuery("insert", "posts")()
	return r.db.WithContext(ctx).Create(post).Error
}

// GetByID fetches a post regardless of privacy. Mutation paths use this and
// apply the access policy afterwards so denied actors get 403, not 404.
func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	defer observability.TrackQuery("select", "posts")()
	var post models.Post
	if err := r.db.WithContext(ctx).Preload("User").First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &post, nil
}

// GetVisibleByID fetches a post the actor is allowed to read. The anonymous
// rendering is cached; viewer-dependent reads go straight to the store.
func (r *postRepository) GetVisibleByID(ctx context.Context, id uint, actor policy.Identity) (*models.Post, error) {
	var post models.Post

	if !actor.Authenticated() && !actor.IsAdmin {
		err := cache.Aside(ctx, cache.PublicPostKey(id), &post, cache.PostTTL, func() error {
			return r.loadVisible(ctx, &post, id, actor)
		})
		if err != nil {
			return nil, err
		}
		return &post, nil
	}

	if err := r.loadVisible(ctx, &post, id, actor); err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) loadVisible(ctx context.Context, post *models.Post, id uint, actor policy.Identity) error {
	defer observability.TrackQuery("select", "posts")()
	err := r.visibilityScope(r.db.WithContext(ctx), actor).
		Preload("User").
		First(post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Post", id)
		}
		return models.NewInternalError(err)
	}
	return nil
}

// ListVisible returns every post the actor may read, oldest first.
func (r *postRepository) ListVisible(ctx context.Context, actor policy.Identity) ([]*models.Post, error) {
	defer observability.TrackQuery("select", "posts")()
	var posts []*models.Post
	err := r.visibilityScope(r.db.WithContext(ctx), actor).
		Preload("User").
		Order("created_at asc").
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

// visibilityScope is the SQL projection of policy.CanViewPost: admins see
// all, authenticated users see public plus their own, anonymous sees public
// only.
func (r *postRepository) visibilityScope(db *gorm.DB, actor policy.Identity) *gorm.DB {
	switch {
	case actor.IsAdmin:
		return db
	case actor.Authenticated():
		return db.Where("privacy = ? OR user_id = ?", models.PrivacyPublic, actor.UserID())
	default:
		return db.Where("privacy = ?", models.PrivacyPublic)
	}
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	defer observability.TrackQuery("update", "posts")()
	if err := r.db.WithContext(ctx).Save(post).Error; err != nil {
		return err
	}
	cache.InvalidatePost(ctx, post.ID)
	return nil
}

func (r *postRepository) Delete(ctx context.Context, id uint) error {
	defer observability.TrackQuery("delete", "posts")()
	if err := r.db.WithContext(ctx).Delete(&models.Post{}, id).Error; err != nil {
		return err
	}
	cache.InvalidatePost(ctx, id)
	return nil
}
