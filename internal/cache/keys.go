package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	userKeyPrefix       = "user:%d"
	publicPostKeyPrefix = "post:public:%d"
)

const (
	UserTTL = 5 * time.Minute
	// PostTTL only applies to the anonymous (public) rendering of a post;
	// authenticated reads bypass the cache because visibility and the
	// editable flag depend on the viewer.
	PostTTL = 10 * time.Minute
)

// UserKey returns the cache key for a user record.
func UserKey(userID uint) string {
	return fmt.Sprintf(userKeyPrefix, userID)
}

// PublicPostKey returns the cache key for the anonymous view of a post.
func PublicPostKey(postID uint) string {
	return fmt.Sprintf(publicPostKeyPrefix, postID)
}

// Invalidate removes a single key.
func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

// InvalidateUser removes the cached user record.
func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

// InvalidatePost removes the cached anonymous view of a post.
func InvalidatePost(ctx context.Context, postID uint) {
	Invalidate(ctx, PublicPostKey(postID))
}
