package policy

import (
	"testing"

	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
)

func identity(id uint, admin bool) Identity {
	return Identity{User: &models.User{ID: id}, IsAdmin: admin}
}

func TestCanViewPost(t *testing.T) {
	publicPost := &models.Post{ID: 1, UserID: 10, Privacy: models.PrivacyPublic}
	privatePost := &models.Post{ID: 2, UserID: 10, Privacy: models.PrivacyPrivate}

	tests := []struct {
		name  string
		actor Identity
		post  *models.Post
		want  bool
	}{
		{"anonymous sees public", Anonymous, publicPost, true},
		{"anonymous blocked from private", Anonymous, privatePost, false},
		{"owner sees own private", identity(10, false), privatePost, true},
		{"non-owner blocked from private", identity(11, false), privatePost, false},
		{"admin sees private", identity(99, true), privatePost, true},
		{"authenticated sees public", identity(11, false), publicPost, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanViewPost(tt.actor, tt.post))
		})
	}
}

func TestEditableIgnoresAdminStatus(t *testing.T) {
	post := &models.Post{ID: 1, UserID: 10, Privacy: models.PrivacyPublic}

	assert.True(t, Editable(identity(10, false), post))
	assert.True(t, Editable(identity(10, true), post))
	assert.False(t, Editable(identity(11, true), post), "admin who is not the owner must not see editable=true")
	assert.False(t, Editable(Anonymous, post))
}

func TestPostEditDeleteAsymmetry(t *testing.T) {
	post := &models.Post{ID: 1, UserID: 10}

	owner := identity(10, false)
	admin := identity(99, true)
	stranger := identity(11, false)

	assert.True(t, CanEditPost(owner, post))
	assert.False(t, CanEditPost(admin, post), "admin override must not extend to edit")
	assert.False(t, CanEditPost(stranger, post))

	assert.True(t, CanDeletePost(owner, post))
	assert.True(t, CanDeletePost(admin, post))
	assert.False(t, CanDeletePost(stranger, post))
	assert.False(t, CanDeletePost(Anonymous, post))
}

func TestCommentEditDeleteAsymmetry(t *testing.T) {
	comment := &models.Comment{ID: 1, UserID: 10, PostID: 5}

	assert.True(t, CanEditComment(identity(10, false), comment))
	assert.False(t, CanEditComment(identity(99, true), comment))

	assert.True(t, CanDeleteComment(identity(10, false), comment))
	assert.True(t, CanDeleteComment(identity(99, true), comment))
	assert.False(t, CanDeleteComment(identity(11, false), comment))
}

func TestUserUpdateOwnerOnly(t *testing.T) {
	assert.True(t, CanUpdateUser(identity(10, false), 10))
	assert.False(t, CanUpdateUser(identity(10, true), 11), "even admins may not update other accounts")
	assert.False(t, CanUpdateUser(Anonymous, 10))
}

func TestUserDeleteRequiresSelfAndAdmin(t *testing.T) {
	assert.True(t, CanDeleteUser(identity(10, true), 10))
	assert.False(t, CanDeleteUser(identity(10, false), 10), "plain member cannot delete own account")
	assert.False(t, CanDeleteUser(identity(99, true), 10), "admin cannot delete another account")
	assert.False(t, CanDeleteUser(Anonymous, 10))
}
