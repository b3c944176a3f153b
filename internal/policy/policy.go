// Package policy contains the pure access-control decisions gating every
// read and mutation. Decisions depend only on the per-request identity,
// resource ownership, and the post privacy flag; the package does no I/O.
package policy

import "inkwell/internal/models"

// Identity is the per-request resolved actor state produced by the auth
// middleware. The zero value is the anonymous identity.
type Identity struct {
	User    *models.User
	IsAdmin bool
}

// Anonymous is the identity used when no valid bearer token was presented.
var Anonymous = Identity{}

// Authenticated reports whether the identity resolved to a user.
func (id Identity) Authenticated() bool {
	return id.User != nil
}

// UserID returns the resolved user's ID, or zero for anonymous.
func (id Identity) UserID() uint {
	if id.User == nil {
		return 0
	}
	return id.User.ID
}

// CanViewPost reports whether the actor may read the given post.
// Admins see everything, public posts are visible to all, and owners
// always see their own posts.
func CanViewPost(actor Identity, post *models.Post) bool {
	if actor.IsAdmin {
		return true
	}
	if post.Privacy == models.PrivacyPublic {
		return true
	}
	return actor.Authenticated() && actor.UserID() == post.UserID
}

// Editable reports whether the actor owns the post. Listings expose this as
// a per-item flag; it is ownership only and deliberately ignores admin
// status.
func Editable(actor Identity, post *models.Post) bool {
	return actor.Authenticated() && actor.UserID() == post.UserID
}

// CanEditPost reports whether the actor may update the post. Edit is
// owner-only; the admin override applies to delete, not edit.
func CanEditPost(actor Identity, post *models.Post) bool {
	return actor.Authenticated() && actor.UserID() == post.UserID
}

// CanDeletePost reports whether the actor may delete the post.
func CanDeletePost(actor Identity, post *models.Post) bool {
	if actor.Authenticated() && actor.UserID() == post.UserID {
		return true
	}
	return actor.IsAdmin
}

// CanEditComment reports whether the actor may update the comment
// (owner-only, same asymmetry as posts).
func CanEditComment(actor Identity, comment *models.Comment) bool {
	return actor.Authenticated() && actor.UserID() == comment.UserID
}

// CanDeleteComment reports whether the actor may delete the comment.
func CanDeleteComment(actor Identity, comment *models.Comment) bool {
	if actor.Authenticated() && actor.UserID() == comment.UserID {
		return true
	}
	return actor.IsAdmin
}

// CanUpdateUser reports whether the actor may update the target account.
func CanUpdateUser(actor Identity, targetUserID uint) bool {
	return actor.Authenticated() && actor.UserID() == targetUserID
}

// CanDeleteUser reports whether the actor may delete the target account.
// The observed rule requires the actor to be the target user AND an admin
// simultaneously, so only a self-admin can delete an account. Likely an
// upstream defect (OR would match the post/comment delete pattern) but it is
// preserved as documented behavior. See DESIGN.md.
func CanDeleteUser(actor Identity, targetUserID uint) bool {
	return actor.Authenticated() && actor.UserID() == targetUserID && actor.IsAdmin
}
