// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// Comment represents a comment attached to a post.
type Comment struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	Text             string         `gorm:"not null" json:"text"`
	ReactionLikes    int            `gorm:"default:0" json:"reaction_likes"`
	ReactionDislikes int            `gorm:"default:0" json:"reaction_dislikes"`
	PostID           uint           `gorm:"not null;index" json:"post_id"`
	UserID           uint           `gorm:"not null" json:"user_id"`
	User             User           `gorm:"foreignKey:UserID" json:"user"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}
