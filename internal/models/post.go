// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// Privacy is the per-post visibility setting.
type Privacy string

const (
	PrivacyPublic  Privacy = "Public"
	PrivacyPrivate Privacy = "Private"
)

// Post represents a blog post owned by a user.
type Post struct {
	ID      uint    `gorm:"primaryKey" json:"id"`
	Title   string  `gorm:"not null" json:"title"`
	Text    string  `gorm:"type:text;not null" json:"text"`
	Privacy Privacy `gorm:"default:Public" json:"privacy"`
	// Reaction counters exist in the stored shape but no exposed
	// operation mutates them.
	ReactionLikes    int  `gorm:"default:0" json:"reaction_likes"`
	ReactionDislikes int  `gorm:"default:0" json:"reaction_dislikes"`
	UserID           uint `gorm:"not null;index" json:"user_id"`
	User             User `gorm:"foreignKey:UserID" json:"user"`
	// Editable indicates whether the requesting identity owns this post
	// (computed per request on listings, never persisted).
	Editable  bool           `gorm:"-" json:"editable"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
