// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// MembershipStatus is the coarse role attached to a user account.
type MembershipStatus string

const (
	MembershipAdmin  MembershipStatus = "Admin"
	MembershipMember MembershipStatus = "Member"
)

// User represents a registered account in the Inkwell application.
type User struct {
	ID               uint             `gorm:"primaryKey" json:"id"`
	FirstName        string           `gorm:"not null" json:"first_name"`
	LastName         string           `gorm:"not null" json:"last_name"`
	FullName         string           `json:"full_name"`
	Username         string           `gorm:"unique;not null" json:"username"`
	Email            string           `gorm:"unique;not null" json:"email"`
	Password         string           `gorm:"not null" json:"-"`
	MembershipStatus MembershipStatus `gorm:"default:Member" json:"membership_status"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
	DeletedAt        gorm.DeletedAt   `gorm:"index" json:"-"`
	Posts            []Post           `gorm:"foreignKey:UserID" json:"posts,omitempty"`
}

// IsAdmin reports whether the user holds the Admin membership status.
func (u *User) IsAdmin() bool {
	return u.MembershipStatus == MembershipAdmin
}

// BeforeSave derives the full name from first and last name.
func (u *User) BeforeSave(_ *gorm.DB) error {
	u.FullName = u.FirstName + " " + u.LastName
	return nil
}
