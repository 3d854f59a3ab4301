// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents a registered account.
type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"unique;not null" json:"username"`
	Email        string `gorm:"unique;not null" json:"email"`
	Password     string `gorm:"not null" json:"-"`
	FullName     string `gorm:"not null" json:"full_name"`
	Bio          string `json:"bio"`
	PhotoProfile string `json:"photo_profile"`
	// FollowerCount and FollowingCount are not persisted; computed at query time.
	FollowerCount  int `gorm:"->" json:"follower_count"`
	FollowingCount int `gorm:"->" json:"following_count"`
	// IsFollowed indicates whether the current viewer follows this user (computed).
	IsFollowed bool      `gorm:"->" json:"isFollowed"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Profile is the public projection of a user embedded in threads,
// replies and broadcast events.
type Profile struct {
	ID           uint   `json:"id"`
	Username     string `json:"username"`
	FullName     string `json:"full_name"`
	PhotoProfile string `json:"photo_profile"`
}

// AsProfile strips a user down to its public projection.
func (u *User) AsProfile() Profile {
	return Profile{
		ID:           u.ID,
		Username:     u.Username,
		FullName:     u.FullName,
		PhotoProfile: u.PhotoProfile,
	}
}
