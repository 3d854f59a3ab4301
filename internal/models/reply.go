package models

import (
	"time"
)

// Reply represents a post attached to a thread. Same shape as Thread
// plus the owning thread id.
type Reply struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ThreadID  uint   `gorm:"not null;index" json:"thread_id"`
	Content   string `gorm:"type:text;not null" json:"content"`
	Image     string `json:"image"`
	CreatedBy uint   `gorm:"not null;index" json:"created_by"`
	UpdatedBy uint   `json:"-"`
	Creator   User   `gorm:"foreignKey:CreatedBy" json:"creator"`
	// LikeCount is not persisted; computed at query time.
	LikeCount int `gorm:"->" json:"like_count"`
	// IsLiked indicates whether the current viewer liked this reply (computed).
	IsLiked   bool      `gorm:"->" json:"isLiked"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
