package models

import (
	"time"
)

// ContentMaxLen bounds the length of thread and reply content, in runes.
const ContentMaxLen = 200

// Thread represents a top-level post. Content and image are immutable
// after creation; the count fields are derived per query.
type Thread struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Content   string `gorm:"type:text;not null" json:"content"`
	Image     string `json:"image"`
	CreatedBy uint   `gorm:"not null;index" json:"created_by"`
	UpdatedBy uint   `json:"-"`
	Creator   User   `gorm:"foreignKey:CreatedBy" json:"creator"`
	// LikeCount and ReplyCount are not persisted; computed at query time.
	LikeCount  int `gorm:"->" json:"like_count"`
	ReplyCount int `gorm:"->" json:"reply_count"`
	// IsLiked indicates whether the current viewer liked this thread (computed).
	IsLiked   bool      `gorm:"->" json:"isLiked"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ThreadPicture is the minimal projection for a user's image threads.
type ThreadPicture struct {
	ID    uint   `json:"id"`
	Image string `json:"image"`
}
