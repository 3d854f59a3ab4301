package models

import (
	"time"
)

// Like records a viewer's endorsement of a thread or a reply.
// Exactly one of ThreadID/ReplyID is set per row. The composite unique
// indexes make the insert-if-absent toggle atomic: NULL values never
// collide, so thread likes and reply likes stay independent.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_like_thread;uniqueIndex:idx_like_reply" json:"user_id"`
	ThreadID  *uint     `gorm:"uniqueIndex:idx_like_thread" json:"thread_id,omitempty"`
	ReplyID   *uint     `gorm:"uniqueIndex:idx_like_reply" json:"reply_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
