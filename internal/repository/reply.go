package repository

import (
	"context"
	"errors"

	"ripple/internal/cache"
	"ripple/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReplyRepository defines the interface for reply data operations.
type ReplyRepository interface {
	Create(ctx context.Context, reply *models.Reply) error
	GetByID(ctx context.Context, id uint) (*models.Reply, error)
	ListByThread(ctx context.Context, threadID uint, viewerID uint) ([]*models.Reply, error)
	Like(ctx context.Context, userID, replyID uint) error
	Unlike(ctx context.Context, userID, replyID uint) error
}

type replyRepository struct {
	db *gorm.DB
}

// NewReplyRepository creates a new reply repository.
func NewReplyRepository(db *gorm.DB) ReplyRepository {
	return &replyRepository{db: db}
}

func (r *replyRepository) Create(ctx context.Context, reply *models.Reply) error {
	if err := r.db.WithContext(ctx).Create(reply).Error; err != nil {
		return models.NewInternalError(err)
	}
	// Reply counts are embedded in the cached feed snapshot.
	cache.InvalidateFeed(ctx)
	return nil
}

func (r *replyRepository) GetByID(ctx context.Context, id uint) (*models.Reply, error) {
	var reply models.Reply
	if err := r.db.WithContext(ctx).Preload("Creator").First(&reply, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Reply", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &reply, nil
}

func (r *replyRepository) ListByThread(ctx context.Context, threadID uint, viewerID uint) ([]*models.Reply, error) {
	var replies []*models.Reply
	err := r.applyReplyDetails(r.db.WithContext(ctx), viewerID).
		Preload("Creator").
		Where("replies.thread_id = ?", threadID).
		Order("replies.id DESC").
		Find(&replies).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return replies, nil
}

func (r *replyRepository) applyReplyDetails(db *gorm.DB, viewerID uint) *gorm.DB {
	selectQuery := "replies.*, " +
		"(SELECT COUNT(*) FROM likes WHERE likes.reply_id = replies.id) AS like_count"

	if viewerID != 0 {
		return db.Select(selectQuery+
			", EXISTS(SELECT 1 FROM likes WHERE likes.reply_id = replies.id AND likes.user_id = ?) AS is_liked", viewerID)
	}

	return db.Select(selectQuery)
}

func (r *replyRepository) Like(ctx context.Context, userID, replyID uint) error {
	like := models.Like{UserID: userID, ReplyID: &replyID}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&like).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *replyRepository) Unlike(ctx context.Context, userID, replyID uint) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND reply_id = ?", userID, replyID).
		Delete(&models.Like{}).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
