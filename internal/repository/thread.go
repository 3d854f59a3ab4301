// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"

	"ripple/internal/cache"
	"ripple/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ThreadRepository defines the interface for thread data operations.
type ThreadRepository interface {
	Create(ctx context.Context, thread *models.Thread) error
	GetByID(ctx context.Context, id uint, viewerID uint) (*models.Thread, error)
	List(ctx context.Context, limit int, viewerID uint) ([]*models.Thread, error)
	ListByUser(ctx context.Context, userID uint, limit int, viewerID uint) ([]*models.Thread, error)
	ListPictures(ctx context.Context, userID uint) ([]models.ThreadPicture, error)
	GetLikedThreadIDs(ctx context.Context, userID uint, threadIDs []uint) ([]uint, error)
	Like(ctx context.Context, userID, threadID uint) error
	Unlike(ctx context.Context, userID, threadID uint) error
}

type threadRepository struct {
	db *gorm.DB
}

// NewThreadRepository creates a new thread repository.
func NewThreadRepository(db *gorm.DB) ThreadRepository {
	return &threadRepository{db: db}
}

func (r *threadRepository) Create(ctx context.Context, thread *models.Thread) error {
	if err := r.db.WithContext(ctx).Create(thread).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateFeed(ctx)
	return nil
}

func (r *threadRepository) GetByID(ctx context.Context, id uint, viewerID uint) (*models.Thread, error) {
	var thread models.Thread
	err := r.applyThreadDetails(r.db.WithContext(ctx), viewerID).
		Preload("Creator").
		First(&thread, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Thread", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &thread, nil
}

// List returns the newest threads. Feed order is creation order: strictly
// descending by id so ties stay deterministic.
func (r *threadRepository) List(ctx context.Context, limit int, viewerID uint) ([]*models.Thread, error) {
	var threads []*models.Thread
	err := r.applyThreadDetails(r.db.WithContext(ctx), viewerID).
		Preload("Creator").
		Order("threads.id DESC").
		Limit(limit).
		Find(&threads).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return threads, nil
}

func (r *threadRepository) ListByUser(ctx context.Context, userID uint, limit int, viewerID uint) ([]*models.Thread, error) {
	var threads []*models.Thread
	err := r.applyThreadDetails(r.db.WithContext(ctx), viewerID).
		Preload("Creator").
		Where("threads.created_by = ?", userID).
		Order("threads.id DESC").
		Limit(limit).
		Find(&threads).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return threads, nil
}

func (r *threadRepository) ListPictures(ctx context.Context, userID uint) ([]models.ThreadPicture, error) {
	var pictures []models.ThreadPicture
	err := r.db.WithContext(ctx).
		Model(&models.Thread{}).
		Select("id", "image").
		Where("created_by = ? AND image <> ''", userID).
		Order("id DESC").
		Find(&pictures).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return pictures, nil
}

// applyThreadDetails adds subqueries to fetch counts and liked status in a single query.
func (r *threadRepository) applyThreadDetails(db *gorm.DB, viewerID uint) *gorm.DB {
	selectQuery := "threads.*, " +
		"(SELECT COUNT(*) FROM likes WHERE likes.thread_id = threads.id) AS like_count, " +
		"(SELECT COUNT(*) FROM replies WHERE replies.thread_id = threads.id) AS reply_count"

	if viewerID != 0 {
		return db.Select(selectQuery+
			", EXISTS(SELECT 1 FROM likes WHERE likes.thread_id = threads.id AND likes.user_id = ?) AS is_liked", viewerID)
	}

	return db.Select(selectQuery)
}

func (r *threadRepository) GetLikedThreadIDs(ctx context.Context, userID uint, threadIDs []uint) ([]uint, error) {
	if len(threadIDs) == 0 {
		return nil, nil
	}
	var likedIDs []uint
	err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ? AND thread_id IN ?", userID, threadIDs).
		Pluck("thread_id", &likedIDs).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return likedIDs, nil
}

// Like inserts the like row if absent. ON CONFLICT DO NOTHING makes the
// toggle atomic under concurrent requests from the same user.
func (r *threadRepository) Like(ctx context.Context, userID, threadID uint) error {
	like := models.Like{UserID: userID, ThreadID: &threadID}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&like).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateFeed(ctx)
	return nil
}

// Unlike deletes any matching like rows. Idempotent: unliking a thread
// that was never liked succeeds silently.
func (r *threadRepository) Unlike(ctx context.Context, userID, threadID uint) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND thread_id = ?", userID, threadID).
		Delete(&models.Like{}).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateFeed(ctx)
	return nil
}
